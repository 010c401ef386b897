package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

type stubLogger struct{ mock.Mock }

func (s *stubLogger) Log(event Event) { s.Called(event) }

func TestMultiLoggerCallsAll(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		SessionID: "session-123",
		Operation: OperationParse,
	}

	stubs := []*stubLogger{{}, {}, {}}
	for _, s := range stubs {
		s.On("Log", event).Once()
	}

	multi := NewMultiLogger(stubs[0], stubs[1], stubs[2])
	multi.Log(event)

	for _, s := range stubs {
		s.AssertExpectations(t)
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	s := &stubLogger{}
	s.On("Log", mock.Anything).Once()

	multi := NewMultiLogger(nil, s, nil)
	multi.Log(Event{SessionID: "x"})

	s.AssertExpectations(t)
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()

	// Should not panic with empty logger list
	multi.Log(Event{Timestamp: time.Now(), SessionID: "session-123"})
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{SessionID: "ignored"})
}
