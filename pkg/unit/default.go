package unit

import "fmt"

// Canonical codes of the built-in units.
const (
	CodeCentury     byte = 'c'
	CodeDecade      byte = 'e'
	CodeYear        byte = 'y'
	CodeMonth       byte = 'o'
	CodeWeek        byte = 'w'
	CodeDay         byte = 'd'
	CodeHour        byte = 'h'
	CodeMinute      byte = 'm'
	CodeSecond      byte = 's'
	CodeMillisecond byte = 'i'
	CodeMicrosecond byte = 'r'
	CodeNanosecond  byte = 'n'
)

var defaultTable *Table

func init() {
	t, err := NewTable(definitions...)
	if err != nil {
		panic(fmt.Sprintf("built-in unit table: %v", err))
	}
	defaultTable = t
}

// Default returns the built-in unit table.
func Default() *Table {
	return defaultTable
}
