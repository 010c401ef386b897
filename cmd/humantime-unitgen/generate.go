package main

import (
	"strings"

	"github.com/humantime-go/humantime/pkg/unit"
)

// GenerateTable renders the Go source of the definitions table.
func GenerateTable(pkg, source string, units []unit.Unit) (string, error) {
	data := tableData{Package: pkg, Source: source}
	for _, u := range units {
		data.Units = append(data.Units, unitData{
			Code:     u.Code,
			Nanos:    u.Nanos,
			Plural:   u.Plural,
			Singular: u.Singular,
			Aliases:  u.Aliases,
		})
	}

	var b strings.Builder
	if err := renderTemplate(&b, "table", data); err != nil {
		return "", err
	}
	return b.String(), nil
}
