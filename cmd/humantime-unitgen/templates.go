package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to the templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"char":  func(b byte) string { return fmt.Sprintf("'%c'", b) },
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(tableTmpl))

// tableData holds the data for the table template.
type tableData struct {
	Package string
	Source  string
	Units   []unitData
}

type unitData struct {
	Code     byte
	Nanos    int64
	Plural   string
	Singular string
	Aliases  []string
}

const tableTmpl = `{{define "table"}}// Code generated by humantime-unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// definitions lists the built-in units, largest first.
var definitions = []Unit{
{{- range .Units}}
	{Code: {{char .Code}}, Nanos: {{.Nanos}}, Plural: {{quote .Plural}}, Singular: {{quote .Singular}}
	{{- if .Aliases}}, Aliases: []string{ {{- range $i, $a := .Aliases}}{{if $i}}, {{end}}{{quote $a}}{{end -}} }{{end}}},
{{- end}}
}
{{end}}`

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}
