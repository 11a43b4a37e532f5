// Package renderer turns cost ledgers into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// RenderLedger renders the whole ledger view: title, entries and total.
func RenderLedger(l *Ledger) string {
	partials := map[string]string{
		"ledger_title":   "ledger_title.md",
		"ledger_entries": "ledger_entries.md",
		"ledger_total":   "ledger_total.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, l)
}

// RenderTotal renders only the total line of the ledger view.
func RenderTotal(l *Ledger) string {
	partials := map[string]string{
		"ledger_total": "ledger_total.md",
	}
	return renderTemplate("total", "total.md", partials, l)
}

// RenderEntry renders a confirmation for a newly added entry.
func RenderEntry(e Entry) string {
	return renderTemplate("entry", "entry.md", nil, e)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
// The trailing newline of partials is dropped so that the main template controls the spacing.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(strings.TrimSuffix(string(content), "\n")); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
