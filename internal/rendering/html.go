// Package rendering turns a print projection into a standalone HTML page
// sized like an A4 sheet.
package rendering

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/ihp-exam/internal/projection"
)

// PageWidthPx is the width of the print root in CSS pixels, A4 at 96 dpi.
const PageWidthPx = 794

// RootSelector selects the element that is captured to a raster.
const RootSelector = ".printWrap"

//go:embed templates/print.html.tmpl
var templateFS embed.FS

type templateData struct {
	projection.Document
	WidthPx int
}

var printTemplate = template.Must(parseTemplate())

// parseTemplate parses the embedded print template
func parseTemplate() (*template.Template, error) {
	content, err := templateFS.ReadFile("templates/print.html.tmpl")
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to read embedded template",
			Cause:   err,
		}
	}

	tmpl, err := template.New("print").Funcs(template.FuncMap{
		"deref": func(s *string) string { return *s },
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// RenderHTML renders doc to a complete HTML page. User text is escaped.
func RenderHTML(doc projection.Document) (string, error) {
	if doc.Empty() {
		return "", &RenderError{Message: "document has no title"}
	}

	var result strings.Builder
	err := printTemplate.Execute(&result, templateData{Document: doc, WidthPx: PageWidthPx})
	if err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}
