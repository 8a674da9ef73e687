// Package views holds the embedded page templates and the helpers they call.
package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
)

//go:embed templates
var templates embed.FS

// Layout is the layout every page renders inside.
const Layout = "layouts/main"

// Engine returns the Fiber view engine over the embedded templates.
func Engine() (*html.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(Funcs())
	return engine, nil
}

// Funcs are the template helpers. Translation keys are passed as plain
// strings from the templates.
func Funcs() map[string]any {
	return map[string]any{
		"t": func(lang i18n.Language, key string) string {
			return i18n.T(lang, i18n.Key(key), nil)
		},
		"tc": func(lang i18n.Language, key string, n int) string {
			return i18n.Count(lang, i18n.Key(key), n)
		},
		"inc":   func(i int) int { return i + 1 },
		"kb":    kilobytes,
		"upper": strings.ToUpper,
	}
}

func kilobytes(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
