package handlers

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"ollama-scriptgen/internal/contextutil"
)

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.6;
    }
    code {
      background: #f1f5f9;
      padding: 0.1rem 0.3rem;
      border-radius: 4px;
    }
    table {
      border-collapse: collapse;
      width: 100%;
    }
    th, td {
      border: 1px solid #cbd5e1;
      padding: 0.4rem 0.6rem;
      text-align: left;
    }
  </style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

type docsPageData struct {
	Title   string
	Content template.HTML
}

// DocsHandler serves the API description as an HTML page.
type DocsHandler struct {
	page   []byte
	logger *slog.Logger
}

// NewDocsHandler renders the usage page for defaultModel once and returns a handler serving it.
func NewDocsHandler(defaultModel string) (*DocsHandler, error) {
	info := NewInfo(defaultModel)

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	var content bytes.Buffer
	if err := md.Convert([]byte(UsageMarkdown(info)), &content); err != nil {
		return nil, fmt.Errorf("failed to render usage markdown: %w", err)
	}

	var page bytes.Buffer
	if err := docsTemplate.Execute(&page, docsPageData{
		Title:   info.Name,
		Content: template.HTML(content.String()),
	}); err != nil {
		return nil, fmt.Errorf("failed to render docs page: %w", err)
	}

	return &DocsHandler{
		page:   page.Bytes(),
		logger: slog.Default(),
	}, nil
}

// UsageMarkdown renders info as markdown. Endpoints, parameters and examples
// are sorted by name.
func UsageMarkdown(info InfoResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", info.Name)
	fmt.Fprintf(&sb, "Default model: `%s`\n", info.DefaultModel)

	for _, path := range slices.Sorted(maps.Keys(info.Endpoints)) {
		endpoint := info.Endpoints[path]
		fmt.Fprintf(&sb, "\n## %s %s\n\n", endpoint.Method, path)
		if endpoint.Description != "" {
			fmt.Fprintf(&sb, "%s\n", html.EscapeString(endpoint.Description))
		}

		if len(endpoint.Parameters) > 0 {
			sb.WriteString("\n| Parameter | Description |\n| --- | --- |\n")
			for _, name := range slices.Sorted(maps.Keys(endpoint.Parameters)) {
				fmt.Fprintf(&sb, "| `%s` | %s |\n", name, html.EscapeString(endpoint.Parameters[name]))
			}
		}

		if len(endpoint.Examples) > 0 {
			sb.WriteString("\n### Examples\n\n")
			for _, name := range slices.Sorted(maps.Keys(endpoint.Examples)) {
				example := endpoint.Examples[name]
				fmt.Fprintf(&sb, "- %s: [`%s`](%s)\n", name, example, example)
			}
		}
	}
	return sb.String()
}

// ServeHTTP writes the rendered usage page.
func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContextOr(ctx, h.logger)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.page); err != nil {
		logger.ErrorContext(ctx, "failed to write docs page", "error", err)
	}
}
