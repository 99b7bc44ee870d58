package out

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	learnout "aperture/internal/modules/learn/port/out"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

type HTMLPageWriter struct {
	md goldmark.Markdown
}

func NewHTMLPageWriter() learnout.PageWriter {
	return &HTMLPageWriter{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

func (w *HTMLPageWriter) WritePage(_ context.Context, dir, name, title, markdown string) (string, error) {
	var body bytes.Buffer
	if err := w.md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name+".html")
	page := fmt.Sprintf(pageTemplate, html.EscapeString(title), body.String())
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
