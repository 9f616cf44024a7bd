// Package richtext converts operator-entered markdown into sanitized HTML
// for the CMS rich-text fields. Intake text is pasted from external sources,
// so everything is run through the sanitizer before it leaves the system.
package richtext

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
}

type rendererImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()

	return &rendererImpl{
		md:     md,
		policy: policy,
	}
}

func (r *rendererImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (r *rendererImpl) Sanitize(htmlContent string) string {
	return r.policy.Sanitize(htmlContent)
}

func (r *rendererImpl) ToHTMLSanitized(markdown string) (string, error) {
	rendered, err := r.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return r.Sanitize(rendered), nil
}
