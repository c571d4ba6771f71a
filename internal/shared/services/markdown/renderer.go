// Package markdown renders AI summary text and strips markup from user input.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitized HTML and plain-text-only input.
type Renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() *Renderer {
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

	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")

	return &Renderer{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

// ToHTML renders markdown and sanitizes the result with the UGC policy.
func (r *Renderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.ugc.Sanitize(buf.String()), nil
}

// StripTags removes every HTML element from s and trims surrounding space.
// Escaped entities produced by the policy are decoded back so plain text
// such as "R&D" survives unchanged.
func (r *Renderer) StripTags(s string) string {
	out := r.strict.Sanitize(s)
	out = entityReplacer.Replace(out)
	return strings.TrimSpace(out)
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#34;", `"`,
	"&#39;", "'",
	"&quot;", `"`,
)
