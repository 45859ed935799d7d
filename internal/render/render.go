package render

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"

	"leetnorm/internal/model"
)

// Renderer turns a parsed question into terminal text.
type Renderer interface {
	RenderQuestion(ctx context.Context, p model.Problem, q model.Question) (string, error)
}

// HTMLRenderer renders LeetCode statement HTML as plain text.
type HTMLRenderer struct {
	// BaseURL prefixes problem links (default https://leetcode.com).
	BaseURL string
}

func NewHTMLRenderer(baseURL string) *HTMLRenderer { return &HTMLRenderer{BaseURL: baseURL} }

func (r *HTMLRenderer) RenderQuestion(ctx context.Context, p model.Problem, q model.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder

	title := strings.TrimSpace(p.Name)
	if title == "" {
		title = "LeetCode Problem"
	}
	if p.FID > 0 {
		title = fmt.Sprintf("[%d] %s", p.FID, title)
	}
	fmt.Fprintf(&b, "%s (%s)\n", title, p.Level)

	if slug := strings.TrimSpace(p.Slug); slug != "" {
		base := strings.TrimRight(r.BaseURL, "/")
		if base == "" {
			base = "https://leetcode.com"
		}
		fmt.Fprintf(&b, "URL: %s/problems/%s/\n", base, slug)
	}
	if p.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", p.Category)
	}
	if q.Stats.ACRate != "" {
		fmt.Fprintf(&b, "Accepted: %s  Submissions: %s  Rate: %s\n", q.Stats.TotalAccepted, q.Stats.TotalSubmission, q.Stats.ACRate)
	}

	b.WriteString("\n")
	if stmt := PlainText(q.Content); stmt != "" {
		b.WriteString(stmt)
		b.WriteString("\n")
	}

	if cases := strings.TrimSpace(q.AllCases); cases != "" {
		b.WriteString("\nTest cases:\n")
		b.WriteString(cases)
		b.WriteString("\n")
	}

	if langs := languages(q.Defs); langs != "" {
		b.WriteString("\nLanguages: " + langs + "\n")
	}

	return b.String(), nil
}

func languages(defs []model.CodeDefinition) string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		if v := strings.TrimSpace(d.Value); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, ", ")
}

var (
	reBR          = regexp.MustCompile(`(?i)<br\s*/?>`)
	rePreOpen     = regexp.MustCompile(`(?i)<pre[^>]*>`)
	rePreClose    = regexp.MustCompile(`(?i)</pre>`)
	reLiOpen      = regexp.MustCompile(`(?i)<li[^>]*>`)
	reLiClose     = regexp.MustCompile(`(?i)</li>`)
	reSupOpen     = regexp.MustCompile(`(?i)<sup>`)
	reBlockClose  = regexp.MustCompile(`(?i)</(p|div|section|h[1-6]|ul|ol|table|tr|blockquote)>`)
	reStripTags   = regexp.MustCompile(`(?s)<[^>]*>`)
	reManyNewline = regexp.MustCompile(`\n{3,}`)
)

// PlainText performs a minimal HTML to plain text conversion.
func PlainText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = reBR.ReplaceAllString(s, "\n")
	s = rePreOpen.ReplaceAllString(s, "\n\n")
	s = rePreClose.ReplaceAllString(s, "\n\n")
	s = reLiOpen.ReplaceAllString(s, "\n- ")
	s = reLiClose.ReplaceAllString(s, "\n")
	s = reSupOpen.ReplaceAllString(s, "^")
	s = reBlockClose.ReplaceAllString(s, "\n\n")

	// Unescape only after stripping tags so "&lt;int&gt;" survives as "<int>".
	s = reStripTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, " ", " ")

	// Keep leading whitespace; it matters inside examples.
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRightFunc(lines[i], unicode.IsSpace)
	}
	s = strings.Join(lines, "\n")

	s = reManyNewline.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
