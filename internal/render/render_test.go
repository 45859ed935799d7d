package render

import (
	"context"
	"strings"
	"testing"

	"leetnorm/internal/model"
)

func TestHTMLRenderer_RenderQuestion_Sanity(t *testing.T) {
	t.Parallel()

	r := NewHTMLRenderer("https://leetcode.cn/")

	p := model.Problem{FID: 1, Name: "Two Sum", Slug: "two-sum", Level: model.LevelEasy, Category: "algorithms"}
	q := model.Question{
		Content: "<p>Given <code>nums</code>&nbsp;and <em>target</em> &amp; return indices.</p>" +
			"<ul><li>One</li><li>Two</li></ul>" +
			"<pre><strong>Input:</strong> x\n<strong>Output:</strong> y\n</pre>" +
			"<p>Constraints: 10<sup>4</sup> &lt;int&gt;</p>",
		AllCases: "[2,7]\n9",
		Stats:    model.Stats{TotalAccepted: "1M", TotalSubmission: "2M", ACRate: "50.0%"},
		Defs:     []model.CodeDefinition{{Value: "cpp"}, {Value: "golang"}},
	}

	out, err := r.RenderQuestion(context.Background(), p, q)
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}

	assertContains(t, out, "[1] Two Sum (Easy)")
	assertContains(t, out, "URL: https://leetcode.cn/problems/two-sum/")
	assertContains(t, out, "Category: algorithms")
	assertContains(t, out, "Rate: 50.0%")

	assertNotContains(t, out, "<p>")
	assertNotContains(t, out, "&nbsp;")
	assertContains(t, out, "Given nums and target & return indices.")
	assertContains(t, out, "- One")
	assertContains(t, out, "- Two")
	assertContains(t, out, "Input:")
	assertContains(t, out, "Constraints: 10^4 <int>")

	assertContains(t, out, "Test cases:\n[2,7]\n9")
	assertContains(t, out, "Languages: cpp, golang")
}

func TestHTMLRenderer_RenderQuestion_Minimal(t *testing.T) {
	t.Parallel()

	out, err := NewHTMLRenderer("").RenderQuestion(context.Background(), model.Problem{}, model.Question{})
	if err != nil {
		t.Fatalf("RenderQuestion() error = %v", err)
	}
	if !strings.HasPrefix(out, "LeetCode Problem (Unknown)") {
		t.Fatalf("out = %q", out)
	}
	assertNotContains(t, out, "URL:")
	assertNotContains(t, out, "Test cases:")
}

func TestHTMLRenderer_RespectsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewHTMLRenderer("").RenderQuestion(ctx, model.Problem{}, model.Question{}); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}

func assertContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q; got:\n%s", sub, s)
	}
}

func assertNotContains(t *testing.T, s, sub string) {
	t.Helper()
	if strings.Contains(s, sub) {
		t.Fatalf("expected output to NOT contain %q; got:\n%s", sub, s)
	}
}
