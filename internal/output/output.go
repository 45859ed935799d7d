package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"

	"leetnorm/internal/model"
	"leetnorm/internal/render"
)

// Printer renders user-facing output (human and/or JSON).
type Printer interface {
	PrintProblems(ctx context.Context, ps []model.Problem) error
	PrintQuestion(ctx context.Context, p model.Problem, q model.Question) error
	PrintContest(ctx context.Context, c model.Contest, skipped int) error
	PrintTag(ctx context.Context, slug string, ids []string) error
	PrintDaily(ctx context.Context, fid int) error
	PrintUser(ctx context.Context, u model.User, signedIn bool) error
	PrintNotice(ctx context.Context, msg string) error
	PrintError(ctx context.Context, err error) error
}

// StdPrinter writes results to Out and notices and errors to Err.
type StdPrinter struct {
	Out      io.Writer
	Err      io.Writer
	JSON     bool
	Renderer render.Renderer
}

func NewStdPrinter(out io.Writer, err io.Writer, asJSON bool) *StdPrinter {
	return &StdPrinter{Out: out, Err: err, JSON: asJSON, Renderer: render.NewHTMLRenderer("")}
}

// problemView is Problem with a nullable percent; JSON has no NaN.
type problemView struct {
	Category string   `json:"category"`
	FID      int      `json:"fid"`
	ID       int      `json:"id"`
	Level    string   `json:"level"`
	Locked   bool     `json:"locked"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Starred  bool     `json:"starred"`
	Status   string   `json:"status"`
	Percent  *float64 `json:"percent"`
	Desc     string   `json:"desc,omitempty"`
}

func viewOf(p model.Problem) problemView {
	v := problemView{
		Category: p.Category,
		FID:      p.FID,
		ID:       p.ID,
		Level:    p.Level.String(),
		Locked:   p.Locked,
		Name:     p.Name,
		Slug:     p.Slug,
		Starred:  p.Starred,
		Status:   p.Status,
		Desc:     p.Desc,
	}
	if p.HasPercent() {
		pct := p.Percent
		v.Percent = &pct
	}
	return v
}

func (p *StdPrinter) PrintProblems(ctx context.Context, ps []model.Problem) error {
	if p.JSON {
		views := make([]problemView, 0, len(ps))
		for _, x := range ps {
			views = append(views, viewOf(x))
		}
		return p.encode(views)
	}

	tw := tabwriter.NewWriter(p.Out, 0, 4, 2, ' ', 0)
	for _, x := range ps {
		lock := ""
		if x.Locked {
			lock = " [locked]"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s%s\n", x.FID, x.Level, formatPercent(x), x.Name, lock); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (p *StdPrinter) PrintQuestion(ctx context.Context, prob model.Problem, q model.Question) error {
	if p.JSON {
		return p.encode(struct {
			Problem  problemView    `json:"problem"`
			Question model.Question `json:"question"`
		}{viewOf(prob), q})
	}

	r := p.Renderer
	if r == nil {
		r = render.NewHTMLRenderer("")
	}
	text, err := r.RenderQuestion(ctx, prob, q)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.Out, text)
	return err
}

func (p *StdPrinter) PrintContest(ctx context.Context, c model.Contest, skipped int) error {
	if p.JSON {
		return p.encode(struct {
			Contest model.Contest `json:"contest"`
			Skipped int           `json:"skipped"`
		}{c, skipped})
	}

	if _, err := fmt.Fprintf(p.Out, "%s (%s)\n", c.Title, c.TitleSlug); err != nil {
		return err
	}
	start := c.Start().UTC().Format(time.RFC3339)
	end := c.End().UTC().Format(time.RFC3339)
	if _, err := fmt.Fprintf(p.Out, "Start: %s  End: %s\n", start, end); err != nil {
		return err
	}
	for _, q := range c.Questions {
		if _, err := fmt.Fprintf(p.Out, "  %d\t%d pts\t%s\n", q.QuestionID, q.Credit, q.Title); err != nil {
			return err
		}
	}
	if skipped > 0 {
		if _, err := fmt.Fprintf(p.Err, "note: skipped %d malformed question(s)\n", skipped); err != nil {
			return err
		}
	}
	return nil
}

func (p *StdPrinter) PrintTag(ctx context.Context, slug string, ids []string) error {
	if p.JSON {
		return p.encode(struct {
			Tag       string   `json:"tag"`
			Questions []string `json:"questions"`
		}{slug, ids})
	}
	if len(ids) == 0 {
		return p.PrintNotice(ctx, fmt.Sprintf("no questions for tag %q", slug))
	}
	_, err := fmt.Fprintln(p.Out, strings.Join(ids, " "))
	return err
}

func (p *StdPrinter) PrintDaily(ctx context.Context, fid int) error {
	if p.JSON {
		return p.encode(struct {
			FID int `json:"fid"`
		}{fid})
	}
	_, err := fmt.Fprintf(p.Out, "%d\n", fid)
	return err
}

func (p *StdPrinter) PrintUser(ctx context.Context, u model.User, signedIn bool) error {
	if p.JSON {
		if !signedIn {
			_, err := fmt.Fprintln(p.Out, "null")
			return err
		}
		return p.encode(u)
	}
	if !signedIn {
		return p.PrintNotice(ctx, "not signed in (set leetcode.session and leetcode.csrftoken)")
	}
	plan := "free"
	if u.IsPremium {
		plan = "premium"
	}
	_, err := fmt.Fprintf(p.Out, "%s (%s)\n", u.Username, plan)
	return err
}

func (p *StdPrinter) PrintNotice(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(p.Err, "note: %s\n", msg)
	return err
}

func (p *StdPrinter) PrintError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(p.Err, "error: %v\n", err)
	return werr
}

func (p *StdPrinter) encode(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func formatPercent(p model.Problem) string {
	if !p.HasPercent() {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", p.Percent)
}
