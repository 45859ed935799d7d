package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"leetnorm/internal/errx"
	"leetnorm/internal/jsonx"
	"leetnorm/internal/leetcode"
	"leetnorm/internal/model"
	"leetnorm/internal/output"
	"leetnorm/internal/parser"
)

const kDefaultCategory = "all"

// App wires the fetch, parse and print steps of each command.
type App struct {
	LeetCode leetcode.Client
	Parser   *parser.Parser
	Output   output.Printer
	Logger   *slog.Logger
}

func New(deps App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Parser == nil {
		deps.Parser = parser.New(deps.Logger)
	}
	return &deps
}

// Problems lists the catalog for each category in order, collected into one list.
// No categories means "all".
func (a *App) Problems(ctx context.Context, categories []string) error {
	if len(categories) == 0 {
		categories = []string{kDefaultCategory}
	}

	var ps []model.Problem
	for _, cat := range categories {
		cat = strings.TrimSpace(cat)
		if cat == "" {
			return fmt.Errorf("problems: empty category")
		}
		root, err := a.LeetCode.FetchProblems(ctx, cat)
		if err != nil {
			return fmt.Errorf("fetch problems %s: %w", cat, err)
		}
		if err := a.Parser.Problems(&ps, root); err != nil {
			return parseErr("problems "+cat, err)
		}
	}
	a.Logger.Info("listed problems", "categories", len(categories), "count", len(ps))
	return a.Output.PrintProblems(ctx, ps)
}

// Question prints one question. Premium-gated content is reported as a notice, not an error.
func (a *App) Question(ctx context.Context, titleSlug string) error {
	titleSlug = strings.TrimSpace(titleSlug)
	if titleSlug == "" {
		return fmt.Errorf("question: missing titleSlug")
	}

	root, err := a.LeetCode.FetchQuestion(ctx, titleSlug)
	if err != nil {
		return fmt.Errorf("fetch question %s: %w", titleSlug, err)
	}
	if q := root.At("data", "question"); q.IsNull() {
		return fmt.Errorf("question %s: not found", titleSlug)
	}

	d, ok, err := a.Parser.Detail(root)
	if err != nil {
		return parseErr("question "+titleSlug, err)
	}
	if !ok {
		a.Logger.Info("question content withheld", "slug", titleSlug)
		return a.Output.PrintNotice(ctx, fmt.Sprintf("question %s has no content (premium only?)", titleSlug))
	}
	return a.Output.PrintQuestion(ctx, d.Problem, d.Question)
}

func (a *App) Contest(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return fmt.Errorf("contest: missing slug")
	}

	root, err := a.LeetCode.FetchContest(ctx, slug)
	if err != nil {
		return fmt.Errorf("fetch contest %s: %w", slug, err)
	}
	c, skipped, err := a.Parser.Contest(root)
	if err != nil {
		return parseErr("contest "+slug, err)
	}
	return a.Output.PrintContest(ctx, c, len(skipped))
}

func (a *App) Tag(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return fmt.Errorf("tag: missing slug")
	}

	root, err := a.LeetCode.FetchTag(ctx, slug)
	if err != nil {
		return fmt.Errorf("fetch tag %s: %w", slug, err)
	}
	ids, err := a.Parser.Tag(root)
	if err != nil {
		return parseErr("tag "+slug, err)
	}
	return a.Output.PrintTag(ctx, slug, ids)
}

func (a *App) Daily(ctx context.Context) error {
	root, err := a.LeetCode.FetchDaily(ctx)
	if err != nil {
		return fmt.Errorf("fetch daily: %w", err)
	}
	fid, err := a.Parser.Daily(root)
	if err != nil {
		return parseErr("daily", err)
	}
	return a.Output.PrintDaily(ctx, fid)
}

// User prints the signed-in identity. An anonymous session is not an error.
func (a *App) User(ctx context.Context) error {
	root, err := a.LeetCode.FetchUser(ctx)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	u, ok, err := a.Parser.User(root)
	if err != nil {
		return parseErr("user", err)
	}
	return a.Output.PrintUser(ctx, u, ok)
}

// parseErr tags shape failures as unexpected server responses. Anything else,
// such as a canceled context, passes through.
func parseErr(what string, err error) error {
	var pe *jsonx.PathError
	if errors.Is(err, parser.ErrMalformed) || errors.As(err, &pe) {
		return errx.Unexpected(what, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}
