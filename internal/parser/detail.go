package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"leetnorm/internal/jsonx"
	"leetnorm/internal/model"
)

// Detail is a question together with the catalog-style Problem derived from the
// same GraphQL response.
type Detail struct {
	Problem  model.Problem
	Question model.Question
}

// Detail parses a GraphQL question detail response into both records. Withheld
// content yields ok == false and a nil error, as with Question.
//
// The Problem here differs from one built by Problems in two ways: Category is
// the lowercased display title rather than the catalog slug, and Percent comes
// from the rounded acRate text rather than raw counts. The two percents agree
// within model.PercentTolerance.
func (p *Parser) Detail(root jsonx.Value) (Detail, bool, error) {
	q, ok, err := p.Question(root)
	if err != nil || !ok {
		return Detail{}, ok, err
	}

	percent, err := percentFromRate(q.Stats.ACRate)
	if err != nil {
		return Detail{}, false, malformed("detail", err)
	}

	o := root.At("data", "question")
	var f fields
	pr := model.Problem{
		Category: strings.ToLower(f.str(o.Get("categoryTitle"))),
		FID:      f.intText(o.Get("questionFrontendId")),
		ID:       f.intText(o.Get("questionId")),
		Level:    model.LevelFromDifficulty(f.str(o.Get("difficulty"))),
		Name:     f.str(o.Get("title")),
		Slug:     f.str(o.Get("titleSlug")),
		Starred:  f.bool(o.Get("isFavor")),
		Status:   textOr(o.Get("status"), model.StatusNull),
		Percent:  percent,
	}
	if f.err != nil {
		return Detail{}, false, malformed("detail", f.err)
	}
	if locked, ok := o.Get("isPaidOnly").Bool(); ok {
		pr.Locked = locked
	}

	desc, err := json.Marshal(q)
	if err != nil {
		return Detail{}, false, fmt.Errorf("detail: encode question: %w", err)
	}
	pr.Desc = string(desc)

	p.log.Debug("parsed question detail", "slug", pr.Slug, "fid", pr.FID)
	return Detail{Problem: pr, Question: q}, true, nil
}

func percentFromRate(rate string) (float64, error) {
	s := strings.TrimSuffix(strings.TrimSpace(rate), "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("stats.acRate %q: %w", rate, jsonx.ErrKind)
	}
	return f, nil
}
