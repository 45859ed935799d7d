package parser

import (
	"fmt"

	"leetnorm/internal/jsonx"
	"leetnorm/internal/model"
)

// Skipped records a contest question that could not be decoded.
type Skipped struct {
	Index int
	Err   error
}

var stubRequired = []string{"question_id", "title", "title_slug"}

// Contest parses the contest info endpoint. The header is all-or-nothing; each
// question stub is decoded on its own, and stubs that fail are left out of the
// contest and reported in the returned Skipped list.
func (p *Parser) Contest(root jsonx.Value) (model.Contest, []Skipped, error) {
	p.log.Debug("parse contest")

	if err := root.RequireObject(); err != nil {
		return model.Contest{}, nil, malformed("contest", err)
	}
	elems, err := root.Get("questions").RequireArray()
	if err != nil {
		return model.Contest{}, nil, malformed("contest", err)
	}

	c := root.Get("contest")
	var f fields
	out := model.Contest{
		ID:              f.int(c.Get("id")),
		Duration:        f.int(c.Get("duration")),
		StartTime:       f.int64(c.Get("start_time")),
		Title:           f.str(c.Get("title")),
		TitleSlug:       f.str(c.Get("title_slug")),
		Description:     textOr(c.Get("description"), ""),
		IsVirtual:       f.bool(c.Get("is_virtual")),
		ContainsPremium: f.bool(root.Get("containsPremium")),
		Registered:      f.bool(root.Get("registered")),
	}
	if f.err != nil {
		return model.Contest{}, nil, malformed("contest", f.err)
	}

	var skipped []Skipped
	out.Questions = make([]model.ContestQuestionStub, 0, len(elems))
	for i, e := range elems {
		stub, err := contestStub(e)
		if err != nil {
			p.log.Warn("skip contest question", "contest", out.TitleSlug, "index", i, "err", err)
			skipped = append(skipped, Skipped{Index: i, Err: err})
			continue
		}
		out.Questions = append(out.Questions, stub)
	}
	return out, skipped, nil
}

func contestStub(e jsonx.Value) (model.ContestQuestionStub, error) {
	if err := e.RequireObject(); err != nil {
		return model.ContestQuestionStub{}, err
	}
	for _, key := range stubRequired {
		if err := e.Get(key).Require(); err != nil {
			return model.ContestQuestionStub{}, err
		}
	}
	var stub model.ContestQuestionStub
	if err := e.Unmarshal(&stub); err != nil {
		return model.ContestQuestionStub{}, err
	}
	if stub.TitleSlug == "" {
		return model.ContestQuestionStub{}, fmt.Errorf("%s: empty title_slug", e.Path())
	}
	return stub, nil
}
