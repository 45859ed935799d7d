package parser

import (
	"fmt"

	"leetnorm/internal/jsonx"
	"leetnorm/internal/model"
)

// Problems appends one Problem per stat/status pair of a bulk catalog response to
// *dst, so several categories can be collected into one slice. A malformed pair
// stops the walk: problems appended before it stay, the rest are not appended.
func (p *Parser) Problems(dst *[]model.Problem, root jsonx.Value) error {
	pairs, err := root.Get("stat_status_pairs").RequireArray()
	if err != nil {
		return malformed("problems", err)
	}
	for i, pair := range pairs {
		pr, err := problemFromPair(root, pair)
		if err != nil {
			p.log.Warn("malformed problem pair", "index", i, "appended", i, "err", err)
			return malformed(fmt.Sprintf("problems: pair %d", i), err)
		}
		*dst = append(*dst, pr)
	}
	p.log.Debug("parsed problems", "count", len(pairs))
	return nil
}

func problemFromPair(root, pair jsonx.Value) (model.Problem, error) {
	stat := pair.Get("stat")
	if err := stat.RequireObject(); err != nil {
		return model.Problem{}, err
	}

	var f fields
	acs := f.float(stat.Get("total_acs"))
	submitted := f.float(stat.Get("total_submitted"))
	pr := model.Problem{
		Category: f.str(root.Get("category_slug")),
		FID:      f.int(stat.Get("frontend_question_id")),
		ID:       f.int(stat.Get("question_id")),
		Level:    model.Level(f.int(pair.At("difficulty", "level"))),
		Locked:   f.bool(pair.Get("paid_only")),
		Name:     f.str(stat.Get("question__title")),
		Slug:     f.str(stat.Get("question__title_slug")),
		Starred:  f.bool(pair.Get("is_favor")),
		Status:   textOr(pair.Get("status"), model.StatusNull),
		Percent:  model.Percent(acs, submitted),
	}
	if f.err != nil {
		return model.Problem{}, f.err
	}
	return pr, nil
}
