package parser

import (
	"fmt"

	"leetnorm/internal/jsonx"
	"leetnorm/internal/model"
)

// Tag returns the question ids of a topic tag. An unknown tag comes back as a
// null topicTag and yields an empty, non-nil list.
func (p *Parser) Tag(root jsonx.Value) ([]string, error) {
	p.log.Debug("parse tag")
	tag := root.At("data", "topicTag")
	if err := tag.Require(); err != nil {
		return nil, malformed("tag", err)
	}
	if tag.IsNull() {
		return []string{}, nil
	}

	elems, err := tag.Get("questions").RequireArray()
	if err != nil {
		return nil, malformed("tag", err)
	}
	ids := make([]string, 0, len(elems))
	for _, e := range elems {
		id, err := e.Get("questionId").RequireString()
		if err != nil {
			return nil, malformed("tag", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Daily returns the frontend id of today's daily challenge question.
func (p *Parser) Daily(root jsonx.Value) (int, error) {
	p.log.Debug("parse daily")
	id, err := root.At("data", "activeDailyCodingChallengeQuestion", "question", "questionFrontendId").RequireIntText()
	if err != nil {
		return 0, malformed("daily", err)
	}
	if id <= 0 {
		return 0, malformed("daily", fmt.Errorf("questionFrontendId %d: %w", id, jsonx.ErrKind))
	}
	return id, nil
}

// User returns the signed-in identity. A null user means the session is not
// authenticated and yields ok == false with a nil error.
func (p *Parser) User(root jsonx.Value) (u model.User, ok bool, err error) {
	user := root.At("data", "user")
	if err := user.Require(); err != nil {
		return model.User{}, false, malformed("user", err)
	}
	if user.IsNull() {
		p.log.Debug("no signed-in user")
		return model.User{}, false, nil
	}

	var f fields
	u = model.User{
		Username:  f.str(user.Get("username")),
		IsPremium: f.bool(user.Get("isCurrentUserPremium")),
	}
	if f.err != nil {
		return model.User{}, false, malformed("user", f.err)
	}
	return u, true, nil
}
