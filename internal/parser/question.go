package parser

import (
	"leetnorm/internal/jsonx"
	"leetnorm/internal/model"
)

// Question parses a GraphQL question detail response into a new record.
// ok is false, with a nil error, when the content is null: the platform withheld a
// premium question from this session.
func (p *Parser) Question(root jsonx.Value) (q model.Question, ok bool, err error) {
	ok, err = p.FillQuestion(&q, root)
	return q, ok, err
}

// FillQuestion is Question for callers that keep the record at a fixed address.
// dst is only written on full success.
func (p *Parser) FillQuestion(dst *model.Question, root jsonx.Value) (bool, error) {
	o := root.At("data", "question")
	if err := o.RequireObject(); err != nil {
		return false, malformed("question", err)
	}

	content := o.Get("content")
	if err := content.Require(); err != nil {
		return false, malformed("question", err)
	}
	if content.IsNull() {
		p.log.Info("question content withheld", "slug", textOr(o.Get("titleSlug"), ""))
		return false, nil
	}

	var f fields
	statsText := f.str(o.Get("stats"))
	defsText := f.str(o.Get("codeDefinition"))
	metaText := f.str(o.Get("metaData"))

	allCases := o.Get("exampleTestcases")
	if !allCases.Exists() || allCases.IsNull() {
		allCases = o.Get("sampleTestCase")
	}

	q := model.Question{
		Content:  textOr(content, ""),
		Case:     f.str(o.Get("sampleTestCase")),
		AllCases: f.str(allCases),
		Test:     f.bool(o.Get("enableRunCode")),
		TContent: textOr(o.Get("translatedContent"), ""),
	}
	if f.err != nil {
		return false, malformed("question", f.err)
	}

	var err error
	if q.Stats, err = DecodeStats(statsText); err != nil {
		return false, malformed("question", err)
	}
	if q.Defs, err = DecodeCodeDefinitions(defsText); err != nil {
		return false, malformed("question", err)
	}
	if q.MetaData, err = DecodeMetaData(metaText); err != nil {
		return false, malformed("question", err)
	}

	*dst = q
	return true, nil
}
