package parser

import (
	"fmt"

	"github.com/goccy/go-json"

	"leetnorm/internal/jsonx"
	"leetnorm/internal/model"
)

// The question detail carries stats, codeDefinition and metaData as JSON text.
// The decoders here validate that text; the encoders produce text they accept.

func DecodeStats(text string) (model.Stats, error) {
	v, err := jsonx.DecodeString(text)
	if err != nil {
		return model.Stats{}, fmt.Errorf("stats: %w", err)
	}
	var f fields
	s := model.Stats{
		TotalAccepted:      f.str(v.Get("totalAccepted")),
		TotalSubmission:    f.str(v.Get("totalSubmission")),
		TotalAcceptedRaw:   f.int64(v.Get("totalAcceptedRaw")),
		TotalSubmissionRaw: f.int64(v.Get("totalSubmissionRaw")),
		ACRate:             f.str(v.Get("acRate")),
	}
	if f.err != nil {
		return model.Stats{}, fmt.Errorf("stats: %w", f.err)
	}
	return s, nil
}

func DecodeCodeDefinitions(text string) ([]model.CodeDefinition, error) {
	v, err := jsonx.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("codeDefinition: %w", err)
	}
	elems, err := v.RequireArray()
	if err != nil {
		return nil, fmt.Errorf("codeDefinition: %w", err)
	}
	defs := make([]model.CodeDefinition, 0, len(elems))
	for _, e := range elems {
		var f fields
		d := model.CodeDefinition{
			Value:       f.str(e.Get("value")),
			Text:        f.str(e.Get("text")),
			DefaultCode: f.str(e.Get("defaultCode")),
		}
		if f.err != nil {
			return nil, fmt.Errorf("codeDefinition: %w", f.err)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func DecodeMetaData(text string) (model.MetaData, error) {
	v, err := jsonx.DecodeString(text)
	if err != nil {
		return model.MetaData{}, fmt.Errorf("metaData: %w", err)
	}
	if err := v.RequireObject(); err != nil {
		return model.MetaData{}, fmt.Errorf("metaData: %w", err)
	}
	var md model.MetaData
	if err := v.Unmarshal(&md); err != nil {
		return model.MetaData{}, fmt.Errorf("metaData: %w", err)
	}
	return md, nil
}

func EncodeStats(s model.Stats) (string, error) { return encodeText(s) }

func EncodeCodeDefinitions(defs []model.CodeDefinition) (string, error) {
	if defs == nil {
		defs = []model.CodeDefinition{}
	}
	return encodeText(defs)
}

func EncodeMetaData(md model.MetaData) (string, error) { return encodeText(md) }

func encodeText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
