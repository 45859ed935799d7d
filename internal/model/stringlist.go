package model

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// StringList decodes from either a lone JSON string or an array of strings;
// a lone string becomes a one-element list and null becomes an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case len(b) > 0 && b[0] == '"':
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("want string or list of strings: %w", err)
	}
	*l = many
	return nil
}
