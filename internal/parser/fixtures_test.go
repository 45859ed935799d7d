package parser

import (
	"strings"
	"testing"

	"leetnorm/internal/jsonx"
)

func decode(t *testing.T, s string) jsonx.Value {
	t.Helper()
	v, err := jsonx.DecodeString(s)
	if err != nil {
		t.Fatalf("decode fixture: %v\n%s", err, s)
	}
	return v
}

const kProblemsBody = `{
  "category_slug": "algorithms",
  "stat_status_pairs": [
    {
      "stat": {"question_id": 1, "frontend_question_id": 1, "question__title": "Two Sum",
               "question__title_slug": "two-sum", "total_acs": 50, "total_submitted": 200},
      "difficulty": {"level": 1}, "paid_only": false, "is_favor": true, "status": "ac"
    },
    {
      "stat": {"question_id": 2, "frontend_question_id": 2, "question__title": "Add Two Numbers",
               "question__title_slug": "add-two-numbers", "total_acs": 0, "total_submitted": 0},
      "difficulty": {"level": 2}, "paid_only": true, "is_favor": false, "status": null
    },
    {
      "stat": {"question_id": 4, "frontend_question_id": 3, "question__title": "Longest Substring",
               "question__title_slug": "longest-substring", "total_acs": 7, "total_submitted": 0},
      "difficulty": {"level": 3}, "paid_only": false, "is_favor": false
    }
  ]
}`

// questionBody builds a GraphQL question detail response. Each override replaces
// the JSON text of one field; an empty override removes the field.
func questionBody(overrides map[string]string) string {
	stats := `{"totalAccepted": "12.5M", "totalSubmission": "25.1M", "totalAcceptedRaw": 12500000, "totalSubmissionRaw": 25100000, "acRate": "49.8%"}`
	defs := `[{"value": "cpp", "text": "C++", "defaultCode": "class Solution {};"}, {"value": "golang", "text": "Go", "defaultCode": "func twoSum() {}"}]`
	meta := `{"name": "twoSum", "params": [{"name": "nums", "type": "integer[]"}, {"name": "target", "type": "integer"}], "return": {"type": "integer[]", "size": 2}}`

	fields := [][2]string{
		{"title", `"Two Sum"`},
		{"titleSlug", `"two-sum"`},
		{"questionId", `"1"`},
		{"questionFrontendId", `"1"`},
		{"categoryTitle", `"Algorithms"`},
		{"content", `"<p>Given an array</p>"`},
		{"codeDefinition", quote(defs)},
		{"status", `"ac"`},
		{"metaData", quote(meta)},
		{"isFavor", `false`},
		{"isPaidOnly", `false`},
		{"difficulty", `"Easy"`},
		{"exampleTestcases", `"[2,7,11,15]\n9\n[3,2,4]\n6"`},
		{"sampleTestCase", `"[2,7,11,15]\n9"`},
		{"enableRunCode", `true`},
		{"stats", quote(stats)},
		{"translatedContent", `null`},
	}

	var parts []string
	for _, kv := range fields {
		val := kv[1]
		if o, ok := overrides[kv[0]]; ok {
			val = o
		}
		if val == "" {
			continue
		}
		parts = append(parts, `"`+kv[0]+`": `+val)
	}
	return `{"data": {"question": {` + strings.Join(parts, ", ") + `}}}`
}

// quote encodes s as a JSON string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
