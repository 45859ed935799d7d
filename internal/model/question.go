package model

// Question is the full detail of one problem.
type Question struct {
	// Content is the statement HTML. It is empty for premium-gated questions.
	Content string `json:"content"`

	Stats Stats            `json:"stats"`
	Defs  []CodeDefinition `json:"defs"`

	// Case is the single sample test case; AllCases holds every example case
	// the platform exposes, newline separated.
	Case     string `json:"case"`
	AllCases string `json:"all_cases"`

	MetaData MetaData `json:"metadata"`

	// Test reports whether the platform allows running code online.
	Test bool `json:"test"`

	TContent string `json:"t_content"`
}

// Stats mirrors the question "stats" field, which the platform ships as JSON text.
type Stats struct {
	TotalAccepted      string `json:"totalAccepted"`
	TotalSubmission    string `json:"totalSubmission"`
	TotalAcceptedRaw   int64  `json:"totalAcceptedRaw"`
	TotalSubmissionRaw int64  `json:"totalSubmissionRaw"`

	// ACRate is the rounded display rate, e.g. "49.7%".
	ACRate string `json:"acRate"`
}

// CodeDefinition is a per-language code template.
type CodeDefinition struct {
	Value       string `json:"value"`
	Text        string `json:"text"`
	DefaultCode string `json:"defaultCode"`
}

// MetaData describes the function or class signature a solution must implement.
// Algorithm questions set Name/Params/Return, design questions set ClassName and
// Methods, database questions set the schema statements.
type MetaData struct {
	Name   string  `json:"name,omitempty"`
	Params []Param `json:"params,omitempty"`
	Return *Return `json:"return,omitempty"`

	ClassName    string   `json:"classname,omitempty"`
	Constructor  *Method  `json:"constructor,omitempty"`
	Methods      []Method `json:"methods,omitempty"`
	SystemDesign bool     `json:"systemdesign,omitempty"`
	Manual       bool     `json:"manual,omitempty"`

	Database  bool       `json:"database,omitempty"`
	MySQL     StringList `json:"mysql,omitempty"`
	MSSQL     StringList `json:"mssql,omitempty"`
	OracleSQL StringList `json:"oraclesql,omitempty"`
	Shell     bool       `json:"shell,omitempty"`
}

type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Return struct {
	Type string `json:"type"`
}

type Method struct {
	Name   string  `json:"name,omitempty"`
	Params []Param `json:"params"`
	Return *Return `json:"return,omitempty"`
}
