package model

import "time"

// Contest is a contest header plus its question stubs in platform order.
type Contest struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	TitleSlug   string `json:"title_slug"`
	Description string `json:"description"`

	// Duration is in seconds, StartTime in epoch seconds.
	Duration  int   `json:"duration"`
	StartTime int64 `json:"start_time"`

	IsVirtual       bool `json:"is_virtual"`
	ContainsPremium bool `json:"contains_premium"`
	Registered      bool `json:"registered"`

	Questions []ContestQuestionStub `json:"questions"`
}

func (c Contest) Start() time.Time { return time.Unix(c.StartTime, 0) }

func (c Contest) End() time.Time {
	return c.Start().Add(time.Duration(c.Duration) * time.Second)
}

// ContestQuestionStub is the minimal per-question listing inside a contest.
type ContestQuestionStub struct {
	QuestionID int    `json:"question_id"`
	Credit     int    `json:"credit"`
	Title      string `json:"title"`
	TitleSlug  string `json:"title_slug"`
}

// User is the identity of the session the requests were made with.
type User struct {
	Username  string `json:"username"`
	IsPremium bool   `json:"is_premium"`
}
