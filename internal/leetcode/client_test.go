package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type graphqlBody struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

func newTestClient(t *testing.T, h http.HandlerFunc, auth Auth) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewHTTPClient(HTTPClientOptions{BaseURL: ts.URL, HTTP: ts.Client(), Auth: auth})
}

func TestHTTPClient_FetchQuestion_Sanity(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		if r.URL.Path != kGraphQLPath {
			t.Errorf("path = %q, want %q", r.URL.Path, kGraphQLPath)
		}
		if got := r.Header.Get(kHeaderContentType); !strings.HasPrefix(got, kContentTypeApplicationJSON) {
			t.Errorf("%s = %q, want %q", kHeaderContentType, got, kContentTypeApplicationJSON)
		}
		if got := r.Header.Get(kHeaderAccept); got != kContentTypeApplicationJSON {
			t.Errorf("%s = %q, want %q", kHeaderAccept, got, kContentTypeApplicationJSON)
		}

		var req graphqlBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Variables["titleSlug"] != "two-sum" {
			t.Errorf("variables.titleSlug = %v, want %q", req.Variables["titleSlug"], "two-sum")
		}
		if !strings.Contains(req.Query, "codeDefinition") || !strings.Contains(req.Query, "enableRunCode") {
			t.Errorf("query is missing detail fields:\n%s", req.Query)
		}

		w.Header().Set(kHeaderContentType, kContentTypeApplicationJSON)
		_, _ = w.Write([]byte(`{"data":{"question":{"titleSlug":"two-sum","questionId":"1","content":null}}}`))
	}, Auth{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	v, err := lc.FetchQuestion(ctx, "two-sum")
	if err != nil {
		t.Fatalf("FetchQuestion() error = %v", err)
	}
	if got, _ := v.At("data", "question", "titleSlug").Text(); got != "two-sum" {
		t.Fatalf("titleSlug = %q, want %q", got, "two-sum")
	}
	if !v.At("data", "question", "content").IsNull() {
		t.Fatalf("content null was not preserved")
	}
}

func TestHTTPClient_FetchProblems_PathAndCookies(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		if r.URL.Path != "/api/problems/algorithms/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if c, err := r.Cookie(kCookieLeetCodeSession); err != nil || c.Value != "sess" {
			t.Errorf("session cookie = %v (err %v), want sess", c, err)
		}
		if c, err := r.Cookie(kCookieCSRFTOKEN); err != nil || c.Value != "csrf" {
			t.Errorf("csrf cookie = %v (err %v), want csrf", c, err)
		}
		if got := r.Header.Get(kHeaderXCSRFTOKEN); got != "csrf" {
			t.Errorf("%s = %q, want csrf", kHeaderXCSRFTOKEN, got)
		}
		w.Header().Set(kHeaderContentType, kContentTypeApplicationJSON)
		_, _ = w.Write([]byte(`{"category_slug":"algorithms","stat_status_pairs":[]}`))
	}, Auth{Session: "sess", CsrfToken: "csrf"})

	v, err := lc.FetchProblems(context.Background(), "algorithms")
	if err != nil {
		t.Fatalf("FetchProblems() error = %v", err)
	}
	if got, _ := v.Get("category_slug").Text(); got != "algorithms" {
		t.Fatalf("category_slug = %q", got)
	}
}

func TestHTTPClient_FetchContest_Path(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contest/api/info/weekly-contest-370/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set(kHeaderContentType, kContentTypeApplicationJSON)
		_, _ = w.Write([]byte(`{"contest":{"id":1},"questions":[]}`))
	}, Auth{})

	v, err := lc.FetchContest(context.Background(), "weekly-contest-370")
	if err != nil {
		t.Fatalf("FetchContest() error = %v", err)
	}
	if id, _ := v.At("contest", "id").Int(); id != 1 {
		t.Fatalf("contest.id = %d, want 1", id)
	}
	if _, err := lc.FetchContest(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty slug")
	}
}

func TestHTTPClient_RejectsHTMLResponse(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(kHeaderContentType, "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>captcha</html>"))
	}, Auth{})

	_, err := lc.FetchUser(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unexpected html response") {
		t.Fatalf("error = %q, want mention of unexpected html response", err.Error())
	}
}

func TestHTTPClient_Non2xx_ReturnsError(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(kHeaderContentType, kContentTypeApplicationJSON)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}, Auth{})

	_, err := lc.FetchProblems(context.Background(), "")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "status 403") {
		t.Fatalf("error = %q, want status 403", err.Error())
	}
}

func TestHTTPClient_GraphQLErrors(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(kHeaderContentType, kContentTypeApplicationJSON)
		_, _ = w.Write([]byte(`{"errors":[{"message":"That tag does not exist."},{"message":" "}],"data":null}`))
	}, Auth{})

	_, err := lc.FetchTag(context.Background(), "nope")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "That tag does not exist.") {
		t.Fatalf("error = %q, want graphql message", err.Error())
	}
}

func TestHTTPClient_NullDataIsPassedThrough(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlBody
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set(kHeaderContentType, kContentTypeApplicationJSON)
		switch {
		case strings.Contains(req.Query, "topicTag"):
			_, _ = w.Write([]byte(`{"data":{"topicTag":null}}`))
		case strings.Contains(req.Query, "activeDailyCodingChallengeQuestion"):
			_, _ = w.Write([]byte(`{"data":{"activeDailyCodingChallengeQuestion":{"question":{"questionFrontendId":"9"}}}}`))
		default:
			_, _ = w.Write([]byte(`{"data":{"user":null}}`))
		}
	}, Auth{})

	tag, err := lc.FetchTag(context.Background(), "unknown")
	if err != nil || !tag.At("data", "topicTag").IsNull() {
		t.Fatalf("FetchTag() = %v (err %v), want null topicTag", tag.Raw(), err)
	}
	user, err := lc.FetchUser(context.Background())
	if err != nil || !user.At("data", "user").IsNull() {
		t.Fatalf("FetchUser() = %v (err %v), want null user", user.Raw(), err)
	}
	daily, err := lc.FetchDaily(context.Background())
	if err != nil {
		t.Fatalf("FetchDaily() error = %v", err)
	}
	if id, _ := daily.At("data", "activeDailyCodingChallengeQuestion", "question", "questionFrontendId").IntText(); id != 9 {
		t.Fatalf("daily id = %d, want 9", id)
	}
}

func TestHTTPClient_CanceledContext(t *testing.T) {
	t.Parallel()

	lc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should not be sent")
	}, Auth{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lc.FetchDaily(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
