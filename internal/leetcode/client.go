// Package leetcode fetches raw LeetCode responses. It owns transport concerns only
// (URLs, cookies, status and content-type checks) and hands back decoded JSON
// trees; turning those into records is the parser's job.
package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"leetnorm/internal/jsonx"
)

const (
	kDefaultBaseURL  = "https://leetcode.com"
	kGraphQLPath     = "/graphql"
	kDefaultCategory = "all"

	kHeaderAccept      = "Accept"
	kHeaderContentType = "Content-Type"
	kHeaderOrigin      = "Origin"
	kHeaderReferer     = "Referer"
	kHeaderUserAgent   = "User-Agent"
	kHeaderXCSRFTOKEN  = "x-csrftoken"

	kContentTypeApplicationJSON = "application/json"
	kContentTypeTextHTML        = "text/html"

	kCookieLeetCodeSession = "LEETCODE_SESSION"
	kCookieCSRFTOKEN       = "csrftoken"

	kMaxErrorBodyBytes = 8 << 10

	kProblemsPathFormat    = "/api/problems/%s/"
	kContestInfoPathFormat = "/contest/api/info/%s/"
)

// Client fetches the raw responses the parser understands.
type Client interface {
	FetchProblems(ctx context.Context, category string) (jsonx.Value, error)
	FetchContest(ctx context.Context, slug string) (jsonx.Value, error)
	FetchQuestion(ctx context.Context, titleSlug string) (jsonx.Value, error)
	FetchTag(ctx context.Context, slug string) (jsonx.Value, error)
	FetchDaily(ctx context.Context) (jsonx.Value, error)
	FetchUser(ctx context.Context) (jsonx.Value, error)
}

// Auth contains the session cookies. Treat these fields as secrets: do not log or print them.
type Auth struct {
	// Session is the value of the LEETCODE_SESSION cookie.
	Session string

	// CsrfToken is the value of the csrftoken cookie.
	CsrfToken string
}

// HTTPClient is a Client backed by resty. It never retries.
type HTTPClient struct {
	base string
	rc   *resty.Client
}

type HTTPClientOptions struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
	Auth      Auth
}

func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	var rc *resty.Client
	if opts.HTTP != nil {
		rc = resty.NewWithClient(opts.HTTP)
	} else {
		rc = resty.New()
	}
	base := normalizedBaseURL(opts.BaseURL)
	rc.SetBaseURL(base)
	rc.JSONMarshal = json.Marshal
	rc.JSONUnmarshal = json.Unmarshal
	rc.SetHeader(kHeaderAccept, kContentTypeApplicationJSON)
	if opts.UserAgent != "" {
		rc.SetHeader(kHeaderUserAgent, opts.UserAgent)
	}
	// Attach cookies if configured. These are secrets; never log them.
	if opts.Auth.Session != "" {
		rc.SetCookie(&http.Cookie{Name: kCookieLeetCodeSession, Value: opts.Auth.Session})
	}
	if opts.Auth.CsrfToken != "" {
		rc.SetCookie(&http.Cookie{Name: kCookieCSRFTOKEN, Value: opts.Auth.CsrfToken})
		rc.SetHeader(kHeaderXCSRFTOKEN, opts.Auth.CsrfToken)
	}
	return &HTTPClient{base: base, rc: rc}
}

func (c *HTTPClient) FetchProblems(ctx context.Context, category string) (jsonx.Value, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = kDefaultCategory
	}
	return c.get(ctx, "problems", fmt.Sprintf(kProblemsPathFormat, url.PathEscape(category)))
}

func (c *HTTPClient) FetchContest(ctx context.Context, slug string) (jsonx.Value, error) {
	if strings.TrimSpace(slug) == "" {
		return jsonx.Value{}, fmt.Errorf("contest slug is required")
	}
	// The GraphQL contest query lacks registration status, so use the REST endpoint.
	return c.get(ctx, "contest", fmt.Sprintf(kContestInfoPathFormat, url.PathEscape(strings.TrimSpace(slug))))
}

func (c *HTTPClient) FetchQuestion(ctx context.Context, titleSlug string) (jsonx.Value, error) {
	if strings.TrimSpace(titleSlug) == "" {
		return jsonx.Value{}, fmt.Errorf("titleSlug is required")
	}
	return c.graphql(ctx, "question", kQuestionDetailQuery, map[string]any{"titleSlug": strings.TrimSpace(titleSlug)})
}

func (c *HTTPClient) FetchTag(ctx context.Context, slug string) (jsonx.Value, error) {
	if strings.TrimSpace(slug) == "" {
		return jsonx.Value{}, fmt.Errorf("tag slug is required")
	}
	return c.graphql(ctx, "tag", kTopicTagQuery, map[string]any{"slug": strings.TrimSpace(slug)})
}

func (c *HTTPClient) FetchDaily(ctx context.Context) (jsonx.Value, error) {
	return c.graphql(ctx, "daily", kDailyQuery, nil)
}

func (c *HTTPClient) FetchUser(ctx context.Context) (jsonx.Value, error) {
	return c.graphql(ctx, "user", kUserQuery, nil)
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

func (c *HTTPClient) graphql(ctx context.Context, what, query string, vars map[string]any) (jsonx.Value, error) {
	if err := ctx.Err(); err != nil {
		return jsonx.Value{}, err
	}
	req := c.rc.R().
		SetContext(ctx).
		SetHeader(kHeaderContentType, kContentTypeApplicationJSON).
		SetHeader(kHeaderOrigin, c.base).
		SetHeader(kHeaderReferer, c.base+"/").
		SetBody(graphqlRequest{OperationName: kOperationName, Query: query, Variables: vars})

	v, err := c.do(req, http.MethodPost, kGraphQLPath, "graphql "+what)
	if err != nil {
		return jsonx.Value{}, err
	}

	// GraphQL reports failures in-band with a 200.
	if errs := v.Get("errors").Elems(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			if m, ok := e.Get("message").Text(); ok && strings.TrimSpace(m) != "" {
				msgs = append(msgs, m)
			}
		}
		if len(msgs) == 0 {
			return jsonx.Value{}, fmt.Errorf("leetcode graphql %s: unknown graphql error", what)
		}
		return jsonx.Value{}, fmt.Errorf("leetcode graphql %s: %s", what, strings.Join(msgs, "; "))
	}
	return v, nil
}

func (c *HTTPClient) get(ctx context.Context, what, path string) (jsonx.Value, error) {
	if err := ctx.Err(); err != nil {
		return jsonx.Value{}, err
	}
	return c.do(c.rc.R().SetContext(ctx), http.MethodGet, path, what)
}

func (c *HTTPClient) do(req *resty.Request, method, path, what string) (jsonx.Value, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return jsonx.Value{}, fmt.Errorf("leetcode %s request failed: %w", what, err)
	}

	contentType := resp.Header().Get(kHeaderContentType)
	if strings.Contains(strings.ToLower(contentType), kContentTypeTextHTML) {
		// LeetCode may be blocking automated requests; the response is often HTML.
		return jsonx.Value{}, fmt.Errorf(
			"leetcode %s: unexpected html response (status %d); leetcode may be blocking requests",
			what, resp.StatusCode(),
		)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		snippet := resp.Body()
		if len(snippet) > kMaxErrorBodyBytes {
			snippet = snippet[:kMaxErrorBodyBytes]
		}
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = resp.Status()
		}
		return jsonx.Value{}, fmt.Errorf("leetcode %s: status %d: %s", what, resp.StatusCode(), msg)
	}

	v, err := jsonx.Decode(resp.Body())
	if err != nil {
		return jsonx.Value{}, fmt.Errorf("decode leetcode %s response: %w", what, err)
	}
	return v, nil
}

func normalizedBaseURL(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return kDefaultBaseURL
	}
	return base
}
