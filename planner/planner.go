package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/config"
)

var _ courseplanner.Upstream = PlannerAPI{}

// PlannerAPI talks to the course planner query endpoints. It never retries or caches.
type PlannerAPI struct {
	http    *http.Client
	baseURL string
}

// NewPlannerAPI creates a client for baseURL. A nil limiter leaves requests unthrottled.
func NewPlannerAPI(baseURL string, timeout time.Duration, limiter *rate.Limiter) (PlannerAPI, error) {
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return PlannerAPI{}, fmt.Errorf("invalid upstream base url %q: %w", baseURL, err)
	}

	client := &http.Client{Timeout: timeout}
	if limiter != nil {
		client.Transport = &rateLimitedRoundTripper{transport: http.DefaultTransport, limiter: limiter}
	}

	return PlannerAPI{client, baseURL}, nil
}

func (p PlannerAPI) Terms(ctx context.Context) ([]courseplanner.RawTermEntry, error) {
	// the endpoint needs a year range, ask for all of them
	q := url.Values{}
	q.Set("year_from", "0")
	q.Set("year_to", "9999")

	return fetch[courseplanner.RawTermEntry](ctx, p.http, p.endpoint("TERMS", q))
}

func (p PlannerAPI) CourseDetail(ctx context.Context, courseID, year int, term courseplanner.TermCode) (courseplanner.RawCourseDetail, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("courseid", strconv.Itoa(courseID))
	q.Set("term", string(term))

	rows, err := fetch[courseplanner.RawCourseDetail](ctx, p.http, p.endpoint("COURSE_DTL", q))
	if err != nil {
		return courseplanner.RawCourseDetail{}, err
	}
	if len(rows) == 0 {
		return courseplanner.RawCourseDetail{}, fmt.Errorf("%w: no detail for course %d in term %s", courseplanner.ErrNotFound, courseID, term)
	}

	return rows[0], nil
}

func (p PlannerAPI) ClassList(ctx context.Context, courseID int, term courseplanner.TermCode) (courseplanner.RawClassList, error) {
	q := url.Values{}
	q.Set("crseid", strconv.Itoa(courseID))
	q.Set("term", string(term))
	q.Set("offer", "1")
	q.Set("session", "1")

	rows, err := fetch[courseplanner.RawClassList](ctx, p.http, p.endpoint("COURSE_CLASS_LIST", q))
	if err != nil {
		return courseplanner.RawClassList{}, err
	}
	if len(rows) == 0 {
		return courseplanner.RawClassList{}, fmt.Errorf("%w: no class list for course %d in term %s", courseplanner.ErrNotFound, courseID, term)
	}

	return rows[0], nil
}

func (p PlannerAPI) SearchCourses(ctx context.Context, query courseplanner.SearchQuery) ([]courseplanner.RawCourseRow, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(query.Year))
	q.Set("pagenbr", "1")
	q.Set("pagesize", strconv.Itoa(query.MaxResults))
	if query.Term != "" {
		q.Set("term", string(query.Term))
	}

	return fetch[courseplanner.RawCourseRow](ctx, p.http, p.endpoint("COURSE_SEARCH", q))
}

// target is kept unescaped, the upstream expects the slashes as is
func (p PlannerAPI) endpoint(name string, q url.Values) string {
	return fmt.Sprintf("%s?target=/system/%s/queryx&virtual=Y&%s", p.baseURL, name, q.Encode())
}

type response[T any] struct {
	Data []T `json:"data"`
}

func fetch[T any](ctx context.Context, client *http.Client, u string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", courseplanner.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("%w: %s returned %s: %s", courseplanner.ErrUpstream, target(u), res.Status, strings.TrimSpace(string(excerpt)))
	}

	var body response[T]
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s response: %s", courseplanner.ErrUpstream, target(u), err)
	}

	log.Debug().Str("target", target(u)).Int("rows", len(body.Data)).Msg("fetched from upstream")

	return body.Data, nil
}

func target(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	return parsed.Query().Get("target")
}

type rateLimitedRoundTripper struct {
	transport http.RoundTripper
	limiter   *rate.Limiter
}

func (rt *rateLimitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return rt.transport.RoundTrip(req)
}
