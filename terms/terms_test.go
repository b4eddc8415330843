package terms

import (
	"context"
	"errors"
	"strings"
	"testing"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

type catalogUpstream struct {
	entries []courseplanner.RawTermEntry
	err     error
	calls   int
}

func (c *catalogUpstream) Terms(ctx context.Context) ([]courseplanner.RawTermEntry, error) {
	c.calls++
	return c.entries, c.err
}

func (c *catalogUpstream) CourseDetail(ctx context.Context, courseID, year int, term courseplanner.TermCode) (courseplanner.RawCourseDetail, error) {
	return courseplanner.RawCourseDetail{}, errors.New("unexpected call")
}

func (c *catalogUpstream) ClassList(ctx context.Context, courseID int, term courseplanner.TermCode) (courseplanner.RawClassList, error) {
	return courseplanner.RawClassList{}, errors.New("unexpected call")
}

func (c *catalogUpstream) SearchCourses(ctx context.Context, query courseplanner.SearchQuery) ([]courseplanner.RawCourseRow, error) {
	return nil, errors.New("unexpected call")
}

func newCatalog() *catalogUpstream {
	return &catalogUpstream{entries: []courseplanner.RawTermEntry{
		{Code: "3110", Description: "2023 Semester 1"},
		{Code: "3150", Description: "2024 Semester 1"},
		{Code: "3160", Description: "2024 Semester 2"},
		{Code: "3155", Description: "2024 Summer School"},
		{Code: "9999", Description: "2024 Semester 1"},
	}}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		year int
		term string
		want courseplanner.TermCode
	}{
		{2024, "sem1", "3150"},
		{2024, "Semester 1", "3150"},
		{2024, "sem2", "3160"},
		{2023, "sem1", "3110"},
		{2024, "summer", "3155"},
	}

	for _, tt := range tests {
		r := NewResolver(newCatalog())
		got, err := r.Resolve(context.Background(), tt.year, tt.term)
		if err != nil {
			t.Fatalf("Resolve(%d, %q) returned error: %s", tt.year, tt.term, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%d, %q) = %q, want %q", tt.year, tt.term, got, tt.want)
		}
	}
}

func TestResolveInvalidTerm(t *testing.T) {
	r := NewResolver(newCatalog())

	for _, term := range []string{"Semester 9", "semester 1", "sem3"} {
		_, err := r.Resolve(context.Background(), 2024, term)
		if !errors.Is(err, courseplanner.ErrInvalidTerm) {
			t.Errorf("Resolve(2024, %q) error = %v, want ErrInvalidTerm", term, err)
		}
	}

	_, err := r.Resolve(context.Background(), 2024, "sem3")
	if err == nil || !strings.Contains(err.Error(), "Semester 3") {
		t.Errorf("error %v should name the offending term", err)
	}
}

func TestResolveFetchesEveryCall(t *testing.T) {
	u := newCatalog()
	r := NewResolver(u)

	for i := 0; i < 3; i++ {
		if _, err := r.Resolve(context.Background(), 2024, "sem1"); err != nil {
			t.Fatalf("Resolve returned error: %s", err)
		}
	}

	if u.calls != 3 {
		t.Errorf("term catalog fetched %d times, want 3", u.calls)
	}
}

func TestResolveUpstreamFailure(t *testing.T) {
	u := &catalogUpstream{err: courseplanner.ErrUpstream}
	_, err := NewResolver(u).Resolve(context.Background(), 2024, "sem1")
	if !errors.Is(err, courseplanner.ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}
