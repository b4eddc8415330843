package catalog

import (
	"time"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

// Catalog implements CourseService
var _ courseplanner.CourseService = Catalog{}

// earliest year the upstream holds course data for
const FirstYear = 2006

const DefaultMaxResults = 5000

type Catalog struct {
	upstream   courseplanner.Upstream
	terms      courseplanner.TermResolver
	maxResults int
	now        func() time.Time
}

// NewCatalog builds the course service. now supplies the clock used for the year bound.
func NewCatalog(u courseplanner.Upstream, t courseplanner.TermResolver, maxResults int, now func() time.Time) Catalog {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if now == nil {
		now = time.Now
	}
	return Catalog{u, t, maxResults, now}
}

// DefaultYear is the year used when a request doesn't name one
func DefaultYear(now time.Time) int {
	return now.Year()
}

// DefaultTerm is the term used when a course request doesn't name one
func DefaultTerm(now time.Time) string {
	if now.Month() <= time.June {
		return "Semester 1"
	}
	return "Semester 2"
}
