package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

// ListCourses returns every course offered in a year, optionally narrowed to one term.
// The summaries echo the caller's term string rather than the upstream's.
func (c Catalog) ListCourses(ctx context.Context, year int, term *string) ([]courseplanner.CourseSummary, error) {
	if current := c.now().Year(); year < FirstYear || year > current {
		return nil, fmt.Errorf("%w: %d, must be between %d and %d", courseplanner.ErrInvalidYear, year, FirstYear, current)
	}

	query := courseplanner.SearchQuery{Year: year, MaxResults: c.maxResults}
	if term != nil {
		code, err := c.terms.Resolve(ctx, year, *term)
		if err != nil {
			return nil, err
		}
		query.Term = code
	}

	rows, err := c.upstream.SearchCourses(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses for %d: %w", year, err)
	}

	if len(rows) >= c.maxResults {
		log.Warn().Int("year", year).Int("rows", len(rows)).Msg("course search hit the result limit, list may be incomplete")
	}

	courses := make([]courseplanner.CourseSummary, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseplanner.CourseSummary{
			CourseID: row.CourseID,
			Name:     row.Subject + " " + row.CatalogNumber,
			Title:    row.Title,
			Subject:  row.Subject,
			Number:   row.CatalogNumber,
			Career:   row.Career,
			Year:     row.Year,
			Term:     term,
			Units:    row.Units,
			Campus:   row.Campus,
		})
	}

	return courses, nil
}
