package terms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/convert"
)

// Resolver implements TermResolver
var _ courseplanner.TermResolver = Resolver{}

type Resolver struct {
	upstream courseplanner.Upstream
}

func NewResolver(u courseplanner.Upstream) Resolver {
	return Resolver{u}
}

// Resolve maps a year and term ("sem1" or "Semester 1") to the upstream term code
func (r Resolver) Resolve(ctx context.Context, year int, term string) (courseplanner.TermCode, error) {
	// Resolution steps
	// 1. Expand the alias into the upstream's long term name
	// 2. Fetch the whole term catalog, every call
	// 3. Return the first entry described as "<year> <term>"

	normalized := convert.TermAlias(term)

	entries, err := r.upstream.Terms(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch term catalog: %w", err)
	}

	want := strconv.Itoa(year) + " " + normalized
	for _, entry := range entries {
		if entry.Description == want {
			log.Debug().Str("term", want).Str("code", string(entry.Code)).Msg("resolved term")
			return entry.Code, nil
		}
	}

	return "", fmt.Errorf("%w: %s", courseplanner.ErrInvalidTerm, normalized)
}
