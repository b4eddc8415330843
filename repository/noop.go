package repository

import (
	"context"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

var _ courseplanner.LookupRepository = Noop{}

// Noop discards lookups
type Noop struct {
}

func NewNoop() Noop {
	return Noop{}
}

func (n Noop) Record(ctx context.Context, lookup courseplanner.Lookup) error {
	return nil
}

func (n Noop) Recent(ctx context.Context, limit int) ([]courseplanner.Lookup, error) {
	return []courseplanner.Lookup{}, nil
}

func (n Noop) Close() error {
	return nil
}
