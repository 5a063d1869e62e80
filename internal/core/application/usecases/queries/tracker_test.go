package queries_test

import "github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"

// noopTracker satisfies the repositories' aggregateTracker without recording
// anything; query tests seed data through the repositories directly.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
