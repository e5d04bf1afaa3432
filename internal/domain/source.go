package domain

import "context"

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

// SailingSource fetches the raw sailing list from an upstream.
// Implementations must respect context cancellation and may return duplicates;
// deduplication is the pipeline's job.
type SailingSource interface {
	// Name returns the unique identifier of the source (used in logs and errors).
	Name() string

	// Fetch returns every sailing the upstream currently offers.
	Fetch(ctx context.Context) ([]Sailing, error)
}
