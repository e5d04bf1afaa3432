// Package fixture implements a SailingSource that reads a recorded upstream
// response from disk. It backs local development and tests.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
)

// SourceName is the unique identifier for the fixture source.
const SourceName = "sailings_fixture"

// DefaultPath is the recorded response shipped with the repository.
const DefaultPath = "docs/response-mock/sailings.json"

// Source reads sailings from a JSON file shaped like the upstream response.
type Source struct {
	path string
}

// NewSource creates a new Source.
// If path is empty, DefaultPath is used.
func NewSource(path string) *Source {
	if path == "" {
		path = DefaultPath
	}
	return &Source{path: path}
}

// Name returns the unique identifier for this source.
func (s *Source) Name() string {
	return SourceName
}

// Path returns the file the source reads.
func (s *Source) Path() string {
	return s.path
}

// Fetch reads and decodes the fixture file.
func (s *Source) Fetch(ctx context.Context) ([]domain.Sailing, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewSourceError(SourceName,
			fmt.Errorf("%w: read %s: %v", domain.ErrSourceUnavailable, s.path, err))
	}

	var payload domain.SailingsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err))
	}

	if payload.Results == nil {
		return []domain.Sailing{}, nil
	}
	return payload.Results, nil
}

// Ensure Source implements SailingSource at compile time.
var _ domain.SailingSource = (*Source)(nil)
