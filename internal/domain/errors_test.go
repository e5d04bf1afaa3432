package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceError(t *testing.T) {
	tests := []struct {
		name          string
		source        string
		underlyingErr error
		wantContains  []string
	}{
		{
			name:          "error message includes source and underlying error",
			source:        "sailings_api",
			underlyingErr: errors.New("connection refused"),
			wantContains:  []string{"sailings_api", "connection refused"},
		},
		{
			name:          "wrapped sentinel stays reachable",
			source:        "fixture",
			underlyingErr: fmt.Errorf("%w: status 503", ErrSourceUnavailable),
			wantContains:  []string{"fixture", "status 503"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSourceError(tt.source, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))

			var srcErr *SourceError
			assert.True(t, errors.As(fmt.Errorf("listing: %w", err), &srcErr))
			assert.Equal(t, tt.source, srcErr.Source)
		})
	}
}

func TestSourceError_IsSentinel(t *testing.T) {
	err := NewSourceError("sailings_api", fmt.Errorf("%w: status 500", ErrSourceUnavailable))
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidPayload)
}
