// Package source selects the sailing sources a process reads from.
package source

import (
	"github.com/sailing-search/sailing-listing-service/internal/adapter/source/api"
	"github.com/sailing-search/sailing-listing-service/internal/adapter/source/fixture"
	"github.com/sailing-search/sailing-listing-service/internal/config"
	"github.com/sailing-search/sailing-listing-service/internal/domain"
)

// FromConfig returns the configured sources. The remote API wins when its
// URL is set; otherwise the recorded fixture is used.
func FromConfig(cfg config.SourceConfig) []domain.SailingSource {
	if cfg.APIURL != "" {
		return []domain.SailingSource{
			api.NewClient(cfg.APIURL, api.WithUserAgent(cfg.UserAgent)),
		}
	}
	return []domain.SailingSource{fixture.NewSource(cfg.FixturePath)}
}
