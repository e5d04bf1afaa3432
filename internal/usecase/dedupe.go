package usecase

import "github.com/sailing-search/sailing-listing-service/internal/domain"

// Dedupe removes structurally identical sailings, keeping the first
// occurrence of each and preserving input order. The input is not modified.
func Dedupe(sailings []domain.Sailing) []domain.Sailing {
	seen := make(map[string]struct{}, len(sailings))
	result := make([]domain.Sailing, 0, len(sailings))

	for _, s := range sailings {
		key := s.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, s)
	}

	return result
}
