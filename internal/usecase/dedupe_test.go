package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
)

func TestDedupe(t *testing.T) {
	a := createTestSailing("A", 300, "2024-01-10", 7)
	b := createTestSailing("B", 100, "2024-01-05", 5)
	c := createTestSailing("C", 200, "2024-01-07", 3)

	reordered := a
	reordered.Itinerary = []string{"Nassau, Bahamas", "Miami, Florida"}

	tests := []struct {
		name  string
		input []domain.Sailing
		want  []string
	}{
		{"removes later duplicates", []domain.Sailing{a, b, a}, []string{"A", "B"}},
		{"keeps first occurrence order", []domain.Sailing{c, a, c, b, a}, []string{"C", "A", "B"}},
		{"no duplicates", []domain.Sailing{a, b, c}, []string{"A", "B", "C"}},
		{"all duplicates", []domain.Sailing{a, a, a}, []string{"A"}},
		{"reordered itinerary is distinct", []domain.Sailing{a, reordered}, []string{"A", "A"}},
		{"empty input", []domain.Sailing{}, []string{}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestDedupe_NonFinitePrices(t *testing.T) {
	a := createTestSailing("A", math.Inf(1), "2024-01-10", 7)
	b := createTestSailing("B", math.Inf(1), "2024-01-05", 5)

	got := Dedupe([]domain.Sailing{a, b, a})

	assert.Equal(t, []string{"A", "B"}, names(got))
}

func TestDedupe_NestedFieldDifference(t *testing.T) {
	a := createTestSailing("A", 300, "2024-01-10", 7)
	other := a
	other.Ship.Line.Logo = "https://cdn.example.com/logo.png"

	assert.Len(t, Dedupe([]domain.Sailing{a, other}), 2)
}

func TestDedupe_Idempotent(t *testing.T) {
	a := createTestSailing("A", 300, "2024-01-10", 7)
	b := createTestSailing("B", 100, "2024-01-05", 5)
	input := []domain.Sailing{b, a, b, a, a, b}

	once := Dedupe(input)
	twice := Dedupe(once)

	assert.Equal(t, once, twice)
}

func TestDedupe_DoesNotModifyInput(t *testing.T) {
	a := createTestSailing("A", 300, "2024-01-10", 7)
	b := createTestSailing("B", 100, "2024-01-05", 5)
	input := []domain.Sailing{a, b, a}

	_ = Dedupe(input)

	assert.Equal(t, []string{"A", "B", "A"}, names(input))
}
