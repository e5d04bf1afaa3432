// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/timeutil"
)

// projectRoot returns the repository root (testutil lives in test/testutil).
func projectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// MockPath returns the absolute path of a file in docs/response-mock.
func MockPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "docs", "response-mock", filename)
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
// This is a convenience function for loading recorded upstream responses.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(MockPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(timeutil.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Titles returns the names of sailings in order.
func Titles(sailings []domain.Sailing) []string {
	names := make([]string, len(sailings))
	for i, s := range sailings {
		names[i] = s.Name
	}
	return names
}
