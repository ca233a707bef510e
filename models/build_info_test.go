package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewBuildInfo_SubstitutesNA verifies that missing build metadata is
// replaced with "N/A".
func TestNewBuildInfo_SubstitutesNA(t *testing.T) {
	info := NewBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.Version())
	assert.Equal(t, "N/A", info.Date())
	assert.Equal(t, "N/A", info.Commit())
}

// TestNewBuildInfo_KeepsInjectedValues verifies that injected values are
// returned as-is.
func TestNewBuildInfo_KeepsInjectedValues(t *testing.T) {
	info := NewBuildInfo("1.2.3", "2026-08-31", "abc123")

	assert.Equal(t, "1.2.3", info.Version())
	assert.Equal(t, "2026-08-31", info.Date())
	assert.Equal(t, "abc123", info.Commit())
}

// TestBuildInfo_String verifies the single-line rendering.
func TestBuildInfo_String(t *testing.T) {
	info := NewBuildInfo("1.2.3", "2026-08-31", "abc123")

	assert.Equal(t, "version 1.2.3 (commit abc123, built 2026-08-31)", info.String())
}
