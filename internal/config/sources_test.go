package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPathResolver returns a fixed path or error, for driving resolvePaths
// and the loader without touching the real OS conventions.
type stubPathResolver struct {
	path string
	err  error
}

func (s *stubPathResolver) DefaultConfigPath() (string, error) {
	return s.path, s.err
}

// TestResolvePaths tests candidate path resolution across the combinations
// of explicit path, skip flag, and resolver failure.
func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name           string
		resolver       PathResolver
		explicitPath   string
		skipUserConfig bool
		expected       []string
		expectedErr    error
	}{
		{
			name:     "default path only",
			resolver: &stubPathResolver{path: "/home/u/.config/diffsitter/config.json5"},
			expected: []string{"/home/u/.config/diffsitter/config.json5"},
		},
		{
			name:         "explicit path takes precedence over default",
			resolver:     &stubPathResolver{path: "/home/u/.config/diffsitter/config.json5"},
			explicitPath: "/tmp/override.json5",
			expected:     []string{"/tmp/override.json5", "/home/u/.config/diffsitter/config.json5"},
		},
		{
			name:           "skip flag returns no candidates",
			resolver:       &stubPathResolver{path: "/home/u/.config/diffsitter/config.json5"},
			skipUserConfig: true,
			expected:       nil,
		},
		{
			name:           "skip flag wins over explicit path",
			resolver:       &stubPathResolver{path: "/home/u/.config/diffsitter/config.json5"},
			explicitPath:   "/tmp/override.json5",
			skipUserConfig: true,
			expected:       nil,
		},
		{
			name:         "resolver failure tolerated when explicit path exists",
			resolver:     &stubPathResolver{err: ErrNoDefaultPath},
			explicitPath: "/tmp/override.json5",
			expected:     []string{"/tmp/override.json5"},
		},
		{
			name:        "resolver failure propagates without other candidates",
			resolver:    &stubPathResolver{err: ErrNoDefaultPath},
			expectedErr: ErrNoDefaultPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := resolvePaths(tt.resolver, tt.explicitPath, tt.skipUserConfig)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, paths)
		})
	}
}
