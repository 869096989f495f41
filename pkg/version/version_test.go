package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"default", "0.1.0-dev", "0.1.0-dev"},
		{"v prefix", "v1.2.3", "1.2.3"},
		{"short", "2.1", "2.1.0"},
		{"not semver", "dev-build", "dev-build"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := version
			t.Cleanup(func() { version = orig })

			version = tt.raw
			assert.Equal(t, tt.want, GetVersion())
		})
	}
}
