package uriutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPath(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		want    string
	}{
		{"plain path", "dist/theme_fallback.json", "dist/theme_fallback.json"},
		{"file URI", "file:///srv/app/dist/theme_fallback.json", "/srv/app/dist/theme_fallback.json"},
		{"localhost host", "file://localhost/srv/x.json", "/srv/x.json"},
		{"percent-encoded", "file:///srv/my%20app/x.json", "/srv/my app/x.json"},
		{"windows drive", "file:///C:/dist/x.json", "C:/dist/x.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), ToPath(tt.locator))
		})
	}
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://cdn.example.com/theme_fallback.json"))
	assert.True(t, IsRemote("http://localhost:8080/x.json"))
	assert.False(t, IsRemote("file:///x.json"))
	assert.False(t, IsRemote("dist/x.json"))
}
