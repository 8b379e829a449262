package targets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one domain per line",
			content: "example.com\nexample.org\n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "blank lines are skipped",
			content: "example.com\n\n\nexample.org\n\n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "surrounding whitespace is trimmed",
			content: "  example.com  \n\texample.org\t\n   \n",
			want:    []string{"example.com", "example.org"},
		},
		{
			name:    "duplicates and order are kept",
			content: "b.example\na.example\nb.example\n",
			want:    []string{"b.example", "a.example", "b.example"},
		},
		{
			name:    "full URLs pass through untouched",
			content: "https://example.com/health\n",
			want:    []string{"https://example.com/health"},
		},
		{
			name:    "empty file yields no targets",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "urls.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write targets file: %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Load() returned %d targets, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Load()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected an error for a missing file, got nil")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Load() error %q does not name the missing file %q", err, path)
	}
}
