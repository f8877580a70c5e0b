package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestPlanState(t *testing.T) {
	baseDir := t.TempDir()

	write := func(path, content string) {
		full := filepath.Join(baseDir, filepath.FromSlash(path))
		gt.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		gt.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}

	write("settings.gradle", "// Updated: 2025-06-01T12:00:00Z\nrootProject.name = 'app'\n")
	write("build.gradle", "// Updated: 2025-06-01T12:00:00Z\nallprojects {}\n")
	write(".github/workflows/android.yml", "name: Android CI\n")

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "missing file is new",
			path:    "app/build.gradle",
			content: "// Updated: 2025-07-01T00:00:00Z\nplugins {}\n",
			want:    "new",
		},
		{
			name:    "identical content is unchanged",
			path:    ".github/workflows/android.yml",
			content: "name: Android CI\n",
			want:    "unchanged",
		},
		{
			name:    "only the timestamp differs",
			path:    "settings.gradle",
			content: "// Updated: 2025-07-01T00:00:00Z\nrootProject.name = 'app'\n",
			want:    "unchanged",
		},
		{
			name:    "body differs",
			path:    "build.gradle",
			content: "// Updated: 2025-06-01T12:00:00Z\nsubprojects {}\n",
			want:    "changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, planState(baseDir, tt.path, tt.content)).Equal(tt.want)
		})
	}
}

func TestStripStamp(t *testing.T) {
	in := "// Updated: 2025-06-01T12:00:00Z\nplugins {\n}\n"
	gt.Value(t, string(stripStamp([]byte(in)))).Equal("plugins {\n}\n")

	// Content without a stamp passes through untouched
	gt.Value(t, string(stripStamp([]byte("name: Android CI\n")))).Equal("name: Android CI\n")
}
