package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mason-build/mason/pkg/cli/config"
	"github.com/mason-build/mason/pkg/gradle"
	"github.com/urfave/cli/v3"
)

func cmdPlan() *cli.Command {
	var manifestCfg config.Manifest

	return &cli.Command{
		Name:    "plan",
		Aliases: []string{"p"},
		Usage:   "Show what apply would write, without writing anything",
		Flags:   manifestCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			manifest, err := manifestCfg.Load()
			if err != nil {
				return err
			}

			plan, err := gradle.BuildPlan(manifest, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Plan for style %q (base dir %s):\n", plan.Style, manifestCfg.BaseDir)
			for _, artifact := range plan.Artifacts {
				state := planState(manifestCfg.BaseDir, artifact.Path, artifact.Content)
				fmt.Printf("  %-11s %s (%d bytes)\n", state, artifact.Path, len(artifact.Content))
			}
			return nil
		},
	}
}

// planState compares rendered content against the file on disk. The
// generation timestamp line is ignored so an otherwise unchanged file is
// reported as unchanged.
func planState(baseDir, path, content string) string {
	current, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(path)))
	if err != nil {
		return "new"
	}
	if bytes.Equal(stripStamp(current), stripStamp([]byte(content))) {
		return "unchanged"
	}
	return "changed"
}

func stripStamp(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "// Updated: ") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}
