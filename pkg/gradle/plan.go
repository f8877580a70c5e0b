// Package gradle renders the build-configuration artifact set from a
// manifest. Two descriptor styles are supported: the legacy buildscript
// DSL ("classic") and the plugins DSL with centralized plugin management
// ("modern").
package gradle

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/model"
)

// renderContext is the data handed to every template. The timestamp is
// captured once per run and embedded only to force a new byte sequence on
// each invocation, so that downstream caches see a change.
type renderContext struct {
	*model.Manifest
	Modern       bool
	GeneratedAt  string
	ArtifactName string
}

// BuildPlan renders all artifacts for the manifest. The timestamp must be
// the run's single captured wall-clock time; rendering is deterministic
// for a fixed timestamp.
func BuildPlan(m *model.Manifest, now time.Time) (*model.Plan, error) {
	if err := m.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid manifest")
	}

	style := m.Project.Style
	rc := &renderContext{
		Manifest:     m,
		Modern:       style == model.StyleModern,
		GeneratedAt:  now.UTC().Format(time.RFC3339),
		ArtifactName: m.Workflow.ArtifactName,
	}
	if m.Workflow.StampedArtifact {
		rc.ArtifactName = fmt.Sprintf("%s-%d", m.Workflow.ArtifactName, now.Unix())
	}

	settingsTmpl := settingsClassicTmpl
	rootTmpl := rootBuildClassicTmpl
	if rc.Modern {
		settingsTmpl = settingsModernTmpl
		rootTmpl = rootBuildModernTmpl
	}

	targets := []struct {
		path string
		tmpl *template.Template
	}{
		{PathSettings, settingsTmpl},
		{PathRootBuild, rootTmpl},
		{PathAppBuild, appBuildTmpl},
		{PathWorkflow, workflowTmpl},
	}

	plan := &model.Plan{Style: style}
	for _, target := range targets {
		var buf bytes.Buffer
		if err := target.tmpl.Execute(&buf, rc); err != nil {
			return nil, goerr.Wrap(err, "failed to render artifact", goerr.V("path", target.path))
		}
		plan.Artifacts = append(plan.Artifacts, model.Artifact{
			Path:    target.path,
			Content: buf.String(),
		})
	}

	return plan, nil
}
