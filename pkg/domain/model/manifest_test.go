package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mason-build/mason/pkg/domain/model"
)

func TestStyle_Validate(t *testing.T) {
	gt.NoError(t, model.StyleClassic.Validate())
	gt.NoError(t, model.StyleModern.Validate())
	gt.Error(t, model.Style("futuristic").Validate())
	gt.Error(t, model.Style("").Validate())
}

func TestManifest_Clone(t *testing.T) {
	m := model.DefaultManifest()
	m.Android.Dependencies = []string{"androidx.appcompat:appcompat:1.6.1"}

	clone := m.Clone()
	clone.Project.Style = model.StyleClassic
	clone.Android.Dependencies[0] = "changed"
	clone.Android.Dependencies = append(clone.Android.Dependencies, "extra")

	// Original is unaffected
	gt.Value(t, m.Project.Style).Equal(model.StyleModern)
	gt.Array(t, m.Android.Dependencies).Equal([]string{"androidx.appcompat:appcompat:1.6.1"})
}

func TestWorkflowRun_States(t *testing.T) {
	tests := []struct {
		name      string
		run       model.WorkflowRun
		finished  bool
		succeeded bool
	}{
		{
			name:     "in progress",
			run:      model.WorkflowRun{Status: "in_progress"},
			finished: false,
		},
		{
			name:      "completed success",
			run:       model.WorkflowRun{Status: "completed", Conclusion: "success"},
			finished:  true,
			succeeded: true,
		},
		{
			name:     "completed failure",
			run:      model.WorkflowRun{Status: "completed", Conclusion: "failure"},
			finished: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.run.Finished()).Equal(tt.finished)
			gt.Value(t, tt.run.Succeeded()).Equal(tt.succeeded)
		})
	}
}
