package gradle_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/mason-build/mason/pkg/gradle"
)

func fixedTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-06-01T12:00:00Z")
	gt.NoError(t, err)
	return ts
}

func TestBuildPlan_ModernStyle(t *testing.T) {
	m := model.DefaultManifest()
	m.Project.Name = "Demo_Game"
	m.Project.Style = model.StyleModern
	m.Android.CppStandard = "c++20"

	plan, err := gradle.BuildPlan(m, fixedTime(t))
	gt.NoError(t, err)

	gt.Value(t, plan.Style).Equal(model.StyleModern)
	gt.Array(t, plan.Paths()).Equal([]string{
		"settings.gradle",
		"build.gradle",
		"app/build.gradle",
		".github/workflows/android.yml",
	})

	byPath := map[string]string{}
	for _, a := range plan.Artifacts {
		byPath[a.Path] = a.Content
	}

	settings := byPath["settings.gradle"]
	gt.True(t, strings.Contains(settings, "pluginManagement {"))
	gt.True(t, strings.Contains(settings, "RepositoriesMode.FAIL_ON_PROJECT_REPOS"))
	gt.True(t, strings.Contains(settings, `rootProject.name = "Demo_Game"`))
	gt.True(t, strings.Contains(settings, "include ':app'"))

	rootBuild := byPath["build.gradle"]
	gt.True(t, strings.Contains(rootBuild, "id 'com.android.application' version '8.1.0' apply false"))
	gt.False(t, strings.Contains(rootBuild, "buildscript"))

	appBuild := byPath["app/build.gradle"]
	gt.True(t, strings.HasPrefix(appBuild, "plugins {"))
	gt.True(t, strings.Contains(appBuild, "namespace 'com.example.app'"))
	gt.True(t, strings.Contains(appBuild, "compileSdk 34"))
	gt.True(t, strings.Contains(appBuild, `cppFlags "-std=c++20"`))
	gt.True(t, strings.Contains(appBuild, `ndkVersion "25.1.8937393"`))
}

func TestBuildPlan_ClassicStyle(t *testing.T) {
	m := model.DefaultManifest()
	m.Project.Style = model.StyleClassic
	m.Android.Dependencies = []string{
		"androidx.appcompat:appcompat:1.6.1",
		"com.google.android.material:material:1.9.0",
	}

	plan, err := gradle.BuildPlan(m, fixedTime(t))
	gt.NoError(t, err)

	byPath := map[string]string{}
	for _, a := range plan.Artifacts {
		byPath[a.Path] = a.Content
	}

	settings := byPath["settings.gradle"]
	gt.False(t, strings.Contains(settings, "pluginManagement"))
	gt.True(t, strings.Contains(settings, "include ':app'"))

	rootBuild := byPath["build.gradle"]
	gt.True(t, strings.Contains(rootBuild, "buildscript {"))
	gt.True(t, strings.Contains(rootBuild, "classpath 'com.android.tools.build:gradle:8.1.0'"))
	gt.True(t, strings.Contains(rootBuild, "task clean(type: Delete)"))

	appBuild := byPath["app/build.gradle"]
	gt.True(t, strings.HasPrefix(appBuild, "apply plugin: 'com.android.application'"))
	gt.True(t, strings.Contains(appBuild, "implementation 'androidx.appcompat:appcompat:1.6.1'"))
	gt.True(t, strings.Contains(appBuild, "implementation 'com.google.android.material:material:1.9.0'"))
	// NDK blocks are omitted when no C++ standard is configured
	gt.False(t, strings.Contains(appBuild, "externalNativeBuild"))
}

func TestBuildPlan_Workflow(t *testing.T) {
	m := model.DefaultManifest()
	m.Workflow.Name = "Ultimate Build"
	m.Workflow.ArtifactName = "GAME-APK"

	plan, err := gradle.BuildPlan(m, fixedTime(t))
	gt.NoError(t, err)

	var workflow string
	for _, a := range plan.Artifacts {
		if a.Path == gradle.PathWorkflow {
			workflow = a.Content
		}
	}

	gt.True(t, strings.Contains(workflow, "name: Ultimate Build"))
	gt.True(t, strings.Contains(workflow, "on: [push, workflow_dispatch]"))
	gt.True(t, strings.Contains(workflow, "uses: actions/checkout@v4"))
	gt.True(t, strings.Contains(workflow, "uses: actions/setup-java@v4"))
	gt.True(t, strings.Contains(workflow, "uses: gradle/actions/setup-gradle@v3"))
	gt.True(t, strings.Contains(workflow, "uses: android-actions/setup-android@v3"))
	gt.True(t, strings.Contains(workflow, "uses: actions/upload-artifact@v4"))
	gt.True(t, strings.Contains(workflow, "name: GAME-APK"))
	gt.True(t, strings.Contains(workflow, "run: gradle assembleDebug --no-daemon --stacktrace"))
}

func TestBuildPlan_StampedArtifactName(t *testing.T) {
	m := model.DefaultManifest()
	m.Workflow.ArtifactName = "GAME-APK"
	m.Workflow.StampedArtifact = true

	now := fixedTime(t)
	plan, err := gradle.BuildPlan(m, now)
	gt.NoError(t, err)

	var workflow string
	for _, a := range plan.Artifacts {
		if a.Path == gradle.PathWorkflow {
			workflow = a.Content
		}
	}
	gt.True(t, strings.Contains(workflow, "name: GAME-APK-1748779200"))
}

func TestBuildPlan_DeterministicForFixedTimestamp(t *testing.T) {
	m := model.DefaultManifest()
	now := fixedTime(t)

	first, err := gradle.BuildPlan(m, now)
	gt.NoError(t, err)
	second, err := gradle.BuildPlan(m, now)
	gt.NoError(t, err)

	gt.Number(t, len(first.Artifacts)).Equal(len(second.Artifacts))
	for i := range first.Artifacts {
		gt.Value(t, second.Artifacts[i]).Equal(first.Artifacts[i])
	}
}

func TestBuildPlan_InvalidManifest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *model.Manifest)
	}{
		{
			name:   "unknown style",
			mutate: func(m *model.Manifest) { m.Project.Style = "futuristic" },
		},
		{
			name:   "empty project name",
			mutate: func(m *model.Manifest) { m.Project.Name = "" },
		},
		{
			name:   "empty application id",
			mutate: func(m *model.Manifest) { m.Android.ApplicationID = "" },
		},
		{
			name:   "non-positive SDK level",
			mutate: func(m *model.Manifest) { m.Android.MinSDK = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.DefaultManifest()
			tt.mutate(m)

			_, err := gradle.BuildPlan(m, fixedTime(t))
			gt.Error(t, err)
		})
	}
}
