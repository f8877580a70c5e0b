package model

import "github.com/m-mizutani/goerr/v2"

// Style selects which Gradle build-descriptor dialect is generated.
type Style string

const (
	// StyleClassic is the legacy buildscript {} DSL with repositories
	// declared per project.
	StyleClassic Style = "classic"

	// StyleModern is the plugins {} DSL with centralized plugin and
	// dependency resolution management in settings.gradle.
	StyleModern Style = "modern"
)

// Validate checks that the style is a known value.
func (s Style) Validate() error {
	switch s {
	case StyleClassic, StyleModern:
		return nil
	default:
		return goerr.New("unknown style", goerr.V("style", string(s)))
	}
}

// Manifest is the declarative description of the build configuration to
// generate. It is loaded from a TOML file and may be partially overridden
// by CLI flags.
type Manifest struct {
	Project  ProjectConfig  `toml:"project"`
	Android  AndroidConfig  `toml:"android"`
	Workflow WorkflowConfig `toml:"workflow"`
}

// ProjectConfig describes the Gradle project identity.
type ProjectConfig struct {
	Name  string `toml:"name"`  // rootProject.name
	Style Style  `toml:"style"` // classic or modern
}

// AndroidConfig describes the application module.
type AndroidConfig struct {
	ApplicationID string   `toml:"application_id"`
	Namespace     string   `toml:"namespace"`
	CompileSDK    int      `toml:"compile_sdk"`
	MinSDK        int      `toml:"min_sdk"`
	TargetSDK     int      `toml:"target_sdk"`
	VersionCode   int      `toml:"version_code"`
	VersionName   string   `toml:"version_name"`
	PluginVersion string   `toml:"plugin_version"` // com.android.tools.build:gradle
	NDKVersion    string   `toml:"ndk_version"`
	CppStandard   string   `toml:"cpp_standard"` // e.g. "c++20", empty disables NDK blocks
	CMakePath     string   `toml:"cmake_path"`
	Dependencies  []string `toml:"dependencies"` // implementation coordinates
}

// WorkflowConfig describes the GitHub Actions workflow artifact.
type WorkflowConfig struct {
	Name            string `toml:"name"`
	GradleVersion   string `toml:"gradle_version"`
	JavaVersion     string `toml:"java_version"`
	ArtifactName    string `toml:"artifact_name"`
	CheckoutVersion string `toml:"checkout_version"`      // actions/checkout
	JavaSetup       string `toml:"java_setup_version"`    // actions/setup-java
	GradleSetup     string `toml:"gradle_setup_version"`  // gradle/actions/setup-gradle
	AndroidSetup    string `toml:"android_setup_version"` // android-actions/setup-android
	UploadVersion   string `toml:"upload_version"`        // actions/upload-artifact
	StampedArtifact bool   `toml:"stamped_artifact"`      // append run timestamp to artifact name
}

// NDKEnabled reports whether native build blocks should be generated.
func (c *AndroidConfig) NDKEnabled() bool {
	return c.CppStandard != ""
}

// DefaultManifest returns a manifest populated with defaults. Values match
// a plain single-module Android application built on GitHub Actions.
func DefaultManifest() *Manifest {
	return &Manifest{
		Project: ProjectConfig{
			Name:  "app",
			Style: StyleModern,
		},
		Android: AndroidConfig{
			ApplicationID: "com.example.app",
			Namespace:     "com.example.app",
			CompileSDK:    34,
			MinSDK:        24,
			TargetSDK:     34,
			VersionCode:   1,
			VersionName:   "1.0",
			PluginVersion: "8.1.0",
			NDKVersion:    "25.1.8937393",
			CMakePath:     "src/main/cpp/CMakeLists.txt",
		},
		Workflow: WorkflowConfig{
			Name:            "Android Build",
			GradleVersion:   "8.2",
			JavaVersion:     "17",
			ArtifactName:    "app-debug-apk",
			CheckoutVersion: "v4",
			JavaSetup:       "v4",
			GradleSetup:     "v3",
			AndroidSetup:    "v3",
			UploadVersion:   "v4",
		},
	}
}

// Clone returns a deep copy. Used when a base manifest is mutated per
// request.
func (m *Manifest) Clone() *Manifest {
	clone := *m
	clone.Android.Dependencies = append([]string(nil), m.Android.Dependencies...)
	return &clone
}

// Validate checks the manifest for values the templates cannot render.
func (m *Manifest) Validate() error {
	if err := m.Project.Style.Validate(); err != nil {
		return err
	}
	if m.Project.Name == "" {
		return goerr.New("project.name must not be empty")
	}
	if m.Android.ApplicationID == "" {
		return goerr.New("android.application_id must not be empty")
	}
	if m.Android.Namespace == "" {
		return goerr.New("android.namespace must not be empty")
	}
	if m.Android.CompileSDK <= 0 || m.Android.MinSDK <= 0 || m.Android.TargetSDK <= 0 {
		return goerr.New("android SDK levels must be positive",
			goerr.V("compile_sdk", m.Android.CompileSDK),
			goerr.V("min_sdk", m.Android.MinSDK),
			goerr.V("target_sdk", m.Android.TargetSDK),
		)
	}
	return nil
}
