package gradle

import "text/template"

// Target paths of the generated artifacts, relative to the base directory.
const (
	PathSettings  = "settings.gradle"
	PathRootBuild = "build.gradle"
	PathAppBuild  = "app/build.gradle"
	PathWorkflow  = ".github/workflows/android.yml"
)

var settingsClassicTmpl = template.Must(template.New("settings-classic").Parse(
	`// Updated: {{ .GeneratedAt }}
rootProject.name = "{{ .Project.Name }}"
include ':app'
`))

var settingsModernTmpl = template.Must(template.New("settings-modern").Parse(
	`// Updated: {{ .GeneratedAt }}
pluginManagement {
    repositories {
        google()
        mavenCentral()
        gradlePluginPortal()
    }
}
dependencyResolutionManagement {
    repositoriesMode.set(RepositoriesMode.FAIL_ON_PROJECT_REPOS)
    repositories {
        google()
        mavenCentral()
    }
}
rootProject.name = "{{ .Project.Name }}"
include ':app'
`))

var rootBuildClassicTmpl = template.Must(template.New("root-build-classic").Parse(
	`// Updated: {{ .GeneratedAt }}
buildscript {
    repositories {
        google()
        mavenCentral()
    }
    dependencies {
        classpath 'com.android.tools.build:gradle:{{ .Android.PluginVersion }}'
    }
}

allprojects {
    repositories {
        google()
        mavenCentral()
    }
}

task clean(type: Delete) {
    delete rootProject.buildDir
}
`))

var rootBuildModernTmpl = template.Must(template.New("root-build-modern").Parse(
	`// Updated: {{ .GeneratedAt }}
plugins {
    id 'com.android.application' version '{{ .Android.PluginVersion }}' apply false
}
`))

var appBuildTmpl = template.Must(template.New("app-build").Parse(
	`{{ if .Modern }}plugins {
    id 'com.android.application'
}{{ else }}apply plugin: 'com.android.application'{{ end }}

android {
    namespace '{{ .Android.Namespace }}'
    compileSdk {{ .Android.CompileSDK }}

    defaultConfig {
        applicationId "{{ .Android.ApplicationID }}"
        minSdk {{ .Android.MinSDK }}
        targetSdk {{ .Android.TargetSDK }}
        versionCode {{ .Android.VersionCode }}
        versionName "{{ .Android.VersionName }}"
{{- if .Android.NDKEnabled }}

        externalNativeBuild {
            cmake {
                cppFlags "-std={{ .Android.CppStandard }}"
            }
        }
{{- end }}
    }
{{- if .Android.NDKEnabled }}

    externalNativeBuild {
        cmake {
            path "{{ .Android.CMakePath }}"
        }
    }

    ndkVersion "{{ .Android.NDKVersion }}"
{{- end }}
}
{{- if .Android.Dependencies }}

dependencies {
{{- range .Android.Dependencies }}
    implementation '{{ . }}'
{{- end }}
}
{{- end }}
`))

var workflowTmpl = template.Must(template.New("workflow").Parse(
	`name: {{ .Workflow.Name }}
on: [push, workflow_dispatch]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@{{ .Workflow.CheckoutVersion }}

      - name: Setup JDK {{ .Workflow.JavaVersion }}
        uses: actions/setup-java@{{ .Workflow.JavaSetup }}
        with:
          java-version: '{{ .Workflow.JavaVersion }}'
          distribution: 'temurin'

      - name: Setup Gradle {{ .Workflow.GradleVersion }}
        uses: gradle/actions/setup-gradle@{{ .Workflow.GradleSetup }}
        with:
          gradle-version: '{{ .Workflow.GradleVersion }}'

      - name: Setup Android SDK
        uses: android-actions/setup-android@{{ .Workflow.AndroidSetup }}

      - name: Build APK
        run: gradle assembleDebug --no-daemon --stacktrace

      - name: Upload APK
        if: success()
        uses: actions/upload-artifact@{{ .Workflow.UploadVersion }}
        with:
          name: {{ .ArtifactName }}
          path: app/build/outputs/apk/debug/app-debug.apk
`))
