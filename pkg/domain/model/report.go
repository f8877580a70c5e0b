package model

import "time"

// RunReport summarizes one apply run for logging and notification.
type RunReport struct {
	RunID     string    `json:"run_id"`
	Style     Style     `json:"style"`
	BaseDir   string    `json:"base_dir"`
	StartedAt time.Time `json:"started_at"`
	Artifacts []string  `json:"artifacts"` // Relative paths written
	Published bool      `json:"published"` // A publish was attempted and fully succeeded
	// PublishError carries the publish failure, if any. Publish failures do
	// not fail the run.
	PublishError string `json:"publish_error,omitempty"`
}
