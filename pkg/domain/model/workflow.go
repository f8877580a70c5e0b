package model

import "time"

// WorkflowRun represents the state of a CI workflow run fetched from GitHub.
type WorkflowRun struct {
	ID         int64     // Workflow run ID
	Name       string    // Workflow name
	HeadBranch string    // Branch the run was triggered on
	HeadSHA    string    // Commit the run was triggered for
	Status     string    // queued, in_progress, completed
	Conclusion string    // success, failure, cancelled, ... (empty until completed)
	HTMLURL    string    // Link to the run page
	CreatedAt  time.Time // Time the run was created
}

// Finished reports whether the run has completed.
func (r *WorkflowRun) Finished() bool {
	return r.Status == "completed"
}

// Succeeded reports whether the run completed successfully.
func (r *WorkflowRun) Succeeded() bool {
	return r.Finished() && r.Conclusion == "success"
}
