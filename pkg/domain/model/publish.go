package model

// PublishRequest describes one publish attempt: stage everything under Dir,
// commit with Message, and push Branch to Remote. The three steps are
// best-effort and are not rolled back on failure.
type PublishRequest struct {
	Dir     string // Working tree to operate in
	Message string // Commit message
	Remote  string // Remote name (e.g. "origin")
	Branch  string // Branch to push
	Force   bool   // Use --force on push
}
