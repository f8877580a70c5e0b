package model

// Artifact represents a single generated text file. Path is always relative
// to the run's base directory, never to the process working directory.
type Artifact struct {
	Path    string // Relative path (e.g. "app/build.gradle")
	Content string // Full rendered content
}

// Plan is the ordered set of artifacts produced for one run. Artifacts are
// written sequentially in slice order.
type Plan struct {
	Style     Style      // Style the plan was rendered with
	Artifacts []Artifact // Artifacts to materialize
}

// Paths returns the relative paths of all artifacts in plan order.
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Artifacts))
	for _, a := range p.Artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}
