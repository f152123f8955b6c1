package pattern

// BuildOptions configures substring/trie construction.
type BuildOptions struct {
	// Sort requests arcs sorted by input label within each state, for
	// reproducible iteration order.
	Sort bool
}

// DefaultBuildOptions returns the recommended defaults: sorted arcs.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Sort: true}
}

// Validate reports whether o is well-formed. BuildOptions has no invalid
// states today; the method exists so callers can treat option validation
// uniformly with sample.Options.
func (o BuildOptions) Validate() error {
	return nil
}
