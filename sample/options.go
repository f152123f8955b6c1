package sample

// Options configures DequeSample's batching strategy. Sample (the
// single-path drawer) takes no options: there is nothing to batch when
// drawing one path at a time.
type Options struct {
	// Deque splits the n draws into BatchSize-sized batches at the start
	// state. When false, all n draws start as a single batch; DequeSample
	// uses its breadth-first queue either way.
	Deque bool
	// BatchSize caps how many draws share a single sorted-threshold scan
	// at the acceptor's start state before DequeSample folds them back
	// together downstream. Ignored unless Deque is set.
	BatchSize int
}

// DefaultOptions returns the options DequeSample uses when none are
// supplied explicitly: deque batching on, with a moderate batch size.
func DefaultOptions() Options {
	return Options{Deque: true, BatchSize: 256}
}

func (o Options) Validate() error {
	if o.Deque && o.BatchSize <= 0 {
		return &PreconditionError{Message: "deque sampling requires BatchSize > 0"}
	}
	return nil
}
