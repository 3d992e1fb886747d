//go:build !amd64 && !arm64

package hwy

var baselineTarget = Target{
	ID:    BaselineName,
	Level: DispatchScalar,
	Bytes: 16, // Use 16-byte vectors even in scalar mode for consistency
}

func init() {
	// Non-amd64 architectures fall back to scalar mode for now.
	setCurrent(baselineTarget)
}

func detectTargets() []Target {
	return nil
}
