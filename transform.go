package gomold

import "context"

// Transformer converts between a wire value W and a target value T. Decode
// and Encode are inverses of each other for values that round-trip.
// Implementations carry configuration only and may be called from multiple
// goroutines at once.
type Transformer[W, T any] interface {
	Decode(ctx context.Context, wire W) (T, error)
	Encode(ctx context.Context, value T) (W, error)
}
