package lensmeta

import "context"

// ApplyNormalize runs the Normalizer[T] hook of s on a projected value. Schemas
// without the hook return v unchanged.
func ApplyNormalize[T any](ctx context.Context, v T, s Schema[T]) (T, error) {
	n, ok := any(s).(Normalizer[T])
	if !ok {
		return v, nil
	}
	return n.Normalize(ctx, v)
}

// ApplyRefine runs the Refiner[T] hook of s. It is called after
// ApplyNormalize, so refinements see the normalized value.
func ApplyRefine[T any](ctx context.Context, v T, s Schema[T]) error {
	r, ok := any(s).(Refiner[T])
	if !ok {
		return nil
	}
	return r.Refine(ctx, v)
}
