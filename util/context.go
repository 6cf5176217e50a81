package util

import "context"

type ContextKey string

// LoadFromContextOK loads the value of key from context; it fails when the
// value is not found or has the wrong type.
func LoadFromContextOK[T any](ctx context.Context, key ContextKey) (v T, _ error) {
	i := ctx.Value(key)
	if i == nil {
		return v, ErrNotFound.Errorf("%q not found in context", key)
	}

	v, ok := i.(T)
	if !ok {
		return v, ErrWrongType.Errorf("%q, expected %T, but %T", key, v, i)
	}

	return v, nil
}
