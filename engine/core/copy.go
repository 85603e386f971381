package core

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// DeepCopy returns a deep copy of v. Input and Output values and their
// pointer forms keep their concrete types instead of devolving into the
// plain maps the deepcopy library returns. Nil maps and nil pointers come
// back as the zero value.
func DeepCopy[T any](v T) (T, error) {
	var zero T
	switch src := any(v).(type) {
	case Input:
		if src == nil {
			return zero, nil
		}
		copied, err := deepCopyMap(src)
		if err != nil {
			return zero, err
		}
		return castCopy[T](Input(copied))
	case *Input:
		if src == nil || *src == nil {
			return zero, nil
		}
		copied, err := deepCopyMap(*src)
		if err != nil {
			return zero, err
		}
		out := Input(copied)
		return castCopy[T](&out)
	case Output:
		if src == nil {
			return zero, nil
		}
		copied, err := deepCopyMap(src)
		if err != nil {
			return zero, err
		}
		return castCopy[T](Output(copied))
	case *Output:
		if src == nil || *src == nil {
			return zero, nil
		}
		copied, err := deepCopyMap(*src)
		if err != nil {
			return zero, err
		}
		out := Output(copied)
		return castCopy[T](&out)
	default:
		return castCopy[T](deepcopy.Copy(v))
	}
}

func deepCopyMap(m map[string]any) (map[string]any, error) {
	copied, ok := deepcopy.Copy(m).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to copy map")
	}
	return copied, nil
}

func castCopy[T any](v any) (T, error) {
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("failed to cast copied value to type %T", zero)
	}
	return out, nil
}
