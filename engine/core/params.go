package core

import (
	"dario.cat/mergo"
)

// Input carries the parameters handed to an operation.
type Input map[string]any

// AsMap returns the input as a plain map. The copy is shallow, so callers
// can add and remove keys without touching the input itself.
func (i *Input) AsMap() map[string]any {
	if i == nil {
		return nil
	}
	out := make(map[string]any, len(*i))
	for k, v := range *i {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the input so callers can overlay per-item
// values without sharing nested state.
func (i *Input) Clone() (*Input, error) {
	if i == nil {
		return nil, nil
	}
	return DeepCopy(i)
}

// Output carries the result produced by an operation.
type Output map[string]any

// AsMap returns the output as a plain map, shallow-copied like Input.AsMap.
func (o *Output) AsMap() map[string]any {
	if o == nil {
		return nil
	}
	out := make(map[string]any, len(*o))
	for k, v := range *o {
		out[k] = v
	}
	return out
}

// Merge combines two outputs, with the other output's values winning on
// conflict.
func (o *Output) Merge(other Output) (Output, error) {
	base := o.AsMap()
	if base == nil {
		base = make(map[string]any, len(other))
	}
	if err := mergo.Merge(&base, map[string]any(other), mergo.WithOverride); err != nil {
		return nil, err
	}
	return Output(base), nil
}
