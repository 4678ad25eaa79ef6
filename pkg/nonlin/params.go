package nonlin

import "math"

// Params carries the keyword parameters a kind factory is built from.
// Values stay untyped; the accessors coerce the widened numeric forms
// that appear when parameter maps travel through generic decoding.
type Params map[string]any

// Int reads an integer parameter. Whole-valued floats coerce; anything
// else misses.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), true
		}
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// Float reads a floating-point parameter, accepting integer forms.
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Fn reads a step-function parameter, whether it was stored as a
// StepFunc or as the bare function type.
func (p Params) Fn(key string) (StepFunc, bool) {
	switch v := p[key].(type) {
	case StepFunc:
		return v, v != nil
	case func([]float64) []float64:
		return StepFunc(v), v != nil
	}
	return nil, false
}
