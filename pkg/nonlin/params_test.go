package nonlin

import "testing"

func TestParamsInt(t *testing.T) {
	p := Params{
		"plain":   7,
		"wide":    int64(9),
		"narrow":  int32(3),
		"decoded": float64(5),
		"ragged":  5.5,
		"wrong":   "five",
	}

	cases := []struct {
		key  string
		want int
		ok   bool
	}{
		{"plain", 7, true},
		{"wide", 9, true},
		{"narrow", 3, true},
		{"decoded", 5, true},
		{"ragged", 0, false},
		{"wrong", 0, false},
		{"missing", 0, false},
	}
	for _, tc := range cases {
		got, ok := p.Int(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("int(%q)=(%d, %t) want=(%d, %t)", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParamsFloat(t *testing.T) {
	p := Params{
		"plain": 0.02,
		"int":   3,
		"wide":  int64(4),
		"wrong": "tau",
	}

	cases := []struct {
		key  string
		want float64
		ok   bool
	}{
		{"plain", 0.02, true},
		{"int", 3, true},
		{"wide", 4, true},
		{"wrong", 0, false},
		{"missing", 0, false},
	}
	for _, tc := range cases {
		got, ok := p.Float(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("float(%q)=(%f, %t) want=(%f, %t)", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParamsFn(t *testing.T) {
	identity := func(x []float64) []float64 { return x }

	p := Params{
		"typed": StepFunc(identity),
		"bare":  identity,
		"wrong": 12,
	}

	if fn, ok := p.Fn("typed"); !ok || fn == nil {
		t.Fatalf("typed fn missing")
	}
	if fn, ok := p.Fn("bare"); !ok || fn == nil {
		t.Fatalf("bare fn should coerce")
	}
	if _, ok := p.Fn("wrong"); ok {
		t.Fatalf("non-function should miss")
	}
	if _, ok := p.Fn("missing"); ok {
		t.Fatalf("missing key should miss")
	}
}
