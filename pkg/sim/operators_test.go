package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/heath/nengo/pkg/signal"
)

func TestScalarAlpha(t *testing.T) {
	a := ScalarAlpha(0.5)
	assert.False(t, a.IsMatrix())
	assert.Equal(t, 0.5, a.Scalar())
	assert.Nil(t, a.Matrix())
	assert.Equal(t, "Alpha(0.5)", a.String())
}

func TestMatrixAlpha(t *testing.T) {
	w := mat.NewDense(2, 3, nil)
	a := MatrixAlpha(w)
	assert.True(t, a.IsMatrix())
	assert.Same(t, w, a.Matrix())
	assert.Equal(t, 0.0, a.Scalar())
	assert.Equal(t, "Alpha(2x3)", a.String())
}

func TestFilterString(t *testing.T) {
	s, err := signal.New(6)
	require.NoError(t, err)
	v := s.View()
	f := &Filter{Alpha: ScalarAlpha(0.5), OldSig: v, NewSig: v}
	want := "Filter{Alpha(0.5), View(shape=(6), elemstrides=(1), offset=0), View(shape=(6), elemstrides=(1), offset=0)}"
	assert.Equal(t, want, f.String())
}
