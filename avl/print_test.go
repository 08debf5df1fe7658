package avl_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/avlkit/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	tr := avl.New(avl.WithKeys(10, 20, 30, 40, 50, 25))
	var buf bytes.Buffer
	require.NoError(t, tr.Fprint(&buf))

	want := "" +
		"              /------+ 50 h=1 b=+0\n" +
		"       /------+ 40 h=2 b=-1\n" +
		"|------+ 30 h=3 b=+0\n" +
		"       |      /------+ 25 h=1 b=+0\n" +
		"       \\------+ 20 h=2 b=+0\n" +
		"              \\------+ 10 h=1 b=+0\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, avl.New[int]().Fprint(&buf))
	assert.Empty(t, buf.String())
}

type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errWrite
}

func TestFprintStopsOnWriteError(t *testing.T) {
	w := &failWriter{}
	err := avl.New(avl.WithKeys(1, 2, 3)).Fprint(w)
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, 1, w.n)
}
