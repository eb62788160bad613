package pathdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/polyline"
)

func TestYAMLRoundTrip(t *testing.T) {
	p := samplePath(t)
	buf := &bytes.Buffer{}
	require.NoError(t, EncodeYAML(buf, p))
	assert.Contains(t, buf.String(), "kind: quad")
	assert.Contains(t, buf.String(), "segments:")

	got, err := DecodeYAML(buf)
	require.NoError(t, err)
	assert.Equal(t, p.Start, got.Start)
	assert.Equal(t, p.Segments, got.Segments)
	assert.Equal(t, p.Closed, got.Closed)
	assert.Equal(t, p.Frame, got.Frame)
}

func TestDecodeYAML(t *testing.T) {
	const doc = `
start: [10, 20]
thickness: 2
segments:
  - kind: move
    point: [0, 0]
  - kind: quad
    point: [100, 0]
    controls: [[50, -40]]
`
	p, err := DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, polyline.QuadraticBezierKind, p.Segments[1].Kind)
	assert.Equal(t, polyline.Pt(50, -40), p.Segments[1].Controls[0])
	assert.Equal(t, polyline.Pt(110, 20), p.End())
}

func TestDecodeYAMLInvalid(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = DecodeYAML(strings.NewReader(`
segments:
  - kind: line
    point: [1, 0]
`))
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = DecodeYAML(strings.NewReader(`
colour: red
segments:
  - kind: move
    point: [0, 0]
`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDocument)
}
