package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/seqgen/internal/numgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ numgen.Printer = (*Text)(nil)
var _ numgen.Printer = (*Recorder)(nil)

func TestText_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewText(&buf)

	require.NoError(t, p.Header("Numbers:"))
	require.NoError(t, p.Value(6))
	require.NoError(t, p.Value(-12))
	require.NoError(t, p.Message("done"))

	assert.Equal(t, "Numbers:\n6\n-12\ndone\n", buf.String())
}

func TestText_StyledKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	p := NewStyledText(&buf)

	require.NoError(t, p.Header(numgen.HeaderComposite))
	require.NoError(t, p.Value(42))

	out := buf.String()
	assert.Contains(t, out, numgen.HeaderComposite)
	assert.Contains(t, out, "42")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestText_WriteError(t *testing.T) {
	p := NewText(errWriter{})
	assert.Error(t, p.Header("x"))
	assert.Error(t, p.Value(1))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Value(1))
	require.NoError(t, r.Header("A"))
	require.NoError(t, r.Header("B"))
	require.NoError(t, r.Value(2))
	require.NoError(t, r.Value(3))

	assert.Equal(t, []Block{
		{Values: []int{1}},
		{Header: "A", Values: []int{}},
		{Header: "B", Values: []int{2, 3}},
	}, r.Blocks)

	r.Reset()
	assert.Empty(t, r.Blocks)
}

func TestRecorder_CapturesGeneratorDisplay(t *testing.T) {
	base := numgen.NewBaseGenerator()
	_, err := base.Generate(2)
	require.NoError(t, err)

	r := &Recorder{}
	require.NoError(t, numgen.NewComposite(base, numgen.Decorate(base)).Display(r))
	assert.Equal(t, []Block{
		{Header: numgen.HeaderComposite, Values: []int{}},
		{Header: numgen.HeaderBase, Values: []int{6, 12}},
		{Header: numgen.HeaderDecorated, Values: []int{7, 13, 19, 25, 31}},
	}, r.Blocks)
}
