package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingWriter struct {
	err error
}

func (fw failingWriter) Write(_ []byte) (int, error) {
	return 0, fw.err
}

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.NotNil(t, cw)
	assert.Len(t, cw.Writers, 2)

	msg := "set logged: 3920 J"
	n, err := cw.Write([]byte(msg))
	require.NoError(t, err)
	assert.Equal(t, len(msg)*2, n)
	assert.Equal(t, msg, sb1.String())
	assert.Equal(t, msg, sb2.String())
}

func TestCombinedWriter_Write_Errors(t *testing.T) {
	sb := &strings.Builder{}
	err1 := errors.New("disk full")
	err2 := errors.New("pipe closed")

	cw := NewCombinedWriter(failingWriter{err: err1}, sb, failingWriter{err: err2})
	n, err := cw.Write([]byte("abc"))
	require.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", sb.String())

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, err, err1)
	assert.ErrorIs(t, err, err2)
}
