package xdl_test

import (
	"testing"

	"github.com/KimNorgaard/go-xdl"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	src := []byte("// header\nPoint{ x = 1 , /* y */ y = 2 }")

	out, err := xdl.Format(src)
	require.NoError(t, err)
	require.Equal(t, "Point{\n\tx=1\n\ty=2\n}", string(out))

	out, err = xdl.Format(src, xdl.Compact())
	require.NoError(t, err)
	require.Equal(t, "Point{x=1,y=2}", string(out))

	out, err = xdl.Format(src, xdl.JSON(), xdl.Indent("  "))
	require.NoError(t, err)
	require.Equal(t, "{\"_class\":\"Point\",\n  \"x\":1,\n  \"y\":2\n}", string(out))

	out, err = xdl.Format(out)
	require.NoError(t, err)
	require.Equal(t, "Point{\n\tx=1\n\ty=2\n}", string(out), "JSON input is formatted as XDL")
}

func TestFormat_Error(t *testing.T) {
	out, err := xdl.Format([]byte("[1,"))
	require.Nil(t, out)
	require.ErrorIs(t, err, xdl.ErrIncomplete)
}
