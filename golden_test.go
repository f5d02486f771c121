package xdl_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-xdl"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.xdl")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			v, err := xdl.Decode(src)
			if err != nil {
				// Files that are expected to fail keep the error message
				// in their golden file.
				actual = []byte(err.Error())
			} else {
				actual, err = xdl.Encode(v, xdl.Pretty())
				require.NoError(t, err)
			}

			goldenFile := strings.TrimSuffix(file, ".xdl") + ".golden"
			if *update {
				err := os.WriteFile(goldenFile, append(actual, '\n'), 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")
			expected = bytes.TrimSuffix(expected, []byte("\n"))

			require.Equal(t, string(expected), string(actual), "Output does not match golden file.")
		})
	}
}
