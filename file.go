package xdl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// compressedExt marks files that are read and written zstd-compressed.
const compressedExt = ".zst"

// ReadFile reads and decodes the XDL or JSON file at path. Files ending
// in .zst are decompressed first. On any read or parse failure it
// returns None and the error.
func ReadFile(path string, opts ...Option) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return None(), fmt.Errorf("xdl: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, compressedExt) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return None(), fmt.Errorf("xdl: open zstd stream %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	v, err := NewDecoder(r, opts...).Decode()
	if err != nil {
		return None(), fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// WriteFile encodes v and writes it to path, replacing any existing
// file. Output is pretty-printed XDL unless Compact or JSON options say
// otherwise. Files ending in .zst are written zstd-compressed.
func WriteFile(path string, v Value, opts ...Option) error {
	data, err := Encode(v, append([]Option{Pretty()}, opts...)...)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, compressedExt) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("xdl: create zstd encoder: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return fmt.Errorf("xdl: close zstd encoder: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("xdl: %w", err)
	}
	return nil
}

// ReadJSONFile reads and decodes the JSON file at path. The decoder is
// shared with XDL, so it also accepts comments and unquoted names.
func ReadJSONFile(path string) (Value, error) {
	return ReadFile(path)
}

// WriteJSONFile encodes v as JSON and writes it to path.
func WriteJSONFile(path string, v Value, pretty bool) error {
	opts := []Option{JSON(), Compact()}
	if pretty {
		opts = append(opts, Pretty())
	}
	return WriteFile(path, v, opts...)
}
