package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	xdl "github.com/KimNorgaard/go-xdl"
	"github.com/KimNorgaard/go-xdl/internal/log"
	"golang.org/x/sync/errgroup"
)

// app carries what every command needs. Commands receive it through
// kong's Run bindings.
type app struct {
	logger *log.Logger
	jobs   int

	mu     sync.Mutex // guards stdout
	stdout io.Writer
}

func newApp(logger *log.Logger, jobs int, stdout io.Writer) *app {
	if jobs < 1 {
		jobs = 1
	}
	return &app{logger: logger, jobs: jobs, stdout: stdout}
}

func (a *app) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.stdout, format, args...)
}

// forEach runs fn on every file with at most a.jobs running at once.
// A failing file does not stop the others; the returned error counts
// the failures.
func (a *app) forEach(files []string, fn func(i int, path string) error) error {
	var eg errgroup.Group
	eg.SetLimit(a.jobs)

	var failed atomic.Int64
	for i, path := range files {
		eg.Go(func() error {
			a.logger.Debugf("processing %s", path)
			if err := fn(i, path); err != nil {
				a.logger.Errorf("%v", err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = eg.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(files))
	}
	return nil
}

// isJSON reports whether path names a JSON file, ignoring a .zst suffix.
func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(strings.TrimSuffix(path, ".zst")), ".json")
}

// CheckCmd decodes files and reports the ones that fail.
type CheckCmd struct {
	Files []string `kong:"arg,type='path',help='Files to check.'"`
}

func (c *CheckCmd) Run(a *app) error {
	err := a.forEach(c.Files, func(_ int, path string) error {
		if _, err := xdl.ReadFile(path); err != nil {
			a.printf("%v\n", err)
			return err
		}
		return nil
	})
	if err == nil {
		a.logger.Infof("%d files ok", len(c.Files))
	}
	return err
}

// FmtCmd rewrites files in their canonical pretty layout.
type FmtCmd struct {
	Write bool     `kong:"short='w',help='Write the result back to the source file instead of stdout.'"`
	Files []string `kong:"arg,type='path',help='Files to format.'"`
}

func (c *FmtCmd) Run(a *app) error {
	out := make([][]byte, len(c.Files))
	err := a.forEach(c.Files, func(i int, path string) error {
		v, err := xdl.ReadFile(path)
		if err != nil {
			return err
		}
		var opts []xdl.Option
		if isJSON(path) {
			opts = append(opts, xdl.JSON())
		}
		if c.Write {
			if err := xdl.WriteFile(path, v, opts...); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			a.logger.Infof("formatted %s", path)
			return nil
		}
		b, err := xdl.Encode(v, append(opts, xdl.Pretty())...)
		if err != nil {
			return err
		}
		out[i] = append(b, '\n')
		return nil
	})

	// Output keeps argument order regardless of completion order.
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, b := range out {
		if _, werr := a.stdout.Write(b); werr != nil {
			return werr
		}
	}
	return err
}

// ConvertCmd converts files to XDL or JSON next to the source or into
// an output directory.
type ConvertCmd struct {
	To     string   `kong:"default='json',enum='json,xdl',help='Output format (json or xdl).'"`
	Pretty bool     `kong:"short='p',help='Pretty-print the output.'"`
	OutDir string   `kong:"short='o',type='path',help='Directory for converted files. Defaults to the source directory.'"`
	Files  []string `kong:"arg,type='path',help='Files to convert.'"`
}

func (c *ConvertCmd) Run(a *app) error {
	if c.OutDir != "" {
		if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return a.forEach(c.Files, func(_ int, path string) error {
		v, err := xdl.ReadFile(path)
		if err != nil {
			return err
		}
		dst := c.outputPath(path)
		if err := xdl.WriteFile(dst, v, c.options()...); err != nil {
			return fmt.Errorf("%s: %w", dst, err)
		}
		a.logger.Infof("converted %s -> %s", path, dst)
		return nil
	})
}

func (c *ConvertCmd) options() []xdl.Option {
	opts := []xdl.Option{xdl.Compact()}
	if c.Pretty {
		opts = append(opts, xdl.Pretty())
	}
	if c.To == "json" {
		opts = append(opts, xdl.JSON())
	}
	return opts
}

// outputPath swaps the extension of src for the target format. A .zst
// suffix is kept so compressed input gives compressed output.
func (c *ConvertCmd) outputPath(src string) string {
	base, zst := strings.CutSuffix(filepath.Base(src), ".zst")
	base = strings.TrimSuffix(base, filepath.Ext(base)) + "." + c.To
	if zst {
		base += ".zst"
	}
	dir := c.OutDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base)
}

