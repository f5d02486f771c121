package xdl

import (
	"fmt"
	"strings"
)

type options struct {
	pretty   bool
	json     bool
	indent   string
	maxDepth int
}

// Option configures encoding and decoding.
type Option func(*options) error

// Pretty returns an Option that lays the output out over several
// indented lines.
func Pretty() Option {
	return func(o *options) error {
		o.pretty = true
		return nil
	}
}

// Compact returns an Option that writes everything on one line. It
// undoes an earlier Pretty, such as the default of WriteFile.
func Compact() Option {
	return func(o *options) error {
		o.pretty = false
		return nil
	}
}

// JSON returns an Option that selects JSON output: quoted property
// names, true/false booleans and class tags written as a "_class"
// property.
func JSON() Option {
	return func(o *options) error {
		o.json = true
		return nil
	}
}

// Indent returns an Option that sets the string used for one level of
// pretty-printed indentation. The default is a tab.
//
// The indent must consist of spaces and tabs only.
func Indent(s string) Option {
	return func(o *options) error {
		if s == "" || strings.Trim(s, " \t") != "" {
			return fmt.Errorf("xdl: indent must be a non-empty run of spaces and tabs, got %q", s)
		}
		o.indent = s
		return nil
	}
}

// MaxDepth returns an Option that limits container nesting while
// decoding. By default nesting is bounded only by memory.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("xdl: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

func applyOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}
