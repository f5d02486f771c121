// Package testutil holds documents shared by tests and benchmarks
// across packages.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
)

// TestdataFS holds the embedded test documents.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData returns the content of an embedded test document.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("read test data %q: %w", name, err)
	}
	return data, nil
}

// LargeDocument returns the benchmark document, a tagged scene with a
// few hundred nested objects and a long numeric array.
func LargeDocument() []byte {
	data, err := ReadTestData("large.xdl")
	if err != nil {
		panic(err)
	}
	return data
}
