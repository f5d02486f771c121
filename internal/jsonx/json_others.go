//go:build !amd64 && !arm64

// This file is used when building for architectures Sonic does not support, utilizing the go-json library instead

package jsonx // Package jsonx provides a unified interface for converting Go values to and from JSON

import "github.com/goccy/go-json"

// Marshal returns the JSON encoding of v using go-json
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal parses JSON data into the value pointed to by v using go-json
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Valid reports whether data is a valid JSON encoding
func Valid(data []byte) bool {
	return json.Valid(data)
}
