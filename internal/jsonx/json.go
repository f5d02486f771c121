//go:build amd64 || arm64

package jsonx // Package jsonx provides a unified interface for converting Go values to and from JSON

import "github.com/bytedance/sonic"

// api matches encoding/json behaviour: sorted map keys and HTML escaping.
var api = sonic.ConfigStd

// Marshal returns the JSON encoding of v using the Sonic encoder
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal parses JSON data into the value pointed to by v using the Sonic decoder
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Valid reports whether data is a valid JSON encoding
func Valid(data []byte) bool {
	return api.Valid(data)
}
