/*
Package xdl decodes and encodes XDL, a JSON superset meant to be edited by
hand. On top of JSON it accepts unquoted property names, Y and N booleans,
C-style comments, newlines as separators, a root object without braces and
class tags written as ClassName{...}. The same decoder reads plain JSON and
the encoder writes either notation.

Decoded documents are held in a Value, a small tagged union of null,
booleans, integers, floats, strings, arrays and ordered dictionaries. The
zero Value is None, which stands for "no value" and is what lookups and
failed decodes return.

Decoding and encoding a document:

	v, err := xdl.Decode([]byte(`Point{x=1, y=2} // a tagged object`))
	if err != nil {
		// handle error
	}
	// v.Class() == "Point", v.Get("x") holds Int(1)

	out, _ := xdl.Encode(v, xdl.JSON())
	// out is {"_class":"Point","x":1,"y":2}

The class tag lives under the reserved ClassKey property, so it survives a
trip through JSON and back.

Input that arrives in pieces can be fed to a Parser chunk by chunk, or read
from an io.Reader with a Decoder. An EventParser reports tokens to a
caller supplied Sink without building a tree.

Go values are converted with Marshal and Unmarshal, which go through the
JSON form of the value so that `json` struct tags apply:

	type Service struct {
		Name string `json:"name"`
		Port int    `json:"port"`
	}

	var s Service
	if err := xdl.Unmarshal([]byte("name=\"api\"\nport=8080"), &s); err != nil {
		// handle error
	}

Infinite floats are written as 1e400 and -1e400 and NaN as null. Those
literals read back in XDL but are not valid strict JSON.
*/
package xdl
