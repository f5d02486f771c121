package xdl

// Format decodes src and returns it in canonical layout: pretty-printed
// unless Compact is given, in XDL unless JSON is given. Comments and the
// original spacing are not preserved.
func Format(src []byte, opts ...Option) ([]byte, error) {
	v, err := Decode(src, opts...)
	if err != nil {
		return nil, err
	}
	return Encode(v, append([]Option{Pretty()}, opts...)...)
}
