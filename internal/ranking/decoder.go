package ranking

import "golang.org/x/net/html"

// Decoder turns entity-encoded source text into display text.
type Decoder interface {
	Decode(s string) string
}

// HTMLDecoder unescapes HTML entities such as "&amp;" and "&#39;".
type HTMLDecoder struct{}

func (HTMLDecoder) Decode(s string) string {
	return html.UnescapeString(s)
}

// DecoderFunc adapts a plain function to Decoder.
type DecoderFunc func(string) string

func (f DecoderFunc) Decode(s string) string {
	return f(s)
}
