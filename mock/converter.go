package mock

import "github.com/gurugrv/dashpage"

var _ dashpage.Converter = (*Converter)(nil)

// Converter is a mock implementation of dashpage.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
