package mock

import "github.com/fwojciec/tourcopy"

var _ tourcopy.Converter = (*Converter)(nil)

// Converter is a mock implementation of tourcopy.Converter.
type Converter struct {
	ConvertFn func(markup string) (string, error)
}

func (c *Converter) Convert(markup string) (string, error) {
	return c.ConvertFn(markup)
}
