package mock

import "github.com/fwojciec/tourcopy"

var _ tourcopy.MarkupInspector = (*MarkupInspector)(nil)

// MarkupInspector is a mock implementation of tourcopy.MarkupInspector.
type MarkupInspector struct {
	InspectFn func(markup string) tourcopy.MarkupReport
}

func (i *MarkupInspector) Inspect(markup string) tourcopy.MarkupReport {
	return i.InspectFn(markup)
}
