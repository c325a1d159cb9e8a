package weekly

import "github.com/jdziat/simple-days-schedules/pkg/core"

// RenderOptions holds configuration for rendering a schedule as text.
type RenderOptions struct {
	Table     core.Table
	Separator string
}

// NewRenderOptions creates RenderOptions with the given default table.
func NewRenderOptions(table core.Table) *RenderOptions {
	return &RenderOptions{
		Table:     table,
		Separator: ", ",
	}
}

// Option modifies RenderOptions.
type Option interface {
	Apply(*RenderOptions)
}

type optionFunc func(*RenderOptions)

func (f optionFunc) Apply(o *RenderOptions) { f(o) }

// WithTable renders weekdays using the given table.
func WithTable(t core.Table) Option {
	return optionFunc(func(o *RenderOptions) {
		o.Table = t
	})
}

// WithSeparator sets the separator used by Words.
func WithSeparator(sep string) Option {
	return optionFunc(func(o *RenderOptions) {
		o.Separator = sep
	})
}

func applyOptions(table core.Table, opts []Option) *RenderOptions {
	o := NewRenderOptions(table)
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
	return o
}
