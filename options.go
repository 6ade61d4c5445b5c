package structmap

import "github.com/viant/structmap/conv"

// Option customizes the default engine configuration.
type Option func(o *conv.Options)

// WithTagName sets the struct tag consulted for member names.
func WithTagName(name string) Option {
	return func(o *conv.Options) {
		o.TagName = name
	}
}

// WithCaseSensitive controls member name matching.
func WithCaseSensitive(flag bool) Option {
	return func(o *conv.Options) {
		o.CaseSensitive = flag
	}
}

// WithIgnoreUnmapped controls whether destination members without a source
// counterpart are skipped; when disabled such members fail the mapping.
func WithIgnoreUnmapped(flag bool) Option {
	return func(o *conv.Options) {
		o.IgnoreUnmapped = flag
	}
}

// WithTimeLayout sets the layout used to parse time values.
func WithTimeLayout(layout string) Option {
	return func(o *conv.Options) {
		o.TimeLayout = layout
	}
}

// WithClonePointerData deep copies data behind pointers instead of sharing it.
func WithClonePointerData(flag bool) Option {
	return func(o *conv.Options) {
		o.ClonePointerData = flag
	}
}

// WithAccessUnexported allows reading and writing unexported members.
func WithAccessUnexported(flag bool) Option {
	return func(o *conv.Options) {
		o.AccessUnexported = flag
	}
}
