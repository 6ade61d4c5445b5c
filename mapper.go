// Package structmap provides convenience mapping operations layered on an
// object mapping engine. Each operation adapts a single engine call with a
// small amount of pre or post processing: defaulting, predicates, partial
// population, collection shaping, or direct field surgery.
package structmap

import (
	"github.com/viant/structmap/conv"
)

// Engine populates dest with a best effort mapping of src. Implementations
// signal failure with an error when a value cannot be converted or required
// configuration is missing.
type Engine interface {
	Map(dest, src interface{}) error
}

// Service is a mapping handle; all package operations delegate to its engine.
type Service struct {
	engine  Engine
	options conv.Options
	// derivable engines can be rebuilt with altered configuration
	derivable bool
}

// New creates a service over the default reflection engine.
func New(opts ...Option) *Service {
	options := conv.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Service{engine: &convEngine{converter: conv.New(options)}, options: options, derivable: true}
}

// NewWith creates a service over a caller supplied engine.
func NewWith(engine Engine) *Service {
	return &Service{engine: engine}
}

// Map populates dest with src using the configured engine.
func (s *Service) Map(dest, src interface{}) error {
	return s.engine.Map(dest, src)
}

// Engine returns the underlying engine.
func (s *Service) Engine() Engine {
	return s.engine
}

// restricted builds a one off engine limited to destination members accepted
// by the filter. Each call constructs a fresh configuration; nothing is
// cached. Returns nil when the engine configuration cannot be derived.
func (s *Service) restricted(filter func(name string) bool) Engine {
	if !s.derivable {
		return nil
	}
	options := s.options
	options.FieldFilter = filter
	return &convEngine{converter: conv.New(options)}
}

// cloning returns an engine that deep copies pointer data.
func (s *Service) cloning() Engine {
	if !s.derivable || s.options.ClonePointerData {
		return s.engine
	}
	options := s.options
	options.ClonePointerData = true
	return &convEngine{converter: conv.New(options)}
}

type convEngine struct {
	converter *conv.Converter
}

func (e *convEngine) Map(dest, src interface{}) error {
	return e.converter.Convert(src, dest)
}
