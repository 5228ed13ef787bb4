// Package orchestrator coordinates loading, registration and annotation of an
// object model. It provides a simple coordinator that delegates to the
// specialized services.
package orchestrator

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/loader"
	"github.com/griffnb/core-openapify/internal/model"
	"github.com/griffnb/core-openapify/internal/parser/field"
	"github.com/griffnb/core-openapify/internal/registry"
)

// Service coordinates the services that turn a model into annotations.
type Service struct {
	loader   *loader.Service
	registry *registry.Service
	fields   *field.Service
	config   *Config
}

// Config holds orchestrator configuration options.
type Config struct {
	// VerboseDescriptions appends restriction bullets to property descriptions.
	VerboseDescriptions bool
	// Parallel annotates classes concurrently.
	Parallel  bool
	StripHTML bool
	// Extensions overrides the model file extensions read from directories.
	Extensions []string
	Debug      Debugger
}

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.Debug == nil {
		config.Debug = noOpDebugger{}
	}

	options := []loader.Option{
		loader.WithStripHTML(config.StripHTML),
		loader.WithDebugger(config.Debug),
	}
	if len(config.Extensions) > 0 {
		options = append(options, loader.WithExtensions(config.Extensions...))
	}
	loaderService := loader.NewService(options...)

	return &Service{
		loader:   loaderService,
		registry: registry.NewService(),
		config:   config,
	}
}

// Parse loads the model documents at paths and annotates them.
func (s *Service) Parse(paths []string) (*model.Document, error) {
	s.config.Debug.Printf("Orchestrator: Step 1 - Loading %d model paths", len(paths))

	result, err := s.loader.LoadPaths(paths)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load model")
	}

	return s.Annotate(&result.Model)
}

// Annotate registers m and builds the annotations of every class in model order.
func (s *Service) Annotate(m *domain.Model) (*model.Document, error) {
	s.config.Debug.Printf("Orchestrator: Step 2 - Registering classes")

	s.registry = registry.NewService()
	s.registry.SetDebugger(s.config.Debug)
	if err := s.registry.Register(m); err != nil {
		return nil, errors.Wrap(err, "failed to register model")
	}
	s.config.Debug.Printf("Orchestrator: Registered %d classes and %d enums", s.registry.Len(), s.registry.Enums())
	s.fields = field.NewService(s.registry, field.Config{
		VerboseDescriptions: s.config.VerboseDescriptions,
	})

	classes := s.registry.Classes()
	names := definitionNames(classes)

	var (
		doc *model.Document
		err error
	)
	if s.config.Parallel {
		s.config.Debug.Printf("Orchestrator: Step 3 - Annotating %d classes (parallel, limit=%d)", len(classes), runtime.NumCPU())
		doc, err = s.annotateClassesParallel(classes, names)
	} else {
		s.config.Debug.Printf("Orchestrator: Step 3 - Annotating %d classes", len(classes))
		doc = &model.Document{Classes: make([]*model.AnnotatedClass, 0, len(classes))}
		for _, c := range classes {
			doc.Classes = append(doc.Classes, s.annotateClass(c, names))
		}
	}
	if err != nil {
		return nil, err
	}

	s.config.Debug.Printf("Orchestrator: Annotated %d classes", len(doc.Classes))
	return doc, nil
}
