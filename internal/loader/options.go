package loader

import "strings"

var defaultExtensions = []string{".yaml", ".yml", ".json"}

// NewService creates a new loader service with optional configuration
func NewService(options ...Option) *Service {
	s := &Service{
		stripHTML:  false,
		extensions: make(map[string]struct{}, len(defaultExtensions)),
		debug:      &noOpDebugger{},
	}
	for _, ext := range defaultExtensions {
		s.extensions[ext] = struct{}{}
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithStripHTML sets whether documentation is reduced to plain text
func WithStripHTML(strip bool) Option {
	return func(s *Service) {
		s.stripHTML = strip
	}
}

// WithExtensions sets the file extensions read when loading a directory
func WithExtensions(exts ...string) Option {
	return func(s *Service) {
		s.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			s.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// WithDebugger sets the debugger for logging
func WithDebugger(debugger Debugger) Option {
	return func(s *Service) {
		if debugger != nil {
			s.debug = debugger
		}
	}
}
