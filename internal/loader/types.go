package loader

import "github.com/griffnb/core-openapify/internal/domain"

// Service loads model documents from disk.
type Service struct {
	stripHTML  bool
	extensions map[string]struct{}
	debug      Debugger
}

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

// LoadResult contains the merged model and the files it was read from.
type LoadResult struct {
	Model domain.Model
	Files []string
}

// Option is a functional option for configuring Service
type Option func(*Service)

// noOpDebugger is a no-op debugger
type noOpDebugger struct{}

func (n *noOpDebugger) Printf(format string, v ...interface{}) {}
