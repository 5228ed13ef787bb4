// Package loader reads object model documents and validates them.
package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/griffnb/core-openapify/internal/domain"
)

// LoadPaths reads and merges the models found at paths, then validates the
// result. A directory is walked and every model file in it is merged in
// lexical path order.
func (s *Service) LoadPaths(paths []string) (*LoadResult, error) {
	result := &LoadResult{}

	for _, p := range paths {
		files, err := s.collectFiles(p)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			m, err := s.readFile(file)
			if err != nil {
				return nil, err
			}
			result.Model.Classes = append(result.Model.Classes, m.Classes...)
			result.Model.Enums = append(result.Model.Enums, m.Enums...)
			result.Files = append(result.Files, file)
		}
	}

	if len(result.Files) == 0 {
		return nil, errors.Errorf("no model documents found in %s", strings.Join(paths, ", "))
	}

	if err := domain.Validate(result.Model); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	s.debug.Printf("loader: %d classes and %d enums from %d files",
		len(result.Model.Classes), len(result.Model.Enums), len(result.Files))

	return result, nil
}

// LoadBytes decodes a single YAML or JSON document and validates it.
func (s *Service) LoadBytes(data []byte) (*domain.Model, error) {
	m, err := s.decode(data)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(*m); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	return m, nil
}

func (s *Service) readFile(path string) (*domain.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model %s", path)
	}
	m, err := s.decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse model %s", path)
	}
	s.debug.Printf("loader: read %s", path)
	return m, nil
}

func (s *Service) decode(data []byte) (*domain.Model, error) {
	data, err := quoteLexicalScalars(data)
	if err != nil {
		return nil, err
	}

	var m domain.Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode model document")
	}
	if s.stripHTML {
		stripDocumentation(&m)
	}
	return &m, nil
}

// collectFiles expands path into the model files to read.
func (s *Service) collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access model path %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, f os.FileInfo, wError error) error {
		if wError != nil {
			return errors.Wrapf(wError, "failed to access path %q", p)
		}
		if f.IsDir() {
			if p != path && shouldSkipDir(f) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.shouldSkipFile(p) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// shouldSkipFile checks if a file should be skipped
func (s *Service) shouldSkipFile(path string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(path))]
	return !ok
}

// shouldSkipDir skips hidden directories and generated output.
func shouldSkipDir(f os.FileInfo) bool {
	if f.Name() == "docs" {
		return true
	}
	return len(f.Name()) > 1 && f.Name()[0] == '.'
}
