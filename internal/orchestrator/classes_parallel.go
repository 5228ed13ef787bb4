package orchestrator

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
	classparser "github.com/griffnb/core-openapify/internal/parser/class"
)

// indexedClass pairs an annotated class with its model position for deterministic ordering.
type indexedClass struct {
	index  int
	target *model.AnnotatedClass
}

// annotateClassesParallel annotates classes concurrently using an errgroup
// bounded by the number of CPUs. Each class owns its target, so no state is
// shared between goroutines apart from the collected results, which are sorted
// back into model order.
func (s *Service) annotateClassesParallel(classes []*domain.Class, names map[string]string) (*model.Document, error) {
	var (
		mu        sync.Mutex
		collected []indexedClass
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, c := range classes {
		if c == nil {
			continue
		}

		i, c := i, c

		g.Go(func() error {
			target := s.annotateClass(c, names)

			mu.Lock()
			collected = append(collected, indexedClass{index: i, target: target})
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	doc := &model.Document{Classes: make([]*model.AnnotatedClass, 0, len(collected))}
	for _, ic := range collected {
		doc.Classes = append(doc.Classes, ic.target)
	}
	return doc, nil
}

// annotateClass builds the class annotation, then the member annotations
// selected by the access type, then records property links.
func (s *Service) annotateClass(c *domain.Class, names map[string]string) *model.AnnotatedClass {
	target := model.NewAnnotatedClass(c.FullName)
	target.DefinitionName = names[c.FullName]

	classparser.Annotate(c, target)
	s.annotateMembers(c, target)
	s.linkProperties(c, target, names)

	return target
}
