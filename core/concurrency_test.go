// Package core_test verifies that reads and loads can overlap safely.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoplan/dataset"
)

// TestConcurrentReadsDuringLoad runs readers against a graph while it is
// reloaded; every snapshot a reader sees must be internally consistent.
func TestConcurrentReadsDuringLoad(t *testing.T) {
	g := loadGraph(t, pointsText, routesText)

	const readers = 16
	const rounds = 200
	var wg sync.WaitGroup
	errs := make(chan error, readers)

	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for k := 0; k < rounds; k++ {
				s := g.Snapshot()
				for _, r := range s.Routes() {
					if _, err := s.GetPoint(r.End1); err != nil {
						errs <- err
						return
					}
					if _, err := s.GetPoint(r.End2); err != nil {
						errs <- err
						return
					}
				}
			}
		}()
	}

	for k := 0; k < rounds; k++ {
		if k%2 == 0 {
			_ = g.Load(dataset.StringSource("p", pointsText), dataset.StringSource("r", routesText))
		} else {
			g.Clear()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
