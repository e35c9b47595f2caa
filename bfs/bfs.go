package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/geoplan/geo"
)

// ErrNeighbors is returned when a route cannot be followed from a visited point.
var ErrNeighbors = errors.New("bfs: route iteration error")

// queueItem pairs a point id with its BFS depth.
type queueItem struct {
	id    geo.PointID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[geo.PointID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for inconsistent
// routes, or any user-supplied hook error.
func BFS(g Graph, start geo.PointID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start point
	if _, err := g.GetPoint(start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, err)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[geo.PointID]bool),
		res: &Result{
			Order:  []geo.PointID{},
			Depth:  make(map[geo.PointID]int),
			Parent: make(map[geo.PointID]Hop),
		},
	}

	// Seed queue with start point (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records how it was reached,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id geo.PointID, d int, via *Hop) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if via != nil {
		w.res.Parent[id] = *via
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the point in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors follows every incident route in storage order, applies
// filtering and MaxDepth, and enqueues each unseen endpoint.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, r := range w.graph.IncidentRoutes(item.id) {
		if !w.opts.FilterRoute(item.id, r) {
			continue
		}
		nbr, err := r.OtherEndpoint(item.id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNeighbors, err)
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &Hop{From: item.id, Route: r.ID})
		}
	}
	return nil
}
