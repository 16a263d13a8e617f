// Package graph provides the in-memory node and arc sets the built-in
// commands operate on.
package graph

import (
	"sort"

	"github.com/aretw0/gsh/pkg/domain"
)

// Arc is a directed edge between two node IDs.
type Arc struct {
	Tail uint32
	Head uint32
}

// Store holds a node set and an arc set. It is not safe for
// concurrent use; the shell runs commands one at a time.
type Store struct {
	nodes map[uint32]struct{}
	arcs  map[Arc]struct{}
}

// New creates an empty store.
func New() *Store {
	return &Store{
		nodes: make(map[uint32]struct{}),
		arcs:  make(map[Arc]struct{}),
	}
}

// AddNodes inserts every width-1 record of ds as a node and returns
// the number of nodes that were not present before.
func (s *Store) AddNodes(ds domain.Dataset) int {
	added := 0
	for _, rec := range ds {
		for _, id := range rec {
			if _, exists := s.nodes[id]; !exists {
				s.nodes[id] = struct{}{}
				added++
			}
		}
	}
	return added
}

// AddArcs inserts every width-2 record of ds as an arc, implicitly
// adding both endpoints as nodes. Returns the number of new arcs.
func (s *Store) AddArcs(ds domain.Dataset) int {
	added := 0
	for _, rec := range ds {
		if len(rec) != 2 {
			continue
		}
		arc := Arc{Tail: rec[0], Head: rec[1]}
		if _, exists := s.arcs[arc]; !exists {
			s.arcs[arc] = struct{}{}
			added++
		}
		s.nodes[arc.Tail] = struct{}{}
		s.nodes[arc.Head] = struct{}{}
	}
	return added
}

// NodeCount returns the number of nodes in the store.
func (s *Store) NodeCount() int { return len(s.nodes) }

// ArcCount returns the number of arcs in the store.
func (s *Store) ArcCount() int { return len(s.arcs) }

// Nodes returns the node set as width-1 records in ascending order.
func (s *Store) Nodes() domain.Dataset {
	ids := make([]uint32, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ds := make(domain.Dataset, 0, len(ids))
	for _, id := range ids {
		ds = append(ds, domain.Record{id})
	}
	return ds
}

// Arcs returns the arc set as width-2 records, ordered by tail then
// head.
func (s *Store) Arcs() domain.Dataset {
	arcs := make([]Arc, 0, len(s.arcs))
	for a := range s.arcs {
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].Tail != arcs[j].Tail {
			return arcs[i].Tail < arcs[j].Tail
		}
		return arcs[i].Head < arcs[j].Head
	})
	ds := make(domain.Dataset, 0, len(arcs))
	for _, a := range arcs {
		ds = append(ds, domain.Record{a.Tail, a.Head})
	}
	return ds
}
