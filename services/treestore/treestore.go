// Package treestore holds a small in-memory labelled tree used by the catalog
// managers to work out display order and cascade-delete sets. Rows are loaded
// from the database into a Store, then Children/Remove answer the structural
// questions without further queries.
package treestore

import (
	"errors"
	"sort"
)

var ErrNotFound = errors.New("treestore: node not found")

// Node is one entry in the tree. OrderKey is a sort hint, not a unique key;
// siblings with equal keys keep their insertion order.
type Node[K comparable] struct {
	ID       K
	ParentID K
	OrderKey int

	seq int // insertion sequence, breaks OrderKey ties
}

// Store is a labelled tree rooted at a single node. It is not safe for
// concurrent use; callers build a fresh store per request.
type Store[K comparable] struct {
	root     K
	nodes    map[K]*Node[K]
	children map[K][]K
	nextSeq  int
}

// New creates a store containing only the root node.
func New[K comparable](root K) *Store[K] {
	s := &Store[K]{
		root:     root,
		nodes:    make(map[K]*Node[K]),
		children: make(map[K][]K),
	}
	s.nodes[root] = &Node[K]{ID: root}
	return s
}

// Insert adds a node under parentID. Unknown parents fail with ErrNotFound.
func (s *Store[K]) Insert(id, parentID K, orderKey int) error {
	if _, ok := s.nodes[parentID]; !ok {
		return ErrNotFound
	}
	s.nextSeq++
	s.nodes[id] = &Node[K]{ID: id, ParentID: parentID, OrderKey: orderKey, seq: s.nextSeq}
	s.children[parentID] = append(s.children[parentID], id)
	return nil
}

// Remove deletes the node and its whole subtree, returning every removed id.
// The walk happens before any mutation, so an unknown id removes nothing.
func (s *Store[K]) Remove(id K) ([]K, error) {
	if _, ok := s.nodes[id]; !ok {
		return nil, ErrNotFound
	}
	if id == s.root {
		return nil, ErrNotFound
	}

	var removed []K
	var walk func(K)
	walk = func(n K) {
		removed = append(removed, n)
		for _, child := range s.children[n] {
			walk(child)
		}
	}
	walk(id)

	parent := s.nodes[id].ParentID
	siblings := s.children[parent]
	for i, sib := range siblings {
		if sib == id {
			s.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	for _, n := range removed {
		delete(s.nodes, n)
		delete(s.children, n)
	}
	return removed, nil
}

// Children returns the direct children of id ordered by OrderKey ascending,
// ties resolved by insertion order.
func (s *Store[K]) Children(id K) []Node[K] {
	ids := s.children[id]
	out := make([]Node[K], 0, len(ids))
	for _, child := range ids {
		out = append(out, *s.nodes[child])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderKey != out[j].OrderKey {
			return out[i].OrderKey < out[j].OrderKey
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Reorder assigns a new order key. A key already held by a sibling is fine;
// the tie resolves by insertion order at display time.
func (s *Store[K]) Reorder(id K, newKey int) error {
	node, ok := s.nodes[id]
	if !ok || id == s.root {
		return ErrNotFound
	}
	node.OrderKey = newKey
	return nil
}

// Contains reports whether id is in the store.
func (s *Store[K]) Contains(id K) bool {
	_, ok := s.nodes[id]
	return ok
}
