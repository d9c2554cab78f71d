package graph

/*
	This package exposes utilities for working with graph structures.

	The solver and its clients only describe graphs through accessor
	functions. This package turns such an accessor into a Graph value with
	cached edge lookups, and provides the standard algorithms (SCC
	decomposition, BFS) on top of it.
*/

import (
	"github.com/fixpoint-dk/absint/utils"
	"github.com/fixpoint-dk/absint/utils/hmap"
)

// Mapper is the key-value store a graph uses for caching and bookkeeping,
// abstracted so that non-comparable node types can supply their own.
type Mapper[K any] interface {
	Get(key K) (any, bool)
	Set(key K, value any)
}

type mapFactory[K any] func() Mapper[K]
type edgesOf[T any] func(node T) []T

type Graph[T any] struct {
	mapFactory  mapFactory[T]
	edgesOf     edgesOf[T]
	cachedEdges Mapper[T]
}

func (G Graph[T]) Edges(node T) []T {
	if cached, found := G.cachedEdges.Get(node); found {
		return cached.([]T)
	}

	es := G.edgesOf(node)
	G.cachedEdges.Set(node, es)
	return es
}

// Mapper creates a fresh bookkeeping map for the graph's node type.
func (G Graph[T]) Mapper() Mapper[T] {
	return G.mapFactory()
}

func Of[T any](mapFactory mapFactory[T], edgesOf edgesOf[T]) Graph[T] {
	return Graph[T]{
		mapFactory,
		edgesOf,
		mapFactory(),
	}
}

// Mapper implementation using Go's builtin maps
type mapMapper[K comparable] map[K]any

func (m mapMapper[K]) Get(key K) (any, bool) {
	value, ok := m[key]
	return value, ok
}

func (m mapMapper[K]) Set(key K, value any) {
	m[key] = value
}

func OfHashable[K comparable](edgesOf edgesOf[K]) Graph[K] {
	return Of(func() Mapper[K] { return mapMapper[K]{} }, edgesOf)
}

// Mapper implementation over hmap for node types with custom hashing.
type hmapMapper[K any] struct {
	mp *hmap.Map[K, any]
}

func (m hmapMapper[K]) Get(key K) (any, bool) {
	return m.mp.GetOk(key)
}

func (m hmapMapper[K]) Set(key K, value any) {
	m.mp.Set(key, value)
}

// OfHashed constructs a graph over nodes identified through the provided
// hasher instead of Go's builtin equality.
func OfHashed[K any](hasher utils.Hasher[K], edgesOf edgesOf[K]) Graph[K] {
	return Of(func() Mapper[K] {
		return hmapMapper[K]{hmap.NewMap[any](hasher)}
	}, edgesOf)
}
