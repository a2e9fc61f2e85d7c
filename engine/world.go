// Package engine runs a game as an ordered list of systems over a world of
// singleton resources. It owns frame timing, deferred commands and per-system
// execution statistics; the game itself lives entirely in the systems.
package engine

import (
	"reflect"
	"sort"
	"unsafe"
)

// World holds the singleton resources shared by all systems.
// Every singleton is stored once per type and keeps a stable address for the
// lifetime of the world, so cached Singleton accessors stay valid.
type World struct {
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// WorldStats describes the current contents of a World.
type WorldStats struct {
	SingletonCount int
	SingletonTypes []string
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// AddSingleton stores value as the singleton of its type.
// If a singleton of that type already exists it is overwritten in place.
func (w *World) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		panic("cannot add a nil singleton")
	}
	if typ.Kind() == reflect.Ptr {
		panic("singletons are stored by value, got pointer " + typ.String())
	}

	if entry, ok := w.singletons[typ]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	w.singletons[typ] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton sets *target to the stored singleton.
// target must be a pointer to a pointer, e.g. **Board.
// It returns false if no singleton of that type exists.
func (w *World) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	entry := w.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	rv.Elem().Set(entry.value)
	return true
}

func (w *World) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return w.singletons[typ]
}

// CollectStats returns a snapshot of the world's singletons.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		SingletonCount: len(w.singletons),
		SingletonTypes: make([]string, 0, len(w.singletons)),
	}

	for typ := range w.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
