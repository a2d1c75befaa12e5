// FILE: lixenwraith/railtie/collections.go
package railtie

import "sort"

// EagerLoader is a module whose code can be loaded fully up front.
type EagerLoader interface {
	EagerLoad() error
}

// EagerLoaderFunc adapts a function to EagerLoader.
type EagerLoaderFunc func() error

// EagerLoad calls f.
func (f EagerLoaderFunc) EagerLoad() error { return f() }

// PrepareFunc is a to-prepare callback, run once before after_initialize hooks.
type PrepareFunc func() error

// List is an ordered append-only collection shared by reference.
type List[T any] struct {
	items []T
}

// Append adds items at the end.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Items returns a copy of the elements in insertion order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Each calls fn for every element in order, stopping at the first error.
func (l *List[T]) Each(fn func(T) error) error {
	for _, item := range l.items {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// DirSet maps a directory to the file extensions watched inside it.
type DirSet struct {
	dirs map[string][]string
}

func newDirSet() *DirSet {
	return &DirSet{dirs: make(map[string][]string)}
}

// Add records extensions for dir. Duplicate extensions are ignored.
func (d *DirSet) Add(dir string, exts ...string) {
	current := d.dirs[dir]
	for _, ext := range exts {
		if !containsString(current, ext) {
			current = append(current, ext)
		}
	}
	d.dirs[dir] = current
}

// Extensions returns the extensions recorded for dir.
func (d *DirSet) Extensions(dir string) []string {
	exts := d.dirs[dir]
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// Dirs returns the watched directories in sorted order.
func (d *DirSet) Dirs() []string {
	dirs := make([]string, 0, len(d.dirs))
	for dir := range d.dirs {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// Len returns the number of directories.
func (d *DirSet) Len() int {
	return len(d.dirs)
}

// ToMap returns a copy of the dir to extensions mapping.
func (d *DirSet) ToMap() map[string][]string {
	out := make(map[string][]string, len(d.dirs))
	for dir := range d.dirs {
		out[dir] = d.Extensions(dir)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
