// Package platformtest provides in-memory window sources with canned native
// descriptions for testing code built on internal/platform.
package platformtest

import (
	"fmt"
	"sync"

	"github.com/mj1618/winlist/internal/platform"
)

// Element is a canned native window record.
type Element struct {
	Text  string // canonical description; empty means the native layer had none
	Panic any    // if set, Describe panics with this value
}

// Describe implements platform.Element.
func (e Element) Describe() (string, bool) {
	if e.Panic != nil {
		panic(e.Panic)
	}
	return e.Text, e.Text != ""
}

// Source is a platform.Source that returns the same elements on every
// snapshot and counts how snapshots are acquired and released.
type Source struct {
	Elements []Element
	Err      error // returned by Snapshot when set

	mu        sync.Mutex
	snapshots int
	releases  int
}

// Described returns a Source with one element per description.
func Described(texts ...string) *Source {
	src := &Source{}
	for _, t := range texts {
		src.Elements = append(src.Elements, Element{Text: t})
	}
	return src
}

// Failing returns a Source whose snapshots always fail with err.
func Failing(err error) *Source {
	return &Source{Err: err}
}

// Snapshot implements platform.Source.
func (s *Source) Snapshot() (platform.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.snapshots++
	elems := make([]Element, len(s.Elements))
	copy(elems, s.Elements)
	return &snapshot{src: s, elems: elems}, nil
}

// Snapshots returns how many snapshots were acquired.
func (s *Source) Snapshots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots
}

// Releases returns how many snapshots were released. A snapshot released
// twice is counted once.
func (s *Source) Releases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releases
}

// Install registers s as the default source and returns a function that
// restores the previous one.
func Install(s platform.Source) func() {
	orig := platform.NewSourceFunc
	platform.NewSourceFunc = func() (platform.Source, error) { return s, nil }
	return func() { platform.NewSourceFunc = orig }
}

type snapshot struct {
	src      *Source
	elems    []Element
	released bool
}

func (s *snapshot) Count() int { return len(s.elems) }

func (s *snapshot) At(i int) platform.Element {
	if s.released {
		panic("platformtest: At called after Release")
	}
	if i < 0 || i >= len(s.elems) {
		panic(fmt.Sprintf("platformtest: element %d out of range [0,%d)", i, len(s.elems)))
	}
	return s.elems[i]
}

func (s *snapshot) Release() {
	if s.released {
		return
	}
	s.released = true
	s.src.mu.Lock()
	s.src.releases++
	s.src.mu.Unlock()
}
