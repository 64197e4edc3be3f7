/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import "fmt"

// RowStorage is the persistent per-container cache of a row's (or
// column's) solved SizeRules. It holds one entry per child plus a final
// entry for the container's aggregate rules, and lives as long as the
// container: entries are overwritten on every measurement pass, never
// freed individually.
//
// Two implementations exist: FixedRowStorage for containers whose child
// count is known at construction, DynRowStorage for containers whose
// child set changes.
type RowStorage interface {
	// Rules exposes the stored rules; the last entry is the aggregate.
	Rules() []SizeRules
	// SetLen prepares storage for n entries (children + 1). Fixed
	// storage panics when n differs from its construction size.
	SetLen(n int)
}

// FixedRowStorage is row storage for a fixed number of children.
// Construction with the wrong child count is a programmer error and
// surfaces as a panic at the first solver run.
type FixedRowStorage struct {
	rules []SizeRules
}

// NewFixedRowStorage creates storage for a container with n children.
func NewFixedRowStorage(n int) *FixedRowStorage {
	return &FixedRowStorage{rules: make([]SizeRules, n+1)}
}

// Rules exposes the stored rules.
func (s *FixedRowStorage) Rules() []SizeRules {
	return s.rules
}

// SetLen asserts that n matches the construction size.
func (s *FixedRowStorage) SetLen(n int) {
	if len(s.rules) != n {
		panic(fmt.Sprintf("layout: fixed row storage holds %d entries, solver expects %d",
			len(s.rules), n))
	}
}

// DynRowStorage is row storage for a variable number of children.
type DynRowStorage struct {
	rules []SizeRules
}

// Rules exposes the stored rules.
func (s *DynRowStorage) Rules() []SizeRules {
	return s.rules
}

// SetLen grows or shrinks storage to n entries. Surviving entries keep
// their values; new entries are empty rules.
func (s *DynRowStorage) SetLen(n int) {
	if n <= cap(s.rules) {
		old := len(s.rules)
		s.rules = s.rules[:n]
		for i := old; i < n; i++ {
			s.rules[i] = Empty()
		}
		return
	}
	rules := make([]SizeRules, n)
	copy(rules, s.rules)
	s.rules = rules
}

// GridStorage is the persistent cache of a grid container: column width
// rules and row height rules, each with a final aggregate entry like row
// storage.
type GridStorage interface {
	// WidthRules exposes the column rules (cols + 1 entries).
	WidthRules() []SizeRules
	// HeightRules exposes the row rules (rows + 1 entries).
	HeightRules() []SizeRules
	// SetDims prepares storage for cols columns and rows rows. Fixed
	// storage panics on a dimension mismatch.
	SetDims(cols, rows int)
}

// FixedGridStorage is grid storage for fixed grid dimensions.
type FixedGridStorage struct {
	widths  FixedRowStorage
	heights FixedRowStorage
}

// NewFixedGridStorage creates storage for a cols × rows grid.
func NewFixedGridStorage(cols, rows int) *FixedGridStorage {
	return &FixedGridStorage{
		widths:  FixedRowStorage{rules: make([]SizeRules, cols+1)},
		heights: FixedRowStorage{rules: make([]SizeRules, rows+1)},
	}
}

// WidthRules exposes the column rules.
func (s *FixedGridStorage) WidthRules() []SizeRules {
	return s.widths.Rules()
}

// HeightRules exposes the row rules.
func (s *FixedGridStorage) HeightRules() []SizeRules {
	return s.heights.Rules()
}

// SetDims asserts that the dimensions match the construction sizes.
func (s *FixedGridStorage) SetDims(cols, rows int) {
	s.widths.SetLen(cols + 1)
	s.heights.SetLen(rows + 1)
}

// DynGridStorage is grid storage for variable grid dimensions.
type DynGridStorage struct {
	widths  DynRowStorage
	heights DynRowStorage
}

// WidthRules exposes the column rules.
func (s *DynGridStorage) WidthRules() []SizeRules {
	return s.widths.Rules()
}

// HeightRules exposes the row rules.
func (s *DynGridStorage) HeightRules() []SizeRules {
	return s.heights.Rules()
}

// SetDims grows or shrinks storage to the given dimensions.
func (s *DynGridStorage) SetDims(cols, rows int) {
	s.widths.SetLen(cols + 1)
	s.heights.SetLen(rows + 1)
}
