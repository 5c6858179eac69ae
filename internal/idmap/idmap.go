// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package idmap implements tables which assign sequential ids to tagged
// items and track which pages use which items.
package idmap

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/pdfgen/pdf"
)

// Tag identifies an item in an [IdMap].  A tag either wraps a string or an
// integer; a string tag never equals an integer tag, even if the string
// spells the same number.  The zero Tag is the empty string tag.
type Tag struct {
	s     string
	n     int64
	isInt bool
}

// StringTag returns a tag which wraps s.
func StringTag(s string) Tag {
	return Tag{s: s}
}

// IntTag returns a tag which wraps n.
func IntTag(n int64) Tag {
	return Tag{n: n, isInt: true}
}

func (t Tag) String() string {
	if t.isInt {
		return strconv.FormatInt(t.n, 10)
	}
	return strconv.Quote(t.s)
}

// ErrDuplicateTag is returned when a tag is registered for a second time.
var ErrDuplicateTag = &pdf.Error{Kind: pdf.ValidationError, Msg: "duplicate tag"}

// IdMap is a bidirectional table between tags and ids.  Ids are assigned
// at registration time, starting at 1, and are never reused.
//
// An IdMap is not safe for concurrent use.
type IdMap[T any] struct {
	byTag map[Tag]int
	items []entry[T]

	// usage maps item ids to the set of pages which reference the item
	usage map[int]map[int]struct{}
}

type entry[T any] struct {
	tag  Tag
	item T
}

// New returns an empty IdMap.
func New[T any]() *IdMap[T] {
	return &IdMap[T]{
		byTag: make(map[Tag]int),
		usage: make(map[int]map[int]struct{}),
	}
}

// Register adds a new item and returns its id.
// If the tag is already in use, an error wrapping [ErrDuplicateTag] is
// returned and the table is not modified.
func (m *IdMap[T]) Register(tag Tag, item T) (int, error) {
	if _, exists := m.byTag[tag]; exists {
		return 0, &pdf.Error{Kind: pdf.ValidationError, Op: "Register",
			Msg: fmt.Sprintf("tag %s", tag), Err: ErrDuplicateTag}
	}
	m.items = append(m.items, entry[T]{tag: tag, item: item})
	id := len(m.items)
	m.byTag[tag] = id
	return id, nil
}

// Lookup returns the id and the item registered for the given tag.
func (m *IdMap[T]) Lookup(tag Tag) (int, T, bool) {
	id, ok := m.byTag[tag]
	if !ok {
		var zero T
		return 0, zero, false
	}
	return id, m.items[id-1].item, true
}

// Get returns the item and the tag for the given id.
func (m *IdMap[T]) Get(id int) (T, Tag, bool) {
	if id < 1 || id > len(m.items) {
		var zero T
		return zero, Tag{}, false
	}
	e := m.items[id-1]
	return e.item, e.tag, true
}

// MustGet returns the item for an id which was returned by [IdMap.Register].
// It panics if the id is unknown.
func (m *IdMap[T]) MustGet(id int) T {
	item, _, ok := m.Get(id)
	if !ok {
		panic(fmt.Sprintf("idmap: unknown id %d", id))
	}
	return item
}

// Len returns the number of registered items.
func (m *IdMap[T]) Len() int {
	return len(m.items)
}

// MarkUsed records that the item with the given id is used on a page.
func (m *IdMap[T]) MarkUsed(id, page int) {
	if id < 1 || id > len(m.items) {
		panic(fmt.Sprintf("idmap: unknown id %d", id))
	}
	pages := m.usage[id]
	if pages == nil {
		pages = make(map[int]struct{})
		m.usage[id] = pages
	}
	pages[page] = struct{}{}
}

// Release forgets all usage information for the given page.
func (m *IdMap[T]) Release(page int) {
	for id, pages := range m.usage {
		delete(pages, page)
		if len(pages) == 0 {
			delete(m.usage, id)
		}
	}
}

// IsUsed reports whether the item is used on at least one page.
func (m *IdMap[T]) IsUsed(id int) bool {
	return len(m.usage[id]) > 0
}

// Used returns the ids of all items which are used on at least one page,
// in increasing order.
func (m *IdMap[T]) Used() []int {
	res := make([]int, 0, len(m.usage))
	for id, pages := range m.usage {
		if len(pages) > 0 {
			res = append(res, id)
		}
	}
	slices.Sort(res)
	return res
}

// UsedOn returns the ids of the items used on the given page,
// in increasing order.
func (m *IdMap[T]) UsedOn(page int) []int {
	var res []int
	for id, pages := range m.usage {
		if _, ok := pages[page]; ok {
			res = append(res, id)
		}
	}
	slices.Sort(res)
	return res
}
