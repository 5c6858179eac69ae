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

// Package pagetree implements balanced PDF page trees.
//
// The object numbers of all tree nodes are allocated when the tree is
// created, so that page objects can refer to their parent node before the
// tree itself is written.
package pagetree

import (
	"seehuhn.de/go/pdfgen/pdf"
)

// maxDegree is the maximal number of children of a node in the page tree.
const maxDegree = 16

// Tree is a page tree for a fixed list of pages.
type Tree struct {
	root    *node
	parents []pdf.Reference // the parent node of every page
	nodes   []*node         // all nodes, root first
}

type node struct {
	ref   pdf.Reference
	kids  []pdf.Reference
	count int

	parent pdf.Reference
}

// ErrNoPages is returned by [New] if the list of pages is empty.
var ErrNoPages = &pdf.Error{Kind: pdf.StateError, Msg: "document has no pages"}

// New allocates the nodes of a page tree for the given page objects.
// All leaves of the tree are at the same depth, and every node has at
// most 16 children.
func New(w *pdf.Writer, pages []pdf.Reference) (*Tree, error) {
	if len(pages) == 0 {
		return nil, &pdf.Error{Kind: pdf.StateError, Op: "pagetree.New", Err: ErrNoPages}
	}

	t := &Tree{
		parents: make([]pdf.Reference, len(pages)),
	}

	// The lowest level of nodes has the pages as children.
	var level []*node
	for start := 0; start < len(pages); start += maxDegree {
		end := min(start+maxDegree, len(pages))
		n := &node{
			ref:   w.Alloc(),
			kids:  pages[start:end:end],
			count: end - start,
		}
		for i := start; i < end; i++ {
			t.parents[i] = n.ref
		}
		level = append(level, n)
	}
	all := [][]*node{level}

	for len(level) > 1 {
		var next []*node
		for start := 0; start < len(level); start += maxDegree {
			end := min(start+maxDegree, len(level))
			n := &node{ref: w.Alloc()}
			for _, kid := range level[start:end] {
				kid.parent = n.ref
				n.kids = append(n.kids, kid.ref)
				n.count += kid.count
			}
			next = append(next, n)
		}
		all = append(all, next)
		level = next
	}
	t.root = level[0]

	for i := len(all) - 1; i >= 0; i-- {
		t.nodes = append(t.nodes, all[i]...)
	}
	return t, nil
}

// Root returns the reference of the root node.
func (t *Tree) Root() pdf.Reference {
	return t.root.ref
}

// Parent returns the reference of the node which holds page i.
func (t *Tree) Parent(i int) pdf.Reference {
	return t.parents[i]
}

// Depth returns the number of levels of /Pages nodes.
func (t *Tree) Depth() int {
	depth := 1
	for n := len(t.parents); n > maxDegree; n = (n + maxDegree - 1) / maxDegree {
		depth++
	}
	return depth
}

// Write writes all nodes of the tree, starting with the root node.
// The entries of inherit, for example /MediaBox or /Resources, are
// added to the root node, where all pages inherit them.
func (t *Tree) Write(w *pdf.Writer, inherit pdf.Dict) error {
	for _, n := range t.nodes {
		kids := make(pdf.Array, len(n.kids))
		for i, kid := range n.kids {
			kids[i] = kid
		}
		dict := pdf.Dict{
			"Type":  pdf.Name("Pages"),
			"Kids":  kids,
			"Count": pdf.Integer(n.count),
		}
		if n == t.root {
			for key, val := range inherit {
				dict[key] = val
			}
		} else {
			dict["Parent"] = n.parent
		}
		if _, err := w.Put(n.ref, dict); err != nil {
			return err
		}
	}
	return nil
}
