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

package pagetree

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"seehuhn.de/go/pdfgen/pdf"
)

// writeTree writes a tree for n pages and returns the file contents
// and the tree.
func writeTree(t *testing.T, n int) ([]byte, *Tree) {
	t.Helper()
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	pages := make([]pdf.Reference, n)
	for i := range pages {
		pages[i] = w.Alloc()
	}
	tree, err := New(w, pages)
	if err != nil {
		t.Fatal(err)
	}
	for i, ref := range pages {
		_, err := w.Put(ref, pdf.Dict{
			"Type":   pdf.Name("Page"),
			"Parent": tree.Parent(i),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	err = tree.Write(w, pdf.Dict{"MediaBox": pdf.Rectangle(0, 0, 595, 842)})
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := w.Put(0, pdf.Dict{"Type": pdf.Name("Catalog"), "Pages": tree.Root()})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(catalog, 0); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes(), tree
}

var objRegexp = regexp.MustCompile(`(?s)(\d+) 0 obj\n(.*?)\nendobj`)

// parse extracts all objects from a file written by writeTree.
func parse(data []byte) map[int]string {
	res := map[int]string{}
	for _, m := range objRegexp.FindAllSubmatch(data, -1) {
		id, _ := strconv.Atoi(string(m[1]))
		res[id] = string(m[2])
	}
	return res
}

var (
	kidsRegexp  = regexp.MustCompile(`/Kids \[([^\]]*)\]`)
	countRegexp = regexp.MustCompile(`/Count (\d+)`)
	refRegexp   = regexp.MustCompile(`(\d+) 0 R`)
)

func TestBalance(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 16 * 16, 16*16 + 1, 1000} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			data, tree := writeTree(t, n)
			objs := parse(data)

			var pageDepths []int
			var walk func(id, depth int) int
			walk = func(id, depth int) int {
				body := objs[id]
				if bytes.Contains([]byte(body), []byte("/Type /Page\n")) {
					pageDepths = append(pageDepths, depth)
					return 1
				}
				kids := refRegexp.FindAllStringSubmatch(kidsRegexp.FindStringSubmatch(body)[1], -1)
				if len(kids) > maxDegree {
					t.Errorf("node %d has %d kids", id, len(kids))
				}
				total := 0
				for _, kid := range kids {
					k, _ := strconv.Atoi(kid[1])
					total += walk(k, depth+1)
				}
				count, _ := strconv.Atoi(countRegexp.FindStringSubmatch(body)[1])
				if count != total {
					t.Errorf("node %d: /Count %d, but %d pages", id, count, total)
				}
				return total
			}
			if got := walk(int(tree.Root()), 0); got != n {
				t.Fatalf("tree has %d pages, want %d", got, n)
			}
			for _, d := range pageDepths {
				if d != tree.Depth() {
					t.Fatalf("page at depth %d, want %d", d, tree.Depth())
				}
			}
		})
	}
}

func TestDepth(t *testing.T) {
	cases := []struct{ pages, depth int }{
		{1, 1}, {16, 1}, {17, 2}, {256, 2}, {257, 3},
	}
	for _, c := range cases {
		_, tree := writeTree(t, c.pages)
		if got := tree.Depth(); got != c.depth {
			t.Errorf("%d pages: depth %d, want %d", c.pages, got, c.depth)
		}
	}
}

func TestInherited(t *testing.T) {
	data, tree := writeTree(t, 20)
	objs := parse(data)
	if root := objs[int(tree.Root())]; !bytes.Contains([]byte(root), []byte("/MediaBox [0 0 595 842]")) {
		t.Errorf("root node lacks /MediaBox:\n%s", root)
	}
	if root := objs[int(tree.Root())]; bytes.Contains([]byte(root), []byte("/Parent")) {
		t.Errorf("root node has a parent:\n%s", root)
	}
}

func TestEmpty(t *testing.T) {
	w, err := pdf.NewWriter(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(w, nil)
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("got %v", err)
	}
}
