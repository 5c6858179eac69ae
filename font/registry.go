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

package font

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/singleflight"

	"seehuhn.de/go/pdfgen/pdf"
)

// Registry is a collection of fonts, indexed by PostScript name.
//
// A Registry is safe for concurrent use.  Fonts are only ever added to a
// registry, so that a font returned by one of the lookup methods stays
// valid.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Metrics
	byPath map[string]*Metrics

	loads singleflight.Group
	log   *slog.Logger
}

// NewRegistry returns a registry which contains the standard fonts.
// If logger is nil, nothing is logged.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Registry{
		byName: make(map[string]*Metrics),
		byPath: make(map[string]*Metrics),
		log:    logger,
	}
	for _, f := range AllStandard {
		r.byName[string(f)] = f.Metrics()
	}
	return r
}

// Add adds a font to the registry.  Adding a different font with the same
// PostScript name as a registered font is an error.
func (r *Registry) Add(m *Metrics) error {
	if m.PostScriptName == "" {
		return &pdf.Error{Kind: pdf.ValidationError, Op: "AddFont",
			Msg: "missing PostScript name"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if have, ok := r.byName[m.PostScriptName]; ok {
		if have == m {
			return nil
		}
		return &pdf.Error{Kind: pdf.ValidationError, Op: "AddFont",
			Msg: fmt.Sprintf("font %q already registered", m.PostScriptName)}
	}
	r.byName[m.PostScriptName] = m
	r.log.Debug("font registered", "name", m.PostScriptName, "kind", m.Kind)
	return nil
}

// Load reads a font file and adds it to the registry.  If the same file
// is loaded several times, concurrently or not, the file is read only
// once.  If a font with the same PostScript name is already registered,
// the registered font is returned.
func (r *Registry) Load(path string) (*Metrics, error) {
	r.mu.RLock()
	m, ok := r.byPath[path]
	r.mu.RUnlock()
	if ok {
		return m, nil
	}

	v, err, _ := r.loads.Do(path, func() (any, error) {
		m, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		if have, ok := r.byName[m.PostScriptName]; ok {
			m = have
		} else {
			r.byName[m.PostScriptName] = m
			r.log.Debug("font loaded",
				"path", path, "name", m.PostScriptName, "kind", m.Kind)
		}
		r.byPath[path] = m
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Metrics), nil
}

// Lookup returns the font with the given PostScript name.
func (r *Registry) Lookup(name string) (*Metrics, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	return m, ok
}

// Match returns the registered font which best matches q.
// If no font of the requested family is registered, an error wrapping
// [ErrFontNotFound] is returned.
func (r *Registry) Match(q Query) (*Metrics, error) {
	m := Match(r.All(), q)
	if m == nil {
		return nil, &pdf.Error{Kind: pdf.ResourceError, Op: "SelectFont",
			Msg: fmt.Sprintf("no font for family %q", q.Family), Err: ErrFontNotFound}
	}
	return m, nil
}

// All returns all registered fonts, sorted by PostScript name.
func (r *Registry) All() []*Metrics {
	r.mu.RLock()
	res := make([]*Metrics, 0, len(r.byName))
	for _, m := range r.byName {
		res = append(res, m)
	}
	r.mu.RUnlock()

	slices.SortFunc(res, func(a, b *Metrics) int {
		switch {
		case a.PostScriptName < b.PostScriptName:
			return -1
		case a.PostScriptName > b.PostScriptName:
			return 1
		default:
			return 0
		}
	})
	return res
}
