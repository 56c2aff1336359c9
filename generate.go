package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"braces.dev/errtrace"
	"github.com/bmatcuk/doublestar/v4"
	"go.abhg.dev/dox2md/internal/apidoc"
	"go.abhg.dev/dox2md/internal/dox"
	"go.abhg.dev/dox2md/internal/markdown"
	"go.abhg.dev/dox2md/internal/symbol"
)

// Assembler gathers comment blocks into documentation records.
type Assembler interface {
	Assemble([]*dox.Block) *apidoc.Index
}

var _ Assembler = (*apidoc.Assembler)(nil)

// Renderer renders a single record to markdown.
type Renderer interface {
	Render(io.Writer, *apidoc.Index, *apidoc.Record) error
}

var _ Renderer = (*markdown.Renderer)(nil)

// _selfSymbol names records built from comments on "this.foo = ...".
// These never get a page.
const _selfSymbol = "this"

// Page is a single rendered documentation page.
type Page struct {
	// Symbol the page documents.
	Symbol string

	// Path of the page relative to the output directory.
	Path string

	// Text is the markdown contents of the page.
	Text string
}

// Generator turns comment blocks into documentation pages.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger
	Assembler Assembler
	Renderer  Renderer

	// Exclude lists glob patterns for symbols that don't get a page,
	// in addition to "this".
	// '*' matches any run of characters, e.g. "Webos.Internal*".
	Exclude []string
}

// Generate renders pages for all symbols documented in blocks.
// Pages are returned in the order their symbols were first seen.
//
// Nothing is written to disk.
func (g *Generator) Generate(blocks []*dox.Block) ([]*Page, error) {
	idx := g.Assembler.Assemble(blocks)

	for _, pattern := range g.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errtrace.Wrap(fmt.Errorf("bad exclude pattern %q", pattern))
		}
	}

	var pages []*Page
	paths := make(map[string]int) // path => index in pages
	for _, rec := range idx.Records() {
		name := rec.Symbol.Name
		if g.excluded(name) {
			continue
		}

		if rec.Symbol.Kind == symbol.Builtin {
			g.Log.Printf("Skipping %v: documented externally at %v", name, rec.Symbol.Index())
			continue
		}

		var sb strings.Builder
		if err := g.Renderer.Render(&sb, idx, rec); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("render %v: %w", name, err))
		}

		page := &Page{
			Symbol: name,
			Path:   rec.Symbol.Path(),
			Text:   sb.String(),
		}

		// The later symbol wins a shared path.
		if i, ok := paths[page.Path]; ok {
			g.Log.Printf("warning: %v and %v are both written to %q", pages[i].Symbol, name, page.Path)
			pages[i] = page
			continue
		}
		paths[page.Path] = len(pages)
		pages = append(pages, page)
	}

	return pages, nil
}

func (g *Generator) excluded(name string) bool {
	if name == _selfSymbol {
		return true
	}
	for _, pattern := range g.Exclude {
		// Patterns were validated up front.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
