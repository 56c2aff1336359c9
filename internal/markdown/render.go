// Package markdown renders documentation records into markdown pages.
package markdown

import (
	"io"
	"log"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/dox2md/internal/apidoc"
	"go.abhg.dev/dox2md/internal/dox"
	"go.abhg.dev/dox2md/internal/symbol"
)

// Placeholder text for empty sections.
const (
	NoOptions       = "_This widget hasn't any option._"
	NoMethods       = "_This class hasn't any method._"
	NoStaticMethods = "_This class hasn't any static method._"
)

// Renderer renders records from an index into markdown.
type Renderer struct {
	// ReleasesURL is the base URL for versions named in @since tags.
	// Defaults to DefaultReleasesURL.
	ReleasesURL string

	// WikiLinks drops the ".md" extension from links to other pages.
	WikiLinks bool

	// DebugLog receives messages about type names that didn't resolve.
	// Optional.
	DebugLog *log.Logger
}

// Render writes the page for rec to w.
// Type names are resolved against idx.
func (r *Renderer) Render(w io.Writer, idx *apidoc.Index, rec *apidoc.Record) error {
	releases := r.ReleasesURL
	if releases == "" {
		releases = DefaultReleasesURL
	}

	p := page{
		formatter: formatter{
			linker: &Linker{
				Index:     idx,
				WikiLinks: r.WikiLinks,
				DebugLog:  r.DebugLog,
			},
			releasesURL: releases,
		},
		rec: rec,
	}
	p.render()

	_, err := io.WriteString(w, p.sb.String())
	return errtrace.Wrap(err)
}

// RenderString renders the page for rec into a string.
func (r *Renderer) RenderString(idx *apidoc.Index, rec *apidoc.Record) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, idx, rec); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

type page struct {
	formatter

	rec *apidoc.Record
	sb  strings.Builder
}

func (p *page) render() {
	p.class()
	if p.rec.Symbol.Kind == symbol.Widget {
		p.options()
	}
	// Other kinds don't get a properties section.
	// Existing pages were generated without one.

	p.sb.WriteString("# Methods\n\n")
	for _, b := range p.rec.Methods {
		p.method("**"+b.Ctx.Name+"**", b)
	}
	if len(p.rec.Methods) == 0 {
		p.sb.WriteString(NoMethods + "\n")
	}
	p.sb.WriteString("\n")

	p.sb.WriteString("# Static methods\n\n")
	for _, b := range p.rec.StaticMethods {
		p.method(b.Ctx.Receiver+".**"+b.Ctx.Name+"**", b)
	}
	if len(p.rec.StaticMethods) == 0 {
		p.sb.WriteString(NoStaticMethods + "\n")
	}
}

func (p *page) class() {
	b := p.rec.Class
	if b == nil {
		return
	}

	p.sb.WriteString(b.Description.Full)
	p.sb.WriteString(p.since(b.Tags))
	p.sb.WriteString(p.augments(b.Tags))
	p.sb.WriteString(p.deprecated(b.Tags))
	p.sb.WriteString("\n\n")
}

func (p *page) options() {
	p.sb.WriteString("# Options\n\n")
	if opts, ok := p.rec.Property("options"); ok {
		p.sb.WriteString(opts.Description.Full + "\n")
	} else {
		p.sb.WriteString(NoOptions + "\n")
	}
	p.sb.WriteString("\n")
}

// method writes a single list entry for a method.
// sig is the already-formatted name of the method.
func (p *page) method(sig string, b *dox.Block) {
	p.sb.WriteString("* " + sig + "(" + p.paramsList(b.Tags) + ") : ")
	p.sb.WriteString(strings.TrimSpace(b.Description.Summary))

	if ret := p.returnTypes(b.Tags); ret != "" {
		p.sb.WriteString("\n  Returns: " + ret)
	}
	if dep := p.inlineDeprecated(b.Tags); dep != "" {
		p.sb.WriteString("\n  " + dep)
	}
	p.sb.WriteString(p.paramsDescription(b.Tags))
	p.sb.WriteString("\n")
}
