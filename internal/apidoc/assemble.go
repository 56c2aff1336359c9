// Package apidoc gathers the comment blocks of a JavaScript file
// into documentation records, one per documented symbol.
package apidoc

import (
	"log"

	"go.abhg.dev/dox2md/internal/dox"
	"go.abhg.dev/dox2md/internal/symbol"
)

// Record holds the documentation collected for a single symbol.
//
// Member lists are in the order the blocks appeared in the input.
type Record struct {
	Symbol symbol.Name

	// Class is the comment on the symbol's constructor.
	// It's nil if the symbol only appeared as the owner of members.
	Class *dox.Block

	Methods          []*dox.Block
	StaticMethods    []*dox.Block
	Properties       []*dox.Block
	StaticProperties []*dox.Block

	// Prototypes holds comments on prototype assignments.
	// These are collected but not rendered.
	Prototypes []*dox.Block
}

// Property returns the first instance property with the given name.
func (r *Record) Property(name string) (*dox.Block, bool) {
	for _, b := range r.Properties {
		if b.Ctx != nil && b.Ctx.Name == name {
			return b, true
		}
	}
	return nil, false
}

// Assembler builds an [Index] from a sequence of comment blocks.
type Assembler struct {
	Namespaces symbol.Namespaces

	// DebugLog receives a message for every block that was skipped.
	// Optional.
	DebugLog *log.Logger
}

// Assemble classifies all blocks in order
// and returns the resulting index.
//
// The returned Index must not be modified.
func (a *Assembler) Assemble(blocks []*dox.Block) *Index {
	idx := Index{
		ns:      a.Namespaces,
		records: make(map[string]*Record),
	}

	for pos, b := range blocks {
		p := Classify(pos, b)
		switch p.Category {
		case Skip:
			a.debugf("skipping block %d: %v", pos, describe(b))
			continue

		case Overview:
			idx.Overview = b
			continue

		case Class:
			if rec, ok := idx.records[p.Symbol]; ok {
				// Duplicate declaration.
				// Keep what we've collected so far.
				rec.Class = b
			} else {
				idx.put(p.Symbol).Class = b
			}
			continue
		}

		rec := idx.records[p.Symbol]
		if rec == nil {
			rec = idx.put(p.Symbol)
		}

		switch p.Category {
		case Method:
			rec.Methods = append(rec.Methods, b)
		case StaticMethod:
			rec.StaticMethods = append(rec.StaticMethods, b)
		case Property:
			rec.Properties = append(rec.Properties, b)
		case StaticProperty:
			rec.StaticProperties = append(rec.StaticProperties, b)
		case Prototype:
			rec.Prototypes = append(rec.Prototypes, b)
		}
	}

	return &idx
}

func (a *Assembler) debugf(format string, args ...any) {
	if a.DebugLog != nil {
		a.DebugLog.Printf(format, args...)
	}
}

func describe(b *dox.Block) string {
	if b.Ctx == nil {
		return "no context"
	}
	c := b.Ctx
	switch {
	case b.Private():
		return string(c.Type) + " " + c.Name + " is private"
	case c.Constructor == "" && c.Receiver == "":
		return string(c.Type) + " " + c.Name + " has no owner"
	default:
		return "unsupported " + string(c.Type) + " " + c.Name
	}
}
