package apidoc

import "go.abhg.dev/dox2md/internal/dox"

// Category is where a block goes in its symbol's record.
type Category int

const (
	// Skip marks blocks that don't belong to any record.
	Skip Category = iota

	// Overview is the free-standing comment at the top of a file.
	Overview

	// Class is the comment on a constructor.
	Class

	Method
	StaticMethod
	Property
	StaticProperty
	Prototype
)

func (c Category) String() string {
	switch c {
	case Skip:
		return "skip"
	case Overview:
		return "overview"
	case Class:
		return "class"
	case Method:
		return "method"
	case StaticMethod:
		return "static method"
	case Property:
		return "property"
	case StaticProperty:
		return "static property"
	case Prototype:
		return "prototype"
	default:
		return "unknown"
	}
}

// Placement is the result of classifying a block.
type Placement struct {
	Category Category

	// Symbol owning the block.
	// For Class, this is the class itself.
	// Empty for Skip and Overview.
	Symbol string
}

// Classify decides where a block belongs.
// pos is the index of the block in the file.
//
// Blocks that can't be attributed to a symbol,
// private blocks, and members of an unsupported kind
// are placed in Skip.
func Classify(pos int, b *dox.Block) Placement {
	ctx := b.Ctx
	if ctx == nil {
		if pos == 0 {
			return Placement{Category: Overview}
		}
		return Placement{Category: Skip}
	}

	if ctx.Type == dox.ConstructorContext {
		name := ctx.Name
		if ctx.Receiver != "" {
			name = ctx.Receiver + "." + ctx.Name
		}
		return Placement{Category: Class, Symbol: name}
	}

	var (
		parent string
		static bool
	)
	switch {
	case ctx.Constructor != "":
		parent = ctx.Constructor
	case ctx.Receiver != "":
		parent = ctx.Receiver
		static = ctx.Type != dox.PrototypeContext
	default:
		return Placement{Category: Skip}
	}

	if b.Private() {
		return Placement{Category: Skip}
	}

	var cat Category
	switch ctx.Type {
	case dox.MethodContext:
		cat = Method
		if static {
			cat = StaticMethod
		}
	case dox.PropertyContext:
		cat = Property
		if static {
			cat = StaticProperty
		}
	case dox.PrototypeContext:
		cat = Prototype
	default:
		return Placement{Category: Skip}
	}

	return Placement{Category: cat, Symbol: parent}
}
