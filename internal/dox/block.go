// Package dox defines the comment blocks produced by the dox
// JavaScript documentation parser, and decodes them from its JSON output.
//
// Blocks are read-only once decoded.
package dox

// Block is a single documentation comment
// along with the code it is attached to.
type Block struct {
	// Ctx describes the code following the comment.
	// It is nil for free-standing comments
	// such as file overviews.
	Ctx *Context

	// Tags holds the comment's annotations in source order.
	Tags []Tag

	Description Description
}

// ContextType is the kind of code a comment is attached to.
type ContextType string

// Context types recognized by dox2md.
// dox reports others (e.g. "function", "declaration"),
// which are kept as-is.
const (
	ConstructorContext ContextType = "constructor"
	MethodContext      ContextType = "method"
	PropertyContext    ContextType = "property"
	PrototypeContext   ContextType = "prototype"
)

// Context describes the placement of a comment in the source.
type Context struct {
	Type ContextType
	Name string

	// Receiver is the object a static member is assigned to,
	// or the namespace a constructor is declared in.
	Receiver string

	// Constructor is the name of the owning constructor
	// for members declared on its prototype.
	Constructor string
}

// Description is the free-text portion of a comment.
type Description struct {
	// Summary is the first paragraph.
	Summary string

	// Body is everything after the summary.
	Body string

	// Full is the summary and the body.
	Full string
}

// Private reports whether the block was marked @private.
func (b *Block) Private() bool {
	_, ok := Find[*PrivateTag](b.Tags)
	return ok
}
