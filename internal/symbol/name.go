// Package symbol classifies the names of documented symbols
// and decides where their documentation lives.
package symbol

import "strings"

// Kind is the naming class of a symbol.
// Each kind is linked and written differently.
type Kind int

const (
	// Plain is a name in no particular namespace.
	Plain Kind = iota

	// Builtin is one of the ECMAScript global objects.
	// These are documented externally.
	Builtin

	// Library is a name inside the library namespace.
	Library

	// Widget is a name inside the widget namespace.
	Widget
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Builtin:
		return "builtin"
	case Library:
		return "library"
	case Widget:
		return "widget"
	default:
		return "unknown"
	}
}

// BuiltinURL is the external reference that documents built-in types.
const BuiltinURL = "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Global_Objects/"

var _builtins = map[string]struct{}{
	"Object":   {},
	"Function": {},
	"Boolean":  {},
	"Error":    {},
	"Number":   {},
	"Date":     {},
	"String":   {},
	"RegExp":   {},
	"Array":    {},
}

// Output file name prefixes for namespaced symbols.
const (
	LibraryPrefix = "JS library_"
	WidgetPrefix  = "Widget_"
)

// Default namespace prefixes.
const (
	DefaultLibrary = "Webos."
	DefaultWidget  = "$.webos."
)

// Namespaces holds the name prefixes that identify library and widget
// symbols.
//
// The zero value uses DefaultLibrary and DefaultWidget.
type Namespaces struct {
	// Library prefix, including the trailing ".".
	Library string

	// Widget prefix, including the trailing ".".
	Widget string
}

func (ns *Namespaces) library() string {
	if ns == nil || ns.Library == "" {
		return DefaultLibrary
	}
	return ns.Library
}

func (ns *Namespaces) widget() string {
	if ns == nil || ns.Widget == "" {
		return DefaultWidget
	}
	return ns.Widget
}

// Classify determines the kind of the given name.
func (ns *Namespaces) Classify(name string) Name {
	if _, ok := _builtins[name]; ok {
		return Name{Name: name, Kind: Builtin, Base: name}
	}
	if base, ok := strings.CutPrefix(name, ns.library()); ok {
		return Name{Name: name, Kind: Library, Base: base}
	}
	if base, ok := strings.CutPrefix(name, ns.widget()); ok {
		return Name{Name: name, Kind: Widget, Base: base}
	}
	return Name{Name: name, Kind: Plain, Base: name}
}

// Name is a symbol name together with its naming class.
type Name struct {
	// Name is the full name as written in the source.
	Name string

	Kind Kind

	// Base is the name with the namespace prefix removed.
	Base string
}

func (n Name) String() string { return n.Name }

// Index is the location of the symbol's documentation
// without a file extension.
//
// For builtins, this is an absolute URL.
func (n Name) Index() string {
	switch n.Kind {
	case Builtin:
		return BuiltinURL + n.Name
	case Library:
		return LibraryPrefix + strings.ToLower(n.Base)
	case Widget:
		return WidgetPrefix + strings.ToLower(n.Base)
	default:
		return strings.ToLower(n.Base)
	}
}

// Path is the relative path of the markdown file
// holding this symbol's documentation.
//
// It's empty for builtins, which never get a file.
func (n Name) Path() string {
	if n.Kind == Builtin {
		return ""
	}
	return n.Index() + ".md"
}
