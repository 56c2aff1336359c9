package markdown

import (
	"log"
	"strings"

	"go.abhg.dev/dox2md/internal/apidoc"
	"go.abhg.dev/dox2md/internal/symbol"
)

// Linker renders type names as links to their documentation.
type Linker struct {
	Index *apidoc.Index // required

	// WikiLinks drops the ".md" extension from links to generated pages.
	WikiLinks bool

	// DebugLog receives a message for type names
	// that could not be resolved. Optional.
	DebugLog *log.Logger
}

// Target returns the link target for a documented symbol.
func (l *Linker) Target(name symbol.Name) string {
	if name.Kind == symbol.Builtin || l.WikiLinks {
		return name.Index()
	}
	return name.Path()
}

// FormatTypes renders a list of type names
// as a "|"-separated, emphasized list of links.
//
// Names that aren't documented are left as plain text.
func (l *Linker) FormatTypes(types ...string) string {
	var sb strings.Builder
	sb.WriteString("_")
	for i, t := range types {
		if i > 0 {
			sb.WriteString("|")
		}
		sb.WriteString(l.formatType(t))
	}
	sb.WriteString("_")
	return sb.String()
}

func (l *Linker) formatType(t string) string {
	name, ok := l.Index.Resolve(t)
	if !ok {
		l.unresolved(name.Name)
		return name.Name
	}
	return "[" + name.Name + "](" + l.Target(name) + ")"
}

func (l *Linker) unresolved(name string) {
	if l.DebugLog == nil {
		return
	}
	if alt, ok := l.Index.Suggest(name); ok {
		l.DebugLog.Printf("unresolved type %q: did you mean %q?", name, alt)
	} else {
		l.DebugLog.Printf("unresolved type %q", name)
	}
}
