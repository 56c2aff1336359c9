package markdown

import (
	"strings"

	"go.abhg.dev/dox2md/internal/dox"
)

// DefaultReleasesURL is the default base for links to versions
// named in @since tags.
const DefaultReleasesURL = "../releases/tag/"

// formatter renders fragments of markdown from the tags of a block.
// In all cases, the first tag of a kind wins.
type formatter struct {
	linker      *Linker
	releasesURL string
}

func (f *formatter) since(tags []dox.Tag) string {
	t, ok := dox.Find[*dox.SinceTag](tags)
	if !ok {
		return ""
	}
	return "\n\nSince [" + t.Version + "](" + f.releasesURL + t.Version + ")."
}

func (f *formatter) augments(tags []dox.Tag) string {
	t, ok := dox.Find[*dox.AugmentsTag](tags)
	if !ok {
		return ""
	}
	return "\n\nChild of " + f.linker.FormatTypes(t.Types...) + "."
}

func (f *formatter) inlineDeprecated(tags []dox.Tag) string {
	t, ok := dox.Find[*dox.DeprecatedTag](tags)
	if !ok {
		return ""
	}
	if t.Reason == "" {
		return "Deprecated."
	}
	return "Deprecated: " + t.Reason + "."
}

func (f *formatter) deprecated(tags []dox.Tag) string {
	if d := f.inlineDeprecated(tags); d != "" {
		return "\n\n" + d
	}
	return ""
}

func (f *formatter) returnTypes(tags []dox.Tag) string {
	t, ok := dox.FindFunc(tags, func(t *dox.ReturnTag) bool {
		return len(t.Types) > 0
	})
	if !ok {
		return ""
	}
	return f.linker.FormatTypes(t.Types...) + " "
}

// paramsList lists parameter names for a signature.
// Types are left out to keep signatures short.
func (f *formatter) paramsList(tags []dox.Tag) string {
	params := dox.All[*dox.ParamTag](tags)
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func (f *formatter) paramsDescription(tags []dox.Tag) string {
	var sb strings.Builder
	for _, p := range dox.All[*dox.ParamTag](tags) {
		sb.WriteString("\n * ")
		if len(p.Types) > 0 {
			sb.WriteString(f.linker.FormatTypes(p.Types...))
			sb.WriteString(" ")
		}
		sb.WriteString("**" + p.Name + "** " + p.Description)
	}
	return sb.String()
}
