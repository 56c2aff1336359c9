package apidoc

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"go.abhg.dev/dox2md/internal/dox"
	"go.abhg.dev/dox2md/internal/symbol"
)

// Index is the documentation gathered from a file,
// keyed by symbol name.
type Index struct {
	// Overview is the leading free-standing comment of the file, if any.
	// It is not rendered.
	Overview *dox.Block

	ns      symbol.Namespaces
	records map[string]*Record
	order   []string // symbol names in order of first reference
}

func (idx *Index) put(name string) *Record {
	rec := &Record{Symbol: idx.ns.Classify(name)}
	idx.records[name] = rec
	idx.order = append(idx.order, name)
	return rec
}

// Len reports the number of records in the index.
func (idx *Index) Len() int {
	return len(idx.order)
}

// Records returns all records in the order
// their symbols were first referenced.
func (idx *Index) Records() []*Record {
	recs := make([]*Record, len(idx.order))
	for i, name := range idx.order {
		recs[i] = idx.records[name]
	}
	return recs
}

// Lookup returns the record for the given symbol name.
func (idx *Index) Lookup(name string) (*Record, bool) {
	rec, ok := idx.records[name]
	return rec, ok
}

// Resolve classifies a type name used in a tag,
// and reports whether documentation exists for it.
//
// Builtin and namespaced names are always documented.
// Other names are documented only if they have a record.
// Surrounding braces ("{Foo}") are ignored.
func (idx *Index) Resolve(typeName string) (_ symbol.Name, documented bool) {
	if len(typeName) >= 2 && typeName[0] == '{' && typeName[len(typeName)-1] == '}' {
		typeName = typeName[1 : len(typeName)-1]
	}

	name := idx.ns.Classify(typeName)
	if name.Kind != symbol.Plain {
		return name, true
	}
	_, ok := idx.records[typeName]
	return name, ok
}

// _minSimilarity is the Jaro-Winkler score above which
// a symbol is considered a likely match for a misspelled name.
const _minSimilarity = 0.85

// Suggest returns the documented symbol whose name is closest to name,
// if any is close enough to be a likely match.
func (idx *Index) Suggest(name string) (string, bool) {
	var (
		best      string
		bestScore float32
	)
	for _, candidate := range idx.order {
		score, err := edlib.StringsSimilarity(
			strings.ToLower(name), strings.ToLower(candidate), edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore >= _minSimilarity
}
