package dox

// Tag is a single annotation in a comment, e.g. "@param {String} name".
//
// The set of tags is closed:
// it's one of the *Tag types defined in this package.
type Tag interface {
	// Kind reports the tag name as written in the comment,
	// without the leading "@".
	Kind() string

	tag()
}

var (
	_ Tag = (*ParamTag)(nil)
	_ Tag = (*ReturnTag)(nil)
	_ Tag = (*SinceTag)(nil)
	_ Tag = (*DeprecatedTag)(nil)
	_ Tag = (*AugmentsTag)(nil)
	_ Tag = (*PrivateTag)(nil)
	_ Tag = (*OtherTag)(nil)
)

// ParamTag is a @param tag.
type ParamTag struct {
	Name        string
	Types       []string
	Description string
}

// Kind returns "param".
func (*ParamTag) Kind() string { return "param" }

// ReturnTag is a @return or @returns tag.
type ReturnTag struct {
	// Plural is set if the tag was spelled @returns.
	Plural bool

	Types       []string
	Description string
}

// Kind returns "return" or "returns".
func (t *ReturnTag) Kind() string {
	if t.Plural {
		return "returns"
	}
	return "return"
}

// SinceTag is a @since tag.
type SinceTag struct {
	Version string
}

// Kind returns "since".
func (*SinceTag) Kind() string { return "since" }

// DeprecatedTag is a @deprecated tag.
type DeprecatedTag struct {
	// Reason is empty if the tag was used bare.
	Reason string
}

// Kind returns "deprecated".
func (*DeprecatedTag) Kind() string { return "deprecated" }

// AugmentsTag is an @augments tag naming the parent class.
type AugmentsTag struct {
	Types []string
}

// Kind returns "augments".
func (*AugmentsTag) Kind() string { return "augments" }

// PrivateTag is a @private tag.
type PrivateTag struct{}

// Kind returns "private".
func (*PrivateTag) Kind() string { return "private" }

// OtherTag is any tag not otherwise understood.
type OtherTag struct {
	Type   string
	String string
}

// Kind returns the name of the tag.
func (t *OtherTag) Kind() string { return t.Type }

func (*ParamTag) tag()      {}
func (*ReturnTag) tag()     {}
func (*SinceTag) tag()      {}
func (*DeprecatedTag) tag() {}
func (*AugmentsTag) tag()   {}
func (*PrivateTag) tag()    {}
func (*OtherTag) tag()      {}

// Find returns the first tag of type T in tags.
// Later tags of the same type are ignored.
func Find[T Tag](tags []Tag) (T, bool) {
	return FindFunc(tags, func(T) bool { return true })
}

// FindFunc returns the first tag of type T in tags
// for which match reports true.
func FindFunc[T Tag](tags []Tag, match func(T) bool) (T, bool) {
	for _, tag := range tags {
		if t, ok := tag.(T); ok && match(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// All returns all tags of type T in tags, in order.
func All[T Tag](tags []Tag) []T {
	var out []T
	for _, tag := range tags {
		if t, ok := tag.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
