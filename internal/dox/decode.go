package dox

import (
	"encoding/json"
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Decode reads the JSON array of comments that dox prints
// for a source file.
//
// Fields that dox2md doesn't use are ignored.
func Decode(r io.Reader) ([]*Block, error) {
	var raw []*jsonBlock
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("decode comments: %w", err))
	}

	blocks := make([]*Block, 0, len(raw))
	for _, rb := range raw {
		if rb == nil {
			continue
		}
		blocks = append(blocks, rb.block())
	}
	return blocks, nil
}

type jsonBlock struct {
	Ctx         *jsonContext    `json:"ctx"`
	Tags        []*jsonTag      `json:"tags"`
	Description jsonDescription `json:"description"`
}

func (jb *jsonBlock) block() *Block {
	b := Block{
		Description: Description{
			Summary: jb.Description.Summary,
			Body:    jb.Description.Body,
			Full:    jb.Description.Full,
		},
	}
	if c := jb.Ctx; c != nil {
		b.Ctx = &Context{
			Type:        ContextType(c.Type),
			Name:        c.Name,
			Receiver:    c.Receiver,
			Constructor: c.Constructor,
		}
	}
	for _, t := range jb.Tags {
		if t != nil {
			b.Tags = append(b.Tags, t.tag())
		}
	}
	return &b
}

type jsonContext struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Receiver    string `json:"receiver"`
	Constructor string `json:"constructor"`
}

type jsonDescription struct {
	Full    string `json:"full"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}

type jsonTag struct {
	Type        string     `json:"type"`
	String      string     `json:"string"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Types       stringList `json:"types"`
	OtherClass  stringList `json:"otherClass"`
}

func (jt *jsonTag) tag() Tag {
	switch jt.Type {
	case "param":
		return &ParamTag{
			Name:        jt.Name,
			Types:       jt.Types,
			Description: jt.Description,
		}
	case "return", "returns":
		return &ReturnTag{
			Plural:      jt.Type == "returns",
			Types:       jt.Types,
			Description: jt.Description,
		}
	case "since":
		return &SinceTag{Version: jt.String}
	case "deprecated":
		return &DeprecatedTag{Reason: jt.String}
	case "augments":
		types := jt.OtherClass
		if len(types) == 0 && jt.String != "" {
			// Newer versions of dox only fill "string".
			types = stringList{jt.String}
		}
		return &AugmentsTag{Types: types}
	case "private":
		return &PrivateTag{}
	default:
		return &OtherTag{Type: jt.Type, String: jt.String}
	}
}

// stringList is a list of strings in JSON
// that may also be written as a single string.
type stringList []string

func (sl *stringList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*sl = stringList{s}
		return nil
	}

	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return errtrace.Wrap(err)
	}
	*sl = ss
	return nil
}
