package main

import (
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/dox2md/internal/apidoc"
	"go.abhg.dev/dox2md/internal/dox"
	"go.abhg.dev/dox2md/internal/iotest"
	"go.abhg.dev/dox2md/internal/markdown"
	"go.abhg.dev/dox2md/internal/symbol"
)

func constructor(recv, name string) *dox.Block {
	return &dox.Block{
		Ctx: &dox.Context{
			Type:     dox.ConstructorContext,
			Name:     name,
			Receiver: recv,
		},
		Description: dox.Description{Full: name + "."},
	}
}

func instanceMethod(owner, name string, tags ...dox.Tag) *dox.Block {
	return &dox.Block{
		Ctx: &dox.Context{
			Type:        dox.MethodContext,
			Name:        name,
			Constructor: owner,
		},
		Tags:        tags,
		Description: dox.Description{Summary: name + " summary."},
	}
}

func newGenerator(t *testing.T) *Generator {
	return &Generator{
		Log:       iotest.Logger(t),
		Assembler: &apidoc.Assembler{Namespaces: symbol.Namespaces{Library: "Lib."}},
		Renderer:  new(markdown.Renderer),
	}
}

func TestGenerator(t *testing.T) {
	t.Parallel()

	pages, err := newGenerator(t).Generate([]*dox.Block{
		constructor("Lib", "Widget"),
		constructor("", "Helper"),
		constructor("$.webos", "Button"),
		instanceMethod("Lib.Widget", "draw"),
	})
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, "Lib.Widget", pages[0].Symbol)
	assert.Equal(t, "JS library_widget.md", pages[0].Path)
	assert.Contains(t, pages[0].Text, "* **draw**() : draw summary.")

	assert.Equal(t, "Helper", pages[1].Symbol)
	assert.Equal(t, "helper.md", pages[1].Path)
	assert.Contains(t, pages[1].Text, markdown.NoMethods)

	assert.Equal(t, "$.webos.Button", pages[2].Symbol)
	assert.Equal(t, "Widget_button.md", pages[2].Path)
	assert.Contains(t, pages[2].Text, markdown.NoOptions)
}

func TestGenerator_roundTrip(t *testing.T) {
	t.Parallel()

	widget := constructor("Lib", "Widget")
	widget.Tags = []dox.Tag{&dox.SinceTag{Version: "2.0"}}

	draw := instanceMethod("Lib.Widget", "draw")
	draw.Description.Summary = "Draws it."

	secret := instanceMethod("Lib.Widget", "secret", &dox.PrivateTag{})

	pages, err := newGenerator(t).Generate([]*dox.Block{widget, draw, secret})
	require.NoError(t, err)
	require.Len(t, pages, 1)

	text := pages[0].Text
	assert.Contains(t, text, "Since [2.0](../releases/tag/2.0).")
	assert.Equal(t, 1, strings.Count(text, "\n* "), "expected exactly one method")
	assert.Contains(t, text, "* **draw**() : Draws it.")
	assert.NotContains(t, text, "secret")
}

func TestGenerator_skips(t *testing.T) {
	t.Parallel()

	var logs strings.Builder
	g := newGenerator(t)
	g.Log = log.New(&logs, "", 0)
	g.Exclude = []string{"Lib.Intern*"}

	pages, err := g.Generate([]*dox.Block{
		constructor("", "Foo"),
		{
			Ctx: &dox.Context{
				Type:     dox.MethodContext,
				Name:     "init",
				Receiver: "this",
			},
		},
		instanceMethod("Array", "flatten"),
		constructor("Lib", "Internal"),
	})
	require.NoError(t, err)

	require.Len(t, pages, 1)
	assert.Equal(t, "Foo", pages[0].Symbol)
	assert.Contains(t, logs.String(),
		"Skipping Array: documented externally at "+symbol.BuiltinURL+"Array")
}

func TestGenerator_badExclude(t *testing.T) {
	t.Parallel()

	g := newGenerator(t)
	g.Exclude = []string{"Lib.[Int"}

	_, err := g.Generate([]*dox.Block{constructor("", "Foo")})
	assert.ErrorContains(t, err, `bad exclude pattern "Lib.[Int"`)
}

func TestGenerator_pathCollision(t *testing.T) {
	t.Parallel()

	var logs strings.Builder
	g := newGenerator(t)
	g.Log = log.New(&logs, "", 0)

	pages, err := g.Generate([]*dox.Block{
		constructor("", "Foo"),
		constructor("", "foo"),
	})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "foo", pages[0].Symbol)
	assert.Contains(t, logs.String(), `warning: Foo and foo are both written to "foo.md"`)
}

func TestGenerator_renderError(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")
	g := newGenerator(t)
	g.Renderer = &errorRenderer{err: giveErr}

	_, err := g.Generate([]*dox.Block{constructor("", "Foo")})
	assert.ErrorIs(t, err, giveErr)
	assert.ErrorContains(t, err, "render Foo")
}

type errorRenderer struct{ err error }

func (r *errorRenderer) Render(io.Writer, *apidoc.Index, *apidoc.Record) error {
	return r.err
}
