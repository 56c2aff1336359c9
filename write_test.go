package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/dox2md/internal/iotest"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var pages []*Page
	for i := 0; i < 20; i++ {
		pages = append(pages, &Page{
			Symbol: fmt.Sprintf("Class%d", i),
			Path:   fmt.Sprintf("class%d.md", i),
			Text:   fmt.Sprintf("Class %d.\n", i),
		})
	}

	outDir := filepath.Join(t.TempDir(), "nested", "docs")
	var logs strings.Builder
	w := Writer{
		Log:    log.New(&logs, "", 0), // log.Logger serializes writes
		OutDir: outDir,
		Jobs:   4,
	}
	require.NoError(t, w.Write(context.Background(), pages))

	for _, p := range pages {
		body, err := os.ReadFile(filepath.Join(outDir, p.Path))
		require.NoError(t, err)
		assert.Equal(t, p.Text, string(body))
		assert.Contains(t, logs.String(), "Wrote docs for "+p.Symbol+"\n")
	}
}

func TestWriter_overwrites(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	path := filepath.Join(outDir, "foo.md")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	w := Writer{Log: iotest.Logger(t), OutDir: outDir}
	require.NoError(t, w.Write(context.Background(), []*Page{
		{Symbol: "Foo", Path: "foo.md", Text: "fresh"},
	}))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(body))
}

func TestWriter_dryRun(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "docs")
	var logs strings.Builder
	w := Writer{
		Log:    log.New(&logs, "", 0),
		OutDir: outDir,
		DryRun: true,
	}
	require.NoError(t, w.Write(context.Background(), []*Page{
		{Symbol: "Webos.File", Path: "JS library_file.md"},
	}))

	assert.Equal(t,
		"Would write docs for Webos.File to "+filepath.Join(outDir, "JS library_file.md")+"\n",
		logs.String())
	assert.NoDirExists(t, outDir)
}

func TestWriter_error(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	// A directory in place of the file makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(outDir, "bad.md"), 0o755))

	w := Writer{
		Log:    iotest.Logger(t),
		OutDir: outDir,
		Jobs:   2,
	}
	err := w.Write(context.Background(), []*Page{
		{Symbol: "Good", Path: "good.md", Text: "good"},
		{Symbol: "Bad", Path: "bad.md", Text: "bad"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "bad.md")
}

func TestWriter_cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outDir := t.TempDir()
	w := Writer{Log: iotest.Logger(t), OutDir: outDir}
	err := w.Write(ctx, []*Page{{Symbol: "Foo", Path: "foo.md"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(outDir, "foo.md"))
}
