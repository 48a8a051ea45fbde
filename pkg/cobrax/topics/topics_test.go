// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory fs.FS, cobra
// PURPOSE: Test topic loading and the help command

package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/offline.txt": {Data: []byte("Offline resolution\n")},
		"help/layout.md":   {Data: []byte("# Layout\n")},
		"help/notes.json":  {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	tm, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"layout", "offline"}, tm.ListTopics())

	topic, ok := tm.GetTopic("offline")
	require.True(t, ok)
	assert.Equal(t, "Offline resolution\n", topic.Content)
	assert.Equal(t, ".txt", topic.Ext)

	_, ok = tm.GetTopic("--offline")
	assert.True(t, ok, "flag-style names match")

	_, ok = tm.GetTopic("notes")
	assert.False(t, ok)
}

func TestLoad_CustomExtensions(t *testing.T) {
	tm, err := Load(testFS(), "help", Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(testFS(), "nope", Options{})
	assert.Error(t, err)
}

type upperRenderer struct{}

func (upperRenderer) Render(content, ext string) string { return "[" + ext + "]" + content }

func TestInstall(t *testing.T) {
	tm, err := Load(testFS(), "help", Options{Renderer: upperRenderer{}})
	require.NoError(t, err)

	run := func(args ...string) string {
		root := &cobra.Command{Use: "sdk", Short: "root"}
		root.AddCommand(&cobra.Command{Use: "list", Short: "List things", Run: func(*cobra.Command, []string) {}})
		tm.Install(root)

		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	assert.Equal(t, "[.txt]Offline resolution\n", run("help", "offline"))
	assert.Equal(t, "[.md]# Layout\n", run("help", "layout"))

	list := run("help", "topics")
	assert.Contains(t, list, "Available help topics:")
	assert.Contains(t, list, "  layout\n")
	assert.Contains(t, list, "sdk help <topic>")

	assert.Contains(t, run("help", "list"), "List things")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "x", (&PlainRenderer{}).Render("x", ".md"))
}

func TestGlamourRenderer_NonMarkdown(t *testing.T) {
	assert.Equal(t, "plain", NewGlamourRenderer().Render("plain", ".txt"))

	r := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Contains(t, r.Render("# Title\n\nbody", ".md"), "Title")
}
