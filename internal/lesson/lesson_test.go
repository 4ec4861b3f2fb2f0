package lesson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soliddojo/internal/principles"
)

// minimalLesson builds a valid lesson file body for parser tests.
func minimalLesson(principle, title string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("principle: " + principle + "\n")
	b.WriteString("title: " + title + "\n")
	b.WriteString("summary: a one-liner\n")
	b.WriteString("---\n")
	b.WriteString("\nSome prose.\n\n")
	b.WriteString("```go demo\n")
	b.WriteString("package main\n\nimport \"fmt\"\n\nfunc Demo() {\n\tfmt.Println(\"x\")\n}\n")
	b.WriteString("```\n")
	return b.String()
}

func TestLoadEmbeddedCorpus(t *testing.T) {
	corpus, err := Load()
	require.NoError(t, err)

	assert.Equal(t, len(principles.All()), corpus.Count())

	for _, p := range principles.All() {
		l, ok := corpus.Get(p)
		require.True(t, ok, "no lesson for %s", p)

		assert.NotEmpty(t, l.Title, "%s lesson missing title", p)
		assert.NotEmpty(t, l.Summary, "%s lesson missing summary", p)
		assert.Equal(t, p.Order(), l.Order, "%s lesson out of order", p)

		snippet, ok := l.Snippet()
		require.True(t, ok, "%s lesson has no demo snippet", p)
		assert.True(t, strings.HasPrefix(snippet, "package main\n"),
			"%s snippet does not start with package main", p)
		assert.Contains(t, snippet, "func Demo()", "%s snippet has no Demo entrypoint", p)
	}
}

func TestEmbeddedCorpusOrdering(t *testing.T) {
	corpus := MustLoad()

	all := corpus.All()
	require.Len(t, all, len(principles.All()))
	for i, l := range all {
		assert.Equal(t, principles.All()[i], l.Principle, "position %d", i)
	}
}

func TestSnippetExtraction(t *testing.T) {
	t.Run("extracts fence contents", func(t *testing.T) {
		l := &Lesson{Body: "intro\n\n```go demo\npackage main\n\nfunc Demo() {}\n```\n\noutro\n"}

		snippet, ok := l.Snippet()
		require.True(t, ok)
		assert.Equal(t, "package main\n\nfunc Demo() {}\n", snippet)
	})

	t.Run("ignores plain go fences", func(t *testing.T) {
		l := &Lesson{Body: "```go\npackage main\n```\n"}

		_, ok := l.Snippet()
		assert.False(t, ok)
	})

	t.Run("no fence", func(t *testing.T) {
		l := &Lesson{Body: "prose only\n"}

		_, ok := l.Snippet()
		assert.False(t, ok)
	})

	t.Run("unterminated fence", func(t *testing.T) {
		l := &Lesson{Body: "```go demo\npackage main\n"}

		_, ok := l.Snippet()
		assert.False(t, ok)
	})
}

func TestParseLessonErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no frontmatter", "# Just markdown\n"},
		{"unterminated frontmatter", "---\nprinciple: srp\ntitle: t\n"},
		{"missing principle", "---\ntitle: t\n---\nbody\n"},
		{"missing title", "---\nprinciple: srp\n---\nbody\n"},
		{"empty body", "---\nprinciple: srp\ntitle: t\n---\n\n\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLesson([]byte(tc.text), "test.md")
			assert.Error(t, err)
			if err != nil {
				assert.Contains(t, err.Error(), "test.md")
			}
		})
	}

	t.Run("unknown principle", func(t *testing.T) {
		_, err := parseLesson([]byte("---\nprinciple: dry\ntitle: t\n---\nbody\n"), "test.md")
		assert.ErrorIs(t, err, principles.ErrUnknownPrinciple)
	})
}

func TestParseLessonDefaultsOrder(t *testing.T) {
	l, err := parseLesson([]byte(minimalLesson("isp", "Small interfaces")), "isp.md")
	require.NoError(t, err)

	assert.Equal(t, principles.ISP, l.Principle)
	assert.Equal(t, principles.ISP.Order(), l.Order)
	assert.Equal(t, "isp.md", l.Source)
}

func TestLoadDir(t *testing.T) {
	t.Run("loads markdown lessons", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "srp.md"),
			[]byte(minimalLesson("srp", "One job")), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dip.md"),
			[]byte(minimalLesson("dip", "Invert it")), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
			[]byte("not a lesson"), 0o644))

		corpus, err := LoadDir(dir)
		require.NoError(t, err)

		assert.Equal(t, 2, corpus.Count())
		_, ok := corpus.Get(principles.SRP)
		assert.True(t, ok)
		_, ok = corpus.Get(principles.OCP)
		assert.False(t, ok)

		all := corpus.All()
		require.Len(t, all, 2)
		assert.Equal(t, principles.SRP, all[0].Principle)
		assert.Equal(t, principles.DIP, all[1].Principle)
	})

	t.Run("rejects duplicate principles", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"),
			[]byte(minimalLesson("ocp", "First")), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"),
			[]byte(minimalLesson("ocp", "Second")), 0o644))

		_, err := LoadDir(dir)
		assert.ErrorIs(t, err, ErrDuplicateLesson)
	})

	t.Run("propagates parse failures with the file name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"),
			[]byte("no frontmatter here\n"), 0o644))

		_, err := LoadDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.md")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lsp.md")
	require.NoError(t, os.WriteFile(path, []byte(minimalLesson("lsp", "Substitutes")), 0o644))

	l, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, principles.LSP, l.Principle)
	assert.Equal(t, path, l.Source)

	_, err = ParseFile(filepath.Join(dir, "absent.md"))
	assert.Error(t, err)
}
