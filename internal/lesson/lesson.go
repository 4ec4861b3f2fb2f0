// Package lesson loads the study material: one markdown lesson per
// principle, each carrying YAML frontmatter and a runnable demo snippet.
//
// The built-in corpus is baked into the binary with go:embed so the tool
// works with no files on disk. LoadDir reads lessons from a directory
// instead, which is how lesson authors preview their drafts.
package lesson

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"soliddojo/internal/principles"
)

var (
	// ErrLessonNotFound is returned when a corpus has no lesson for a principle.
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrDuplicateLesson is returned when two lessons claim the same principle.
	ErrDuplicateLesson = errors.New("duplicate lesson")

	// ErrNoSnippet is returned when a lesson body carries no demo fence.
	ErrNoSnippet = errors.New("lesson has no demo snippet")
)

// Lesson is one principle's study material.
type Lesson struct {
	// Principle this lesson teaches.
	Principle principles.Principle

	// Title is the short display title from the frontmatter.
	Title string

	// Summary is the one-line teaser from the frontmatter.
	Summary string

	// Order positions the lesson in listings. Defaults to the
	// principle's natural position when the frontmatter omits it.
	Order int

	// Body is the markdown prose after the frontmatter block,
	// including the demo fence.
	Body string

	// Source names where the lesson was loaded from, for diagnostics.
	Source string
}

// demoFence opens the runnable snippet inside a lesson body.
const demoFence = "```go demo"

// Snippet extracts the runnable demo snippet from the lesson body.
// The second return is false when the body carries no demo fence.
func (l *Lesson) Snippet() (string, bool) {
	lines := strings.Split(l.Body, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != demoFence {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "```" {
				return strings.Join(lines[i+1:j], "\n") + "\n", true
			}
		}
		return "", false // unterminated fence
	}
	return "", false
}

// frontmatter matches the YAML block at the top of a lesson file.
type frontmatter struct {
	Principle string `yaml:"principle"`
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	Order     int    `yaml:"order"`
}

const frontmatterDelim = "---"

// splitFrontmatter splits a lesson file into its YAML block and body.
func splitFrontmatter(text string) (meta, body string, err error) {
	if !strings.HasPrefix(text, frontmatterDelim+"\n") {
		return "", "", fmt.Errorf("missing frontmatter block")
	}
	rest := text[len(frontmatterDelim)+1:]
	marker := "\n" + frontmatterDelim + "\n"
	end := strings.Index(rest, marker)
	if end < 0 {
		return "", "", fmt.Errorf("unterminated frontmatter block")
	}
	return rest[:end], rest[end+len(marker):], nil
}

// parseLesson parses one lesson file.
func parseLesson(data []byte, source string) (*Lesson, error) {
	meta, body, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, fmt.Errorf("%s: failed to parse frontmatter: %w", source, err)
	}

	if fm.Principle == "" {
		return nil, fmt.Errorf("%s: frontmatter missing principle", source)
	}
	p, err := principles.Parse(fm.Principle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if fm.Title == "" {
		return nil, fmt.Errorf("%s: frontmatter missing title", source)
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%s: lesson has no body", source)
	}

	order := fm.Order
	if order == 0 {
		order = p.Order()
	}

	return &Lesson{
		Principle: p,
		Title:     fm.Title,
		Summary:   fm.Summary,
		Order:     order,
		Body:      body,
		Source:    source,
	}, nil
}

// ParseFile parses a single lesson file from disk.
func ParseFile(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson: %w", err)
	}
	return parseLesson(data, path)
}

// Corpus is a set of lessons keyed by principle.
type Corpus struct {
	byPrinciple map[principles.Principle]*Lesson
}

// newCorpus builds a corpus and rejects duplicate principles.
func newCorpus(lessons []*Lesson) (*Corpus, error) {
	c := &Corpus{byPrinciple: make(map[principles.Principle]*Lesson, len(lessons))}
	for _, l := range lessons {
		if prev, ok := c.byPrinciple[l.Principle]; ok {
			return nil, fmt.Errorf("%w: %s in both %s and %s",
				ErrDuplicateLesson, l.Principle, prev.Source, l.Source)
		}
		c.byPrinciple[l.Principle] = l
	}
	return c, nil
}

// Get returns the lesson for a principle.
func (c *Corpus) Get(p principles.Principle) (*Lesson, bool) {
	l, ok := c.byPrinciple[p]
	return l, ok
}

// All returns every lesson ordered for display.
func (c *Corpus) All() []*Lesson {
	out := make([]*Lesson, 0, len(c.byPrinciple))
	for _, l := range c.byPrinciple {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Principle.Order() < out[j].Principle.Order()
	})
	return out
}

// Count returns the number of lessons in the corpus.
func (c *Corpus) Count() int {
	return len(c.byPrinciple)
}

// LoadDir loads every .md lesson from a directory. Used for lesson
// authoring; unlike the embedded corpus it may be incomplete.
func LoadDir(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read lessons dir: %w", err)
	}

	var lessons []*Lesson
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		l, err := ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}

	return newCorpus(lessons)
}
