package lesson

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"soliddojo/internal/logging"
	"soliddojo/internal/principles"
)

// embeddedLessons contains the built-in lesson corpus baked into the
// binary at compile time, so the tool needs no files on disk.
//
//go:embed lessons
var embeddedLessons embed.FS

// Load loads the built-in lesson corpus from the embedded filesystem.
// The embedded corpus is complete by construction: one lesson per
// principle, each with a runnable demo snippet.
func Load() (*Corpus, error) {
	timer := logging.StartTimer(logging.CategoryLesson, "Load")
	defer timer.Stop()

	var lessons []*Lesson
	err := fs.WalkDir(embeddedLessons, "lessons", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		data, readErr := embeddedLessons.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read embedded lesson %s: %w", path, readErr)
		}
		l, parseErr := parseLesson(data, path)
		if parseErr != nil {
			return parseErr
		}
		lessons = append(lessons, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded lessons: %w", err)
	}

	corpus, err := newCorpus(lessons)
	if err != nil {
		return nil, err
	}

	// A missing or snippet-less built-in lesson is a packaging bug.
	for _, p := range principles.All() {
		l, ok := corpus.Get(p)
		if !ok {
			return nil, fmt.Errorf("embedded corpus missing %s lesson", p)
		}
		if _, ok := l.Snippet(); !ok {
			return nil, fmt.Errorf("embedded %s lesson: %w", p, ErrNoSnippet)
		}
	}

	logging.Lesson("Loaded %d lessons from embedded corpus", corpus.Count())
	return corpus, nil
}

// MustLoad loads the embedded corpus and panics on error.
// Use this for initialization where failure is unrecoverable.
func MustLoad() *Corpus {
	corpus, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded lessons: %v", err))
	}
	return corpus
}
