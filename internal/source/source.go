package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"pickwise/internal/domain"
	"pickwise/internal/eventbus"
)

// Sink receives loaded entries
type Sink interface {
	Add(entries ...*domain.Entry)
}

// skipDirs are never descended into when listing a directory
var skipDirs = map[string]bool{
	"node_modules": true, "vendor": true, "dist": true, "build": true,
	"target": true, "__pycache__": true, ".git": true,
}

// Loader fills a Sink from files, readers or directory listings
type Loader struct {
	bus      eventbus.EventBus
	sink     Sink
	MaxDepth int
}

// NewLoader creates a loader adding entries to sink
func NewLoader(bus eventbus.EventBus, sink Sink) *Loader {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Loader{bus: bus, sink: sink, MaxDepth: 3}
}

// LoadFile adds one entry per non-blank line of path; "-" reads stdin
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	if path == "-" {
		return l.LoadReader(ctx, os.Stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return l.LoadReader(ctx, f, path)
}

// LoadReader adds one entry per non-blank line of r
func (l *Loader) LoadReader(ctx context.Context, r io.Reader, name string) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var batch []*domain.Entry
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		batch = append(batch, &domain.Entry{Text: line, Source: name})
	}
	if err := scanner.Err(); err != nil {
		l.bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to read %s", name), Err: err})
		return 0, fmt.Errorf("failed to read %s: %w", name, err)
	}

	l.sink.Add(batch...)
	l.bus.Publish(eventbus.EntriesLoadedEvent{Source: name, Count: len(batch)})
	return len(batch), nil
}

// LoadDir adds the paths of regular files below root, relative to root.
// Hidden and well-known build directories are skipped.
func (l *Loader) LoadDir(ctx context.Context, root string) (int, error) {
	var batch []*domain.Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}

		rel, _ := filepath.Rel(root, path)
		if d.IsDir() {
			if path == root {
				return nil
			}
			if skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			if strings.Count(rel, string(filepath.Separator)) >= l.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		batch = append(batch, &domain.Entry{Text: filepath.ToSlash(rel), Source: root})
		return nil
	})
	if err != nil {
		log.Printf("Error scanning directory %s: %v", root, err)
		l.bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to scan %s", root), Err: err})
		return 0, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	l.sink.Add(batch...)
	l.bus.Publish(eventbus.EntriesLoadedEvent{Source: root, Count: len(batch)})
	return len(batch), nil
}
