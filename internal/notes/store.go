// Package notes stores free-text notes keyed by absolute file path.
//
// The backing file holds one note per line in the form
//
//	/full/path/to/file: note text
package notes

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bral/lsnote/internal/fsinfo"
)

const separator = ": "

// ErrNoNote is returned by Remove when the path has no note.
var ErrNoNote = errors.New("no note found")

// Store is an in-memory copy of the notes file.
type Store struct {
	path  string
	notes map[string]string
}

// Open reads the notes file at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, notes: make(map[string]string)}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("could not open notes file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, note, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		s.notes[key] = note
	}
	if err := scanner.Err(); err != nil {
		return s, fmt.Errorf("could not read notes file %q: %w", path, err)
	}
	return s, nil
}

// Len returns the number of stored notes.
func (s *Store) Len() int { return len(s.notes) }

// Get returns the note attached to path.
func (s *Store) Get(path string) (string, bool) {
	note, ok := s.notes[fsinfo.Canonical(path)]
	return note, ok
}

// Set attaches note to path, which must exist, and saves the file.
func (s *Store) Set(path, note string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("could not resolve path: %w", err)
	}
	note = strings.Join(strings.Fields(note), " ")
	s.notes[fsinfo.Canonical(path)] = note
	return s.Save()
}

// Remove deletes the note attached to path and saves the file.
// The path itself no longer needs to exist.
func (s *Store) Remove(path string) error {
	key := fsinfo.Canonical(path)
	if _, ok := s.notes[key]; !ok {
		return ErrNoNote
	}
	delete(s.notes, key)
	return s.Save()
}

// Save writes all notes sorted by path, replacing the file atomically.
func (s *Store) Save() (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("could not create notes directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".notes-*")
	if err != nil {
		return fmt.Errorf("could not create temporary notes file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	keys := make([]string, 0, len(s.notes))
	for k := range s.notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := bufio.NewWriter(tmp)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", k, separator, s.notes[k]); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("could not write notes: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write notes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close notes file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace notes file %q: %w", s.path, err)
	}
	return nil
}
