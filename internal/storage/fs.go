// Package storage provides access to the note folder and its week files.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/starford/journal/internal/apperr"
)

// FS is the note folder on the local file system.
type FS struct {
	root string // absolute path to the note folder
}

// NewFS creates a new FS rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, apperr.FS("resolve", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, apperr.FS("stat", abs, err)
	}
	if !info.IsDir() {
		return nil, apperr.FS("stat", abs, errors.New("not a directory"))
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute note folder path.
func (f *FS) Root() string {
	return f.root
}

// Path resolves a note file name against the folder and rejects any result
// that escapes it.
func (f *FS) Path(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if name == "" || filepath.IsAbs(cleaned) {
		return "", apperr.FS("resolve", name, errors.New("note name must be relative"))
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", apperr.FS("resolve", name, errors.New("path escapes note folder"))
	}
	return abs, nil
}

// Read returns the raw bytes of a note file.
func (f *FS) Read(name string) ([]byte, error) {
	abs, err := f.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, apperr.FS("read", abs, err)
	}
	return data, nil
}

// Open creates the note file exclusively, or opens it for read and write if
// it already exists. The exclusive create is the only existence check, so
// there is no window between checking and creating.
func (f *FS) Open(name string) (*NoteFile, error) {
	abs, err := f.Path(name)
	if err != nil {
		return nil, err
	}
	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err == nil {
		return &NoteFile{file: file, path: abs, created: true}, nil
	}
	if !errors.Is(err, os.ErrExist) {
		return nil, apperr.FS("create", abs, err)
	}
	// Not O_APPEND: the caller positions the write itself.
	file, err = os.OpenFile(abs, os.O_RDWR, 0)
	if err != nil {
		return nil, apperr.FS("open", abs, err)
	}
	return &NoteFile{file: file, path: abs}, nil
}

// NoteFile is an open week file.
type NoteFile struct {
	file    *os.File
	path    string
	created bool
}

// Path returns the absolute file path.
func (n *NoteFile) Path() string { return n.path }

// Created reports whether Open created the file.
func (n *NoteFile) Created() bool { return n.created }

// Size returns the current file size.
func (n *NoteFile) Size() (int64, error) {
	info, err := n.file.Stat()
	if err != nil {
		return 0, apperr.FS("stat", n.path, err)
	}
	return info.Size(), nil
}

// HasLinePrefix scans the file line by line and reports whether any line
// starts with prefix. Lines that are not valid UTF-8 are an encoding error.
// The scan stops at the first match, so lines after it are not checked.
func (n *NoteFile) HasLinePrefix(prefix string) (bool, error) {
	if n.created {
		return false, nil
	}
	size, err := n.Size()
	if err != nil {
		return false, err
	}
	r := bufio.NewReader(io.NewSectionReader(n.file, 0, size))
	for lineNo := 1; ; lineNo++ {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return false, apperr.Encoding(n.path, lineNo)
			}
			if strings.HasPrefix(line, prefix) {
				return true, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, apperr.FS("read", n.path, err)
		}
	}
}

// ContentEnd returns the logical insertion offset: just before a trailing
// newline if the file ends with one, otherwise the end of the file.
func (n *NoteFile) ContentEnd() (int64, error) {
	size, err := n.Size()
	if err != nil || size == 0 {
		return 0, err
	}
	last := make([]byte, 1)
	if _, err := n.file.ReadAt(last, size-1); err != nil {
		return 0, apperr.FS("read", n.path, fmt.Errorf("last byte: %w", err))
	}
	if last[0] == '\n' {
		return size - 1, nil
	}
	return size, nil
}

// WriteAt writes buf at off with a single write call. Bytes past off are
// overwritten, which only ever covers the trailing newline trimmed by
// ContentEnd.
func (n *NoteFile) WriteAt(buf []byte, off int64) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := n.file.WriteAt(buf, off); err != nil {
		return apperr.FS("write", n.path, err)
	}
	return nil
}

// Close closes the underlying file.
func (n *NoteFile) Close() error {
	if err := n.file.Close(); err != nil {
		return apperr.FS("close", n.path, err)
	}
	return nil
}
