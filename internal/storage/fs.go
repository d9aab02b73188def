package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/pkrhistory/internal/fileutil"
	"github.com/lox/pkrhistory/internal/record"
)

// FSStore keeps texts and records as files under a root directory, one file
// per key.
type FSStore struct {
	root string
}

// NewFSStore creates a store rooted at dir.
func NewFSStore(dir string) *FSStore {
	return &FSStore{root: dir}
}

// Root returns the store's root directory.
func (s *FSStore) Root() string {
	return s.root
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// GetText reads the text stored under key.
func (s *FSStore) GetText(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), nil
}

// List walks the directory for prefix and returns the keys of regular
// files. A missing prefix yields no keys.
func (s *FSStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.path(prefix), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() || strings.Contains(d.Name(), ".tmp.") {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	return keys, nil
}

// PutText stores text under key.
func (s *FSStore) PutText(ctx context.Context, key, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(s.path(key), []byte(text), 0o644)
}

// PutRecord writes the hand as indented JSON under key.
func (s *FSStore) PutRecord(ctx context.Context, key string, hand *record.Hand) error {
	data, err := encodeRecord(hand)
	if err != nil {
		return err
	}
	return s.PutText(ctx, key, string(data))
}

// Exists reports whether a file is stored under key.
func (s *FSStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return fileutil.Exists(s.path(key))
}
