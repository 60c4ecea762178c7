// Package storage provides upload storage on the local filesystem. Files are
// grouped in one directory per category and saved under randomly generated
// names so uploads never collide or overwrite each other.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// LocalStore saves uploads under root/<category>/<random hex><ext>.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Save stores the upload and returns the generated filename. The category
// directory is created on demand.
func (s *LocalStore) Save(category string, upload ports.FileUpload) (string, error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := randomName() + filepath.Ext(upload.Filename)
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}

	return filename, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *LocalStore) Remove(category, filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(s.Path(category, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Path returns the on-disk location of a stored filename. The base name is
// used verbatim, so callers must only pass filenames produced by Save.
func (s *LocalStore) Path(category, filename string) string {
	return filepath.Join(s.root, category, filepath.Base(filename))
}

// randomName returns 16 hex characters from a CSPRNG.
func randomName() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("storage: read random: %v", err))
	}
	return hex.EncodeToString(b)
}
