// Package fs provides file-based export of product pages.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/tourcopy"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements tourcopy.PageStore at compile time.
var _ tourcopy.PageStore = (*FileStore)(nil)

// FileStore implements tourcopy.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page to <anchor>.md in the temporary directory. An existing
// file with the same name is an ECONFLICT.
func (s *FileStore) Save(ctx context.Context, page *tourcopy.ExportedPage) error {
	if page.Anchor == "" {
		return tourcopy.Errorf(tourcopy.EINVALID, "page anchor required")
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), page.Anchor+".md")
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		return tourcopy.Errorf(tourcopy.ECONFLICT, "page %q already exported", page.Anchor)
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type frontmatter struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	ContentHash string `yaml:"contentHash,omitempty"`
	Exported    string `yaml:"exported"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *tourcopy.ExportedPage) (string, error) {
	exported := page.ExportedAt
	if exported.IsZero() {
		exported = time.Now()
	}
	meta, err := yaml.Marshal(frontmatter{
		ID:          page.ProductID,
		Name:        page.Name,
		ContentHash: page.ContentHash,
		Exported:    exported.Format(time.DateOnly),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(page.Body)
	if !strings.HasSuffix(page.Body, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Commit replaces the output directory with the saved pages.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
