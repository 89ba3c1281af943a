package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/types"
)

// Store persists generated landing pages as a flat directory of .html files
// and enumerates them newest first. Concurrent saves with distinct suffixed
// names never conflict; an identical name overwrites (last writer wins).
type Store struct {
	dir        string
	publicPath string
}

// New ensures the asset directory exists and returns a Store whose listing
// URLs are rooted at publicPath (e.g. "/landing-page").
func New(dir, publicPath string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create landing pages dir %s: %w", dir, err)
	}
	return &Store{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

// Save writes the document under filename. The name is expected to already
// carry its uniqueness suffix, so no existence check is made before writing.
func (s *Store) Save(filename, content string) error {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write landing page %s: %w", filename, err)
	}
	return nil
}

// List returns every stored .html asset with its public URL and creation
// timestamp, sorted newest first. An empty directory yields an empty slice.
func (s *Store) List() ([]types.LandingPage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read landing pages dir %s: %w", s.dir, err)
	}

	pages := make([]types.LandingPage, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat landing page %s: %w", entry.Name(), err)
		}
		pages = append(pages, types.LandingPage{
			Filename:  entry.Name(),
			URL:       s.publicPath + "/" + entry.Name(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].CreatedAt.After(pages[j].CreatedAt)
	})

	return pages, nil
}
