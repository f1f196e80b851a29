// Package discovery locates slide source documents on disk.
//
// The on-disk contract: every *.md file in the slides directory is one
// slide, presented in lexicographic filename order. Files whose name
// starts with "_" are reserved for metadata and excluded; _title.md, when
// present, holds the presentation title.
package discovery

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"termdeck/internal/domain"
)

const titleFile = "_title.md"

// LoadDir reads all slide documents from dir, sorted by filename, along
// with the optional presentation title.
func LoadDir(dir string) ([]domain.Document, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("reading slides directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".md" || strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	// Lexicographic filename order is the presentation order.
	sort.Strings(names)

	docs := make([]domain.Document, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, "", fmt.Errorf("reading slide %s: %w", name, err)
		}
		docs = append(docs, domain.Document{Name: name, Text: string(data)})
	}

	title := readTitle(dir)
	log.Printf("Discovered %d slide documents in %s", len(docs), dir)
	return docs, title, nil
}

func readTitle(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, titleFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
