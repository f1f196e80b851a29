//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for slide files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateSlides writes n numbered slide documents into the workspace
func (tf *TUITestFramework) CreateSlides(n int) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	for i := 1; i <= n; i++ {
		body := fmt.Sprintf("+------------------+\n| slide %d content |\n+------------------+", i)
		notes := fmt.Sprintf("Talk about topic %d here.", i)
		if err := tf.WriteSlide(fmt.Sprintf("%02d.md", i), fmt.Sprintf("Slide %d", i), body, notes); err != nil {
			return err
		}
	}
	return nil
}

// WriteSlide writes one slide document in the on-disk format the parser
// expects: a heading, a fenced body block, and an optional notes section
func (tf *TUITestFramework) WriteSlide(name, title, body, notes string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s\n\n", title)
	fmt.Fprintf(&doc, "```\n%s\n```\n", body)
	if notes != "" {
		fmt.Fprintf(&doc, "\n## Speaker Notes\n\n%s\n", notes)
	}

	return os.WriteFile(filepath.Join(tf.workspace, name), []byte(doc.String()), 0644)
}

// WriteDeckTitle writes the _title.md file that names the deck
func (tf *TUITestFramework) WriteDeckTitle(title string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	return os.WriteFile(filepath.Join(tf.workspace, "_title.md"), []byte(title+"\n"), 0644)
}
