// Package parser turns slide source documents into structured slides.
//
// A slide document is markdown-shaped plain text with three recognized
// regions: a title heading, an optional fenced block holding the
// pre-formatted slide body, and an optional trailing "Speaker Notes"
// section. Anything else is commentary and is ignored.
package parser

import (
	"regexp"
	"strings"

	"termdeck/internal/domain"
)

var patterns = struct {
	heading    *regexp.Regexp
	fence      *regexp.Regexp
	notesStart *regexp.Regexp
}{
	heading:    regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`),
	fence:      regexp.MustCompile("^\\s*```"),
	notesStart: regexp.MustCompile(`(?i)^#{1,6}\s+speaker notes\s*$`),
}

// Parse converts one document into a Slide. expectedIndex is the document's
// 1-based position in the load order and is authoritative for Slide.Index;
// any numbering embedded in the title heading is informational only, so a
// mis-numbered heading cannot corrupt navigation.
//
// A document without a recognizable title heading fails with a ParseError.
// A missing fenced block yields an empty body and a missing notes section
// yields empty notes; neither is an error.
func Parse(doc domain.Document, expectedIndex int) (domain.Slide, error) {
	lines := splitLines(doc.Text)

	// The notes heading ends the region the body may live in.
	notesAt := len(lines)
	for i, line := range lines {
		if patterns.notesStart.MatchString(line) {
			notesAt = i
			break
		}
	}

	title, ok := findTitle(lines[:notesAt])
	if !ok {
		return domain.Slide{}, &domain.ParseError{Name: doc.Name, Reason: "missing title heading"}
	}

	return domain.Slide{
		Index:     expectedIndex,
		Title:     title,
		BodyLines: extractBody(lines[:notesAt]),
		Notes:     extractNotes(lines, notesAt),
	}, nil
}

// findTitle returns the text of the first heading line.
func findTitle(lines []string) (string, bool) {
	for _, line := range lines {
		if m := patterns.heading.FindStringSubmatch(line); m != nil {
			return m[2], true
		}
	}
	return "", false
}

// extractBody returns the lines inside the first fenced block, verbatim.
// Interior spacing is significant for column alignment and is preserved
// exactly; only the line terminator is removed (by splitLines).
func extractBody(lines []string) []string {
	var body []string
	inFence := false
	for _, line := range lines {
		if patterns.fence.MatchString(line) {
			if inFence {
				return body
			}
			inFence = true
			body = []string{}
			continue
		}
		if inFence {
			body = append(body, line)
		}
	}
	// Unterminated fence: treat everything after the opening fence as body,
	// matching how a simple scan of the original format behaves.
	return body
}

// extractNotes returns the text after the notes heading with leading and
// trailing blank lines trimmed and internal formatting preserved.
func extractNotes(lines []string, notesAt int) string {
	if notesAt >= len(lines) {
		return ""
	}
	notes := lines[notesAt+1:]

	start := 0
	for start < len(notes) && strings.TrimSpace(notes[start]) == "" {
		start++
	}
	end := len(notes)
	for end > start && strings.TrimSpace(notes[end-1]) == "" {
		end--
	}
	return strings.Join(notes[start:end], "\n")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A trailing newline produces one empty phantom line; drop it.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
