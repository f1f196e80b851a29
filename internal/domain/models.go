package domain

// Document is one slide source as it exists on disk. Name is the
// identifying key the deck is ordered by (the filename), Text is the
// raw file content.
type Document struct {
	Name string
	Text string
}

// Slide represents one parsed unit of presentation content
type Slide struct {
	Index     int      // 1-based position in the deck, assigned at build time
	Title     string   // display string for headers and the index view
	BodyLines []string // pre-formatted terminal rows, verbatim from the source
	Notes     string   // speaker-only text, never shown on the slide itself
}

// HasNotes reports whether the slide carries speaker notes
func (s Slide) HasNotes() bool {
	return s.Notes != ""
}
