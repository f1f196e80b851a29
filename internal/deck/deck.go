// Package deck builds and holds the ordered collection of slides for one
// presentation. A deck is constructed once at startup and read-only after
// that; the navigation session only ever holds a cursor into it.
package deck

import (
	"fmt"
	"iter"
	"log"

	"termdeck/internal/domain"
	"termdeck/internal/parser"
)

// Options controls deck construction policy.
type Options struct {
	// Title is the presentation-wide title shown in the footer (may be "").
	Title string

	// AllowEmpty permits a deck with zero slides. When false, Build fails
	// with ErrEmptyDeck if no usable documents remain.
	AllowEmpty bool

	// SkipMalformed makes Build drop documents that fail to parse and
	// report them as Problems instead of aborting on the first failure.
	SkipMalformed bool
}

// Problem records a document that was skipped during construction.
type Problem struct {
	Name string
	Err  error
}

// Deck is the ordered, immutable collection of loaded slides.
type Deck struct {
	title  string
	slides []domain.Slide
}

// Build parses the given documents into a deck. The documents must already
// be sorted by their identifying name; their position in the input is the
// presentation order and assigns each slide its 1-based index.
//
// When opts.SkipMalformed is set, malformed documents are dropped and
// returned as Problems; otherwise the first parse failure aborts the build.
func Build(docs []domain.Document, opts Options) (*Deck, []Problem, error) {
	d := &Deck{title: opts.Title}
	var problems []Problem

	for _, doc := range docs {
		slide, err := parser.Parse(doc, len(d.slides)+1)
		if err != nil {
			if !opts.SkipMalformed {
				return nil, nil, fmt.Errorf("building deck: %w", err)
			}
			log.Printf("Skipping slide document %s: %v", doc.Name, err)
			problems = append(problems, Problem{Name: doc.Name, Err: err})
			continue
		}
		d.slides = append(d.slides, slide)
	}

	if len(d.slides) == 0 && !opts.AllowEmpty {
		return nil, problems, domain.ErrEmptyDeck
	}
	return d, problems, nil
}

// Count returns the number of slides.
func (d *Deck) Count() int {
	return len(d.slides)
}

// Title returns the presentation title, which may be empty.
func (d *Deck) Title() string {
	return d.title
}

// SlideAt returns the slide at the given 0-based position. Out-of-range
// access is caller misuse, not a user-reachable state.
func (d *Deck) SlideAt(i int) (domain.Slide, error) {
	if i < 0 || i >= len(d.slides) {
		return domain.Slide{}, fmt.Errorf("slide %d of %d: %w", i, len(d.slides), domain.ErrSlideOutOfRange)
	}
	return d.slides[i], nil
}

// Titles yields (index, title) pairs in presentation order for the
// index view. Indexes are 1-based, matching what presenters see.
func (d *Deck) Titles() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, s := range d.slides {
			if !yield(s.Index, s.Title) {
				return
			}
		}
	}
}
