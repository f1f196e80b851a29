package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"termdeck/internal/config"
	"termdeck/internal/deck"
	"termdeck/internal/discovery"
	"termdeck/internal/domain"
	"termdeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var slidesDir string
	flag.StringVar(&slidesDir, "dir", "", "Directory containing slide files")
	flag.StringVar(&slidesDir, "d", "", "Directory containing slide files (shorthand)")
	flag.Parse()

	if slidesDir == "" && flag.NArg() > 0 {
		slidesDir = flag.Arg(0)
	}
	if slidesDir == "" {
		slidesDir = "slides"
	}

	absDir, err := filepath.Abs(slidesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termdeck: resolving %s: %v\n", slidesDir, err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("termdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.LoadDir(absDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termdeck: %v\n", err)
		os.Exit(1)
	}

	docs, deckTitle, err := discovery.LoadDir(absDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termdeck: %v\n", err)
		os.Exit(1)
	}

	d, problems, err := deck.Build(docs, deck.Options{
		Title:         deckTitle,
		SkipMalformed: cfg.SkipMalformed(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDeck) {
			fmt.Fprintf(os.Stderr, "termdeck: no usable slides in %s\n", absDir)
		} else {
			fmt.Fprintf(os.Stderr, "termdeck: %v\n", err)
		}
		os.Exit(1)
	}
	for _, problem := range problems {
		fmt.Fprintf(os.Stderr, "termdeck: skipping %s: %v\n", problem.Name, problem.Err)
	}

	checkSlideWidths(d, cfg.TargetWidth)

	model := ui.NewModel(d, cfg, absDir)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	log.Printf("Starting presentation: %d slides from %s", d.Count(), absDir)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "termdeck: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Presentation exited normally")
}

// checkSlideWidths logs slides whose body lines exceed the configured
// target width. They still present, but will be truncated on narrow
// terminals.
func checkSlideWidths(d *deck.Deck, target int) {
	for i := 0; i < d.Count(); i++ {
		slide, err := d.SlideAt(i)
		if err != nil {
			continue
		}
		for _, line := range slide.BodyLines {
			if runewidth.StringWidth(line) > target {
				log.Printf("Slide %d (%s) has lines wider than %d columns", slide.Index, slide.Title, target)
				break
			}
		}
	}
}
