// Package views renders presentation frames. Frame construction is pure:
// the same FrameContext always produces the same lines, and nothing here
// talks to the terminal.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"termdeck/internal/domain"
	"termdeck/internal/session"
)

const noNotesPlaceholder = "(no speaker notes)"

// IndexEntry is one row of the slide-index view.
type IndexEntry struct {
	Index int
	Title string
}

// FrameContext carries everything a single frame depends on.
type FrameContext struct {
	Slide    domain.Slide
	HasSlide bool // false when the deck is empty
	Count    int
	Titles   []IndexEntry

	DeckTitle string
	Width     int
	Height    int

	Mode          session.ViewMode
	Scroll        int // body scroll offset (normal mode)
	IndexCursor   int
	OverlayScroll int // notes/help scroll offset

	Flash        string
	Prompt       string // active text-input prompt; takes over the status bar
	ProgressView string // pre-rendered progress bar, "" to leave the row blank
	ShowProgress bool
	ShowTitle    bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	help   []string
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete frame as a single string.
func (r *Renderer) Render(ctx FrameContext) string {
	return strings.Join(r.Frame(ctx), "\n")
}

// Frame produces the display lines for one frame: a header row, a body
// window padded to a fixed number of rows, and a two-row footer. The
// footer lands on the same row no matter how long the slide content is.
func (r *Renderer) Frame(ctx FrameContext) []string {
	if ctx.Width <= 0 {
		ctx.Width = 80
	}
	if ctx.Height <= 0 {
		ctx.Height = 24
	}
	rows := session.BodyRows(ctx.Height)

	content, offset := r.bodyContent(ctx, rows)

	frame := make([]string, 0, ctx.Height)
	frame = append(frame, r.renderHeader(ctx))
	frame = append(frame, r.window(content, offset, rows, ctx.Width)...)
	frame = append(frame, r.renderStatus(ctx))
	frame = append(frame, r.renderProgressRow(ctx))
	return frame
}

// OverlayExtent returns how many content lines the given overlay renders
// to, for scroll clamping. Zero for modes that scroll the slide body.
func (r *Renderer) OverlayExtent(mode session.ViewMode, slide domain.Slide, width int) int {
	switch mode {
	case session.ModeNotes:
		return len(r.notesLines(slide.Notes, width))
	case session.ModeHelp:
		return len(r.helpLines())
	default:
		return 0
	}
}

// bodyContent picks the lines the body window shows and the scroll offset
// that applies to them.
func (r *Renderer) bodyContent(ctx FrameContext, rows int) ([]string, int) {
	if !ctx.HasSlide && ctx.Mode != session.ModeHelp {
		return []string{"", r.styles.Dim.Render("No slides loaded."), "", r.styles.Dim.Render("Add *.md files to the slides directory and press r.")}, 0
	}

	switch ctx.Mode {
	case session.ModeNotes:
		return r.notesLines(ctx.Slide.Notes, ctx.Width), ctx.OverlayScroll
	case session.ModeIndex:
		return r.indexLines(ctx, rows)
	case session.ModeHelp:
		return r.helpLines(), ctx.OverlayScroll
	default:
		return centerBlock(ctx.Slide.BodyLines, rows, ctx.Width), ctx.Scroll
	}
}

// centerBlock centers slide content that fits the body window: the block
// is indented as a whole so column alignment inside it survives, and
// padded down to the vertical middle. Overflowing content is left where
// it is so scrolling stays predictable.
func centerBlock(lines []string, rows, width int) []string {
	if len(lines) == 0 || len(lines) > rows {
		return lines
	}

	maxw := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxw {
			maxw = w
		}
	}
	indent := ""
	if maxw < width {
		indent = strings.Repeat(" ", (width-maxw)/2)
	}

	centered := make([]string, 0, rows)
	for i := 0; i < (rows-len(lines))/2; i++ {
		centered = append(centered, "")
	}
	for _, line := range lines {
		if line == "" {
			centered = append(centered, "")
			continue
		}
		centered = append(centered, indent+line)
	}
	return centered
}

// window extracts a fixed-size view of content, blank-padding short
// content so the rows below stay pinned, and swapping the edge rows for
// overflow indicators when lines are hidden past either end.
func (r *Renderer) window(content []string, offset, rows, width int) []string {
	maxOffset := len(content) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	visible := make([]string, rows)
	for i := 0; i < rows; i++ {
		if idx := offset + i; idx < len(content) {
			visible[i] = r.fitLine(content[idx], width)
		}
	}
	if offset > 0 {
		visible[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if offset+rows < len(content) {
		visible[rows-1] = r.styles.Scroll.Render("↓ (more below)")
	}
	return visible
}

// fitLine truncates an overwide line with a visible marker. Slide bodies
// are authored to a fixed width; wrapping would corrupt box-drawing
// alignment, so lossy truncation is the fallback.
func (r *Renderer) fitLine(line string, width int) string {
	if runewidth.StringWidth(line) <= width {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}

func (r *Renderer) renderHeader(ctx FrameContext) string {
	var left string
	switch {
	case !ctx.HasSlide:
		left = r.styles.Header.Render("termdeck")
	default:
		left = r.styles.Header.Render(fmt.Sprintf("[%d/%d] %s", ctx.Slide.Index, ctx.Count, ctx.Slide.Title))
	}
	if tag := modeTag(ctx.Mode); tag != "" {
		left = left + " " + r.styles.Dim.Render(tag)
	}

	right := ""
	if ctx.ShowTitle && ctx.DeckTitle != "" {
		right = r.styles.DeckTitle.Render(ctx.DeckTitle)
	}
	if right == "" {
		return left
	}

	padding := ctx.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		return left
	}
	return left + strings.Repeat(" ", padding) + right
}

func modeTag(mode session.ViewMode) string {
	switch mode {
	case session.ModeNotes:
		return "· speaker notes"
	case session.ModeIndex:
		return "· slide index"
	case session.ModeHelp:
		return "· help"
	default:
		return ""
	}
}

// renderStatus builds the reverse-video status bar: position and scroll
// state on the left, hints (or the transient flash message) on the right.
func (r *Renderer) renderStatus(ctx FrameContext) string {
	left := " no slides"
	switch {
	case ctx.Prompt != "":
		left = " " + ctx.Prompt
	case ctx.HasSlide:
		left = fmt.Sprintf(" [%d/%d]", ctx.Slide.Index, ctx.Count)
		if ind := r.scrollIndicator(ctx); ind != "" {
			left += " " + ind
		}
		left += "  " + ctx.Slide.Title
	}

	right := r.hints(ctx)
	if ctx.Prompt != "" {
		right = "[enter]go [esc]cancel"
	}
	if ctx.Flash != "" {
		right = "! " + ctx.Flash
	}

	padding := ctx.Width - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 1
	if padding < 1 {
		left = runewidth.Truncate(left, max(0, ctx.Width-runewidth.StringWidth(right)-2), "…")
		padding = 1
	}
	line := left + strings.Repeat(" ", padding) + right + " "
	if w := runewidth.StringWidth(line); w < ctx.Width {
		line += strings.Repeat(" ", ctx.Width-w)
	} else if w > ctx.Width {
		line = runewidth.Truncate(line, ctx.Width, "")
	}
	return r.styles.Status.Render(line)
}

// scrollIndicator reports scroll position within the active view, empty
// when everything fits.
func (r *Renderer) scrollIndicator(ctx FrameContext) string {
	rows := session.BodyRows(ctx.Height)

	var offset, total int
	switch ctx.Mode {
	case session.ModeNormal:
		offset, total = ctx.Scroll, len(ctx.Slide.BodyLines)
	case session.ModeNotes, session.ModeHelp:
		offset, total = ctx.OverlayScroll, r.OverlayExtent(ctx.Mode, ctx.Slide, ctx.Width)
	default:
		return ""
	}
	if total <= rows {
		return ""
	}
	return fmt.Sprintf("↕%d/%d", offset+1, total-rows+1)
}

func (r *Renderer) hints(ctx FrameContext) string {
	switch ctx.Mode {
	case session.ModeIndex:
		return "[j/k]move [enter]go [i/esc]close"
	case session.ModeHelp:
		return "[j/k]scroll [?/esc]close"
	case session.ModeNotes:
		return "[N]pager [n/p]slide [s/esc]close"
	default:
		if len(ctx.Slide.BodyLines) > session.BodyRows(ctx.Height) {
			return "[j/k]scroll [n]ext [p]rev [q]uit"
		}
		return "[s]notes [i]ndex [n]ext [p]rev [?]help [q]uit"
	}
}

// renderProgressRow keeps the frame height fixed whether or not the
// progress bar is enabled.
func (r *Renderer) renderProgressRow(ctx FrameContext) string {
	if !ctx.ShowProgress {
		return ""
	}
	return ctx.ProgressView
}

// notesLines wraps the speaker notes to the viewport width. Notes are
// prose, unlike slide bodies, so wrapping is wanted here.
func (r *Renderer) notesLines(notes string, width int) []string {
	if strings.TrimSpace(notes) == "" {
		return []string{"", r.styles.Placeholder.Render(noNotesPlaceholder)}
	}
	wrapWidth := width - 2
	if wrapWidth < 10 {
		wrapWidth = 10
	}
	wrapped := wordwrap.String(notes, wrapWidth)
	return strings.Split(wrapped, "\n")
}

// indexLines renders the slide list with the cursor row highlighted and
// returns the scroll offset that keeps the cursor visible.
func (r *Renderer) indexLines(ctx FrameContext, rows int) ([]string, int) {
	if len(ctx.Titles) == 0 {
		return []string{r.styles.Dim.Render("(no slides)")}, 0
	}

	lines := make([]string, 0, len(ctx.Titles))
	for i, entry := range ctx.Titles {
		if i == ctx.IndexCursor {
			line := fmt.Sprintf("▶ %2d. %s", entry.Index, entry.Title)
			if pad := ctx.Width - runewidth.StringWidth(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			lines = append(lines, r.styles.Highlight.Render(line))
		} else {
			number := r.styles.IndexNumber.Render(fmt.Sprintf("%2d.", entry.Index))
			lines = append(lines, fmt.Sprintf("  %s %s", number, entry.Title))
		}
	}

	// Keep one row free below the cursor: window swaps the edge rows for
	// overflow indicators, and the cursor must never sit under one.
	offset := ctx.IndexCursor - rows + 2
	if offset < 0 {
		offset = 0
	}
	if maxOffset := len(lines) - rows; offset > maxOffset {
		offset = maxOffset
		if offset < 0 {
			offset = 0
		}
	}
	return lines, offset
}
