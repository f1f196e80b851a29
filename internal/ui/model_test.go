package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/config"
	"termdeck/internal/deck"
	"termdeck/internal/domain"
	"termdeck/internal/session"
)

func slideDoc(n int) domain.Document {
	return domain.Document{
		Name: fmt.Sprintf("%02d.md", n),
		Text: fmt.Sprintf("# Slide %d\n\n```\nbody %d\n```\n", n, n),
	}
}

func testDeck(t *testing.T, n int) *deck.Deck {
	t.Helper()
	docs := make([]domain.Document, n)
	for i := range docs {
		docs[i] = slideDoc(i + 1)
	}
	d, problems, err := deck.Build(docs, deck.Options{Title: "Test Deck"})
	require.NoError(t, err)
	require.Empty(t, problems)
	return d
}

func press(m *Model, key tea.KeyMsg) {
	m.Update(key)
}

func pressRune(m *Model, r rune) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestModelAdvancesAndShowsPosition(t *testing.T) {
	m := NewModel(testDeck(t, 3), config.Default(), "")

	assert.Contains(t, m.View(), "[1/3] Slide 1")

	pressRune(m, 'n')
	assert.Contains(t, m.View(), "[2/3] Slide 2")

	pressRune(m, 'p')
	assert.Contains(t, m.View(), "[1/3] Slide 1")
}

func TestModelResizesFrame(t *testing.T) {
	m := NewModel(testDeck(t, 2), config.Default(), "")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.sess.Width())
	assert.Equal(t, 30, m.sess.Height())
}

func TestModelQuitKeyStopsProgram(t *testing.T) {
	m := NewModel(testDeck(t, 2), config.Default(), "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelGotoPromptIsShownInStatusBar(t *testing.T) {
	m := NewModel(testDeck(t, 5), config.Default(), "")

	pressRune(m, 'g')
	assert.Contains(t, m.View(), "go to slide:")

	pressRune(m, '4')
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "[4/5] Slide 4")
	assert.NotContains(t, m.View(), "go to slide:")
}

func TestModelInvalidGotoShowsFlash(t *testing.T) {
	m := NewModel(testDeck(t, 3), config.Default(), "")

	pressRune(m, 'g')
	pressRune(m, '9')
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "no slide 9")
	assert.Contains(t, view, "[1/3]", "position is unchanged")
}

func TestModelIndexJump(t *testing.T) {
	m := NewModel(testDeck(t, 4), config.Default(), "")

	pressRune(m, 'i')
	assert.Equal(t, session.ModeIndex, m.sess.Mode())
	assert.Contains(t, m.View(), "slide index")

	pressRune(m, 'j')
	pressRune(m, 'j')
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, session.ModeNormal, m.sess.Mode())
	assert.Contains(t, m.View(), "[3/4] Slide 3")
}

func TestModelHelpOverlay(t *testing.T) {
	m := NewModel(testDeck(t, 2), config.Default(), "")

	pressRune(m, '?')
	assert.Contains(t, m.View(), "next slide")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, session.ModeNormal, m.sess.Mode())
}

func TestModelReloadPicksUpNewSlides(t *testing.T) {
	dir := t.TempDir()
	write := func(name, text string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
	}
	write("01.md", slideDoc(1).Text)

	m := NewModel(testDeck(t, 1), config.Default(), dir)
	assert.Contains(t, m.View(), "[1/1]")

	write("02.md", slideDoc(2).Text)
	pressRune(m, 'r')

	view := m.View()
	assert.Contains(t, view, "[1/2]")
	assert.Contains(t, view, "reloaded 2 slides")
}

func TestModelReloadKeepsPosition(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 3; i++ {
		doc := slideDoc(i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, doc.Name), []byte(doc.Text), 0o644))
	}

	m := NewModel(testDeck(t, 3), config.Default(), dir)
	pressRune(m, 'n')
	pressRune(m, 'n')
	require.Contains(t, m.View(), "[3/3]")

	pressRune(m, 'r')
	assert.Contains(t, m.View(), "[3/3]")
}

func TestModelReloadClampsPositionWhenDeckShrinks(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 3; i++ {
		doc := slideDoc(i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, doc.Name), []byte(doc.Text), 0o644))
	}

	m := NewModel(testDeck(t, 3), config.Default(), dir)
	pressRune(m, 'l')
	require.Contains(t, m.View(), "[3/3]")

	require.NoError(t, os.Remove(filepath.Join(dir, "03.md")))
	pressRune(m, 'r')

	view := m.View()
	assert.Contains(t, view, "[2/2]")
	assert.Contains(t, view, "reloaded 2 slides")
}

func TestModelReloadKeepsOverlayOpen(t *testing.T) {
	dir := t.TempDir()
	doc := slideDoc(1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, doc.Name), []byte(doc.Text), 0o644))

	m := NewModel(testDeck(t, 1), config.Default(), dir)
	pressRune(m, 'i')
	require.Equal(t, session.ModeIndex, m.sess.Mode())

	pressRune(m, 'r')
	assert.Equal(t, session.ModeIndex, m.sess.Mode())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	pressRune(m, '?')
	pressRune(m, 'r')
	assert.Equal(t, session.ModeHelp, m.sess.Mode())
}

func TestModelNoticeClearsOnNextKey(t *testing.T) {
	dir := t.TempDir()
	doc := slideDoc(1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, doc.Name), []byte(doc.Text), 0o644))

	m := NewModel(testDeck(t, 1), config.Default(), dir)
	pressRune(m, 'r')
	assert.Contains(t, m.View(), "reloaded")

	pressRune(m, 'n')
	assert.NotContains(t, m.View(), "reloaded")
}
