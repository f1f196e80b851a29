package views

import "fmt"

// helpLines builds the key-reference overlay. The lines are static apart
// from styling, so the result is cached on the renderer.
func (r *Renderer) helpLines() []string {
	if r.help != nil {
		return r.help
	}

	key := func(k, desc string) string {
		return fmt.Sprintf("  %s  %s", r.styles.HelpKey.Render(fmt.Sprintf("%-18s", k)), r.styles.HelpDesc.Render(desc))
	}
	section := func(title string) string {
		return r.styles.HelpSection.Render(title)
	}

	r.help = []string{
		"",
		section("Navigation"),
		key("n, space, →, enter", "next slide"),
		key("p, ←, backspace", "previous slide"),
		key("f / l", "first / last slide"),
		key("g", "go to slide number"),
		"",
		section("Scrolling"),
		key("j, ↓", "scroll down"),
		key("k, ↑", "scroll up"),
		"",
		section("Views"),
		key("s", "toggle speaker notes"),
		key("N", "open notes in pager"),
		key("i", "toggle slide index"),
		key("?, h", "toggle this help"),
		key("r", "reload deck and redraw"),
		"",
		key("q, esc, ctrl+c", "quit"),
	}
	return r.help
}
