package viz

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
)

func TestStylesFollowTheme(t *testing.T) {
	a := stylesFor(ThemeCyberpunk)
	b := stylesFor(ThemeRetroGreen)

	if a.label.GetForeground() == b.label.GetForeground() {
		t.Error("label style does not follow the theme")
	}
	if a.value.GetForeground() == b.value.GetForeground() {
		t.Error("value style does not follow the theme")
	}
	if a.graph.GetForeground() == b.graph.GetForeground() {
		t.Error("graph style does not follow the theme")
	}

	if got := a.header.GetForeground(); got != ThemeCyberpunk.Accent {
		t.Errorf("header foreground = %v, want theme accent %v", got, ThemeCyberpunk.Accent)
	}
	if got := b.graph.GetForeground(); got != ThemeRetroGreen.Primary {
		t.Errorf("graph foreground = %v, want theme primary %v", got, ThemeRetroGreen.Primary)
	}
}

func TestModel_ThemeKeyCycles(t *testing.T) {
	prev := CurrentTheme.Name
	defer SetTheme(prev)

	m := NewModel(shower.Momentum{X: 100, Y: 100, Z: 100}, 0.785, 2, 1, false)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}
	m.Update(msg)
	if CurrentTheme.Name == prev {
		t.Error("theme key did not cycle the current theme")
	}
}
