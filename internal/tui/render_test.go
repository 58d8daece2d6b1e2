package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRender_TabStripAndStatusBar(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.openPanel("about")
	m.openPanel("resume")

	out := ansi.Strip(m.View())

	for _, want := range []string{"about.md", "resume.md", "×", "resume.md 2/2", "editor"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRender_SidebarFollowsCollapse(t *testing.T) {
	m, _ := CreateTestModel(t)

	if strings.Contains(ansi.Strip(m.View()), "EXPLORER") {
		t.Error("sidebar should be hidden with no view")
	}

	press(m, "alt+1")
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "EXPLORER") {
		t.Error("sidebar title missing")
	}
	if !strings.Contains(out, "[1/3]") {
		t.Error("sidebar position missing")
	}

	press(m, "ctrl+b")
	if strings.Contains(ansi.Strip(m.View()), "EXPLORER") {
		t.Error("collapsed sidebar should not render")
	}
}

func TestRender_WelcomeAfterClosingAll(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.openPanel("about")
	m.openPanel("resume")

	press(m, "w", "w")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Welcome. No panel is open.") {
		t.Error("welcome screen should return once every tab is closed")
	}
}

func TestPanelContent_Keybindings(t *testing.T) {
	m, _ := CreateTestModel(t)

	out := ansi.Strip(m.panelContent(keybindingsTab(), 80))

	for _, want := range []string{"Quick open", "ctrl+p", "Close tab"} {
		if !strings.Contains(out, want) {
			t.Errorf("keybindings panel missing %q", want)
		}
	}
}

func TestPanelContent_SnippetsAndDemos(t *testing.T) {
	m, _ := CreateTestModel(t)
	tab, _ := m.portfolio.Panel("proj-tracer")

	out := ansi.Strip(m.panelContent(tab.Tab(), 80))

	for _, want := range []string{"Snippets", "[1] Batching loop", "Demos", "https://example.com/tracer", "s preview"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q", want)
		}
	}
}

func TestPanelContent_UnknownPanel(t *testing.T) {
	m, _ := CreateTestModel(t)
	tab := keybindingsTab()
	tab.ContentRef = "gone"

	out := m.panelContent(tab, 80)

	if !strings.Contains(out, "Panel not found: gone") {
		t.Errorf("got %q", out)
	}
}

func TestRender_Palette(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, "ctrl+p")

	out := ansi.Strip(m.View())

	for _, want := range []string{"Quick Open", "about.md", "Help"} {
		if !strings.Contains(out, want) {
			t.Errorf("palette missing %q", want)
		}
	}
}
