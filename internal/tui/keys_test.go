package tui

import (
	"testing"

	"github.com/studiowebux/folio/internal/shell"
)

func TestViewKey_ContentBearingOpensLanding(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "alt+1")

	AssertModelField(t, "active view", m.state.Sidebar.ActiveView(), shell.ViewExplorer)
	AssertModelField(t, "tabs", m.state.Tabs.Len(), 1)
	AssertModelField(t, "active tab", m.state.Tabs.ActiveID(), "about")
	AssertModelField(t, "focus", m.focus, FocusSidebar)
	AssertModelField(t, "cursor on landing", m.sidebarCursor, 0)
}

func TestViewKey_PlainSectionOnlyOpensView(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "alt+2")

	AssertModelField(t, "active view", m.state.Sidebar.ActiveView(), shell.ViewProjects)
	AssertModelField(t, "tabs", m.state.Tabs.Len(), 0)
}

func TestViewKey_RepeatDoesNotDuplicate(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "alt+1", "alt+5", "alt+1")

	AssertModelField(t, "tabs", m.state.Tabs.Len(), 2)
	AssertModelField(t, "active tab", m.state.Tabs.ActiveID(), "about")
}

func TestSidebar_DigitSelectsView(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "alt+1", "3")

	AssertModelField(t, "active view", m.state.Sidebar.ActiveView(), shell.ViewSkills)
	AssertModelField(t, "active tab", m.state.Tabs.ActiveID(), "skills")
}

func TestSidebar_SelectOpensEntry(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "alt+2", "down", "enter")

	AssertModelField(t, "active tab", m.state.Tabs.ActiveID(), "proj-kvstore")
	AssertModelField(t, "tabs", m.state.Tabs.Len(), 1)

	press(m, "up", "enter")
	AssertModelField(t, "active tab", m.state.Tabs.ActiveID(), "proj-tracer")
	AssertModelField(t, "tabs", m.state.Tabs.Len(), 2)
}

func TestSidebar_NavigationClamps(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "alt+2", "up")
	AssertModelField(t, "cursor at top", m.sidebarCursor, 0)

	press(m, "G")
	AssertModelField(t, "cursor at bottom", m.sidebarCursor, 2)

	press(m, "down", "j")
	AssertModelField(t, "cursor clamped", m.sidebarCursor, 2)

	press(m, "g")
	AssertModelField(t, "cursor back to top", m.sidebarCursor, 0)
}

func TestTabs_Cycling(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.openPanel("about")
	m.openPanel("resume")
	m.openPanel("readme")

	press(m, "]")
	AssertModelField(t, "next wraps", m.state.Tabs.ActiveID(), "about")

	press(m, "[")
	AssertModelField(t, "prev wraps", m.state.Tabs.ActiveID(), "readme")

	press(m, "ctrl+left")
	AssertModelField(t, "ctrl+left", m.state.Tabs.ActiveID(), "resume")
}

func TestTabs_CloseActiveFocusesLast(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.openPanel("about")
	m.openPanel("resume")
	m.openPanel("readme")
	m.state.Tabs.SetActive("about")

	press(m, "w")

	AssertModelField(t, "tabs", m.state.Tabs.Len(), 2)
	AssertModelField(t, "active is last remaining", m.state.Tabs.ActiveID(), "readme")

	press(m, "w", "w")
	AssertModelField(t, "tabs", m.state.Tabs.Len(), 0)
	AssertModelField(t, "no active", m.state.Tabs.ActiveID(), "")

	press(m, "w")
	AssertModelField(t, "close on empty is a no-op", m.state.Tabs.Len(), 0)
}

func TestTabs_CloseOthers(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.openPanel("about")
	m.openPanel("resume")
	m.openPanel("readme")
	m.state.Tabs.SetActive("resume")

	press(m, "W")

	AssertModelField(t, "tabs", m.state.Tabs.Len(), 1)
	AssertModelField(t, "kept", m.state.Tabs.ActiveID(), "resume")
}

func TestToggleSidebar(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, "alt+1")

	press(m, "ctrl+b")
	AssertModelField(t, "collapsed", m.state.Sidebar.Collapsed(), true)
	AssertModelField(t, "view kept", m.state.Sidebar.ActiveView(), shell.ViewExplorer)
	AssertModelField(t, "focus moves to editor", m.focus, FocusEditor)

	press(m, "tab")
	AssertModelField(t, "collapsed sidebar cannot take focus", m.focus, FocusEditor)

	press(m, "ctrl+b")
	AssertModelField(t, "expanded", m.state.Sidebar.Expanded(), true)

	press(m, "tab")
	AssertModelField(t, "focus sidebar", m.focus, FocusSidebar)
}

func TestViewKey_UncollapsesSidebar(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, "alt+1", "ctrl+b")

	press(m, "alt+4")

	AssertModelField(t, "collapsed", m.state.Sidebar.Collapsed(), false)
	AssertModelField(t, "active view", m.state.Sidebar.ActiveView(), shell.ViewExperience)
}

func TestCloseView(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, "alt+1")

	press(m, "esc")

	AssertModelField(t, "active view", m.state.Sidebar.ActiveView(), shell.ViewNone)
	AssertModelField(t, "focus", m.focus, FocusEditor)
	AssertModelField(t, "tab kept open", m.state.Tabs.ActiveID(), "about")
}

func TestCycleView(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "ctrl+down")
	AssertModelField(t, "from none", m.state.Sidebar.ActiveView(), shell.ViewExplorer)

	press(m, "ctrl+down")
	AssertModelField(t, "next", m.state.Sidebar.ActiveView(), shell.ViewProjects)

	press(m, "ctrl+up", "ctrl+up")
	AssertModelField(t, "prev wraps", m.state.Sidebar.ActiveView(), shell.ViewContact)
}

func TestShowKeybindings(t *testing.T) {
	m, _ := CreateTestModel(t)

	press(m, "?")

	AssertModelField(t, "active tab", m.state.Tabs.ActiveID(), KeybindingsPanelID)
	AssertModelField(t, "focus", m.focus, FocusEditor)
}

func TestQuit(t *testing.T) {
	tests := []string{"q", "ctrl+c"}

	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			m, _ := CreateTestModel(t)
			if !isQuit(press(m, key)) {
				t.Errorf("%s should quit", key)
			}
		})
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.openPanel("about")

	cmd := press(m, "z")

	if cmd != nil {
		t.Error("unbound key should not produce a command")
	}
	AssertModelField(t, "tabs", m.state.Tabs.Len(), 1)
}
