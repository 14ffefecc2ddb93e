package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberterm/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestNavigation(t *testing.T) {
	splash := &fakeScreen{name: "splash"}
	term := &fakeScreen{name: "terminal"}
	output := &fakeScreen{name: "output"}

	steps := []struct {
		msg       tea.Msg
		wantView  string
		wantDepth int
	}{
		{ReplaceScreenMsg{Screen: term}, "terminal", 1},
		{PushScreenMsg{Screen: output}, "output", 2},
		{PopScreenMsg{}, "terminal", 1},
		{PopScreenMsg{}, "terminal", 1}, // never pops the last screen
	}

	r := New(splash)
	for i, st := range steps {
		r.Update(st.msg)
		if got := r.View(80, 24); got != st.wantView {
			t.Errorf("step %d: view = %q, want %q", i, got, st.wantView)
		}
		if r.Depth() != st.wantDepth {
			t.Errorf("step %d: depth = %d, want %d", i, r.Depth(), st.wantDepth)
		}
	}

	if term.inits != 1 || output.inits != 1 {
		t.Errorf("inits: terminal=%d output=%d, want 1 each", term.inits, output.inits)
	}
	if term.updates != 0 {
		t.Errorf("navigation messages reached the screen %d times", term.updates)
	}
}

func TestReplaceKeepsScreensBelow(t *testing.T) {
	base := &fakeScreen{name: "terminal"}
	r := New(base)
	r.Push(&fakeScreen{name: "output: help"})
	r.Replace(&fakeScreen{name: "output: topics"})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	r.Pop()
	if r.Active() != base {
		t.Errorf("active = %q after pop, want terminal", r.Active().Title())
	}
}

func TestUpdateReachesOnlyActive(t *testing.T) {
	below := &fakeScreen{name: "terminal"}
	top := &fakeScreen{name: "output"}
	r := New(below)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	if top.updates != 1 || below.updates != 0 {
		t.Errorf("updates: top=%d below=%d, want 1 and 0", top.updates, below.updates)
	}
}
