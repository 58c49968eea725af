package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/grain/internal/schedule"
	sourcepkg "github.com/kk-code-lab/grain/internal/source"
	statepkg "github.com/kk-code-lab/grain/internal/state"
	inputui "github.com/kk-code-lab/grain/internal/ui/input"
	renderui "github.com/kk-code-lab/grain/internal/ui/render"
)

func newTestApplication(t *testing.T, src sourcepkg.Config) *Application {
	t.Helper()

	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(80, 26)

	actionCh := make(chan statepkg.Action, 10)
	return &Application{
		screen:   scr,
		state:    &statepkg.AppState{ScreenWidth: 80, ScreenHeight: 26},
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(scr, renderui.Status{Source: src.Describe(), Interval: "1s"}),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
		sched:    schedule.New(time.Now()),
		source:   src,
		interval: time.Second,
	}
}

func TestHandleActionQuit(t *testing.T) {
	app := newTestApplication(t, sourcepkg.Config{})

	app.handleAction(statepkg.QuitAction{})
	if !app.shouldQuit {
		t.Error("QuitAction did not request shutdown")
	}
}

func TestHandleActionAppliesNavigation(t *testing.T) {
	app := newTestApplication(t, sourcepkg.Config{})
	app.state.Lines = make([]string, 100)

	app.handleAction(statepkg.ScrollDownAction{})
	if app.state.ScrollY != 1 {
		t.Errorf("ScrollY = %d, want 1", app.state.ScrollY)
	}
}

func TestProcessActionsDrainsQueue(t *testing.T) {
	app := newTestApplication(t, sourcepkg.Config{})
	app.state.Lines = make([]string, 100)

	app.actionCh <- statepkg.ScrollDownAction{}
	app.actionCh <- statepkg.ScrollDownAction{}
	app.actionCh <- statepkg.ScrollDownAction{}
	app.processActions()

	if app.state.ScrollY != 3 {
		t.Errorf("ScrollY = %d, want 3", app.state.ScrollY)
	}
}

func TestRefreshReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app := newTestApplication(t, sourcepkg.Config{FilePath: path, Interval: time.Second})

	app.refresh()
	if len(app.state.Lines) != 2 || app.state.Lines[0] != "alpha" {
		t.Errorf("Lines = %v", app.state.Lines)
	}

	if err := os.WriteFile(path, []byte("gamma\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app.refresh()
	if len(app.state.Lines) != 1 || app.state.Lines[0] != "gamma" {
		t.Errorf("Lines after change = %v", app.state.Lines)
	}
}

func TestRefreshKeepsOffsetsOnIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app := newTestApplication(t, sourcepkg.Config{FilePath: path, Interval: time.Second})

	app.refresh()
	app.state.ScrollY = 9 // stale bound from some larger prior body
	app.refresh()
	if app.state.ScrollY != 9 {
		t.Errorf("Identical refresh reclamped ScrollY to %d", app.state.ScrollY)
	}
}
