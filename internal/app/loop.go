package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	sourcepkg "github.com/kk-code-lab/grain/internal/source"
	statepkg "github.com/kk-code-lab/grain/internal/state"
)

// pollTimeoutCap bounds each event wait so a pending refresh is never delayed
// by more than this past its due time.
const pollTimeoutCap = 100 * time.Millisecond

// Run drives the single-threaded control loop: check the schedule, refresh if
// due, paint, then wait (bounded) for a key, resize, or file-change signal.
// Refresh and navigation are serialized by iteration order, so no state needs
// locking. The deferred Fini restores the terminal on every unwind path,
// panics included.
func (app *Application) Run() {
	defer app.screen.Fini()

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	var watchCh <-chan struct{}
	if app.watcher != nil {
		watchCh = app.watcher.Events()
	}

	for !app.shouldQuit {
		now := time.Now()
		if app.sched.Due(now, app.interval) {
			app.sched.Advance(app.interval)
			app.refresh()
		}

		app.renderer.Render(app.state)

		timeout := app.sched.PollTimeout(time.Now(), app.interval, pollTimeoutCap)
		select {
		case ev := <-eventCh:
			if !app.input.ProcessEvent(ev) {
				app.shouldQuit = true
			}
			app.processActions()
		case _, ok := <-watchCh:
			if !ok {
				watchCh = nil
				continue
			}
			app.refresh()
		case <-time.After(timeout):
		}
	}
}

// refresh acquires a fresh body and dispatches it; the reducer's equality
// check makes an unchanged read a no-op.
func (app *Application) refresh() {
	lines := sourcepkg.Read(app.source)
	_, _ = app.reducer.Reduce(app.state, statepkg.ReplaceContentAction{Lines: lines})
}

// processActions drains everything the input handler queued this iteration.
func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}
	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return
	}
	_, _ = app.reducer.Reduce(app.state, action)
}
