package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	configpkg "github.com/kk-code-lab/grain/internal/config"
	"github.com/kk-code-lab/grain/internal/schedule"
	sourcepkg "github.com/kk-code-lab/grain/internal/source"
	statepkg "github.com/kk-code-lab/grain/internal/state"
	inputui "github.com/kk-code-lab/grain/internal/ui/input"
	renderui "github.com/kk-code-lab/grain/internal/ui/render"
	"github.com/kk-code-lab/grain/internal/watch"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	sched      *schedule.Scheduler
	source     sourcepkg.Config
	interval   time.Duration
	watcher    *watch.Watcher
	shouldQuit bool
}

// NewApplication initializes the terminal and wires the components together.
// The first content read happens here so the initial draw is never blank.
func NewApplication(cfg configpkg.AppConfig) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	srcCfg := sourcepkg.Config{
		FilePath: cfg.FilePath,
		Command:  cfg.Command,
		Interval: cfg.Interval,
	}

	w, h := screen.Size()
	state := &statepkg.AppState{
		ScreenWidth:  w,
		ScreenHeight: h,
	}

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	renderer := renderui.NewRenderer(screen, renderui.Status{
		Source:   srcCfg.Describe(),
		Interval: configpkg.FormatInterval(cfg.Interval),
	})
	inputHandler := inputui.NewInputHandler(actionCh)

	state.Lines = sourcepkg.Read(srcCfg)

	var watcher *watch.Watcher
	if cfg.Watch && len(cfg.Command) == 0 {
		path := cfg.FilePath
		if path == "" {
			path = sourcepkg.DefaultFilePath
		}
		watcher, err = watch.New(path)
		if err != nil {
			screen.Fini()
			return nil, err
		}
	}

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
		sched:    schedule.New(time.Now()),
		source:   srcCfg,
		interval: cfg.Interval,
		watcher:  watcher,
	}, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
	app.screen.Fini()
	return nil
}
