package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/grain/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.ScrollUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.ScrollDownAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.ScrollLeftAction{}
	case tcell.KeyRight:
		ih.actionChan <- statepkg.ScrollRightAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}

	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			ih.actionChan <- statepkg.ScrollToTopAction{}
		} else {
			ih.actionChan <- statepkg.ScrollToStartAction{}
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			ih.actionChan <- statepkg.ScrollToBottomAction{}
		} else {
			ih.actionChan <- statepkg.ScrollToEndAction{}
		}

	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
	}
	return true
}
