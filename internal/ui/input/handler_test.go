package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/grain/internal/state"
)

func expectAction(t *testing.T, ch chan statepkg.Action, want statepkg.Action) {
	t.Helper()
	select {
	case action := <-ch:
		if action != want {
			t.Fatalf("Expected %T, got %T", want, action)
		}
	default:
		t.Fatal("Expected an action to be emitted")
	}
}

func TestArrowKeysMapToScrollActions(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		want statepkg.Action
	}{
		{tcell.KeyUp, statepkg.ScrollUpAction{}},
		{tcell.KeyDown, statepkg.ScrollDownAction{}},
		{tcell.KeyLeft, statepkg.ScrollLeftAction{}},
		{tcell.KeyRight, statepkg.ScrollRightAction{}},
		{tcell.KeyPgUp, statepkg.ScrollPageUpAction{}},
		{tcell.KeyPgDn, statepkg.ScrollPageDownAction{}},
	}

	for _, tc := range cases {
		ch := make(chan statepkg.Action, 1)
		handler := NewInputHandler(ch)
		if !handler.ProcessEvent(tcell.NewEventKey(tc.key, 0, 0)) {
			t.Fatalf("Key %v should not request quit", tc.key)
		}
		expectAction(t, ch, tc.want)
	}
}

func TestHomeEndJumpHorizontally(t *testing.T) {
	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyHome, 0, 0))
	expectAction(t, ch, statepkg.ScrollToStartAction{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnd, 0, 0))
	expectAction(t, ch, statepkg.ScrollToEndAction{})
}

func TestCtrlHomeEndJumpVertically(t *testing.T) {
	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModCtrl))
	expectAction(t, ch, statepkg.ScrollToTopAction{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModCtrl))
	expectAction(t, ch, statepkg.ScrollToBottomAction{})
}

func TestQuitKeys(t *testing.T) {
	quitEvents := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', 0),
		tcell.NewEventKey(tcell.KeyRune, 'Q', 0),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quitEvents {
		ch := make(chan statepkg.Action, 1)
		handler := NewInputHandler(ch)
		if handler.ProcessEvent(ev) {
			t.Errorf("Event %v should request quit", ev)
		}
		expectAction(t, ch, statepkg.QuitAction{})
	}
}

func TestResizeEmitsResizeAction(t *testing.T) {
	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)

	handler.ProcessEvent(tcell.NewEventResize(120, 40))
	expectAction(t, ch, statepkg.ResizeAction{Width: 120, Height: 40})
}

func TestUnboundKeysEmitNothing(t *testing.T) {
	ch := make(chan statepkg.Action, 1)
	handler := NewInputHandler(ch)

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'z', 0),
		tcell.NewEventKey(tcell.KeyEnter, 0, 0),
		tcell.NewEventKey(tcell.KeyEscape, 0, 0),
	} {
		if !handler.ProcessEvent(ev) {
			t.Errorf("Unbound key %v requested quit", ev)
		}
		select {
		case action := <-ch:
			t.Errorf("Unbound key emitted %T", action)
		default:
		}
	}
}
