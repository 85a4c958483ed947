package host

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"
)

// keymap binds keys to commands. The first matching entry wins.
var keymap = []struct {
	keys []string
	cmd  Command
}{
	{[]string{"esc", "ctrl+c", "q"}, CmdQuit},
	{[]string{"w"}, CmdForward},
	{[]string{"s"}, CmdBack},
	{[]string{"a"}, CmdLeft},
	{[]string{"d"}, CmdRight},
	{[]string{"r", "pgup"}, CmdUp},
	{[]string{"f", "pgdown"}, CmdDown},
	{[]string{"left"}, CmdTurnLeft},
	{[]string{"right"}, CmdTurnRight},
	{[]string{"up"}, CmdLookUp},
	{[]string{"down"}, CmdLookDown},
	{[]string{"space"}, CmdSpin},
	{[]string{"0", "home"}, CmdReset},
	{[]string{"x"}, CmdToggleWireframe},
	{[]string{"z"}, CmdToggleDepthSort},
	{[]string{"?", "shift+/"}, CmdToggleHUD},
}

// Help lists the key bindings for usage text.
const Help = `  W/S         move forward/back
  A/D         strafe left/right
  R/F         move up/down
  Arrows      turn and look
  Space       kick the models
  0           reset view
  X           toggle wireframe
  Z           toggle depth sort
  ?           toggle HUD
  Esc, Q      quit`

func commandFor(ev uv.KeyPressEvent) Command {
	for _, k := range keymap {
		if ev.MatchString(k.keys...) {
			return k.cmd
		}
	}
	return CmdNone
}

// Run shows the viewer on the terminal until ctx is cancelled or the user
// quits. Input is read on its own goroutine and handed to the frame loop
// over a channel, so the camera and scene are only touched between frames.
func Run(ctx context.Context, v *Viewer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := uv.DefaultTerminal()

	width, height, err := t.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	t.EnterAltScreen()
	t.HideCursor()
	t.Resize(width, height)

	defer func() {
		t.ExitAltScreen()
		t.ShowCursor()
		if err := t.Shutdown(context.Background()); err != nil {
			v.log.Warn("terminal shutdown", zap.Error(err))
		}
	}()

	events := make(chan uv.Event, 64)
	go func() {
		for ev := range t.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	fps := max(v.Config.Display.FPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	v.log.Info("viewer started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("fps", fps),
		zap.Int("instances", len(v.Scene.Actors)),
	)

	lastFrame := time.Now()
	for {
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					t.Erase()
					t.Resize(width, height)
					v.log.Debug("resize", zap.Int("width", width), zap.Int("height", height))
				case uv.KeyPressEvent:
					if !v.Apply(commandFor(ev)) {
						v.log.Info("viewer stopped")
						return nil
					}
				}
			default:
				break drain
			}
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		v.Frame(width, height, dt)
		v.Buffer.Draw(t, uv.Rect(0, 0, width, height))
		if err := t.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		select {
		case <-ctx.Done():
			v.log.Info("viewer stopped", zap.Error(ctx.Err()))
			return nil
		case <-ticker.C:
		}
	}
}
