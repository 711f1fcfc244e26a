package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	levent "github.com/ryder052/LEvent"
	"github.com/ryder052/LEvent/internal/config"
)

const tuiLogSize = 16

// tuiState is the interactive showcase: keypresses trigger registry events
// and the listener output is drawn to the screen. All event dispatch stays
// on the polling goroutine; the config watcher posts reloads into the tcell
// event queue instead of touching the registry itself.
type tuiState struct {
	screen  tcell.Screen
	reg     *levent.Registry[showEvent]
	counter int
	log     []string
}

func runTUI(opts Options, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	s := &tuiState{
		screen: screen,
		reg:    levent.NewRegistry(showEventCount),
	}
	s.apply(cfg)

	levent.Declare[listenerKind, string](s.reg, evString)
	levent.Declare[levent.Void, *int](s.reg, evVoid)

	for i, p := range []levent.Priority{2, 0, 1} {
		kind := listenerKind(i)
		conn := levent.Connect(s.reg, evString, levent.Callable(func(msg string) listenerKind {
			s.logf("[%s] %s", kind, msg)
			return kind
		}), levent.WithPriority(p))
		if err := conn.Err(); err != nil {
			return fmt.Errorf("connecting %s listener: %w", kind, err)
		}
		defer conn.Close()
	}
	inc := levent.Connect(s.reg, evVoid, levent.Proc(func(n *int) { *n++ }))
	if err := inc.Err(); err != nil {
		return fmt.Errorf("connecting counter listener: %w", err)
	}
	defer inc.Close()

	watcher, err := config.Watch(opts.ConfigPath, 100*time.Millisecond, func(cfg config.Config, err error) {
		if err != nil {
			return
		}
		// Hand the reload to the polling goroutine.
		_ = screen.PostEvent(tcell.NewEventInterrupt(cfg))
	})
	if err == nil {
		defer watcher.Close()
	}

	triggers := 0
	for {
		s.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(config.Config); ok {
				s.apply(cfg)
				s.logf("configuration reloaded (blocked=%v)", cfg.Blocked)
			}

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Rune() == '1':
				triggers++
				results, err := levent.Trigger[listenerKind](s.reg, evString, fmt.Sprintf("Event #%d", triggers))
				if err != nil {
					s.logf("trigger refused: %v", err)
				} else {
					s.logf("results: %v", results)
				}
			case ev.Rune() == '2':
				if _, err := levent.Trigger[levent.Void](s.reg, evVoid, &s.counter); err != nil {
					s.logf("trigger refused: %v", err)
				}
			case ev.Rune() == 'b':
				s.reg.BlockEvents(!s.reg.Blocked())
			}
		}
	}
}

func (s *tuiState) apply(cfg config.Config) {
	s.reg.BlockEvents(cfg.Blocked)
}

func (s *tuiState) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
	if len(s.log) > tuiLogSize {
		s.log = s.log[len(s.log)-tuiLogSize:]
	}
}

func (s *tuiState) draw() {
	s.screen.Clear()

	title := tcell.StyleDefault.Bold(true)
	s.drawText(0, 0, title, "levent showcase")
	s.drawText(0, 1, tcell.StyleDefault,
		"1: string event   2: counter event   b: toggle block   q: quit")

	status := fmt.Sprintf("blocked=%v  counter=%d", s.reg.Blocked(), s.counter)
	s.drawText(0, 3, tcell.StyleDefault.Foreground(tcell.ColorYellow), status)

	for i, line := range s.log {
		s.drawText(0, 5+i, tcell.StyleDefault, line)
	}

	s.screen.Show()
}

func (s *tuiState) drawText(x, y int, style tcell.Style, text string) {
	width, height := s.screen.Size()
	if y >= height {
		return
	}
	for i, r := range text {
		if x+i >= width {
			return
		}
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}
