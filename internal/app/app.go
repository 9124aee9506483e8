package app

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vnikey/internal/config"
	"github.com/dshills/vnikey/internal/config/watcher"
	"github.com/dshills/vnikey/internal/engine"
	"github.com/dshills/vnikey/internal/event"
	"github.com/dshills/vnikey/internal/host"
	"github.com/dshills/vnikey/internal/input/key"
	"github.com/dshills/vnikey/internal/macro"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configures the typing pad.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty means defaults.
	ConfigPath string

	// MacroPath overrides the macro table file from the config.
	MacroPath string

	// Debug enables trace output to DebugWriter.
	Debug bool

	// DebugWriter receives trace output when Debug is set.
	DebugWriter io.Writer
}

// App is the interactive pad: engine, text field, macro table, event
// bus and terminal screen.
type App struct {
	opts Options

	mu     sync.Mutex
	cfg    config.Config
	eng    *engine.Engine
	field  *host.TextField
	macros *macro.Table
	bus    *event.Bus
	screen tcell.Screen
	fw     *watcher.Watcher
}

// New builds the app from configuration. The terminal screen is not
// touched until Run.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	layout, err := cfg.EngineLayout()
	if err != nil {
		return nil, err
	}

	a := &App{
		opts:   opts,
		cfg:    cfg,
		eng:    engine.New(engine.WithLayout(layout)),
		field:  host.NewTextField(),
		macros: macro.NewTable(),
		bus:    event.NewBus(),
	}

	if err := a.loadMacros(cfg); err != nil {
		return nil, err
	}

	// The commit handler runs synchronously inside processKey, before
	// the committing whitespace reaches the field.
	a.bus.Subscribe(event.TopicCompositionCommit, func(ev event.Event) {
		word, ok := ev.Payload.(string)
		if !ok || !a.cfg.Input.ExpandMacros {
			return
		}
		text, ok := a.macros.Expand(word)
		if !ok {
			return
		}
		a.field.Backspace(utf8.RuneCountInString(word))
		a.field.InsertString(text)
		a.debugf("macro: %q -> %q", word, text)
	})

	if opts.ConfigPath != "" {
		fw, err := watcher.New(opts.ConfigPath, a.reload)
		if err != nil {
			a.debugf("config watch disabled: %v", err)
		} else {
			a.fw = fw
		}
	}

	return a, nil
}

// Bus returns the app's event bus.
func (a *App) Bus() *event.Bus {
	return a.bus
}

// Field returns the host text field.
func (a *App) Field() *host.TextField {
	return a.field
}

// SetScreen injects a screen; used by tests with tcell's simulation
// screen. Run creates a real terminal screen when none is set.
func (a *App) SetScreen(s tcell.Screen) {
	a.mu.Lock()
	a.screen = s
	a.mu.Unlock()
}

// loadMacros fills the macro table from the configured sources.
func (a *App) loadMacros(cfg config.Config) error {
	path := cfg.Macro.Path
	if a.opts.MacroPath != "" {
		path = a.opts.MacroPath
	}
	if path != "" {
		if err := a.macros.LoadFile(path); err != nil {
			return err
		}
	}
	if cfg.Macro.Script != "" {
		if err := a.macros.LoadScript(cfg.Macro.Script); err != nil {
			return err
		}
	}
	return nil
}

// reload re-reads the configuration after a file change. The current
// composition is discarded; a reload is a reset event.
func (a *App) reload(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		a.debugf("config reload: %v", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		a.debugf("config reload: %v", err)
		return
	}
	layout, err := cfg.EngineLayout()
	if err != nil {
		a.debugf("config reload: %v", err)
		return
	}

	a.mu.Lock()
	word := a.eng.Word()
	a.cfg = cfg
	a.eng.SetLayout(layout)
	if word != "" {
		a.bus.Publish(event.New(event.TopicCompositionReset, word, "config"))
	}
	a.draw()
	a.mu.Unlock()
	a.debugf("config reloaded from %s", path)
}

// Run owns the terminal until the user quits (Ctrl+C or Ctrl+Q).
func (a *App) Run() error {
	a.mu.Lock()
	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			a.mu.Unlock()
			return fmt.Errorf("creating screen: %w", err)
		}
		a.screen = s
	}
	screen := a.screen
	a.mu.Unlock()

	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnablePaste()

	a.mu.Lock()
	a.draw()
	a.mu.Unlock()

	for {
		switch tev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			a.mu.Lock()
			a.draw()
			a.mu.Unlock()
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyCtrlC, tcell.KeyCtrlQ:
				return ErrQuit
			}
			a.ProcessKey(eventFromTcell(tev))
		case nil:
			// Screen finalized elsewhere.
			return nil
		}
	}
}

// ProcessKey feeds one logical key event through the engine and keeps
// the text field synchronized, exactly as an OS host would: the raw
// keystroke is committed first, then the engine's edit sequence is
// applied on top.
func (a *App) ProcessKey(ev key.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !ev.IsPress() {
		a.eng.HandleKey(ev)
		return
	}

	switch {
	case ev.Key == key.KeyEscape:
		// Discard the composition, leave the field alone.
		word := a.eng.Word()
		a.eng.Reset()
		if word != "" {
			a.bus.Publish(event.New(event.TopicCompositionReset, word, "key"))
		}
	case ev.IsBackspace():
		a.eng.HandleKey(ev)
		a.field.Backspace(1)
	case ev.IsNavigation():
		word := a.eng.Word()
		a.eng.HandleKey(ev)
		if word != "" {
			a.bus.Publish(event.New(event.TopicCompositionReset, word, "key"))
		}
	case ev.IsWhitespace():
		word := a.eng.Word()
		a.eng.HandleKey(ev)
		if word != "" {
			a.bus.Publish(event.New(event.TopicCompositionCommit, word, "key"))
		}
		a.field.InsertRune(boundaryRune(ev))
	case ev.IsChar():
		r := ev.Rune
		if ev.Modifiers.Capitalizes() {
			r = unicode.ToUpper(r)
		}
		a.field.InsertRune(r)
		a.field.Apply(a.eng.HandleKey(ev))
	default:
		a.eng.HandleKey(ev)
	}

	a.draw()
}

// boundaryRune is the character a committing word boundary leaves in
// the field. Tab keeps its rune; the pad is a single line, so Enter
// flattens to a space like Space itself.
func boundaryRune(ev key.Event) rune {
	if ev.Key == key.KeyTab || ev.Rune == '\t' {
		return '\t'
	}
	return ' '
}

// draw renders the pad. Caller holds a.mu.
func (a *App) draw() {
	if a.screen == nil {
		return
	}
	a.screen.Clear()
	width, _ := a.screen.Size()

	style := tcell.StyleDefault
	putLine(a.screen, 0, 0, width, a.field.String(), style)
	status := fmt.Sprintf("composing: %s  [Ctrl+Q quit]", a.eng.Word())
	putLine(a.screen, 0, 2, width, status, style.Dim(true))

	a.screen.ShowCursor(a.field.Len(), 0)
	a.screen.Show()
}

// putLine writes a string on one row, clipped to the screen width.
func putLine(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Shutdown releases resources. Safe to call more than once.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fw != nil {
		_ = a.fw.Close()
		a.fw = nil
	}
	if a.macros != nil {
		a.macros.Close()
	}
}

// debugf writes trace output when debugging is enabled.
func (a *App) debugf(format string, args ...any) {
	if !a.opts.Debug || a.opts.DebugWriter == nil {
		return
	}
	fmt.Fprintf(a.opts.DebugWriter, format+"\n", args...)
}
