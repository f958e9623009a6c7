// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bethropolis/tidejump/internal/buffer"
	"github.com/bethropolis/tidejump/internal/config"
	"github.com/bethropolis/tidejump/internal/core"
	"github.com/bethropolis/tidejump/internal/core/clipboard"
	"github.com/bethropolis/tidejump/internal/core/selection"
	"github.com/bethropolis/tidejump/internal/event"
	"github.com/bethropolis/tidejump/internal/highlighter"
	"github.com/bethropolis/tidejump/internal/input"
	"github.com/bethropolis/tidejump/internal/jump"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/statusbar"
	"github.com/bethropolis/tidejump/internal/theme"
	"github.com/bethropolis/tidejump/internal/tui"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/gdamore/tcell/v2"
)

// SelectKind chooses what a jump does with the text it passes over.
type SelectKind int

const (
	SelectNone  SelectKind = iota // Move the cursor only
	SelectRange                   // Extend a character-wise selection
	SelectLines                   // Extend a line-wise selection
)

func (k SelectKind) String() string {
	switch k {
	case SelectRange:
		return "select"
	case SelectLines:
		return "select-line"
	}
	return ""
}

// Options configures a new App.
type Options struct {
	FilePath   string
	Config     *config.Config // nil uses defaults
	Screen     tcell.Screen   // nil opens the terminal
	Select     SelectKind
	CursorLine int // 0-based starting line
}

// Result describes how the session ended.
type Result struct {
	Jumped   bool
	Tag      string
	Position types.Position
	Yanked   string // Selected text, when a selection was extended
}

// App wires the editor, the jump engine and the terminal together.
type App struct {
	tuiManager     *tui.TUI
	editor         *core.Editor
	mode           *jump.Mode
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	cache          *highlighter.Cache
	activeTheme    *theme.Theme
	cfg            *config.Config
	selectKind     SelectKind

	display []types.Token // Output of the last tagging pass
	result  Result

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	buf := buffer.NewSliceBuffer()
	if err := buf.Load(opts.FilePath); err != nil {
		return nil, fmt.Errorf("loading buffer: %w", err)
	}

	editor := core.NewEditor(buf)
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	highlighter.RegisterLanguages()
	cache := highlighter.NewCache(highlighter.NewTokenizer(), highlighter.DefaultExpiration, highlighter.DefaultCleanupInterval)
	if err := editor.Retokenize(context.Background(), cache); err != nil {
		logger.Warnf("App: tokenizing failed, jumping over plain text: %v", err)
		editor.SetTokens([]types.Token{{Lexeme: string(buf.Bytes()), Category: types.CategoryText}})
	}

	activeTheme := theme.Resolve(cfg.Theme.File)

	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("failed to create tcell screen: %w", err)
		}
	}
	tuiManager, err := tui.NewWithScreen(screen, activeTheme)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		tuiManager:     tuiManager,
		editor:         editor,
		inputProcessor: input.NewInputProcessor(),
		statusBar:      statusbar.New(statusbar.DefaultMessageTimeout),
		eventManager:   eventManager,
		cache:          cache,
		activeTheme:    activeTheme,
		cfg:            cfg,
		selectKind:     opts.Select,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)
	editor.SetCursor(types.Position{Line: opts.CursorLine})

	a.mode = jump.NewWithOptions(jump.Options{
		Alphabet:     cfg.Jump.Alphabet,
		LineAlphabet: cfg.Jump.LineAlphabet,
		LineMode:     cfg.Jump.LineMode,
	})
	a.mode.SelectMode = a.newSelectOption()

	a.statusBar.SetFileInfo(buf.FilePath())
	a.statusBar.SetCursorInfo(editor.Cursor())
	a.subscribe()
	return a, nil
}

// newSelectOption anchors the requested selection at the cursor.
func (a *App) newSelectOption() jump.SelectOption {
	switch a.selectKind {
	case SelectRange:
		return jump.ExtendSelection{Range: selection.NewRange(a.editor.Cursor())}
	case SelectLines:
		return jump.ExtendLineSelection{Lines: selection.NewLines(a.editor.Cursor().Line)}
	}
	return jump.NoSelection{}
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	events := make(chan tcell.Event)
	go a.eventLoop(events)

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.requestRedraw()

	// --- Main Loop ---
	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev := <-events:
			if a.HandleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop forwards terminal events to the main loop until the screen closes.
func (a *App) eventLoop(events chan<- tcell.Event) {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-a.quit:
			return
		}
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

func (a *App) signalQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Done is closed once the session is over.
func (a *App) Done() <-chan struct{} {
	return a.quit
}

// Result reports how the session ended. Valid after Done is closed.
func (a *App) Result() Result {
	return a.result
}

// GetTheme returns the app's active theme.
func (a *App) GetTheme() *theme.Theme {
	return a.activeTheme
}
