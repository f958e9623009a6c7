// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/bethropolis/tidejump/internal/config"
	"github.com/bethropolis/tidejump/internal/jump"
	"github.com/bethropolis/tidejump/internal/theme"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const lineNumberPadding = 1 // Space between number and text

// View describes which part of a token stream lands on screen.
type View struct {
	TopLine   int // Buffer line drawn on the first row
	Height    int // Rows available for buffer text
	LineCount int // Total buffer lines, sizes the gutter
	Cursor    types.Position
	TabWidth  int
	Targets   []jump.Target // Drawn with the JumpTag style
}

// gutterWidth returns the digits needed for lineCount and the total gutter
// width, or zero when the screen is too narrow for one.
func gutterWidth(lineCount, width int) (digits, gutter int) {
	if lineCount <= 0 {
		lineCount = 1 // Avoid Log10(0)
	}
	digits = int(math.Log10(float64(lineCount))) + 1
	gutter = digits + lineNumberPadding
	if gutter >= width {
		return digits, 0
	}
	return digits, gutter
}

// DrawTokens draws the visible rows of a display token stream, places the
// terminal cursor, and highlights the jump tags listed in view.Targets.
func DrawTokens(tuiManager *TUI, tokens []types.Token, view View, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = &theme.DevComfortDark
	}
	screen := tuiManager.screen
	width, _ := tuiManager.Size()
	if view.Height <= 0 || width <= 0 {
		return
	}
	tabWidth := view.TabWidth
	if tabWidth <= 0 {
		tabWidth = config.DefaultTabWidth
	}

	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	lineNumberStyle := activeTheme.GetStyle(theme.StyleLineNumber)
	digits, gutter := gutterWidth(view.LineCount, width)

	// --- Background and gutter ---
	for row := 0; row < view.Height; row++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, row, ' ', nil, defaultStyle)
		}
		line := view.TopLine + row
		if gutter == 0 || line >= view.LineCount {
			continue
		}
		style := lineNumberStyle
		if line == view.Cursor.Line {
			style = lineNumberStyle.Bold(true)
		}
		for i, r := range fmt.Sprintf("%*d", digits, line+1) {
			screen.SetContent(i, row, r, nil, style)
		}
	}

	tags := make(map[types.Position]string, len(view.Targets))
	for _, target := range view.Targets {
		tags[target.Position] = target.Tag
	}

	var pos types.Position
	visualX := 0
	cursorX, cursorY := -1, -1
	markCursor := func() {
		row := pos.Line - view.TopLine
		if pos == view.Cursor && row >= 0 && row < view.Height && gutter+visualX < width {
			cursorX, cursorY = gutter+visualX, row
		}
	}

tokenLoop:
	for _, tok := range tokens {
		style := activeTheme.StyleFor(tok.Category)
		if tag, ok := tags[pos]; ok && tag == tok.Lexeme {
			style = activeTheme.JumpTag()
		}

		gr := uniseg.NewGraphemes(tok.Lexeme)
		for gr.Next() {
			clusterRunes := gr.Runes()
			markCursor()
			if clusterRunes[len(clusterRunes)-1] == '\n' {
				pos.Line++
				pos.Offset = 0
				visualX = 0
				if pos.Line >= view.TopLine+view.Height {
					break tokenLoop
				}
				continue
			}

			clusterWidth := gr.Width()
			if clusterRunes[0] == '\t' {
				clusterWidth = tabWidth - visualX%tabWidth
			}
			row := pos.Line - view.TopLine
			screenX := gutter + visualX
			if row >= 0 && screenX+clusterWidth <= width {
				if clusterRunes[0] == '\t' {
					for i := 0; i < clusterWidth; i++ {
						screen.SetContent(screenX+i, row, ' ', nil, style)
					}
				} else {
					screen.SetContent(screenX, row, clusterRunes[0], clusterRunes[1:], style)
					// Fill remaining cells for wide characters
					for cw := 1; cw < clusterWidth; cw++ {
						screen.SetContent(screenX+cw, row, ' ', nil, style)
					}
				}
			}
			visualX += clusterWidth
			pos.Offset += len(clusterRunes)
		}
	}
	markCursor()

	if cursorX >= 0 {
		screen.ShowCursor(cursorX, cursorY)
	} else {
		screen.HideCursor()
	}
}

// DrawStatus fills the bottom row with text, truncated to the screen width.
func DrawStatus(tuiManager *TUI, text string, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = &theme.DevComfortDark
	}
	width, height := tuiManager.Size()
	if height <= 0 || width <= 0 {
		return
	}
	row := height - config.StatusBarHeight
	style := activeTheme.GetStyle(theme.StyleStatusBar)

	text = runewidth.Truncate(text, width, "…")
	x := 0
	for _, r := range text {
		tuiManager.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		tuiManager.screen.SetContent(x, row, ' ', nil, style)
	}
}
