package app

import (
	"strings"

	"github.com/bethropolis/tidejump/internal/event"
	"github.com/bethropolis/tidejump/internal/tui"
)

// draw runs a tagging pass over the visible lines and redraws the screen.
func (a *App) draw() {
	width, height := a.tuiManager.Size()
	a.editor.SetViewSize(width, height)

	visible := a.editor.VisibleRange()
	a.display = a.mode.Tag(a.editor, visible)
	targets := a.mode.Targets()
	if a.mode.Input != "" {
		matching := targets[:0]
		for _, target := range targets {
			if strings.HasPrefix(target.Tag, a.mode.Input) {
				matching = append(matching, target)
			}
		}
		targets = matching
	}
	a.eventManager.Dispatch(event.TypeTagsAssigned, event.TagsAssignedData{
		Count:    len(targets),
		LineMode: a.mode.LineMode,
		Visible:  visible,
	})

	modeName := "word"
	if a.mode.LineMode {
		modeName = "line"
	}
	a.statusBar.SetJumpInfo(modeName, a.selectKind.String(), a.mode.Input, len(targets))

	a.tuiManager.Clear()
	tui.DrawTokens(a.tuiManager, a.display, tui.View{
		TopLine:   a.editor.ViewportY,
		Height:    a.editor.ViewHeight(),
		LineCount: a.editor.GetBuffer().LineCount(),
		Cursor:    a.editor.Cursor(),
		TabWidth:  a.cfg.Editor.TabWidth,
		Targets:   targets,
	}, a.activeTheme)
	tui.DrawStatus(a.tuiManager, a.statusBar.Text(), a.activeTheme)
	a.tuiManager.Show()
}
