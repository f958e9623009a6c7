// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Style names used outside syntax highlighting.
const (
	StyleDefault    = "Default"
	StyleJumpTag    = "JumpTag"
	StyleLineNumber = "LineNumber"
	StyleStatusBar  = "StatusBar"
	StyleSelection  = "Selection"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then the part before its first dot, then Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	// 1. Try exact name
	if style, ok := t.Styles[name]; ok {
		return style
	}

	// 2. Try base name (part before first dot)
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	// 3. Return "Default" style
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	// 4. Absolute fallback
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// StyleName maps a token category to the style that draws it.
func StyleName(c types.Category) string {
	switch c {
	case types.CategoryKeyword:
		return "keyword"
	case types.CategoryIdentifier:
		return "variable"
	case types.CategoryComment:
		return "comment"
	case types.CategoryString:
		return "string"
	case types.CategoryBrace:
		return "punctuation.bracket"
	case types.CategoryLiteral:
		return "constant"
	case types.CategoryOperator:
		return "operator"
	}
	return StyleDefault
}

// StyleFor returns the style for a token category.
func (t *Theme) StyleFor(c types.Category) tcell.Style {
	return t.GetStyle(StyleName(c))
}

// JumpTag returns the style that overlays jump tags.
func (t *Theme) JumpTag() tcell.Style {
	return t.GetStyle(StyleJumpTag)
}

// --- DevComfort Dark Theme Definition ---

var DevComfortDark Theme

func init() {
	// --- Palette for DevComfort Dark ---
	dcBackground := tcell.NewHexColor(0x2a2f38) // Slightly muted dark blue/grey (StatusBar BG)
	dcForeground := tcell.NewHexColor(0xc5cdd9) // Soft off-white (Default Text)
	dcComment := tcell.NewHexColor(0x5c6370)    // Muted Grey (Comments, Punctuation)
	dcOrange := tcell.NewHexColor(0xd19a66)     // Muted Orange (Numbers, Constants)
	dcYellow := tcell.NewHexColor(0xe5c07b)     // Soft Yellow
	dcGreen := tcell.NewHexColor(0x98c379)      // Soft Green (Strings)
	dcBlue := tcell.NewHexColor(0x61afef)       // Soft Blue (Keywords)
	dcRed := tcell.NewHexColor(0xe06c75)        // Jump tags

	// Use terminal background, DevComfort foreground
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// --- UI Elements ---
			StyleDefault:    baseStyle,
			StyleSelection:  baseStyle.Reverse(true),
			StyleStatusBar:  tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			StyleLineNumber: baseStyle.Foreground(dcComment),
			StyleJumpTag:    tcell.StyleDefault.Background(dcRed).Foreground(tcell.ColorBlack).Bold(true),

			// --- Syntax Highlighting ---
			"keyword":     baseStyle.Foreground(dcBlue).Bold(true),
			"string":      baseStyle.Foreground(dcGreen),
			"comment":     baseStyle.Foreground(dcComment).Italic(true),
			"constant":    baseStyle.Foreground(dcOrange),
			"variable":    baseStyle.Foreground(dcForeground),
			"operator":    baseStyle.Foreground(dcForeground),
			"function":    baseStyle.Foreground(dcYellow),
			"punctuation": baseStyle.Foreground(dcComment),
		},
	}
}
