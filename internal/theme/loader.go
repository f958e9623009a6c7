// internal/theme/loader.go
package theme

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/gdamore/tcell/v2"
)

// styleDef is one style in a theme file. Unset fields inherit.
type styleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// themeFile is the TOML layout:
//
//	name = "mine"
//	[styles.Default]      # any named style
//	[categories.Comment]  # style for a token category
//	[tag]                 # the jump tag overlay
type themeFile struct {
	Name       string              `toml:"name"`
	IsDark     bool                `toml:"is_dark"`
	Styles     map[string]styleDef `toml:"styles"`
	Categories map[string]styleDef `toml:"categories"`
	Tag        *styleDef           `toml:"tag"`
}

// Resolve returns the theme in filePath, or DevComfortDark when filePath is
// empty or unusable.
func Resolve(filePath string) *Theme {
	if filePath == "" {
		return &DevComfortDark
	}
	t, err := LoadThemeFromFile(filePath)
	if err != nil {
		logger.Warnf("Using built-in theme: %v", err)
		return &DevComfortDark
	}
	return t
}

// LoadThemeFromFile reads a TOML theme on top of DevComfortDark. A broken
// Default style is an error; other broken styles are skipped with a warning.
// A tag style that would be indistinguishable from the text it covers is
// replaced by the built-in one.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var file themeFile
	metadata, err := toml.DecodeFile(filePath, &file)
	if err != nil {
		return nil, fmt.Errorf("loading theme file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t, err := file.build()
	if err != nil {
		return nil, fmt.Errorf("theme '%s': %w", file.Name, err)
	}
	t.ensureVisibleTags()
	logger.DebugTagf("theme", "Loaded theme '%s' from '%s'", t.Name, filePath)
	return t, nil
}

func (f themeFile) build() (*Theme, error) {
	t := &Theme{
		Name:   f.Name,
		IsDark: f.IsDark,
		Styles: make(map[string]tcell.Style, len(DevComfortDark.Styles)),
	}
	for name, style := range DevComfortDark.Styles {
		t.Styles[name] = style
	}

	base := tcell.StyleDefault
	if def, ok := f.Styles[StyleDefault]; ok {
		style, err := def.apply(tcell.StyleDefault)
		if err != nil {
			return nil, fmt.Errorf("style 'Default': %w", err)
		}
		base = style
		t.Styles[StyleDefault] = style
	}

	set := func(name, origin string, def styleDef) {
		style, err := def.apply(base)
		if err != nil {
			logger.Warnf("Theme '%s': skipping %s: %v", t.Name, origin, err)
			return
		}
		t.Styles[name] = style
	}

	for name, def := range f.Styles {
		if name != StyleDefault {
			set(name, "style '"+name+"'", def)
		}
	}
	// Categories win over raw style names; they are what the screen asks for.
	for key, def := range f.Categories {
		c, ok := categoryByName(key)
		if !ok {
			logger.Warnf("Theme '%s': unknown token category '%s'", t.Name, key)
			continue
		}
		set(StyleName(c), "category '"+key+"'", def)
	}
	if f.Tag != nil {
		set(StyleJumpTag, "tag", *f.Tag)
	}
	return t, nil
}

// ensureVisibleTags restores the built-in tag style when the theme's would
// look exactly like one of the categories it is drawn over.
func (t *Theme) ensureVisibleTags() {
	tag := t.JumpTag()
	for c := types.CategoryText; c <= types.CategoryOperator; c++ {
		if t.StyleFor(c) == tag {
			logger.Warnf("Theme '%s': tag style matches %s tokens, using the built-in tag style", t.Name, c)
			t.Styles[StyleJumpTag] = DevComfortDark.Styles[StyleJumpTag]
			return
		}
	}
}

// categoryByName matches a category's String form, ignoring case.
func categoryByName(name string) (types.Category, bool) {
	for c := types.CategoryText; c <= types.CategoryOperator; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return types.CategoryText, false
}

// apply layers the definition over base.
func (d styleDef) apply(base tcell.Style) (tcell.Style, error) {
	style := base
	if d.Fg != nil {
		color, err := parseColorString(*d.Fg)
		if err != nil {
			return style, fmt.Errorf("fg: %w", err)
		}
		style = style.Foreground(color)
	}
	if d.Bg != nil {
		color, err := parseColorString(*d.Bg)
		if err != nil {
			return style, fmt.Errorf("bg: %w", err)
		}
		style = style.Background(color)
	}

	attrs := []struct {
		set *bool
		fn  func(tcell.Style, bool) tcell.Style
	}{
		{d.Bold, tcell.Style.Bold},
		{d.Italic, tcell.Style.Italic},
		{d.Underline, func(s tcell.Style, on bool) tcell.Style { return s.Underline(on) }},
		{d.Reverse, tcell.Style.Reverse},
	}
	for _, attr := range attrs {
		if attr.set != nil {
			style = attr.fn(style, *attr.set)
		}
	}
	return style, nil
}

// parseColorString accepts #RRGGBB, "reset", "default" and tcell color names.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color '%s', want #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}
	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
