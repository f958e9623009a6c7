// Package render writes tagged token streams as plain text, for piping and
// for inspecting what a jump pass produced.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/tidejump/internal/jump"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/fatih/color"
)

// Opts controls plain-text output.
type Opts struct {
	Color bool // Colorize tags and categories
}

type palette struct {
	tag      *color.Color
	position *color.Color
	comment  *color.Color
	keyword  *color.Color
	str      *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		tag:      color.New(color.FgBlack, color.BgRed, color.Bold),
		position: color.New(color.FgCyan),
		comment:  color.New(color.FgHiBlack),
		keyword:  color.New(color.FgBlue, color.Bold),
		str:      color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.tag, p.position, p.comment, p.keyword, p.str} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forCategory(c types.Category) *color.Color {
	switch c {
	case types.CategoryComment:
		return p.comment
	case types.CategoryKeyword:
		return p.keyword
	case types.CategoryString:
		return p.str
	}
	return nil
}

// Plain writes the display stream. Tokens that start at a target's position
// and spell its tag are drawn as tags.
func Plain(w io.Writer, tokens []types.Token, targets []jump.Target, opts Opts) error {
	p := newPalette(opts.Color)
	tags := make(map[types.Position]string, len(targets))
	for _, target := range targets {
		tags[target.Position] = target.Tag
	}

	bw := bufio.NewWriter(w)
	var pos types.Position
	for _, tok := range tokens {
		out := tok.Lexeme
		if tag, ok := tags[pos]; ok && tag == tok.Lexeme {
			out = p.tag.Sprint(tok.Lexeme)
		} else if c := p.forCategory(tok.Category); c != nil && opts.Color {
			out = c.Sprint(tok.Lexeme)
		}
		if _, err := bw.WriteString(out); err != nil {
			return fmt.Errorf("writing token stream: %w", err)
		}
		pos.Add(types.DistanceOf(tok.Lexeme))
	}
	if n := len(tokens); n > 0 && !strings.HasSuffix(tokens[n-1].Lexeme, "\n") {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing token stream: %w", err)
		}
	}
	return bw.Flush()
}

// TagTable writes one "tag line:col" row per target, 1-based for display.
func TagTable(w io.Writer, targets []jump.Target, opts Opts) error {
	p := newPalette(opts.Color)
	bw := bufio.NewWriter(w)
	for _, target := range targets {
		_, err := fmt.Fprintf(bw, "%s %s\n",
			p.tag.Sprintf("%-4s", target.Tag),
			p.position.Sprintf("%d:%d", target.Position.Line+1, target.Position.Offset+1))
		if err != nil {
			return fmt.Errorf("writing tag table: %w", err)
		}
	}
	return bw.Flush()
}
