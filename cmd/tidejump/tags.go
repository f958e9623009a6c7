// cmd/tidejump/tags.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/tidejump/internal/buffer"
	"github.com/bethropolis/tidejump/internal/core"
	"github.com/bethropolis/tidejump/internal/highlighter"
	"github.com/bethropolis/tidejump/internal/highlighter/lang"
	"github.com/bethropolis/tidejump/internal/jump"
	"github.com/bethropolis/tidejump/internal/render"
	"github.com/bethropolis/tidejump/internal/types"
	"github.com/spf13/cobra"
)

func newTagsCmd(c *cli) *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags [flags] [file]",
		Short: "Print a file with jump tags applied",
		Long: `Tags runs one tagging pass over a file (or stdin) and prints the tagged
text followed by a table of every tag and the position it jumps to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runTags,
	}
	tagsCmd.Flags().Int("from", 1, "first line to tag (1-based)")
	tagsCmd.Flags().Int("to", 0, "last line to tag, inclusive (0 for end of input)")
	tagsCmd.Flags().String("language", "", "grammar to tokenize with (default: from the file extension)")
	return tagsCmd
}

func (c *cli) runTags(cmd *cobra.Command, args []string) error {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorFlag != "auto" && colorFlag != "on" && colorFlag != "off" {
		return fmt.Errorf("invalid --color value %q (want auto, on or off)", colorFlag)
	}
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	languageName, _ := cmd.Flags().GetString("language")

	buf := buffer.NewSliceBuffer()
	var path string
	if len(args) > 0 && args[0] != "-" {
		path = args[0]
		// Load treats a missing file as a new one; here it is a mistake.
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := buf.Load(path); err != nil {
			return err
		}
	} else {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		buf.SetContent(content)
	}

	highlighter.RegisterLanguages()
	language := lang.GetForFile(path)
	if languageName != "" {
		if language = lang.GetByName(languageName); language == nil {
			return fmt.Errorf("unknown language %q", languageName)
		}
	}
	tokens, err := highlighter.NewTokenizer().Tokenize(cmd.Context(), buf.Bytes(), language)
	if err != nil {
		return err
	}

	editor := core.NewEditor(buf)
	editor.SetTokens(tokens)
	editor.SetCursor(types.Position{Line: c.startLine()})

	mode := jump.NewWithOptions(jump.Options{
		Alphabet:     c.cfg.Jump.Alphabet,
		LineAlphabet: c.cfg.Jump.LineAlphabet,
		LineMode:     c.cfg.Jump.LineMode,
	})
	lines := lineRange(from, to, buf.LineCount())
	if lines.Len() == 0 && buf.LineCount() > 0 {
		return fmt.Errorf("no lines between --from %d and --to %d", from, to)
	}
	display := mode.Tag(editor, lines)
	targets := mode.Targets()

	opts := render.Opts{Color: colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))}
	out := cmd.OutOrStdout()
	if err := render.Plain(out, display, targets, opts); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return render.TagTable(out, targets, opts)
}

// lineRange turns inclusive 1-based --from/--to into a half-open range.
// Reversed bounds are swapped; the result never reaches past lineCount.
func lineRange(from, to, lineCount int) types.LineRange {
	if to > 0 && to < from {
		from, to = to, from
	}
	start := min(max(from-1, 0), lineCount)
	end := to
	if end <= 0 || end > lineCount {
		end = lineCount
	}
	return types.NewLineRange(start, end)
}
