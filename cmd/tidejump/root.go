// cmd/tidejump/root.go
package main

import (
	"fmt"
	"io"

	"github.com/bethropolis/tidejump/internal/app"
	"github.com/bethropolis/tidejump/internal/config"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

// cli carries state shared by the root command and its subcommands.
type cli struct {
	flags      config.Flags
	lineMode   bool
	cursorLine int // 1-based, as typed

	cfg       *config.Config
	logCloser io.Closer
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "tidejump [file]",
		Short: "Jump anywhere on screen by typing a short tag",
		Long: `tidejump shows a file with a short tag over every word on screen.
Typing a tag moves the cursor there. With --select or --select-line the
text between the starting cursor and the target is yanked.`,
		Version:           version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	c.flags.Define(pf)
	pf.BoolVar(&c.lineMode, "line", false, "tag the first word of each line instead of every word")
	pf.IntVar(&c.cursorLine, "cursor-line", 1, "line the cursor starts on (1-based)")
	pf.String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.Flags().Bool("select", false, "extend a selection from the cursor to the jump target")
	rootCmd.Flags().Bool("select-line", false, "extend a line-wise selection from the cursor to the jump target")
	rootCmd.MarkFlagsMutuallyExclusive("select", "select-line")

	rootCmd.AddCommand(newTagsCmd(c))
	return rootCmd, c
}

// setup loads configuration and installs the logger before any command runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.flags.ConfigFilePath, cmd.Flags(), &c.flags)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Flags().Changed("line") {
		cfg.Jump.LineMode = c.lineMode
	}
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = config.DefaultLogPath()
	}

	closer, err := logger.Setup(cfg.Logger)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	c.cfg = cfg
	c.logCloser = closer
	logger.Infof("Starting %s %s", config.AppName, cmd.Name())
	return nil
}

func (c *cli) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
		c.logCloser = nil
	}
}

// startLine converts --cursor-line to a 0-based line.
func (c *cli) startLine() int {
	if c.cursorLine < 1 {
		return 0
	}
	return c.cursorLine - 1
}

func (c *cli) runInteractive(cmd *cobra.Command, args []string) error {
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	selectKind := app.SelectNone
	if on, _ := cmd.Flags().GetBool("select"); on {
		selectKind = app.SelectRange
	}
	if on, _ := cmd.Flags().GetBool("select-line"); on {
		selectKind = app.SelectLines
	}

	jumpApp, err := app.NewApp(app.Options{
		FilePath:   filePath,
		Config:     c.cfg,
		Select:     selectKind,
		CursorLine: c.startLine(),
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return fmt.Errorf("initializing application: %w", err)
	}
	if err := jumpApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}

	result := jumpApp.Result()
	out := cmd.OutOrStdout()
	if result.Jumped {
		fmt.Fprintf(out, "%s %d:%d\n", result.Tag, result.Position.Line+1, result.Position.Offset+1)
	}
	// The internal register dies with the process; hand the text to the caller.
	if result.Yanked != "" && !c.cfg.Editor.SystemClipboard {
		fmt.Fprint(out, result.Yanked)
	}
	logger.Infof("%s finished.", config.AppName)
	return nil
}
