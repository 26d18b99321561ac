package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bral/lsnote/internal/clipboard"
	"github.com/bral/lsnote/internal/config"
	"github.com/bral/lsnote/internal/gitstatus"
	"github.com/bral/lsnote/internal/logging"
	"github.com/bral/lsnote/internal/notes"
	"github.com/bral/lsnote/internal/render"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// errReported signals a failure whose message has already been printed.
var errReported = errors.New("error already reported")

// app carries the state shared between the pre-run hook and the command.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer
	color  colorMode

	// copyText places plain output on the clipboard.
	copyText func(text string, stderr io.Writer) (clipboard.Transport, error)
}

func newApp() *app {
	return &app{
		color: colorAuto,
		log:   zerolog.Nop(),
		copyText: func(text string, stderr io.Writer) (clipboard.Transport, error) {
			return clipboard.New(stderr).Copy(text)
		},
	}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lsnote [path]",
		Version: version,
		Short:   "ls with notes: list directory contents with file notes",
		Long: `lsnote lists a directory or file like ls, decorated with icons, git
status markers and free-text notes attached to individual paths. Use -t
for a recursive tree and -c to copy a plain-text rendering to the clipboard.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
		RunE:              a.run,
	}

	flags := cmd.Flags()
	flags.BoolP("all", "a", false, "Show all files including hidden")
	flags.BoolP("long", "l", false, "Use long listing format")
	flags.BoolP("human-readable", "H", false, "Human-readable sizes (e.g., 1K, 234M, 2G)")
	flags.BoolP("tree", "t", false, "Tree view: show directory structure")
	flags.Bool("no-git", false, "Disable git status indicators")
	flags.Bool("no-icons", false, "Disable icons")
	flags.Bool("ignored", false, "Also mark git-ignored paths")
	flags.BoolP("copy", "c", false, "Copy plain output to the clipboard (combine with -t, -l, ...)")
	flags.Var(&a.color, "color", "Colorize output: auto, always or never")
	flags.Bool("init-config", false, "Write the default config file and exit")
	flags.StringP("set", "s", "", "Set note for FILE: lsnote -s FILE NOTE")
	flags.StringP("get", "g", "", "Print the note for FILE")
	flags.StringP("remove", "r", "", "Remove the note from FILE")
	cmd.MarkFlagsMutuallyExclusive("set", "get", "remove", "init-config")

	cmd.PersistentFlags().String("config", "", "Path to a custom configuration file (default: <user config dir>/lsnote/config.toml)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")

	return cmd
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	customConfigPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadConfig(customConfigPath)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	a.log, a.closer = logging.New(debug, a.cfg.Log)
	if errors.Is(err, config.ErrConfigNotFound) {
		a.log.Debug().Str("path", customConfigPath).Msg("no config file, using defaults")
	} else {
		a.log.Debug().Msg("configuration loaded")
	}

	// Flags override the loaded configuration.
	if ignored, _ := cmd.Flags().GetBool("ignored"); ignored {
		a.cfg.Git.ShowIgnored = true
	}
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	defer func() {
		if a.closer != nil {
			_ = a.closer.Close()
		}
	}()

	flags := cmd.Flags()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if initConfig, _ := flags.GetBool("init-config"); initConfig {
		customConfigPath, _ := flags.GetString("config")
		path, err := config.InitConfig(customConfigPath)
		if err != nil {
			return fmt.Errorf("error creating config: %w", err)
		}
		fmt.Fprintf(stdout, "Config file created at: %s\n", path)
		return nil
	}

	if flags.Changed("set") || flags.Changed("get") || flags.Changed("remove") {
		return a.runNotes(cmd, args)
	}

	path := "."
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return fmt.Errorf("accepts at most one path, received %d", len(args))
	}

	store, err := notes.Open(a.cfg.NotesFile)
	if err != nil {
		a.log.Debug().Err(err).Msg("notes unavailable")
	}

	showAll, _ := flags.GetBool("all")
	long, _ := flags.GetBool("long")
	humanReadable, _ := flags.GetBool("human-readable")
	noGit, _ := flags.GetBool("no-git")
	noIcons, _ := flags.GetBool("no-icons")
	opts := render.Options{
		ShowAll:       showAll,
		Long:          long,
		HumanReadable: humanReadable,
		ShowIcons:     !noIcons,
		ShowGit:       !noGit,
	}

	renderer := render.New(&a.cfg, gitstatus.NewResolver(a.cfg.Git.ShowIgnored, a.log), store, a.log)
	build := renderer.BuildList
	if tree, _ := flags.GetBool("tree"); tree {
		build = renderer.BuildTree
	}

	lines, err := build(cmd.Context(), path, opts)
	if err != nil {
		if errors.Is(err, render.ErrReadDir) {
			fmt.Fprintf(stderr, "Error reading directory: %s\n", path)
			return errReported
		}
		return err
	}

	fmt.Fprint(stdout, render.Paint(lines, a.color.plain(stdout)))

	if copyOut, _ := flags.GetBool("copy"); copyOut {
		transport, err := a.copyText(render.Paint(lines, true), stderr)
		if err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		a.log.Debug().Str("transport", string(transport)).Msg("copied output")
		fmt.Fprintln(stderr, "Copied to clipboard!")
	}
	return nil
}

func (a *app) runNotes(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	stdout := cmd.OutOrStdout()

	store, err := notes.Open(a.cfg.NotesFile)
	if err != nil {
		return err
	}

	switch {
	case flags.Changed("set"):
		file, _ := flags.GetString("set")
		note := strings.Join(args, " ")
		if strings.TrimSpace(note) == "" {
			return fmt.Errorf("usage: lsnote -s FILE NOTE")
		}
		if err := store.Set(file, note); err != nil {
			return fmt.Errorf("error setting note: %w", err)
		}
		fmt.Fprintf(stdout, "Note set for '%s'\n", file)

	case flags.Changed("get"):
		file, _ := flags.GetString("get")
		if note, ok := store.Get(file); ok {
			fmt.Fprintln(stdout, note)
		} else {
			fmt.Fprintf(stdout, "No note set for '%s'\n", file)
		}

	case flags.Changed("remove"):
		file, _ := flags.GetString("remove")
		if err := store.Remove(file); err != nil {
			return fmt.Errorf("error removing note: %w", err)
		}
		fmt.Fprintf(stdout, "Note removed from '%s'\n", file)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().command().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
