package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nicolagi/tjp"
	"github.com/nicolagi/tjp/internal/config"
	"github.com/nicolagi/tjp/internal/editor"
	"github.com/nicolagi/tjp/internal/markdown"
	"github.com/nicolagi/tjp/task"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	minWidth = 60

	// Used as the table width when stdout is not a terminal.
	unboundedWidth = 999666
)

type options struct {
	verbose       bool
	quiet         bool
	color         bool
	noColor       bool
	listNotebooks bool
	render        bool

	token   string
	url     string
	config  string
	wireLog string

	all       bool
	reallyAll bool
	completed bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	flags, words := splitArgs(os.Args[1:])
	cmd := newRootCmd(words)
	cmd.SetArgs(flags)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.WithField("cause", err).Error("Command failed")
		os.Exit(1)
	}
}

func newRootCmd(words []string) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "tjp [--options] [filters...] [command] [arguments...]",
		Short:         "Taskwarrior-like interface to Joplin todos",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case opts.verbose:
				log.SetLevel(log.DebugLevel)
			case opts.quiet:
				log.SetLevel(log.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, words)
		},
	}
	f := cmd.Flags()
	f.SetNormalizeFunc(normalizeFlagName)
	f.BoolVar(&opts.verbose, "verbose", false, "log debugging information")
	f.BoolVar(&opts.quiet, "quiet", false, "only log warnings and errors")
	f.BoolVar(&opts.color, "color", false, "force colors")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	f.BoolVar(&opts.listNotebooks, "list-notebooks", false, "list notebook ids and titles, then exit")
	f.BoolVar(&opts.render, "render", false, "render markdown text for cat and show")
	f.StringVar(&opts.token, "token", "", "Web Clipper authorization token")
	f.StringVar(&opts.url, "url", "", "Web Clipper service URL (default "+tjp.DefaultEndpoint+")")
	f.StringVar(&opts.config, "config", "", "configuration file (default $HOME/.config/tjp/config.toml)")
	f.StringVar(&opts.wireLog, "wire-log", "", "append all requests and responses to this file")
	f.BoolVar(&opts.all, "all", false, "include finished todos from the configured notebooks")
	f.BoolVar(&opts.reallyAll, "really-all", false, "include all todos from all notebooks")
	f.BoolVar(&opts.completed, "completed", false, "list todos from the done notebook")
	cmd.MarkFlagsMutuallyExclusive("color", "no-color")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	return cmd
}

func run(cmd *cobra.Command, opts options, words []string) error {
	ctx := cmd.Context()
	if err := config.LoadEnv(); err != nil {
		return err
	}
	path := opts.config
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.token != "" {
		cfg.Token = opts.token
	}
	if opts.url != "" {
		cfg.URL = opts.url
	}
	if opts.wireLog != "" {
		cfg.WireLog = opts.wireLog
	}

	client, err := tjp.NewClient(cfg.Token, tjp.WithEndpoint(cfg.URL), tjp.WithWireLog(cfg.WireLog))
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	width := unboundedWidth
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = max(w, minWidth)
		}
	}
	color := tty && strings.Contains(os.Getenv("TERM"), "color")
	if opts.color {
		color = true
	} else if opts.noColor {
		color = false
	}

	taskOpts := task.Options{
		FolderTodo: cfg.FolderTodo,
		FolderDone: cfg.FolderDone,
		FolderAdd:  cfg.FolderAdd,
		ReallyAll:  opts.reallyAll,
		All:        opts.all,
		Completed:  opts.completed,
		Out:        cmd.OutOrStdout(),
		Color:      color,
		Width:      width,
		Edit:       editor.New(editor.Command(cfg.Editor)).Edit,
	}
	if opts.render {
		wrap := 0
		if tty {
			wrap = width
		}
		r, err := markdown.New(wrap)
		if err != nil {
			return err
		}
		taskOpts.Render = r.Render
	}
	svc := task.New(client, taskOpts)

	if opts.listNotebooks {
		return svc.Notebooks(ctx)
	}
	filters, name, mods := splitCommand(words)
	if name == "edit" && !editor.IsInteractive() {
		log.Warn("Standard input is not a terminal, the editor may not work")
	}
	log.WithFields(log.Fields{
		"filters": filters,
		"command": name,
		"mods":    mods,
	}).Debug("Parsed command line")
	return svc.Commands()[name](ctx, filters, mods)
}
