package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pickwise/internal/config"
	"pickwise/internal/domain"
	"pickwise/internal/eventbus"
	"pickwise/internal/logic"
	"pickwise/internal/source"
	"pickwise/internal/ui"
)

// errAborted makes the process exit non-zero when the picker was cancelled
var errAborted = errors.New("selection aborted")

type options struct {
	multi       bool
	toggleShift bool
	fallback    string
	valueKey    string
	dir         string
	configPath  string
	values      []string
	printText   bool
}

// NewCLI builds the root command
func NewCLI() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pickwise [file]",
		Short:         "Pick lines from a list in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.multi, "multi", "m", false, "Allow selecting several entries")
	flags.BoolVarP(&opts.toggleShift, "toggle-shift", "t", false, "Click replaces the selection, shift+click extends it")
	flags.StringVar(&opts.fallback, "fallback", "", "Value selected whenever the selection becomes empty")
	flags.StringVar(&opts.valueKey, "value-key", "", "How values are derived: index or text")
	flags.StringVarP(&opts.dir, "dir", "d", "", "Pick from the files below a directory")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default ./"+config.FileName+" or the user config)")
	flags.StringSliceVar(&opts.values, "values", nil, "Initially selected values")
	flags.BoolVar(&opts.printText, "print-text", false, "Print entry text instead of values")

	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pickwise config file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigServiceWithBus(nil, opts.configPath)
			if _, err := os.Stat(svc.Path()); err == nil {
				return fmt.Errorf("%s already exists", svc.Path())
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigServiceWithBus(nil, resolveConfigPath(opts.configPath))
			cfg, err := svc.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:          %s\n", svc.Path())
			fmt.Fprintf(out, "multi:         %t\n", cfg.Multi)
			fmt.Fprintf(out, "toggle_shift:  %t\n", cfg.ToggleShift)
			fmt.Fprintf(out, "fallback:      %s\n", cfg.FallbackSelection)
			fmt.Fprintf(out, "value_key:     %s\n", cfg.ValueKey)
			return nil
		},
	})

	return configCmd
}

// resolveConfigPath prefers an explicit path, then a config file in the
// working directory, then the user config
func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(config.FileName); err == nil {
		if abs, err := filepath.Abs(config.FileName); err == nil {
			return abs
		}
	}
	return ""
}

// applyFlags lays explicitly set flags over the loaded config
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("multi") {
		cfg.Multi = opts.multi
	}
	if flags.Changed("toggle-shift") {
		cfg.ToggleShift = opts.toggleShift
	}
	if flags.Changed("fallback") {
		cfg.FallbackSelection = opts.fallback
	}
	if flags.Changed("value-key") {
		key := domain.ValueKey(opts.valueKey)
		if !key.Valid() {
			return fmt.Errorf("invalid --value-key %q: want index or text", opts.valueKey)
		}
		cfg.ValueKey = key
	}
	return nil
}

func runPicker(cmd *cobra.Command, args []string, opts *options) error {
	logFile, err := os.OpenFile("pickwise.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, resolveConfigPath(opts.configPath))
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	store := logic.NewEntryStore(cfg.ValueKey)
	loader := source.NewLoader(bus, store)

	title := "pickwise"
	var progOpts []tea.ProgramOption
	switch {
	case opts.dir != "":
		title = opts.dir
	case len(args) == 1:
		title = args[0]
		if args[0] == "-" {
			progOpts = append(progOpts, tea.WithInputTTY())
		}
		if _, err := loader.LoadFile(ctx, args[0]); err != nil {
			return err
		}
	default:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("nothing to pick: pass a file, --dir or pipe lines on stdin")
		}
		progOpts = append(progOpts, tea.WithInputTTY())
		if _, err := loader.LoadReader(ctx, os.Stdin, "stdin"); err != nil {
			return err
		}
	}

	model := ui.NewModel(bus, cfg, store, title)
	p := tea.NewProgram(model, append(progOpts, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))...)
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	unsubscribe := subscribeUI(bus, eventChan)
	defer unsubscribe()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			}
		}
	}()

	if path := configSvc.Path(); path != "" {
		go func() {
			if err := config.Watch(ctx, path, bus); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Config watch stopped: %v", err)
			}
		}()
	}

	if opts.dir != "" {
		go func() {
			if _, err := loader.LoadDir(ctx, opts.dir); err != nil {
				bus.Publish(eventbus.ErrorEvent{Message: "loading " + opts.dir, Err: err})
			}
		}()
	}

	model.Preselect(opts.values)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running picker: %w", err)
	}

	res := model.Result()
	if res.Aborted {
		return errAborted
	}
	return printResult(cmd.OutOrStdout(), res, opts.printText)
}

// subscribeUI forwards the events the picker reacts to into events and logs
// selection changes. The returned func removes every subscription.
func subscribeUI(bus eventbus.EventBus, events chan<- eventbus.DomainEvent) func() {
	forward := func(e eventbus.DomainEvent) {
		select {
		case events <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	var unsubscribers []func()
	for _, t := range []eventbus.EventType{
		eventbus.EventEntriesLoaded,
		eventbus.EventConfigChanged,
		eventbus.EventError,
	} {
		unsubscribers = append(unsubscribers, bus.Subscribe(t, forward))
	}
	unsubscribers = append(unsubscribers, bus.Subscribe(eventbus.EventSelectedValuesChanged, func(e eventbus.DomainEvent) {
		log.Printf("selection changed: %+v", e)
	}))

	return func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}
}

func printResult(w io.Writer, res ui.Result, printText bool) error {
	lines := res.Values
	if printText {
		lines = make([]string, 0, len(res.Entries))
		for _, e := range res.Entries {
			lines = append(lines, e.Text)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
