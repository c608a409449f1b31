package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"codedeck/internal/config"
	"codedeck/internal/eventbus"
	"codedeck/internal/history"
	"codedeck/internal/i18n"
	"codedeck/internal/ui"
	"codedeck/internal/workspace"
)

var (
	flagConfig string
	flagLog    string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codedeck",
		Short: "Terminal code workbench with a filterable command palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the config file")
	root.PersistentFlags().StringVar(&flagLog, "log", "", "path to the log file")

	root.AddCommand(newHistoryCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently invoked palette commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(cmd.Context(), historyPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()

			recent, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			if len(recent) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no command history")
				return nil
			}
			for _, id := range recent {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of entries to show")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), configService(nil).Path())
			return nil
		},
	})

	return cmd
}

func runTUI() error {
	logPath := flagLog
	if logPath == "" {
		logPath = filepath.Join(dataDir(), "codedeck.log")
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Stop()

	configSvc := configService(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("loading config: %v, using defaults", err)
		cfg = config.DefaultConfig()
	}

	translator := i18n.NewTranslator(cfg.Locale)

	persistor := workspace.NewFilePersistor(filepath.Join(dataDir(), "workspace.json"))
	state := workspace.New(persistor, bus)

	hist, err := history.Open(ctx, historyPath())
	if err != nil {
		log.Printf("opening history store: %v, continuing without history", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	model := ui.NewModel(bus, cfg, configSvc, translator, state, hist, logPath)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	// Forward domain events to the UI so the status bar stays current
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventStateSaved,
		eventbus.EventLocaleChanged,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Printf("starting UI, config at %s", configSvc.Path())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")

	close(eventChan)
	return nil
}

func configService(bus eventbus.EventBus) config.ConfigService {
	if flagConfig != "" {
		return config.NewConfigServiceAt(flagConfig, bus)
	}
	if bus != nil {
		return config.NewConfigServiceWithBus(bus)
	}
	return config.NewConfigService()
}

func dataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	dir := filepath.Join(configDir, "codedeck")
	os.MkdirAll(dir, 0755)
	return dir
}

func historyPath() string {
	return filepath.Join(dataDir(), "history.db")
}
