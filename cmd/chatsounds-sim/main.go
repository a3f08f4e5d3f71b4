// Package main runs chatsounds inside a terminal chat client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/chatsounds/internal/chatui"
	"github.com/dshills/chatsounds/internal/host"
	"github.com/dshills/chatsounds/internal/logging"
	"github.com/dshills/chatsounds/internal/option"
	"github.com/dshills/chatsounds/internal/plugin"
	"github.com/dshills/chatsounds/internal/printer"
	"github.com/dshills/chatsounds/internal/sim"
	"github.com/dshills/chatsounds/internal/sound"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// defaultLogFile is used when the options name none; the terminal belongs
// to the screen.
const defaultLogFile = "chatsounds.log"

var (
	configPath string
	scriptPath string
	playerName string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "chatsounds-sim",
	Short: "Chat in a terminal client with chatsounds loaded",
	Long: `chatsounds-sim runs a small chat client in the terminal with the
chatsounds plugin activated. Chat lines ending in a sound name play it; "sh"
stops everything. "/client chatsounds" lists the plugin commands.

A script replays server messages, one per line, optionally delayed with a
leading "+<duration>".`,
	Version:      version + " (" + commit + ")",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "options.yaml", "options file")
	rootCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "server messages to replay")
	rootCmd.Flags().StringVarP(&playerName, "name", "n", "Player", "local player name")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	store := option.NewStore(configPath)
	if err := store.Load(); err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	opts := store.Options()

	logCfg := logging.DefaultConfig()
	logCfg.Level = opts.Logging.Level
	logCfg.File = opts.Logging.File
	if logCfg.File == "" {
		logCfg.File = defaultLogFile
	}
	if verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var script []sim.ScriptLine
	if scriptPath != "" {
		if script, err = sim.LoadScript(scriptPath); err != nil {
			return err
		}
	}

	client := host.NewLocal(host.WithPlayerName(playerName), host.WithLogger(logger.Named("client")))
	chat := chatui.New(client.Submit)
	out := printer.New(client)

	var s *sim.Sim
	p, err := plugin.New(plugin.Config{
		Host:    client,
		Printer: out,
		ChatUI:  chat,
		Options: store,
		Engine: func() (sound.Engine, error) {
			return sound.LoadCatalog(store.Options().Sounds.Catalog, sim.NewChatPlayer(out, logger))
		},
		DispatcherOptions: func() []sound.DispatcherOption {
			o := store.Options().Sounds
			return []sound.DispatcherOption{
				sound.WithWorkerCount(o.Workers),
				sound.WithQueueSize(o.QueueSize),
			}
		},
		Logger: logger,
		Abort: abortFunc(logger, func() {
			if s != nil {
				s.Close()
			}
		}),
	})
	if err != nil {
		return err
	}

	s, err = sim.NewTerminal(client, chat, sim.WithScript(script), sim.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Close()

	p.Activate()
	defer p.Deactivate()

	logger.Info("simulator started",
		zap.String("config", store.Path()),
		zap.String("catalog", store.Options().Sounds.Catalog),
		zap.Int("script_lines", len(script)))

	return s.Run(ctx)
}

// abortFunc restores the terminal and exits. Nothing is unloaded: the
// client's state can no longer be trusted.
func abortFunc(logger *zap.Logger, restore func()) func(error) {
	return func(err error) {
		restore()
		logger.Fatal("host state is inconsistent, aborting", zap.Error(err))
	}
}
