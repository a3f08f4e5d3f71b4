// Package command registers the "chatsounds" client command.
//
//	/client chatsounds stop            stop everything playing
//	/client chatsounds search <text>   list the sounds a trigger would pick from
//	/client chatsounds stats           show dispatcher counters
//
// Arguments are parsed with cobra; all output goes through the printer so it
// reaches chat on the next frame.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/chatsounds/internal/host"
	"github.com/dshills/chatsounds/internal/logging"
	"github.com/dshills/chatsounds/internal/sound"
)

// Name is the client command name.
const Name = "chatsounds"

// maxListed caps how many matches search prints.
const maxListed = 8

// Printer receives command output.
type Printer interface {
	Print(line string)
}

// StatsSource reports dispatcher counters.
type StatsSource interface {
	Stats() sound.Stats
}

// Table owns the chatsounds command.
type Table struct {
	registrar host.CommandRegistrar
	out       Printer
	guard     *sound.Guard
	stats     StatsSource
	logger    *zap.Logger
}

// New creates a command table. stats may be nil.
func New(reg host.CommandRegistrar, out Printer, guard *sound.Guard, stats StatsSource, logger *zap.Logger) *Table {
	return &Table{
		registrar: reg,
		out:       out,
		guard:     guard,
		stats:     stats,
		logger:    logging.OrNop(logger).Named("command"),
	}
}

// Load registers the command with the client.
func (t *Table) Load() error {
	if err := t.registrar.Register(Name, "Controls chat sounds", t.run); err != nil {
		return fmt.Errorf("register %s: %w", Name, err)
	}
	return nil
}

// Unload removes the command from the client.
func (t *Table) Unload() {
	t.registrar.Unregister(Name)
}

func (t *Table) run(args []string) {
	if err := t.Execute(args); err != nil {
		t.out.Print("&c" + err.Error())
	}
}

// Execute runs the command with args, as typed after the command name.
func (t *Table) Execute(args []string) error {
	root := t.newRoot()
	root.SetArgs(args)
	w := &lineWriter{out: t.out}
	root.SetOut(w)
	root.SetErr(w)
	err := root.Execute()
	w.Flush()
	if err != nil {
		t.logger.Debug("command failed", zap.Strings("args", args), zap.Error(err))
	}
	return err
}

func (t *Table) newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           Name,
		Short:         "Controls chat sounds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "stop",
			Short: "Stop every sound that is playing",
			Args:  cobra.NoArgs,
			RunE:  t.stop,
		},
		&cobra.Command{
			Use:   "search <text>",
			Short: "List the sounds matching text",
			Args:  cobra.MinimumNArgs(1),
			RunE:  t.search,
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show dispatcher counters",
			Args:  cobra.NoArgs,
			RunE:  t.showStats,
		},
	)
	return root
}

func (t *Table) stop(cmd *cobra.Command, _ []string) error {
	if !t.guard.With(func(e sound.Engine) { e.StopAll() }) {
		return errNoEngine
	}
	fmt.Fprintln(cmd.OutOrStdout(), "&eStopped all sounds")
	return nil
}

func (t *Table) search(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))

	var matches []sound.Handle
	if !t.guard.With(func(e sound.Engine) { matches = e.Find(query) }) {
		return errNoEngine
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "&e%d sound(s) for &f%s\n", len(matches), query)
	for i, h := range matches {
		if i == maxListed {
			fmt.Fprintf(out, "&7... and %d more\n", len(matches)-maxListed)
			break
		}
		fmt.Fprintf(out, "&7- %s\n", h.Source)
	}
	return nil
}

func (t *Table) showStats(cmd *cobra.Command, _ []string) error {
	if t.stats == nil {
		return errNoEngine
	}
	s := t.stats.Stats()
	fmt.Fprintf(cmd.OutOrStdout(),
		"&equeued %d, played %d, stopped %d, unmatched %d, overflowed %d, waiting %d\n",
		s.Submitted, s.Played, s.Stopped, s.Unmatched, s.Overflowed, s.QueueDepth)
	return nil
}

var errNoEngine = errors.New("chatsounds is not loaded")

// lineWriter turns cobra's output stream into printer lines.
type lineWriter struct {
	out Printer
	buf strings.Builder
}

var _ io.Writer = (*lineWriter)(nil)

func (w *lineWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			w.emit()
			continue
		}
		w.buf.WriteByte(b)
	}
	return len(p), nil
}

// Flush prints any unterminated trailing text.
func (w *lineWriter) Flush() {
	w.emit()
}

func (w *lineWriter) emit() {
	line := strings.TrimRight(w.buf.String(), " \t\r")
	w.buf.Reset()
	if line != "" {
		w.out.Print(line)
	}
}
