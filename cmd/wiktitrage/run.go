// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wiktitrage/internal/clipboard"
	"github.com/pdiddy/wiktitrage/internal/extract"
	"github.com/pdiddy/wiktitrage/internal/instance"
	"github.com/pdiddy/wiktitrage/internal/logging"
	"github.com/pdiddy/wiktitrage/internal/rotation"
	"github.com/pdiddy/wiktitrage/internal/session"
	"github.com/pdiddy/wiktitrage/internal/source"
	"github.com/pdiddy/wiktitrage/internal/terminal"
	"github.com/pdiddy/wiktitrage/internal/wikitext"
	"github.com/pdiddy/wiktitrage/pkg/types"
)

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log, os.Stderr).With("session", uuid.NewString())

	lock, err := instance.Acquire(cfg.Session.LockFile)
	if err != nil {
		return err
	}
	defer lock.Release()

	clip := clipboard.Default()
	if _, ok := clip.(*clipboard.Memory); ok {
		log.Warn("system clipboard unavailable, entries will not be copied")
	}

	term, err := resolveTerm(args, clip)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entries, err := fetchEntries(ctx, cfg.Source, term, log)
	if err != nil {
		return err
	}

	display := terminal.NewDisplay(os.Stdout, cfg.Session.Lines, cfg.Session.Width)
	defer display.Clear()

	signals, closeInput := openInput(log)
	defer closeInput()

	engine := rotation.New(entries, cfg.Session.Countdown, display, clip)
	if err := engine.Start(); err != nil {
		log.Warn("publishing first entry failed", slog.String("error", err.Error()))
	}

	res, err := session.Run(ctx, engine, signals, session.Options{
		Interval: cfg.Session.Interval,
		Logger:   log,
	})
	log.Info("session ended",
		slog.String("reason", string(res.Reason)),
		slog.Int("advances", res.Advances),
		slog.Int("ticks", res.Ticks),
	)
	if err != nil && ctx.Err() != nil {
		// Interrupted from outside: not a failure of the lookup.
		return nil
	}
	return err
}

// resolveTerm returns the word to look up: the arguments joined by spaces,
// or the clipboard text when there are none.
func resolveTerm(args []string, clip clipboard.Clipboard) (string, error) {
	if len(args) > 0 {
		term := source.NormalizeTerm(strings.Join(args, " "))
		if term == "" {
			return "", source.ErrEmptyTerm
		}
		return term, nil
	}
	text, err := clip.Read()
	if err != nil {
		return "", fmt.Errorf("no word given and %w", err)
	}
	term := source.NormalizeTerm(text)
	if term == "" {
		return "", fmt.Errorf("no word given and the clipboard is empty: %w", source.ErrEmptyTerm)
	}
	return term, nil
}

// fetchEntries fetches term and returns the first non-empty entry sequence.
func fetchEntries(ctx context.Context, cfg types.SourceConfig, term string, log *slog.Logger) ([]types.Entry, error) {
	client := source.NewClient(cfg, nil, log)
	article, err := client.Fetch(ctx, term)
	if err != nil {
		return nil, err
	}
	matcher := wikitext.Default.WithMarkers(cfg.Markers)
	entries, err := extract.FirstNonEmptyWith(article, matcher)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", term, err)
	}
	log.Info("entries extracted", slog.String("term", term), slog.Int("entries", len(entries)))
	return entries, nil
}

// openInput returns the interaction signals. On a terminal, keys are read
// in raw mode; otherwise standard input is read as is, so that each
// newline confirms and anything else dismisses.
func openInput(log *slog.Logger) (<-chan session.Signal, func()) {
	keys, err := terminal.OpenKeys(os.Stdin)
	if err == nil {
		return keys.Signals(), func() {
			if err := keys.Close(); err != nil {
				log.Warn("restoring terminal failed", slog.String("error", err.Error()))
			}
		}
	}
	log.Debug("raw key input unavailable", slog.String("error", err.Error()))

	ch := make(chan session.Signal, 1)
	done := make(chan struct{})
	go terminal.ReadSignals(os.Stdin, ch, done)
	return ch, func() { close(done) }
}
