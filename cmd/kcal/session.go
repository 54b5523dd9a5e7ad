package kcal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/saadjs/kcal-tui/internal/catalog"
	"github.com/saadjs/kcal-tui/internal/logging"
	"github.com/saadjs/kcal-tui/internal/render"
	"github.com/saadjs/kcal-tui/internal/tui"
)

// isTerminal is swapped in tests.
var isTerminal = term.IsTerminal

func runSession(cmd *cobra.Command) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("kcal needs an interactive terminal; use a subcommand such as 'kcal today' from scripts")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	base, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := base.With("session", uuid.NewString())
	ctx := cmd.Context()

	m, err := openManager(cfg)
	if err != nil {
		log.Error(ctx, "open store failed", "store", cfg.Store, "err", err)
		return err
	}
	defer m.Close()
	_, records, firstRun, err := m.LoadAll(ctx)
	if err != nil {
		log.Error(ctx, "load store failed", "store", cfg.Store, "err", err)
		return err
	}
	log.Info(ctx, "store loaded", "store", cfg.Store, "path", storePath(cfg), "records", len(records), "first_run", firstRun)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	r := render.New(screen, cfg.Width, cfg.Height)
	var fb tui.Feedback = tui.Silent{}
	if cfg.Bell {
		fb = tui.NewBell(r)
	}
	s := tui.New(r, m, catalog.New(cfg.Templates...), tui.NewScreenKeys(screen), tui.Options{
		Logger:   log,
		Feedback: fb,
	})
	if err := s.Run(ctx); err != nil && !errors.Is(err, tui.ErrInputClosed) {
		log.Error(ctx, "session ended with error", "err", err)
		return err
	}
	return nil
}
