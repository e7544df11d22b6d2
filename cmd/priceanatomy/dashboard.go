package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/priceanatomy/internal/catalog"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/logging"
	"github.com/janekbaraniewski/priceanatomy/internal/tui"
)

func runDashboard(ctx context.Context, a *app) error {
	logger, closer, err := logging.Open(a.cfg.LogFile, a.verbose || logging.DebugEnabled())
	if err != nil {
		return err
	}
	defer closer.Close()

	if !tui.SetThemeByName(a.cfg.Theme) {
		logger.Warn("unknown theme, using default", "theme", a.cfg.Theme)
	}

	src := a.source()
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "source", src.Describe(), "items", cat.Len())

	model := tui.NewModel(tui.Options{
		Catalog:     cat,
		Source:      src.Describe(),
		UI:          a.cfg.UI,
		InitialItem: core.ItemID(a.item),
		Logger:      logger,
		SaveTheme:   a.saveTheme,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if a.cfg.Catalog.Watch && src.Watchable() {
		w, err := catalog.NewWatcher(src.Path, logger,
			func(c *core.Catalog) { program.Send(tui.CatalogReloadedMsg{Catalog: c}) },
			func(err error) { program.Send(tui.CatalogErrorMsg{Err: err}) },
		)
		if err != nil {
			logger.Warn("catalog watch disabled", "err", err)
		} else {
			go w.Run(ctx)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
