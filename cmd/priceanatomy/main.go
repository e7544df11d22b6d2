package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/janekbaraniewski/priceanatomy/internal/catalog"
	"github.com/janekbaraniewski/priceanatomy/internal/config"
	"github.com/janekbaraniewski/priceanatomy/internal/logging"
	"github.com/janekbaraniewski/priceanatomy/internal/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every command once flags and config are read.
type app struct {
	cfgPath string
	cfg     config.Config
	logger  *charmlog.Logger

	catalogPath string
	dbPath      string
	logFile     string
	item        string
	noWatch     bool
	verbose     bool
}

func (a *app) source() catalog.Source {
	return catalog.Source{Path: a.cfg.Catalog.Path, DB: a.cfg.Catalog.DB}
}

func (a *app) saveTheme(name string) error {
	return config.SaveThemeTo(a.cfgPath, name)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "priceanatomy",
		Short:        "Price Anatomy shows what an imported car's price is made of.",
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context(), a)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("priceanatomy %s\n", version.String()))

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", config.ConfigPath(), "settings file")
	flags.StringVar(&a.catalogPath, "catalog", "", "catalog JSON file (overrides config)")
	flags.StringVar(&a.dbPath, "db", "", "catalog SQLite database (overrides config)")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&a.item, "item", "", "open this car directly")
	root.Flags().BoolVar(&a.noWatch, "no-watch", false, "do not reload the catalog file on change")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newCatalogCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// init loads the config and applies flag overrides. Non-interactive commands
// log to stderr; the dashboard replaces the logger with its own.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadFrom(a.cfgPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", a.cfgPath, err)
	}
	if strings.TrimSpace(a.logFile) != "" {
		cfg.LogFile = a.logFile
	}
	if a.catalogPath != "" {
		cfg.Catalog.Path = a.catalogPath
	}
	if a.dbPath != "" {
		cfg.Catalog.DB = a.dbPath
	}
	if a.noWatch {
		cfg.Catalog.Watch = false
	}
	a.cfg = cfg

	level := charmlog.WarnLevel
	if a.verbose || logging.DebugEnabled() {
		level = charmlog.DebugLevel
	}
	a.logger = logging.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	a.logger.Debug("config loaded", "path", a.cfgPath, "catalog", a.source().Describe())
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "priceanatomy %s\n", version.String())
		},
	}
}
