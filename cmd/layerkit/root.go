package main

import (
	"fmt"

	"github.com/grindlemire/layerkit/internal/config"
	"github.com/grindlemire/layerkit/internal/debug"
	"github.com/grindlemire/layerkit/internal/settings"
	"github.com/grindlemire/layerkit/library"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	cfg       config.Config
	envFile   string
	dirFlag   string
	dbFlag    string
	localeTag string
)

var rootCmd = &cobra.Command{
	Use:          "layerkit",
	Short:        "Inspect and manage on-screen control layouts",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if dirFlag != "" {
			cfg.Dir = dirFlag
		}
		if dbFlag != "" {
			cfg.DB = dbFlag
		}
		if localeTag != "" {
			tag, err := language.Parse(localeTag)
			if err != nil {
				return fmt.Errorf("--locale: %w", err)
			}
			cfg.Locale = tag
		}
		if err := debug.Init(cfg.Debug); err != nil {
			return err
		}
		debug.Log("layerkit %s: dir=%s db=%s locale=%s", cmd.Name(), cfg.Dir, cfg.DB, cfg.Locale)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env", "", "read settings from this .env file instead of ./.env")
	pf.StringVar(&dirFlag, "dir", "", "layout library directory (overrides "+config.EnvDir+")")
	pf.StringVar(&dbFlag, "db", "", "settings database (overrides "+config.EnvDB+")")
	pf.StringVar(&localeTag, "locale", "", "language for translated text (overrides "+config.EnvLocale+")")
}

// openLibrary opens the settings store and refreshes the library. The
// returned func closes the store.
func openLibrary(cmd *cobra.Command) (*library.Manager, func(), error) {
	store, err := settings.Open(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	m := library.New(cfg.Dir, store)
	if err := m.Refresh(cmd.Context()); err != nil {
		store.Close()
		return nil, nil, err
	}
	return m, func() { store.Close() }, nil
}
