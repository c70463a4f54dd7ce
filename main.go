package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterbourgon/ff/v4"

	"mantenedor/cmd"
	"mantenedor/internal/db"
	"mantenedor/internal/i18n"
	"mantenedor/internal/logging"
	"mantenedor/internal/ui"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.Parse(os.Stderr, os.Args[1:])
	if err != nil {
		return err
	}
	if config.Version {
		fmt.Println(version)
		return nil
	}

	logger, err := logging.NewLogger(config.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	database, err := db.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()
	logger.Debug("opened database", "path", config.DBPath)

	if config.Seed {
		seeded, err := db.Seed(database)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		if seeded {
			logger.Info("inserted demo clients and products")
		} else {
			logger.Debug("database not empty, skipping demo data")
		}
	}

	catalog, err := i18n.New(config.Lang)
	if err != nil {
		return err
	}

	m, err := ui.New(database, catalog, logger, config.Screen)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
