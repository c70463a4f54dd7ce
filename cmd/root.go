package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"

	"mantenedor/internal/i18n"
	"mantenedor/internal/logging"
	"mantenedor/internal/model"
)

// Config holds CLI configuration.
type Config struct {
	DBPath     string
	Lang       string
	Screen     model.Screen
	Seed       bool
	SkipSetup  bool
	ConfigFile string
	Logging    logging.Options

	Version bool
}

// Parse sets config in order of precedence:
// 1. flags > 2. env vars > 3. config file
//
// When the config file does not exist yet and stdin is a terminal, the setup
// screen runs first and writes it.
func Parse(stderr io.Writer, args []string) (Config, error) {
	// Load .env files first so env-based defaults work with flag parsing.
	loadDotEnv(".env")
	loadDotEnv(".env.local")

	cfg, err := parse(stderr, args)
	if err != nil {
		return Config{}, err
	}
	if !cfg.SkipSetup && !cfg.Version && shouldRunSetup(cfg.ConfigFile) {
		if err := runSetup(cfg.ConfigFile, cfg.Lang); err != nil {
			return Config{}, fmt.Errorf("failed to run setup: %w", err)
		}
		return parse(stderr, args)
	}
	return cfg, nil
}

func parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultDBPath := filepath.Join(home, ".mantenedor", "mantenedor.db")
	defaultConfigFile := filepath.Join(home, ".mantenedor.yaml")

	fs := ff.NewFlagSet("mantenedor")
	fs.StringVar(&cfg.DBPath, 0, "db", defaultDBPath, "Path to SQLite database file.")
	fs.StringVar(&cfg.ConfigFile, 'c', "config", defaultConfigFile, "Path to config file.")
	fs.BoolVar(&cfg.Seed, 0, "seed", "Insert demo clients and products into an empty database.")
	fs.BoolVar(&cfg.SkipSetup, 0, "skip-setup", "Do not run the first-run setup screen.")
	fs.StringVar(&cfg.Logging.Path, 0, "log-file", "", "Append log records to this file.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	{
		usage := fmt.Sprintf("Language of counters and labels (valid: %s).", strings.Join(i18n.ValidLangs(), ","))
		fs.StringEnumVar(&cfg.Lang, 0, "lang", usage, i18n.ValidLangs()...)
	}
	var screen string
	{
		valid := []string{model.ScreenClients.Key(), model.ScreenProducts.Key()}
		usage := fmt.Sprintf("Screen to open on (valid: %s).", strings.Join(valid, ","))
		fs.StringEnumVar(&screen, 's', "screen", usage, valid...)
	}
	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("MANTENEDOR"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	cfg.Screen, _ = model.ParseScreen(screen)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return Config{}, fmt.Errorf("failed to create database directory: %w", err)
	}
	return cfg, nil
}

func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if key == "" {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
}
