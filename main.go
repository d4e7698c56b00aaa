package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/mahyarmirrashed/filelist/internal/config"
	"github.com/mahyarmirrashed/filelist/internal/daemon"
	"github.com/mahyarmirrashed/filelist/internal/utils"
	"github.com/mahyarmirrashed/filelist/pkg/filelist"
)

// Set at build time: go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	app := &cli.Command{
		Name:      "fl",
		Usage:     "list files matching include globs minus exclusions",
		Version:   version,
		ArgsUsage: "[pattern...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("FL_CONFIG"),
				Value:   config.DefaultConfigFilename,
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "directory patterns are resolved from",
				Sources: cli.EnvVars("FL_ROOT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logging level: debug, info, warn, error",
				Sources: cli.EnvVars("FL_LOG_LEVEL"),
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"x"},
				Usage:   "exclusion rules (repeat or comma-separated)",
				Sources: cli.EnvVars("FL_EXCLUDE"),
			},
			&cli.BoolFlag{
				Name:    "nocase",
				Aliases: []string{"i"},
				Usage:   "match include patterns case-insensitively",
				Sources: cli.EnvVars("FL_NOCASE"),
			},
			&cli.BoolFlag{
				Name:    "dot",
				Usage:   "let wildcards match dotfiles",
				Sources: cli.EnvVars("FL_DOT"),
			},
			&cli.StringFlag{
				Name:    "engine",
				Usage:   "glob engine: doublestar, gobwas",
				Sources: cli.EnvVars("FL_ENGINE"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not warn about unreadable directories",
				Sources: cli.EnvVars("FL_QUIET"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text, null, yaml",
				Sources: cli.EnvVars("FL_FORMAT"),
			},
		},
		Action: listAction,
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "print the resolved file list",
				ArgsUsage: "[pattern...]",
				Action:    listAction,
			},
			{
				Name:      "check",
				Usage:     "report whether paths are excluded",
				ArgsUsage: "path...",
				Action:    checkAction,
			},
			{
				Name:      "watch",
				Usage:     "print the file list again whenever it changes",
				ArgsUsage: "[pattern...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "daemonize",
						Usage:   "run as daemon",
						Sources: cli.EnvVars("FL_DAEMONIZE"),
					},
					&cli.DurationFlag{
						Name:    "delay",
						Usage:   "settle time before re-resolving",
						Sources: cli.EnvVars("FL_DELAY"),
					},
					&cli.BoolFlag{
						Name:    "notifications",
						Usage:   "send a desktop notification when the list changes",
						Sources: cli.EnvVars("FL_NOTIFICATIONS"),
					},
				},
				Action: watchAction,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the config file if it exists and applies flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	configPath := cmd.String("config")

	// Only load config if the file exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.IsSet("root") {
		cfg.Root = cmd.String("root")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("exclude") {
		cfg.Exclude = utils.SplitPatterns(cmd.StringSlice("exclude"))
	}
	if cmd.IsSet("nocase") {
		cfg.NoCase = cmd.Bool("nocase")
	}
	if cmd.IsSet("dot") {
		cfg.Dot = cmd.Bool("dot")
	}
	if cmd.IsSet("engine") {
		cfg.Engine = cmd.String("engine")
	}
	if cmd.IsSet("quiet") {
		cfg.Quiet = cmd.Bool("quiet")
	}
	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("daemonize") {
		cfg.Daemonize = cmd.Bool("daemonize")
	}
	if cmd.IsSet("delay") {
		cfg.Delay = cmd.Duration("delay")
	}
	if cmd.IsSet("notifications") {
		cfg.Notifications = cmd.Bool("notifications")
	}

	// Set log level from config
	switch cfg.LogLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	filelist.SetVerbose(!cfg.Quiet)

	return cfg, nil
}

// enterRoot changes into the configured root so relative patterns resolve
// against it.
func enterRoot(cfg *config.Config) error {
	root := utils.ExpandTilde(cfg.Root)
	if root == "" || root == "." {
		return nil
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("failed to enter root: %w", err)
	}
	log.Debugf("Resolving from %s", root)
	return nil
}

// newList builds an unresolved list from the config and extra patterns.
func newList(cfg *config.Config, patterns []string) (*filelist.FileList, error) {
	opts, err := cfg.MatchOptions()
	if err != nil {
		return nil, err
	}
	fl := filelist.New().
		Include(cfg.Include, patterns, opts).
		SetExcludeOptions(opts).
		Exclude(cfg.Exclude)
	return fl, fl.Err()
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := enterRoot(cfg); err != nil {
		return err
	}

	fl, err := newList(cfg, cmd.Args().Slice())
	if err != nil {
		return err
	}
	files, err := fl.ToArray()
	if err != nil {
		return err
	}
	log.Debugf("Resolved %d files", len(files))
	return utils.WriteList(os.Stdout, files, cfg.Format)
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("check needs at least one path")
	}
	if err := enterRoot(cfg); err != nil {
		return err
	}

	fl, err := newList(cfg, nil)
	if err != nil {
		return err
	}
	for _, p := range cmd.Args().Slice() {
		excluded, err := fl.ShouldExclude(p)
		if err != nil {
			return err
		}
		verdict := "included"
		if excluded {
			verdict = "excluded"
		}
		fmt.Printf("%s\t%s\n", verdict, p)
	}
	return nil
}

func watchAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Only daemonize if config says so
	if cfg.Daemonize {
		parent, release, err := daemon.Daemonize()
		if err != nil {
			return err
		}
		if parent {
			return nil // Parent process exits
		}
		defer release()
		log.Info("Daemon started")
	} else {
		log.Info("Running in foreground (not daemonized)")
	}

	if err := enterRoot(cfg); err != nil {
		return err
	}
	cfg.Root = "."

	patterns := cmd.Args().Slice()
	return daemon.Run(ctx, cfg, func() (*filelist.FileList, error) {
		return newList(cfg, patterns)
	}, os.Stdout)
}
