package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hangulpad/internal/anthropic"
	"github.com/jusunglee/hangulpad/internal/envsetup"
	"github.com/jusunglee/hangulpad/internal/google"
	"github.com/jusunglee/hangulpad/internal/llm"
	"github.com/jusunglee/hangulpad/internal/logger"
	"github.com/jusunglee/hangulpad/internal/translation"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// config is every flag, shared by the subcommands.
type config struct {
	databaseURL string
	logLevel    string
	logFormat   string
	logFile     string

	llmProvider     string
	llmModel        string
	anthropicAPIKey string
	googleAPIKey    string

	workers  int
	out      string
	in       string
	encoding string
}

func mainE() error {
	// A bare first run walks through writing the .env file.
	if len(os.Args) == 1 && envsetup.NeedsSetup(envsetup.DefaultPath) {
		if _, err := envsetup.Run(envsetup.DefaultPath); err != nil {
			return fmt.Errorf("running setup: %w", err)
		}
	}
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg config
	root := newRootCommand(&cfg)

	if err := root.Parse(os.Args[1:], ff.WithEnvVarPrefix("HANGULPAD")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Command(root.GetSelected()))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}
	return root.Run(ctx)
}

func newRootCommand(cfg *config) *ff.Command {
	rootFlags := ff.NewFlagSet("hangulpad")
	rootFlags.StringVar(&cfg.databaseURL, 0, "database-url", envsetup.DefaultDatabaseURL, "SQLite path or postgres:// URL of the vocabulary log")
	rootFlags.StringVar(&cfg.logLevel, 0, "log-level", "info", "debug, info, warn or error")
	rootFlags.StringVar(&cfg.logFormat, 0, "log-format", "pretty", "pretty or json")
	rootFlags.StringVar(&cfg.logFile, 0, "log-file", "", "write logs to this file (the TUI defaults to hangulpad.log)")
	rootFlags.StringVar(&cfg.llmProvider, 0, "llm-provider", "none", "gloss suggestions: none, anthropic or google")
	rootFlags.StringVar(&cfg.llmModel, 0, "llm-model", "", "model name, provider default when empty")
	rootFlags.StringVar(&cfg.anthropicAPIKey, 0, "anthropic-api-key", "", "Anthropic API key")
	rootFlags.StringVar(&cfg.googleAPIKey, 0, "google-api-key", "", "Google AI API key")

	tuiCmd := &ff.Command{
		Name:      "tui",
		Usage:     "hangulpad tui [FLAGS]",
		ShortHelp: "compose words interactively (default)",
		Flags:     ff.NewFlagSet("tui").SetParent(rootFlags),
		Exec: func(ctx context.Context, _ []string) error {
			return runTUI(ctx, cfg)
		},
	}

	parseFlags := ff.NewFlagSet("parse").SetParent(rootFlags)
	parseFlags.IntVar(&cfg.workers, 0, "workers", 0, "parallel workers, GOMAXPROCS when 0")
	parseCmd := &ff.Command{
		Name:      "parse",
		Usage:     "hangulpad parse [FLAGS] [TEXT...]",
		ShortHelp: "convert romanized text, one argument or stdin line each, to Hangul",
		Flags:     parseFlags,
		Exec: func(ctx context.Context, args []string) error {
			return runParse(ctx, cfg, args, os.Stdin, os.Stdout)
		},
	}

	romanizeCmd := &ff.Command{
		Name:      "romanize",
		Usage:     "hangulpad romanize [HANGUL...]",
		ShortHelp: "spell Hangul in the romanization the parser reads",
		Flags:     ff.NewFlagSet("romanize").SetParent(rootFlags),
		Exec: func(ctx context.Context, args []string) error {
			return runRomanize(ctx, cfg, args, os.Stdin, os.Stdout)
		},
	}

	hintsCmd := &ff.Command{
		Name:      "hints",
		Usage:     "hangulpad hints PREFIX",
		ShortHelp: "list every letter whose spelling starts with PREFIX",
		Flags:     ff.NewFlagSet("hints").SetParent(rootFlags),
		Exec: func(_ context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("hints takes exactly one prefix")
			}
			return runHints(args[0], os.Stdout)
		},
	}

	exportFlags := ff.NewFlagSet("export").SetParent(rootFlags)
	exportFlags.StringVar(&cfg.out, 0, "out", "-", "output file, - for stdout")
	exportFlags.StringVar(&cfg.encoding, 0, "encoding", "utf-8", "utf-8 or euc-kr")
	exportCmd := &ff.Command{
		Name:      "export",
		Usage:     "hangulpad export [FLAGS]",
		ShortHelp: "write the vocabulary log as CSV",
		Flags:     exportFlags,
		Exec: func(ctx context.Context, _ []string) error {
			return runExport(ctx, cfg)
		},
	}

	importFlags := ff.NewFlagSet("import").SetParent(rootFlags)
	importFlags.StringVar(&cfg.in, 0, "in", "-", "input file, - for stdin")
	importFlags.StringVar(&cfg.encoding, 0, "encoding", "utf-8", "utf-8 or euc-kr")
	importCmd := &ff.Command{
		Name:      "import",
		Usage:     "hangulpad import [FLAGS]",
		ShortHelp: "add entries from a CSV file to the vocabulary log",
		Flags:     importFlags,
		Exec: func(ctx context.Context, _ []string) error {
			return runImport(ctx, cfg)
		},
	}

	setupCmd := &ff.Command{
		Name:      "setup",
		Usage:     "hangulpad setup",
		ShortHelp: "write a " + envsetup.DefaultPath + " file interactively",
		Flags:     ff.NewFlagSet("setup").SetParent(rootFlags),
		Exec: func(context.Context, []string) error {
			ok, err := envsetup.Run(envsetup.DefaultPath)
			if err != nil {
				return fmt.Errorf("running setup: %w", err)
			}
			if ok {
				fmt.Println("wrote", envsetup.DefaultPath)
			}
			return nil
		},
	}

	return &ff.Command{
		Name:      "hangulpad",
		Usage:     "hangulpad [FLAGS] [SUBCOMMAND]",
		ShortHelp: "compose Hangul from romanized input and keep a vocabulary log",
		Flags:     rootFlags,
		Subcommands: []*ff.Command{
			tuiCmd, parseCmd, romanizeCmd, hintsCmd, exportCmd, importCmd, setupCmd,
		},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q", args[0])
			}
			return runTUI(ctx, cfg)
		},
	}
}

// newLogger installs the process logger. The TUI owns the terminal, so it
// always logs to a file.
func newLogger(cfg *config, tui bool) (*slog.Logger, func(), error) {
	path := cfg.logFile
	if path == "" && tui {
		path = "hangulpad.log"
	}
	if path == "" {
		return logger.Init(os.Stderr, cfg.logLevel, cfg.logFormat), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger.Init(f, cfg.logLevel, cfg.logFormat), func() { f.Close() }, nil
}

// newTranslator builds the gloss backend for the configured provider, or
// nil when glosses are off.
func newTranslator(ctx context.Context, cfg *config) (*translation.Translator, error) {
	var client llm.Client
	switch cfg.llmProvider {
	case "", "none":
		return nil, nil
	case "anthropic":
		if cfg.anthropicAPIKey == "" {
			return nil, errors.New("anthropic-api-key is required for the anthropic provider")
		}
		client = anthropic.NewClient(cfg.anthropicAPIKey, anthropic.Model(cfg.llmModel))
	case "google":
		if cfg.googleAPIKey == "" {
			return nil, errors.New("google-api-key is required for the google provider")
		}
		c, err := google.NewClient(ctx, cfg.googleAPIKey, google.Model(cfg.llmModel))
		if err != nil {
			return nil, err
		}
		client = c
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.llmProvider)
	}
	return translation.NewTranslator(client), nil
}
