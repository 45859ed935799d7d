package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"leetnorm/internal/app"
	"leetnorm/internal/config"
	"leetnorm/internal/errx"
	"leetnorm/internal/leetcode"
	"leetnorm/internal/output"
	"leetnorm/internal/render"
)

const (
	kEnvBaseURL    = "LEETNORM_BASE_URL"
	kEnvConfigPath = "LEETNORM_CONFIG_PATH"
	kEnvLogLevel   = "LEETNORM_LOG_LEVEL"
	kDotEnvFile    = ".env"

	kDefaultLeetCodeBaseURL = "https://leetcode.com"
	kDefaultLogLevel        = "warn"
	kUserAgent              = "leetnorm/0.1.0"
)

func main() {
	os.Exit(realMain(os.Args))
}

func validateArgs(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing command")
	}

	switch args[1] {
	case "problems", "question", "contest", "tag", "daily", "user":
	case "config":
	case "help", "-h", "--help":
		break
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}

	return nil
}

func realMain(args []string) int {
	if err := validateArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		usage(os.Stderr)
		return 2
	}

	if args[1] == "help" || args[1] == "-h" || args[1] == "--help" {
		usage(os.Stdout)
		return 0
	}

	ctx := context.Background()

	// Values already in the environment win over .env.
	if err := godotenv.Load(kDotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error: load %s: %v\n", kDotEnvFile, err)
		return 1
	}

	cfgPath := strings.TrimSpace(os.Getenv(kEnvConfigPath))
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: resolve config path: %v\n", err)
			return 1
		}
	}
	cfgStore := config.NewFileStore(cfgPath)
	pr := output.NewStdPrinter(os.Stdout, os.Stderr, false)

	if args[1] == "config" {
		if err := runConfig(ctx, cfgStore, pr, args[2:]); err != nil {
			_ = pr.PrintError(ctx, err)
			return 1
		}
		return 0
	}

	cfg, err := cfgStore.Load(ctx)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = pr.PrintError(ctx, err)
		return 1
	}

	logger, err := newLogger(os.Stderr, firstNonEmpty(os.Getenv(kEnvLogLevel), cfg.LogLevel, kDefaultLogLevel))
	if err != nil {
		_ = pr.PrintError(ctx, err)
		return 2
	}

	baseURL := firstNonEmpty(os.Getenv(kEnvBaseURL), cfg.BaseURL, kDefaultLeetCodeBaseURL)
	logger.Debug("starting", "command", args[1], "base_url", baseURL, "config", cfgPath,
		"session_set", cfg.LeetCode.Session != "")

	lc := leetcode.NewHTTPClient(leetcode.HTTPClientOptions{
		BaseURL:   baseURL,
		UserAgent: kUserAgent,
		Auth: leetcode.Auth{
			Session:   cfg.LeetCode.Session,
			CsrfToken: cfg.LeetCode.CSRFTOKEN,
		},
	})
	pr.Renderer = render.NewHTMLRenderer(baseURL)

	a := app.New(app.App{
		LeetCode: lc,
		Output:   pr,
		Logger:   logger,
	})

	runErr := runCommand(ctx, a, pr, args[1], args[2:])
	if runErr == nil {
		return 0
	}

	_ = pr.PrintError(ctx, runErr)
	var usageErr *usageError
	switch {
	case errors.As(runErr, &usageErr):
		return 2
	case errors.Is(runErr, errx.ErrUnexpectedResponse):
		return 4
	}
	return 1
}

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func runCommand(ctx context.Context, a *app.App, pr *output.StdPrinter, cmd string, argv []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var asJSON bool
	fs.BoolVar(&asJSON, "json", false, "emit JSON output")

	rest, err := parseInterspersed(fs, argv)
	if err != nil {
		return usagef("%s: %v", cmd, err)
	}
	pr.JSON = asJSON

	switch cmd {
	case "problems":
		return a.Problems(ctx, rest)
	case "daily":
		return a.Daily(ctx)
	case "user":
		return a.User(ctx)
	}

	if len(rest) < 1 {
		return usagef("%s: missing <slug>", cmd)
	}
	switch cmd {
	case "question":
		return a.Question(ctx, rest[0])
	case "contest":
		return a.Contest(ctx, rest[0])
	case "tag":
		return a.Tag(ctx, rest[0])
	}
	return usagef("unknown command %q", cmd)
}

// parseInterspersed lets flags follow positional arguments, e.g. "question two-sum --json".
func parseInterspersed(fs *flag.FlagSet, argv []string) ([]string, error) {
	var rest []string
	for {
		if err := fs.Parse(argv); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			return rest, nil
		}
		rest = append(rest, fs.Arg(0))
		argv = fs.Args()[1:]
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func runConfig(ctx context.Context, store *config.FileStore, pr *output.StdPrinter, argv []string) error {
	if len(argv) < 1 {
		return fmt.Errorf("config: missing subcommand (init|show)")
	}
	switch argv[0] {
	case "init":
		return runConfigInit(ctx, store, pr, argv[1:])
	case "show":
		return runConfigShow(ctx, store, pr, argv[1:])
	default:
		return fmt.Errorf("config: unknown subcommand %q (expected init|show)", argv[0])
	}
}

func runConfigInit(ctx context.Context, store *config.FileStore, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var baseURL string
	var logLevel string
	var force bool
	fs.StringVar(&baseURL, "base-url", "", "LeetCode site (default: https://leetcode.com)")
	fs.StringVar(&logLevel, "log-level", kDefaultLogLevel, "debug, info, warn or error")
	fs.BoolVar(&force, "force", false, "overwrite existing config file")

	if err := fs.Parse(argv); err != nil {
		return err
	}
	if _, err := newLogger(io.Discard, logLevel); err != nil {
		return err
	}

	if _, err := os.Stat(store.Path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", store.Path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config %s: %w", store.Path, err)
	}

	cfg := config.Config{
		BaseURL:  baseURL,
		LogLevel: logLevel,
	}
	if err := store.Save(ctx, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(pr.Out, "wrote config: %s\n", store.Path)
	_, _ = fmt.Fprintln(pr.Out, "note: edit the file to set leetcode.session and leetcode.csrftoken")
	return nil
}

func runConfigShow(ctx context.Context, store *config.FileStore, pr *output.StdPrinter, argv []string) error {
	fs := flag.NewFlagSet("config show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(argv); err != nil {
		return err
	}

	cfg, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config not found at %s (run: leetnorm config init)", store.Path)
		}
		return err
	}

	_, _ = fmt.Fprintf(pr.Out, "path: %s\n", store.Path)
	_, _ = fmt.Fprintf(pr.Out, "base_url: %s\n", firstNonEmpty(cfg.BaseURL, "(default)"))
	_, _ = fmt.Fprintf(pr.Out, "log_level: %s\n", firstNonEmpty(cfg.LogLevel, "(default)"))
	_, _ = fmt.Fprintf(pr.Out, "leetcode.session: %s\n", secretStatus(cfg.LeetCode.Session))
	_, _ = fmt.Fprintf(pr.Out, "leetcode.csrftoken: %s\n", secretStatus(cfg.LeetCode.CSRFTOKEN))
	return nil
}

func secretStatus(v string) string {
	if v == "" {
		return "(not set)"
	}
	return "(set)"
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "leetnorm - normalized LeetCode data in the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  leetnorm <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  problems [category...]   list problems (default category: all)")
	fmt.Fprintln(w, "  question <titleSlug>     show one question")
	fmt.Fprintln(w, "  contest  <slug>          show a contest and its questions")
	fmt.Fprintln(w, "  tag      <slug>          list question ids of a topic tag")
	fmt.Fprintln(w, "  daily                    print today's daily question id")
	fmt.Fprintln(w, "  user                     show the signed-in user")
	fmt.Fprintln(w, "  config   init|show")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - Use --json on subcommands for JSON output")
	fmt.Fprintf(w, "  - %s, %s and %s may also be set in ./.env\n", kEnvBaseURL, kEnvConfigPath, kEnvLogLevel)
	fmt.Fprintln(w, "  - Exit codes: 0 ok, 1 error, 2 usage, 4 unexpected server response")
}
