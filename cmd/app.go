package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/processor"
)

const (
	defaultLogLevel = "warn"
	logLevelFlag    = "log-level"
	argsTerminator  = "--"
)

func newCommand(stdout, stderr io.Writer, lookupEnv parser.LookupEnvFunc) *cli.Command {
	return &cli.Command{
		Name:            "minigrep",
		Usage:           "Print lines of a file containing the query (set IGNORE_CASE to ignore case)",
		ArgsUsage:       "<query> <file_path>",
		HideHelpCommand: true,
		// stdout только для найденных строк, справка и ошибки идут в stderr
		Writer:    stderr,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        logLevelFlag,
				Usage:       "Diagnostics level on stderr: debug, info, warn or error",
				DefaultText: defaultLogLevel,
				Value:       defaultLogLevel,
				Sources:     cli.EnvVars("MINIGREP_LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(cmd.String(logLevelFlag))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			positional := cmd.Args().Slice()
			if len(positional) > 0 && positional[0] == argsTerminator {
				positional = positional[1:]
			}

			// parser ждет имя программы первым элементом
			args := append([]string{cmd.Name}, positional...)
			cfg, err := parser.Build(args, lookupEnv)
			if err != nil {
				return fmt.Errorf("problem parsing arguments: %w", err)
			}

			if err := processor.New(stdout, logger).Run(ctx, cfg); err != nil {
				return fmt.Errorf("application error: %w", err)
			}
			return nil
		},
	}
}

// terminateFlags inserts "--" before the first argument that is not one of our own flags,
// so a query like "-v" is taken as a positional argument.
func terminateFlags(args []string) []string {
	if len(args) == 0 {
		return args
	}

	i := 1
	for i < len(args) {
		name, hasValue := flagName(args[i])
		switch name {
		case "h", "help":
			i++
			continue
		case logLevelFlag:
			if hasValue {
				i++
			} else {
				i += 2
			}
			continue
		}
		break
	}

	if i >= len(args) || args[i] == argsTerminator {
		return args
	}

	res := make([]string, 0, len(args)+1)
	res = append(res, args[:i]...)
	res = append(res, argsTerminator)
	return append(res, args[i:]...)
}

// flagName returns "name" for "-name", "--name" and "--name=value"
func flagName(arg string) (string, bool) {
	if arg == argsTerminator || !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, hasValue := strings.Cut(name, "=")
	return name, hasValue
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv parser.LookupEnvFunc) error {
	return newCommand(stdout, stderr, lookupEnv).Run(ctx, terminateFlags(args))
}

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		slog.Error("minigrep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
