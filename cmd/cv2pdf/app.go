package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrDuplicateOutput    = errors.New("two styles map to the same output file")
	ErrLintFailed         = errors.New("style validation failed")
)

// defaultCommand runs when the first argument is a flag or missing.
const defaultCommand = "render"

// commandFunc runs one subcommand with its arguments (command name excluded).
type commandFunc func(ctx context.Context, args []string, env *Environment) error

// lookupCommand returns the handler for a subcommand name.
func lookupCommand(name string) (commandFunc, bool) {
	switch name {
	case "render":
		return cmdRender, true
	case "css":
		return cmdCSS, true
	case "lint":
		return cmdLint, true
	case "presets":
		return cmdPresets, true
	case "version":
		return cmdVersion, true
	case "help":
		return cmdHelp, true
	}
	return nil, false
}

// runMain dispatches args (program name first) and returns the exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	name, rest := splitCommand(args[1:])
	run, ok := lookupCommand(name)
	if !ok {
		fmt.Fprintf(env.Stderr, "error: %v: %s\n\n", ErrUnknownCommand, name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	err := run(ctx, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// splitCommand separates the subcommand from its arguments. Flags or no
// arguments at all select the default command.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return defaultCommand, args
	}
	return args[0], args[1:]
}

func cmdRender(ctx context.Context, args []string, env *Environment) error {
	f, err := parseRenderFlags(args, env)
	if err != nil {
		return err
	}
	return runRender(ctx, f, env)
}

func cmdCSS(_ context.Context, args []string, env *Environment) error {
	f, err := parseCSSFlags(args, env)
	if err != nil {
		return err
	}
	return runCSS(f, env)
}

func cmdLint(_ context.Context, args []string, env *Environment) error {
	f, err := parseLintFlags(args, env)
	if err != nil {
		return err
	}
	return runLint(f, env)
}

func cmdPresets(_ context.Context, args []string, env *Environment) error {
	f, err := parsePresetsFlags(args, env)
	if err != nil {
		return err
	}
	return runPresets(f, env)
}

func cmdVersion(_ context.Context, _ []string, env *Environment) error {
	fmt.Fprintf(env.Stdout, "cv2pdf %s\n", Version)
	return nil
}

func cmdHelp(_ context.Context, args []string, env *Environment) error {
	return runHelp(args, env)
}
