package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a CV to PDF, once per style (default)")
	fmt.Fprintln(w, "  css        Print the stylesheet compiled from a style")
	fmt.Fprintln(w, "  lint       Validate style files against the schema")
	fmt.Fprintln(w, "  presets    List the available style presets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cv2pdf help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf render [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the personal content through the template, styled once per --style.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --personal <path>     Personal content (default configs/personal.json)")
	fmt.Fprintln(w, "  -s, --style <ref>         Style file or preset name, repeatable (default configs/style.json)")
	fmt.Fprintln(w, "      --template <ref>      Template file or name (default: built-in)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom directory for presets and templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --out <path>          PDF file (default output/cv.pdf)")
	fmt.Fprintln(w, "                            With several styles: directory for <name>-<style>.pdf")
	fmt.Fprintln(w, "      --html <path>         HTML file (default: beside the PDF)")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets: iso, european, us, long, month")
	fmt.Fprintln(w, "  -t, --timeout <d>         Render timeout per CV (default 30s)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel browsers (0 = auto)")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (Docker/CI)")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CV2PDF_CONFIG, CV2PDF_PERSONAL, CV2PDF_STYLE (comma-separated), CV2PDF_TEMPLATE,")
	fmt.Fprintln(w, "  CV2PDF_OUTPUT, CV2PDF_HTML, CV2PDF_ASSET_PATH, CV2PDF_TIMEOUT, CV2PDF_WORKERS,")
	fmt.Fprintln(w, "  CV2PDF_NO_SANDBOX, CV2PDF_DATE, CV2PDF_LOG_LEVEL")
	fmt.Fprintln(w, "  Values from a .env file in the working directory are loaded first.")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults.")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet compiled from a style.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --style <ref>         Style file or preset name (default configs/style.json)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom directory for presets")
	fmt.Fprintln(w, "  -o, --out <path>          Write to a file instead of stdout")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printLintUsage prints usage for the lint command.
func printLintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf lint [flags] [style...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate style files or presets against the style schema.")
	fmt.Fprintln(w, "Unknown keys and out-of-range values are reported per field.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --style <ref>         Style file or preset name, repeatable")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom directory for presets")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPresetsUsage prints usage for the presets command.
func printPresetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf presets [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the style presets usable as --style values.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --asset-path <dir>    Include presets from a custom directory")
	fmt.Fprintln(w, "      --json                Print a JSON array")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}

// runHelp prints help for the command named in args, or the main usage.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "lint":
		printLintUsage(env.Stdout)
	case "presets":
		printPresetsUsage(env.Stdout)
	case "version", "help":
		printUsage(env.Stdout)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
