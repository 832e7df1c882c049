// Package hints provides actionable error hints for common failure scenarios.
// Every hint is formatted as "\n  hint: <text>" so it can be appended to an
// error message.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// IsInContainer detects Docker via the /.dockerenv marker file.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a common CI environment variable is set.
func inCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the environment variables that usually fix a
// failed Chrome launch.
func ForBrowserConnect() string {
	var hints []string

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "use --no-sandbox or set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}

	return formatHints(hints)
}

// ForTimeout suggests a longer render timeout.
func ForTimeout() string {
	return format("CVs with remote fonts or large photos may need a longer --timeout")
}

// ForConfigNotFound suggests --config and a user config location among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), ".config/go-cv2pdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForInputNotFound points at the flag that names a missing input file.
func ForInputNotFound(flag string) string {
	return format("pass --" + flag + " with the path to an existing JSON or YAML file")
}

// ForStyleInvalid suggests running the linter on a style that failed to parse.
func ForStyleInvalid(path string) string {
	return format("run 'cv2pdf lint --style " + path + "' for field-level errors")
}

// ForOutputDirectory suggests checking the output location.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available presets.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available presets: " + strings.Join(available, ", "))
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
