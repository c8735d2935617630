package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether an input or output stream is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether to enable the live UI. The live UI reads
// keys from stdin and redraws stdout, so it needs both to be terminals.
func resolveUIMode(mode string, verbose bool, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto", "live", "plain":
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verbose || normalized == "plain" {
		return uiModeDecision{useLive: false}, nil
	}

	var missing []string
	if !isTerminal(stdin) {
		missing = append(missing, "stdin")
	}
	if !isTerminal(stdout) {
		missing = append(missing, "stdout")
	}
	if len(missing) == 0 {
		return uiModeDecision{useLive: true}, nil
	}
	if normalized == "auto" {
		return uiModeDecision{useLive: false}, nil
	}
	reason := missing[0] + " is not a TTY"
	if len(missing) > 1 {
		reason = "stdin and stdout are not TTYs"
	}
	return uiModeDecision{
		useLive: false,
		warning: "Live UI requested but " + reason + "; falling back to plain output.",
	}, nil
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return file != nil && term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
