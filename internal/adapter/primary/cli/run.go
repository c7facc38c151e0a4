package cli

import (
	"fmt"
	"io"

	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

// Exit codes returned by Main.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInternal = 2
)

// Main runs the command line against the GNOME session bus and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	log := logging.NewWithWriter(stderr, 0)
	defer log.Sync()
	return run(log, GnomeBackend, args, stdout, stderr)
}

func run(log *logging.Logger, backend Backend, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(log, backend)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	if domain.IsInternal(err) {
		fmt.Fprintln(stderr, "internal error:", err)
		return ExitInternal
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitFailure
}
