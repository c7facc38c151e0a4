package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nightlight/internal/logging"
)

func (a *app) newShellCmd() *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell running nightlight subcommands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractiveShell(prompt)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "nightlight> ", "shell prompt")
	return cmd
}

func (a *app) runInteractiveShell(prompt string) error {
	historyFile := filepath.Join(os.TempDir(), "nightlight-shell.history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("Interactive shell. 'help' for usage, 'exit' to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if a.runShellLine(line, rl.Stdout()) {
			return nil
		}
	}
}

// runShellLine executes one line of shell input and reports whether the shell should exit.
func (a *app) runShellLine(line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	switch line {
	case "exit", "quit":
		fmt.Fprintln(out, "Bye!")
		return true
	case "help":
		printShellHelp(out)
		return false
	}
	tokens, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(out, "Parse error: %v\n", err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}
	switch tokens[0] {
	case "log":
		if err := a.handleShellLog(tokens[1:], out); err != nil {
			fmt.Fprintf(out, "log: %v\n", err)
		}
		return false
	case "shell":
		fmt.Fprintln(out, "Already inside the shell. Enter another command or 'exit'.")
		return false
	}

	if err := a.executeArgs(tokens, out); err != nil {
		fmt.Fprintf(out, "command error: %v\n", err)
	}
	return false
}

func (a *app) executeArgs(args []string, out io.Writer) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

func (a *app) handleShellLog(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("log", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var vcount int
	var level string
	var show bool
	fs.CountVarP(&vcount, "verbose", "v", "Increase verbosity (-v... up to 4)")
	fs.StringVar(&level, "level", "", "level (error|warn|info|debug|trace)")
	fs.BoolVarP(&show, "show", "s", false, "print the current level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case level != "":
		_, count, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		a.log.SetVerbosity(count)
	case vcount > 0:
		a.log.SetVerbosity(vcount)
	default:
		fmt.Fprintf(out, "log level: %s (-v x%d)\n", a.log.LevelName(), a.log.Verbosity())
		return nil
	}

	fmt.Fprintf(out, "log level set to %s (-v x%d)\n", a.log.LevelName(), a.log.Verbosity())
	return nil
}

func printShellHelp(out io.Writer) {
	fmt.Fprintln(out, `Examples:
  get                 # print the current temperature
  set 4500            # set the temperature
  reset               # back to the reference temperature
  loop                # next level of the cycle, with overlay
  loop --no-osd       # same, without overlay
  levels              # show the cycle
  log -vv             # more logging
  log --show          # print the current log level
  exit / quit         # leave the shell`)
}
