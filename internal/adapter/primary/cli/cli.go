package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nightlight/internal/adapter/secondary/gnome"
	"nightlight/internal/domain"
	"nightlight/internal/logging"
	"nightlight/internal/usecase"
)

// Backend opens the secondary ports the commands talk to.
type Backend func(log *logging.Logger) (domain.ColorService, domain.Notifier, error)

// GnomeBackend connects both ports to the GNOME session bus.
func GnomeBackend(log *logging.Logger) (domain.ColorService, domain.Notifier, error) {
	session, err := gnome.Connect(log)
	if err != nil {
		return nil, nil, err
	}
	return session.Color(), session.Shell(), nil
}

type app struct {
	backend   Backend
	log       *logging.Logger
	verbosity int
}

// newRootCmd creates the root CLI command.
// This is the primary adapter that translates CLI inputs to use case calls.
func newRootCmd(log *logging.Logger, backend Backend) *cobra.Command {
	a := &app{backend: backend, log: log}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nightlight",
		Short:         "Simple tool to manage color temperature",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase logging verbosity (-v, -vv, ... up to 4)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("verbose") {
			a.log.SetVerbosity(a.verbosity)
		}
	}

	cmd.AddCommand(
		a.newGetCmd(),
		a.newSetCmd(),
		a.newResetCmd(),
		a.newLoopCmd(),
		a.newLevelsCmd(),
		a.newShellCmd(),
	)

	return cmd
}

func (a *app) useCase(suppressOSD bool, opts ...usecase.Option) (usecase.NightLightUseCase, error) {
	color, notifier, err := a.backend(a.log)
	if err != nil {
		return nil, err
	}
	if suppressOSD {
		notifier = gnome.NewNoopNotifier(a.log)
	}
	return usecase.NewNightLightUseCase(color, notifier, a.log, opts...), nil
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print current color temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.useCase(false)
			if err != nil {
				return err
			}
			temp, err := uc.Get()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), temp)
			return nil
		},
	}
}

func (a *app) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <temp>",
		Short: "Set color temperature from 1000 to 10000 (Kelvins)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid temperature %q: must be an integer", args[0])
			}
			uc, err := a.useCase(false)
			if err != nil {
				return err
			}
			return uc.Set(temp)
		},
	}
}

func (a *app) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: fmt.Sprintf("Reset color temperature to %d", domain.NormalLevel),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.useCase(false)
			if err != nil {
				return err
			}
			return uc.Reset()
		},
	}
}

func (a *app) newLoopCmd() *cobra.Command {
	var (
		noOSD bool
		steps int
	)
	cmd := &cobra.Command{
		Use:   "loop",
		Short: fmt.Sprintf("Change temperature in loop of %d levels", domain.LevelCount),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSteps(steps); err != nil {
				return err
			}
			uc, err := a.useCase(noOSD, usecase.WithLevelCount(steps))
			if err != nil {
				return err
			}
			res, err := uc.Loop()
			if err != nil {
				return err
			}
			a.log.Infof("Temperature %d -> %d (%s)", res.Previous, res.Next, res.Icon)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noOSD, "no-osd", false, "do not show the on-screen overlay")
	cmd.Flags().IntVar(&steps, "steps", domain.LevelCount, "number of levels below the reference temperature")
	return cmd
}

func (a *app) newLevelsCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the loop cycle and mark the level loop would pick next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSteps(steps); err != nil {
				return err
			}
			uc, err := a.useCase(true, usecase.WithLevelCount(steps))
			if err != nil {
				return err
			}
			levels, current, err := uc.Levels()
			if err != nil {
				return err
			}
			next := domain.SelectNext(current, levels)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "current: %s\n", domain.Label(current))
			for _, level := range levels {
				marker := " "
				if level == next {
					marker = ">"
				}
				fmt.Fprintf(out, "%s %s\n", marker, domain.Label(level))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", domain.LevelCount, "number of levels below the reference temperature")
	return cmd
}

func validateSteps(steps int) error {
	if steps < 0 || steps > domain.MaxLevelCount {
		return fmt.Errorf("--steps must be between 0 and %d, got %d", domain.MaxLevelCount, steps)
	}
	return nil
}
