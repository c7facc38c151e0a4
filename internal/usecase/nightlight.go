package usecase

import (
	"fmt"

	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

// NightLightUseCase is the primary port for colour temperature operations.
type NightLightUseCase interface {
	Get() (int, error)
	Set(temp int) error
	Reset() error
	Loop() (domain.LoopResult, error)
	Levels() (levels []int, current int, err error)
}

// nightLightInteractor implements NightLightUseCase.
// It depends only on domain layer and secondary ports.
type nightLightInteractor struct {
	color    domain.ColorService
	notifier domain.Notifier
	log      *logging.Logger

	base   int
	factor float64
	count  int
}

// Option tweaks the cycle used by Loop and Levels.
type Option func(*nightLightInteractor)

// WithLevelCount sets the number of steps below the reference level.
func WithLevelCount(count int) Option {
	return func(n *nightLightInteractor) {
		n.count = count
	}
}

// NewNightLightUseCase creates a new use case.
// Dependencies are injected (secondary ports).
func NewNightLightUseCase(
	color domain.ColorService,
	notifier domain.Notifier,
	log *logging.Logger,
	opts ...Option,
) NightLightUseCase {
	n := &nightLightInteractor{
		color:    color,
		notifier: notifier,
		log:      log,
		base:     domain.NormalLevel,
		factor:   domain.Factor,
		count:    domain.LevelCount,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *nightLightInteractor) Get() (int, error) {
	return n.color.Temperature()
}

func (n *nightLightInteractor) Set(temp int) error {
	return n.color.SetTemperature(temp)
}

// Reset restores the reference temperature.
func (n *nightLightInteractor) Reset() error {
	return n.color.SetTemperature(n.base)
}

func (n *nightLightInteractor) levels() []int {
	return domain.BuildLevels(n.base, n.factor, n.count)
}

// Levels returns the cycle together with the current temperature.
func (n *nightLightInteractor) Levels() ([]int, int, error) {
	current, err := n.color.Temperature()
	if err != nil {
		return nil, 0, err
	}
	return n.levels(), current, nil
}

// Loop moves to the next level of the cycle and shows it on screen.
// The temperature is written before the overlay is requested; an overlay
// failure leaves the new temperature in place.
func (n *nightLightInteractor) Loop() (domain.LoopResult, error) {
	current, err := n.color.Temperature()
	if err != nil {
		return domain.LoopResult{}, err
	}

	levels := n.levels()
	next := domain.SelectNext(current, levels)
	n.log.Debugf("levels=%v current=%d next=%d", levels, current, next)

	res := domain.LoopResult{
		Previous: current,
		Next:     next,
		Icon:     domain.IconFor(current, next),
		Label:    domain.Label(next),
	}

	osd, err := domain.NewLevelDescriptor(domain.OSDMin, domain.OSDMid, domain.OSDMax, next)
	if err != nil {
		return res, err
	}

	if err := n.color.SetTemperature(next); err != nil {
		return res, err
	}
	if err := n.notifier.ShowOSD(res.Icon, osd, res.Label); err != nil {
		n.log.Warnf("overlay failed, temperature stays at %d: %v", next, err)
		return res, fmt.Errorf("temperature set to %d but overlay failed: %w", next, err)
	}
	return res, nil
}
