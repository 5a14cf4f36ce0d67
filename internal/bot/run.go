package bot

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-cafe/internal/eventlog"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

// DefaultTick is the simulated step. A power of two keeps oven timers exact.
const DefaultTick = 0.125

// Options control a headless run.
type Options struct {
	// Levels stops the run after this many levels are cleared. 0 plays on
	// until the game ends.
	Levels int
	// Tick is the simulated seconds per update. Defaults to DefaultTick.
	Tick float64
	// MaxTime caps simulated seconds. Defaults to one hour.
	MaxTime float64
	// Recorder receives every session event. May be nil.
	Recorder *eventlog.Recorder
}

// Report is the outcome of a run.
type Report struct {
	Stats         session.Stats
	Phase         session.Phase
	LevelsCleared int
	Served        int
	Rejected      int
	TimedOut      int
	Reason        string
}

// Won reports whether every requested level was cleared.
func (r Report) Won(levels int) bool {
	if levels > 0 {
		return r.LevelsCleared >= levels
	}
	return r.Phase == session.PhaseGameComplete
}

// Run plays ctrl with chef until the game ends, the level goal is met, the
// time cap is hit or ctx is cancelled.
func Run(ctx context.Context, ctrl *session.Controller, chef *Chef, opts Options) (Report, error) {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.MaxTime <= 0 {
		opts.MaxTime = 3600
	}

	var rep Report
	drain := func() {
		events := ctrl.DrainEvents()
		for _, e := range events {
			switch e.Kind {
			case session.EventLevelComplete, session.EventGameComplete:
				rep.LevelsCleared++
			case session.EventOrderServed:
				rep.Served++
			case session.EventOrderRejected:
				rep.Rejected++
			case session.EventOrderTimedOut:
				rep.TimedOut++
			}
		}
		opts.Recorder.Record(events)
	}
	finish := func() Report {
		rep.Stats = ctrl.Stats()
		rep.Phase = ctrl.Phase()
		rep.Reason = ctrl.Reason()
		return rep
	}

	if ctrl.Phase() == session.PhaseStart {
		ctrl.Start()
	}
	drain()

	for {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		switch phase := ctrl.Phase(); {
		case phase.Terminal():
			return finish(), nil
		case opts.Levels > 0 && rep.LevelsCleared >= opts.Levels:
			return finish(), nil
		case phase == session.PhaseLevelComplete:
			ctrl.Continue()
			drain()
		}

		if ctrl.Elapsed() >= opts.MaxTime {
			return finish(), fmt.Errorf("bot: no result after %.0fs of play", opts.MaxTime)
		}

		chef.Act(ctrl, opts.Tick)
		ctrl.Update(opts.Tick)
		drain()
	}
}
