package bot

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/eventlog"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

func newController(t *testing.T, p session.Profile, seed int64) *session.Controller {
	t.Helper()
	c, err := session.New(session.Options{Profile: p, Seed: seed})
	require.NoError(t, err)
	return c
}

func TestPerfectChefClearsFirstLevel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		ctrl := newController(t, session.Classic(), seed)
		rep, err := Run(context.Background(), ctrl, New(1.0, seed), Options{Levels: 1})
		require.NoError(t, err)

		assert.True(t, rep.Won(1), "seed %d: %+v", seed, rep)
		assert.Equal(t, session.PhaseLevelComplete, rep.Phase, "seed %d", seed)
		assert.Zero(t, rep.TimedOut, "seed %d", seed)
		assert.GreaterOrEqual(t, rep.Served, session.Levels[0].Customers, "seed %d", seed)
		assert.Equal(t, 2, rep.Stats.Level, "next level is queued")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() Report {
		ctrl := newController(t, session.Classic(), 9)
		rep, err := Run(context.Background(), ctrl, New(0.7, 9), Options{Levels: 2})
		require.NoError(t, err)
		return rep
	}
	assert.Equal(t, run(), run())
}

func TestClumsyChefStillFinishes(t *testing.T) {
	ctrl := newController(t, session.Rush(), 5)
	rep, err := Run(context.Background(), ctrl, New(0, 5), Options{})
	require.NoError(t, err)
	assert.True(t, rep.Phase.Terminal(), "phase %s", rep.Phase)
}

func TestRunRecordsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Formatter: log.LogfmtFormatter})
	ctrl := newController(t, session.Classic(), 3)

	_, err := Run(context.Background(), ctrl, New(1, 3), Options{Levels: 1, Recorder: eventlog.New(logger, nil)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="level started"`)
	assert.Contains(t, buf.String(), `msg="order served"`)
	assert.Contains(t, buf.String(), `msg="level complete"`)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := newController(t, session.Classic(), 1)
	_, err := Run(ctx, ctrl, New(1, 1), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunTimeCap(t *testing.T) {
	ctrl := newController(t, session.Classic(), 1)
	_, err := Run(context.Background(), ctrl, New(1, 1), Options{MaxTime: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result")
}

func TestSkillClamp(t *testing.T) {
	assert.Equal(t, 1.0, New(3, 1).Skill())
	assert.Equal(t, 0.0, New(-1, 1).Skill())
}
