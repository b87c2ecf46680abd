package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentcar-bot/internal/config"
	"rentcar-bot/internal/session"
)

type digestStub struct {
	calls int
	panic bool
}

func (d *digestStub) SendDailyDigest(context.Context) error {
	d.calls++
	if d.panic {
		panic("boom")
	}
	return nil
}

func TestJobRunner_SendOperatorDigest(t *testing.T) {
	t.Run("disabled digest is skipped", func(t *testing.T) {
		digest := &digestStub{}
		jr := NewJobRunner(session.NewStore(), digest, &config.Config{})

		jr.SendOperatorDigest()
		assert.Zero(t, digest.calls)
	})

	t.Run("enabled digest runs", func(t *testing.T) {
		digest := &digestStub{}
		cfg := &config.Config{Digest: config.DigestConfig{Enabled: true}}
		jr := NewJobRunner(session.NewStore(), digest, cfg)

		jr.SendOperatorDigest()
		assert.Equal(t, 1, digest.calls)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		digest := &digestStub{panic: true}
		cfg := &config.Config{Digest: config.DigestConfig{Enabled: true}}
		jr := NewJobRunner(session.NewStore(), digest, cfg)

		assert.NotPanics(t, jr.SendOperatorDigest)
	})
}

func TestJobRunner_ReapSessions(t *testing.T) {
	sessions := session.NewStore()
	sessions.GetOrCreate(1, "alice", session.StateChoosingCategory)

	cfg := &config.Config{Session: config.SessionConfig{MaxIdleMinutes: 1}}
	jr := NewJobRunner(sessions, &digestStub{}, cfg)

	jr.ReapSessions()
	assert.Equal(t, 1, sessions.Len(), "fresh session survives the reap")
}
