package keypool_test

import (
	"errors"
	"testing"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPool(t *testing.T, creds ...model.Credential) *keypool.Pool {
	t.Helper()
	return keypool.New("searchad", creds, zap.NewNop().Sugar())
}

func cred(name string, used, limit int) model.Credential {
	return model.Credential{
		Name:       name,
		APIKey:     "key-" + name,
		Secret:     "secret-" + name,
		DailyLimit: limit,
		UsedToday:  used,
		Active:     true,
	}
}

func TestSelectPrefersLeastUsed(t *testing.T) {
	p := newPool(t, cred("a", 5, 100), cred("b", 0, 100))

	got, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "b", got.Name)
}

func TestSelectTieBreaksByOldestLastUsed(t *testing.T) {
	older := cred("older", 3, 100)
	older.LastUsedAt = time.Now().Add(-time.Hour)
	newer := cred("newer", 3, 100)
	newer.LastUsedAt = time.Now()

	p := newPool(t, newer, older)

	got, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "older", got.Name)
}

func TestQuotaExhaustionDeactivates(t *testing.T) {
	p := newPool(t, cred("small", 0, 3), cred("big", 0, 100))

	// Burn the small credential's entire daily limit.
	for i := 0; i < 3; i++ {
		c, err := p.Select()
		require.NoError(t, err)
		require.Equal(t, "small", c.Name, "least-used selection should pick the unused credential first")
		p.RecordUsage(c, 1)
		// Keep the big credential ahead in usedToday so the small one
		// stays the least-used pick until it is exhausted.
		if i == 0 {
			big, err := p.Select()
			require.NoError(t, err)
			if big.Name == "big" {
				p.RecordUsage(big, 10)
			}
		}
	}

	// The exhausted credential must never be selected again while the
	// other remains eligible.
	for i := 0; i < 5; i++ {
		c, err := p.Select()
		require.NoError(t, err)
		require.Equal(t, "big", c.Name)
		p.RecordUsage(c, 1)
	}
}

func TestSelectFailsWhenPoolExhausted(t *testing.T) {
	only := cred("only", 0, 1)
	p := newPool(t, only)

	c, err := p.Select()
	require.NoError(t, err)
	p.RecordUsage(c, 1)

	_, err = p.Select()
	var noCred *model.NoCredentialAvailableError
	require.True(t, errors.As(err, &noCred))
	require.Equal(t, "searchad", noCred.Provider)
}

func TestDeactivateAuthFailure(t *testing.T) {
	p := newPool(t, cred("bad", 0, 100), cred("good", 50, 100))

	c, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "bad", c.Name)

	p.DeactivateAuthFailure(c)

	next, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "good", next.Name)
}

func TestResetDailyUsageReinstates(t *testing.T) {
	p := newPool(t, cred("only", 0, 1))

	c, err := p.Select()
	require.NoError(t, err)
	p.RecordUsage(c, 1)

	_, err = p.Select()
	require.Error(t, err)

	p.ResetDailyUsage()

	again, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "only", again.Name)
	require.Zero(t, again.UsedToday)
}

func TestResetDailyUsageKeepsRejectedCredentialsOut(t *testing.T) {
	p := newPool(t, cred("rejected", 0, 100), cred("exhausted", 0, 1))

	c, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "rejected", c.Name)
	p.DeactivateAuthFailure(c)

	other, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "exhausted", other.Name)
	p.RecordUsage(other, 1)

	_, err = p.Select()
	require.Error(t, err)

	p.ResetDailyUsage()

	// Only the quota-exhausted credential comes back.
	again, err := p.Select()
	require.NoError(t, err)
	require.Equal(t, "exhausted", again.Name)
	p.RecordUsage(again, 1)

	_, err = p.Select()
	require.Error(t, err)
}

func TestInactiveCredentialsFilteredAtConstruction(t *testing.T) {
	dead := cred("dead", 0, 100)
	dead.Active = false

	p := newPool(t, dead)
	require.Zero(t, p.Size())

	_, err := p.Select()
	require.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	p := newPool(t, cred("a", 0, 100))

	c, err := p.Select()
	require.NoError(t, err)
	p.RecordUsage(c, 2)

	snap := p.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, "a", snap[0].Name)
	require.Equal(t, 2, snap[0].UsedToday)
	require.Equal(t, "searchad", snap[0].Provider)
	require.NotNil(t, snap[0].LastUsedAt)
	require.True(t, snap[0].Active)
}
