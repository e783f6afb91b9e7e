// Package keypool manages the credential sets of one external API family.
// Selection favors even load distribution (least-used-first) over strict
// round robin because credentials may carry unequal daily limits.
package keypool

import (
	"sync"
	"time"

	"kwlab-go-backend/pkg/entity/model"

	"go.uber.org/zap"
)

// Pool holds the credentials of one provider family. All mutation of
// credential state happens under the pool lock.
type Pool struct {
	mu       sync.Mutex
	provider string
	creds    []*model.Credential
	logger   *zap.SugaredLogger
}

// New creates a pool from the configured credentials, keeping only the
// active ones.
func New(provider string, creds []model.Credential, logger *zap.SugaredLogger) *Pool {
	p := &Pool{provider: provider, logger: logger}
	for i := range creds {
		c := creds[i]
		if !c.Active {
			continue
		}
		p.creds = append(p.creds, &c)
	}
	return p
}

// Provider returns the provider family name.
func (p *Pool) Provider() string { return p.provider }

// Size returns the number of credentials held, active or not.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.creds)
}

// Select returns the active credential with the smallest usedToday,
// tie-broken by oldest lastUsedAt. It returns NoCredentialAvailableError
// when none is eligible; callers must treat that as terminal for the
// operation, not retry it.
func (p *Pool) Select() (*model.Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best *model.Credential
	for _, c := range p.creds {
		if !c.Active || c.UsedToday >= c.DailyLimit {
			continue
		}
		if best == nil ||
			c.UsedToday < best.UsedToday ||
			(c.UsedToday == best.UsedToday && c.LastUsedAt.Before(best.LastUsedAt)) {
			best = c
		}
	}

	if best == nil {
		return nil, &model.NoCredentialAvailableError{Provider: p.provider}
	}
	return best, nil
}

// RecordUsage adds n calls to the credential and deactivates it once its
// daily limit is reached. Deactivation is permanent for the process
// lifetime; the daily reset reinstates it.
func (p *Pool) RecordUsage(cred *model.Credential, n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cred.UsedToday += n
	cred.LastUsedAt = time.Now()

	if cred.UsedToday >= cred.DailyLimit && cred.Active {
		cred.Active = false
		p.logger.Warnw("credential reached daily limit, deactivated",
			"provider", p.provider,
			"credential", cred.Name,
			"used", cred.UsedToday,
			"limit", cred.DailyLimit,
		)
	}
}

// DeactivateAuthFailure marks a credential invalid after the provider
// rejected it (HTTP 403), independent of quota.
func (p *Pool) DeactivateAuthFailure(cred *model.Credential) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cred.Active {
		cred.Active = false
		cred.AuthFailed = true
		p.logger.Warnw("credential rejected by provider, deactivated",
			"provider", p.provider,
			"credential", cred.Name,
		)
	}
}

// ResetDailyUsage zeroes the usage counters and reinstates credentials
// that were deactivated for quota reasons. Credentials the provider
// rejected stay out until the config is fixed. Invoked by the daily cron.
func (p *Pool) ResetDailyUsage() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range p.creds {
		c.UsedToday = 0
		if !c.AuthFailed {
			c.Active = true
		}
	}
	p.logger.Infow("daily credential usage reset", "provider", p.provider, "credentials", len(p.creds))
}

// Snapshot returns a copy of the pool state for the status endpoint.
func (p *Pool) Snapshot() []model.CredentialStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]model.CredentialStatus, 0, len(p.creds))
	for _, c := range p.creds {
		st := model.CredentialStatus{
			Name:       c.Name,
			Provider:   p.provider,
			DailyLimit: c.DailyLimit,
			UsedToday:  c.UsedToday,
			Active:     c.Active,
			AuthFailed: c.AuthFailed,
		}
		if !c.LastUsedAt.IsZero() {
			t := c.LastUsedAt
			st.LastUsedAt = &t
		}
		out = append(out, st)
	}
	return out
}
