package model

import "time"

// Credential is one set of provider authentication material plus its
// local quota-tracking state. Mutable fields (UsedToday, LastUsedAt,
// Active) are owned by the key pool and must only change under its lock.
type Credential struct {
	Name       string
	APIKey     string
	Secret     string
	CustomerID string

	DailyLimit int
	UsedToday  int
	LastUsedAt time.Time
	Active     bool

	// AuthFailed marks a credential the provider rejected. It survives
	// the daily usage reset; only a config change brings the key back.
	AuthFailed bool
}

// CredentialStatus is the externally visible state of one credential.
type CredentialStatus struct {
	Name       string     `json:"name"`
	Provider   string     `json:"provider"`
	DailyLimit int        `json:"dailyLimit"`
	UsedToday  int        `json:"usedToday"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	Active     bool       `json:"active"`
	AuthFailed bool       `json:"authFailed"`
}
