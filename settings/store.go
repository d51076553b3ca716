// Package settings implements the operator-facing command surface:
// tokenizing command lines arriving over a serial console or MQTT topic
// and dispatching them to a cablecam.Config's setters, plus a persisted
// settings store so pos_start/pos_end and PID gains survive a reset
// (SPEC_FULL §C.7).
package settings

import "github.com/cablecam-io/controller/cablecam"

// Persisted is the subset of Config that outlives a reset.
type Persisted struct {
	P, I, D                                  float64
	PosStart, PosEnd                         int32
	RcChannelSpeed, RcChannelProgramming, RcChannelEndpoint uint8
}

// Store loads and saves Persisted settings. A flash-backed implementation
// is a named follow-up (SPEC_FULL §C.7) — no flash driver is wired into
// this repo's dependency surface yet, so only the RAM-backed Store below
// ships today.
type Store interface {
	Load() (Persisted, error)
	Save(Persisted) error
}

// RAMStore is an in-memory Store, used by tests and by any deployment that
// intentionally re-learns endpoints on every boot.
type RAMStore struct {
	saved Persisted
	has   bool
}

// NewRAMStore creates an empty RAMStore.
func NewRAMStore() *RAMStore {
	return &RAMStore{}
}

// Load implements Store. It returns the zero Persisted value until the
// first Save.
func (r *RAMStore) Load() (Persisted, error) {
	return r.saved, nil
}

// Save implements Store.
func (r *RAMStore) Save(p Persisted) error {
	r.saved = p
	r.has = true
	return nil
}

// ApplyTo writes p onto cfg, for use right after Load at boot.
func (p Persisted) ApplyTo(cfg *cablecam.Config) {
	cfg.SetPID(p.P, p.I, p.D)
	cfg.PosStart, cfg.PosEnd = p.PosStart, p.PosEnd
	cfg.RcChannelSpeed = p.RcChannelSpeed
	cfg.RcChannelProgramming = p.RcChannelProgramming
	cfg.RcChannelEndpoint = p.RcChannelEndpoint
}

// Snapshot captures the persisted subset of cfg's current state, for use
// right before Save.
func Snapshot(cfg *cablecam.Config) Persisted {
	return Persisted{
		P: cfg.P, I: cfg.I, D: cfg.D,
		PosStart: cfg.PosStart, PosEnd: cfg.PosEnd,
		RcChannelSpeed:       cfg.RcChannelSpeed,
		RcChannelProgramming: cfg.RcChannelProgramming,
		RcChannelEndpoint:    cfg.RcChannelEndpoint,
	}
}
