/*

This file contains the input-side types for the staking analytics engine: the
protocol constants and the per-user deposit ledger snapshot every analysis
runs over.

*/

package types

import (
	"errors"
	"math"
)

// Deposit is a single recorded stake event. Deposits are immutable once
// recorded; the engine only ever sees the current ledger snapshot, so a
// withdrawal that consumes a deposit simply removes it upstream.
type Deposit struct {
	Amount    float64 `json:"amount"`    // Human-unit token amount, >= 0
	Timestamp int64   `json:"timestamp"` // Unix seconds
}

// TimeBonusTier maps a staking-duration threshold (in days) to the bonus
// fraction granted once that threshold is reached.
type TimeBonusTier struct {
	Days  int     `json:"days"`
	Bonus float64 `json:"bonus"` // e.g. 0.05 for +5%
}

// StakingConstants holds the protocol parameters the APY model is built on.
// It is immutable, injected configuration - never a process-wide global -
// and may be shared freely across concurrent analyses.
type StakingConstants struct {
	HourlyROI          float64         `json:"hourly_roi"`            // Per-hour reward rate as a fraction (e.g. 0.00001)
	MaxROI             float64         `json:"max_roi"`               // Cumulative reward cap as a multiplier (e.g. 1.25)
	CommissionRate     float64         `json:"commission_rate"`       // Protocol commission as a fraction
	MinDeposit         float64         `json:"min_deposit"`           // Minimum deposit in human units
	MaxDeposit         float64         `json:"max_deposit"`           // Maximum deposit in human units
	MaxDepositsPerUser uint32          `json:"max_deposits_per_user"` // Per-user deposit slot ceiling
	BasisPoints        uint32          `json:"basis_points"`          // Basis-point denominator used by the contract
	TimeBonusTiers     []TimeBonusTier `json:"time_bonus_tiers"`      // Sorted ascending by Days
}

// Validate checks the structural invariants of the constants. An invalid
// constants value is the only condition that fails a whole analysis.
func (c StakingConstants) Validate() error {
	if c.HourlyROI <= 0 || math.IsNaN(c.HourlyROI) || math.IsInf(c.HourlyROI, 0) {
		return errors.New("hourly ROI must be positive and finite")
	}
	if c.MaxROI <= 1 || math.IsNaN(c.MaxROI) || math.IsInf(c.MaxROI, 0) {
		return errors.New("max ROI must be a multiplier greater than 1")
	}
	if c.CommissionRate < 0 || c.CommissionRate >= 1 {
		return errors.New("commission rate must be in [0, 1)")
	}
	if c.MinDeposit < 0 {
		return errors.New("minimum deposit cannot be negative")
	}
	if c.MaxDeposit > 0 && c.MaxDeposit < c.MinDeposit {
		return errors.New("maximum deposit cannot be below minimum deposit")
	}
	if c.MaxDepositsPerUser == 0 {
		return errors.New("max deposits per user must be positive")
	}
	for i, tier := range c.TimeBonusTiers {
		if tier.Days < 0 {
			return errors.New("time bonus tier days cannot be negative")
		}
		if tier.Bonus < 0 || math.IsNaN(tier.Bonus) || math.IsInf(tier.Bonus, 0) {
			return errors.New("time bonus tier bonus must be non-negative and finite")
		}
		if i > 0 && tier.Days <= c.TimeBonusTiers[i-1].Days {
			return errors.New("time bonus tiers must be sorted ascending by days")
		}
	}
	return nil
}

// UserStakingProfile is the sole external input to every analysis function.
// It is assembled fresh per analysis call from on-chain event data plus a
// current timestamp; the engine never mutates it.
type UserStakingProfile struct {
	Address        string    `json:"address,omitempty"`
	Deposits       []Deposit `json:"deposits"`
	TotalStaked    float64   `json:"total_staked"`
	TotalWithdrawn float64   `json:"total_withdrawn"`
	RewardsClaimed float64   `json:"rewards_claimed"`
	PendingRewards float64   `json:"pending_rewards"` // Accrued but unclaimed rewards
	NowTimestamp   int64     `json:"now_timestamp"`   // Unix seconds, injected for determinism
}

// StakingDays returns the whole days elapsed since the earliest deposit,
// or 0 for an empty ledger.
func (p UserStakingProfile) StakingDays() int {
	if len(p.Deposits) == 0 {
		return 0
	}
	earliest := p.Deposits[0].Timestamp
	for _, d := range p.Deposits[1:] {
		if d.Timestamp < earliest {
			earliest = d.Timestamp
		}
	}
	if p.NowTimestamp <= earliest {
		return 0
	}
	return int((p.NowTimestamp - earliest) / 86400)
}

// TotalRewards returns claimed plus pending rewards.
func (p UserStakingProfile) TotalRewards() float64 {
	return p.RewardsClaimed + p.PendingRewards
}
