// ./internal/state/constants_store.go
package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// SaveStakingConstants saves a new version of the protocol constants.
func SaveStakingConstants(constants types.StakingConstants, configName string, version int, makeActive bool) (int64, error) {
	if DB == nil {
		return 0, fmt.Errorf("database not initialized")
	}
	if err := constants.Validate(); err != nil {
		return 0, fmt.Errorf("refusing to save invalid constants: %w", err)
	}

	tiersJSON, err := json.Marshal(constants.TimeBonusTiers)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal time bonus tiers: %w", err)
	}

	tx, err := DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p) // Re-panic after rollback
		} else if err != nil {
			tx.Rollback() // Rollback if error occurred
		}
	}()

	if makeActive {
		stmtDeactivate := `UPDATE staking_constants SET is_active = FALSE WHERE config_name = $1 AND is_active = TRUE;`
		_, err = tx.Exec(stmtDeactivate, configName)
		if err != nil {
			return 0, fmt.Errorf("failed to deactivate existing active constants for %s: %w", configName, err)
		}
	}

	stmt := `
        INSERT INTO staking_constants (
            version, config_name, is_active, activated_at, created_at,
            hourly_roi, max_roi, commission_rate,
            min_deposit, max_deposit, max_deposits_per_user, basis_points,
            time_bonus_tiers
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8,
            $9, $10, $11, $12,
            $13
        ) RETURNING constants_id;`

	var constantsID int64
	currentTime := time.Now()
	err = tx.QueryRow(
		stmt,
		version, configName, makeActive, currentTime, currentTime,
		constants.HourlyROI, constants.MaxROI, constants.CommissionRate,
		constants.MinDeposit, constants.MaxDeposit, constants.MaxDepositsPerUser, constants.BasisPoints,
		tiersJSON,
	).Scan(&constantsID)

	if err != nil {
		return 0, fmt.Errorf("failed to insert staking constants: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info().
		Int("version", version).
		Str("config", configName).
		Int64("constants_id", constantsID).
		Bool("active", makeActive).
		Msg("Saved staking constants")
	return constantsID, nil
}

// LoadActiveStakingConstants loads the currently active protocol constants.
func LoadActiveStakingConstants(configName string) (*types.StakingConstants, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	query := `
        SELECT
            hourly_roi, max_roi, commission_rate,
            min_deposit, max_deposit, max_deposits_per_user, basis_points,
            time_bonus_tiers
        FROM staking_constants
        WHERE config_name = $1 AND is_active = TRUE
        ORDER BY activated_at DESC
        LIMIT 1;`

	c := &types.StakingConstants{}
	var tiersJSON []byte
	row := DB.QueryRow(query, configName)
	err := row.Scan(
		&c.HourlyROI, &c.MaxROI, &c.CommissionRate,
		&c.MinDeposit, &c.MaxDeposit, &c.MaxDepositsPerUser, &c.BasisPoints,
		&tiersJSON,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no active staking constants found for config '%s'", configName)
		}
		return nil, fmt.Errorf("failed to scan active staking constants for config '%s': %w", configName, err)
	}

	if err := json.Unmarshal(tiersJSON, &c.TimeBonusTiers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal time bonus tiers for config '%s': %w", configName, err)
	}

	log.Info().Str("config", configName).Msg("Loaded active staking constants")
	return c, nil
}
