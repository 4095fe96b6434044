// ./internal/state/snapshot_store.go
package state

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

// AnalysisSnapshot is one persisted analysis run for an address.
type AnalysisSnapshot struct {
	SnapshotID int64                `json:"snapshot_id"`
	Address    string               `json:"address"`
	Result     types.AnalysisResult `json:"result"`
}

// SaveAnalysisSnapshot persists a completed analysis. The headline columns
// are denormalized out of the JSONB result so history queries never need to
// unpack it.
func SaveAnalysisSnapshot(address string, result types.AnalysisResult) (int64, error) {
	if DB == nil {
		return 0, fmt.Errorf("database not initialized")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis result for '%s': %w", address, err)
	}

	stmt := `
        INSERT INTO analysis_snapshots (address, score, risk_score, effective_apy, analysis_timestamp, result)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING snapshot_id;`

	var snapshotID int64
	err = DB.QueryRow(
		stmt,
		address, result.Score, result.RiskReport.OverallScore, result.APYReport.EffectiveAPY, result.Timestamp, resultJSON,
	).Scan(&snapshotID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis snapshot for '%s': %w", address, err)
	}

	log.Info().
		Str("address", address).
		Int64("snapshot_id", snapshotID).
		Int("score", result.Score).
		Msg("Saved analysis snapshot")
	return snapshotID, nil
}

// LoadLatestAnalysis returns the most recent snapshot for an address.
func LoadLatestAnalysis(address string) (*AnalysisSnapshot, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	query := `
        SELECT snapshot_id, result
        FROM analysis_snapshots
        WHERE address = $1
        ORDER BY analysis_timestamp DESC, snapshot_id DESC
        LIMIT 1;`

	snapshot := &AnalysisSnapshot{Address: address}
	var resultJSON []byte
	err := DB.QueryRow(query, address).Scan(&snapshot.SnapshotID, &resultJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no analysis snapshots found for address '%s'", address)
		}
		return nil, fmt.Errorf("failed to scan latest analysis for '%s': %w", address, err)
	}

	if err := json.Unmarshal(resultJSON, &snapshot.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result for '%s': %w", address, err)
	}

	return snapshot, nil
}

// ListAnalyses returns up to limit snapshots for an address, newest first.
func ListAnalyses(address string, limit int) ([]AnalysisSnapshot, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
        SELECT snapshot_id, result
        FROM analysis_snapshots
        WHERE address = $1
        ORDER BY analysis_timestamp DESC, snapshot_id DESC
        LIMIT $2;`

	rows, err := DB.Query(query, address, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses for '%s': %w", address, err)
	}
	defer rows.Close()

	var snapshots []AnalysisSnapshot
	for rows.Next() {
		snapshot := AnalysisSnapshot{Address: address}
		var resultJSON []byte
		if err := rows.Scan(&snapshot.SnapshotID, &resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan analysis snapshot for '%s': %w", address, err)
		}
		if err := json.Unmarshal(resultJSON, &snapshot.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis snapshot for '%s': %w", address, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis snapshots for '%s': %w", address, err)
	}

	return snapshots, nil
}
