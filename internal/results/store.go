// internal/results/store.go
//
// Results of finished games: batch inserts, per-strategy summary, and the
// attempts histogram of a run.

package results

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Result is one finished game.
type Result struct {
	ID        string `json:"id"`
	RunID     string `json:"runId"`
	Strategy  string `json:"strategy"`
	Stat      string `json:"stat,omitempty"`
	Answer    string `json:"answer"`
	Attempts  int    `json:"attempts"`
	Won       bool   `json:"won"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// SummaryRow aggregates the results of one strategy/statistic pair.
type SummaryRow struct {
	Strategy     string  `json:"strategy"`
	Stat         string  `json:"stat"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	MeanAttempts float64 `json:"meanAttempts"`
	MaxAttempts  int     `json:"maxAttempts"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// NewRunID returns an identifier grouping the results of one run.
func NewRunID() string { return uuid.NewString() }

func (s *Store) Insert(ctx context.Context, r Result) error {
	return s.InsertBatch(ctx, []Result{r})
}

// InsertBatch writes rs in one transaction. Results without an ID get one.
func (s *Store) InsertBatch(ctx context.Context, rs []Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO results(id, run_id, strategy, stat, answer, attempts, won, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range rs {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx, r.ID, r.RunID, r.Strategy, r.Stat, r.Answer, r.Attempts, r.Won, r.ElapsedMs); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s: %w", r.Answer, err)
		}
	}
	return tx.Commit()
}

// Summary aggregates all results per strategy and statistic.
func (s *Store) Summary(ctx context.Context) ([]SummaryRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT strategy, stat, COUNT(1), SUM(won), AVG(attempts), MAX(attempts)
        FROM results
        GROUP BY strategy, stat
        ORDER BY AVG(attempts) ASC, strategy ASC, stat ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SummaryRow
	for rows.Next() {
		var r SummaryRow
		if err := rows.Scan(&r.Strategy, &r.Stat, &r.Games, &r.Wins, &r.MeanAttempts, &r.MaxAttempts); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Histogram counts the won games of a run by number of attempts.
func (s *Store) Histogram(ctx context.Context, runID string) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT attempts, COUNT(1)
        FROM results
        WHERE run_id=? AND won=1
        GROUP BY attempts`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var attempts, n int
		if err := rows.Scan(&attempts, &n); err != nil {
			return nil, err
		}
		out[attempts] = n
	}
	return out, rows.Err()
}
