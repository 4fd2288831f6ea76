// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is the stored record of one simulation run
type Run struct {
	ID        string
	Label     string
	Site      string
	Iapp      float64
	GHCN      float64
	WGPe      float64
	WStr      float64
	Tau       float64
	GPeStim   float64
	StrStim   float64
	Duration  float64
	Dt        float64
	NSpikes   int
	CreatedAt time.Time
}

const runCols = `id, label, site, i_app, g_hcn, w_gpe, w_str, tau, gpe_stim, str_stim, duration, dt, n_spikes, created_at`

// SaveRun stores run and its spike times in one transaction.
// An empty ID is filled in with a new random one; NSpikes and, if zero,
// CreatedAt are set from the arguments.
func (db *DB) SaveRun(ctx context.Context, run *Run, spikes []float64) error {
	return db.SaveRuns(ctx, []*Run{run}, [][]float64{spikes})
}

// SaveRuns stores several runs and their spike times in one transaction,
// e.g., all the trials of a batch.  The runs are filled in as for SaveRun
// only once the transaction commits: on error they are left unchanged.
func (db *DB) SaveRuns(ctx context.Context, runs []*Run, spikes [][]float64) error {
	if len(runs) != len(spikes) {
		return fmt.Errorf("resultdb: %d runs with %d spike lists", len(runs), len(spikes))
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("resultdb: begin: %w", err)
	}
	defer tx.Rollback()

	insRun, err := tx.PrepareContext(ctx, `INSERT INTO runs (`+runCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("resultdb: prepare run insert: %w", err)
	}
	defer insRun.Close()
	insSpk, err := tx.PrepareContext(ctx, `INSERT INTO spikes (run_id, idx, t) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("resultdb: prepare spike insert: %w", err)
	}
	defer insSpk.Close()

	now := time.Now()
	recs := make([]Run, len(runs))
	for k, run := range runs {
		rec := &recs[k]
		*rec = *run
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rec.NSpikes = len(spikes[k])
		_, err := insRun.ExecContext(ctx,
			rec.ID,
			rec.Label,
			rec.Site,
			rec.Iapp,
			rec.GHCN,
			rec.WGPe,
			rec.WStr,
			rec.Tau,
			rec.GPeStim,
			rec.StrStim,
			rec.Duration,
			rec.Dt,
			rec.NSpikes,
			rec.CreatedAt.UnixNano(),
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, rec.ID)
		}
		if err != nil {
			return fmt.Errorf("resultdb: insert run %s: %w", rec.ID, err)
		}
		for i, t := range spikes[k] {
			if _, err := insSpk.ExecContext(ctx, rec.ID, i, t); err != nil {
				return fmt.Errorf("resultdb: insert spike %d of run %s: %w", i, rec.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("resultdb: commit: %w", err)
	}
	for k, run := range runs {
		*run = recs[k]
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var run Run
	var created int64
	err := sc.Scan(
		&run.ID,
		&run.Label,
		&run.Site,
		&run.Iapp,
		&run.GHCN,
		&run.WGPe,
		&run.WStr,
		&run.Tau,
		&run.GPeStim,
		&run.StrStim,
		&run.Duration,
		&run.Dt,
		&run.NSpikes,
		&created,
	)
	if err != nil {
		return nil, err
	}
	run.CreatedAt = time.Unix(0, created)
	return &run, nil
}

// Run returns the run with given id, or ErrNotFound
func (db *DB) Run(ctx context.Context, id string) (*Run, error) {
	row := db.QueryRowContext(ctx, `SELECT `+runCols+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resultdb: get run %s: %w", id, err)
	}
	return run, nil
}

// Spikes returns the spike times of the run with given id, in order,
// or ErrNotFound if there is no such run
func (db *DB) Spikes(ctx context.Context, id string) ([]float64, error) {
	run, err := db.Run(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT t FROM spikes WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("resultdb: spikes of run %s: %w", id, err)
	}
	defer rows.Close()
	spk := make([]float64, 0, run.NSpikes)
	for rows.Next() {
		var t float64
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("resultdb: scan spike: %w", err)
		}
		spk = append(spk, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resultdb: spikes of run %s: %w", id, err)
	}
	return spk, nil
}

// RunsByLabel returns all runs with given label, in the order they were saved
func (db *DB) RunsByLabel(ctx context.Context, label string) ([]*Run, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+runCols+` FROM runs WHERE label = ? ORDER BY created_at, rowid`, label)
	if err != nil {
		return nil, fmt.Errorf("resultdb: runs labeled %s: %w", label, err)
	}
	defer rows.Close()
	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("resultdb: scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resultdb: runs labeled %s: %w", label, err)
	}
	return runs, nil
}

// DeleteRun removes the run with given id and its spikes, or returns ErrNotFound
func (db *DB) DeleteRun(ctx context.Context, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("resultdb: begin: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM spikes WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("resultdb: delete spikes of run %s: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("resultdb: delete run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resultdb: delete run %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("resultdb: commit: %w", err)
	}
	return nil
}
