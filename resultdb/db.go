// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package resultdb stores simulation runs in a SQLite database: the
parameters of each run (current, HCN site and conductance, synaptic
weights, stimulus times) and its spike times, so that the trials of a
batch can be queried back by label instead of re-parsing raster files.
*/
package resultdb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when no run has the requested id
	ErrNotFound = errors.New("resultdb: run not found")

	// ErrDuplicate is returned when saving a run whose id is already stored
	ErrDuplicate = errors.New("resultdb: duplicate run id")
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database at dsn, e.g., a file name or ":memory:".
// Call Migrate before first use of a new database.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("resultdb: open %s: %w", dsn, err)
	}
	if dsn == ":memory:" {
		// each connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("resultdb: enable foreign keys: %w", err)
	}
	return &DB{db}, nil
}

// Migrate creates the tables if they do not exist yet
func (db *DB) Migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    site TEXT NOT NULL CHECK(site IN ('som', 'den', 'zero')),
    i_app REAL NOT NULL,
    g_hcn REAL NOT NULL,
    w_gpe REAL NOT NULL,
    w_str REAL NOT NULL,
    tau REAL NOT NULL,
    gpe_stim REAL NOT NULL,
    str_stim REAL NOT NULL,
    duration REAL NOT NULL,
    dt REAL NOT NULL,
    n_spikes INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_label ON runs(label);

CREATE TABLE IF NOT EXISTS spikes (
    run_id TEXT NOT NULL,
    idx INTEGER NOT NULL,
    t REAL NOT NULL,
    PRIMARY KEY (run_id, idx),
    FOREIGN KEY (run_id) REFERENCES runs(id)
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("resultdb: migrate: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
