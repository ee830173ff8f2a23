package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/commrec/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS reconciliation_runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		input_count INTEGER NOT NULL,
		skipped_count INTEGER NOT NULL,
		duplicate_count INTEGER NOT NULL,
		defect_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS commission_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		carrier_name TEXT NOT NULL,
		commission_period TEXT NOT NULL,
		agent_name TEXT NOT NULL,
		agency_name TEXT,
		member_id TEXT,
		member_name TEXT,
		plan_name TEXT,
		enrollment_date TEXT,
		disenrollment_date TEXT,
		commission_amount REAL NOT NULL,
		transaction_type TEXT,
		policy_number TEXT,
		effective_date TEXT,
		processed_date TEXT,
		dedup_key TEXT NOT NULL,
		FOREIGN KEY(run_id) REFERENCES reconciliation_runs(id),
		UNIQUE(run_id, dedup_key)
	);

	CREATE INDEX IF NOT EXISTS idx_commission_records_run
		ON commission_records(run_id);
	`

	if _, err = DB.Exec(createTableStatement); err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Database tables ensured/created.", "databasePath", databasePath)
	}
}
