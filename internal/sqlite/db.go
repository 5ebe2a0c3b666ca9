package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. tenant_id defaults to the empty
// string, which marks a row as unowned; unscoped queries see every
// row, tenant-scoped queries match on equality.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tenant_id TEXT NOT NULL DEFAULT '',
    project_name TEXT NOT NULL,
    client_name TEXT NOT NULL,
    software TEXT NOT NULL DEFAULT '',
    vendor TEXT NOT NULL DEFAULT '',
    start_date TIMESTAMP NOT NULL,
    deadline TIMESTAMP NOT NULL,
    status TEXT NOT NULL DEFAULT 'In Progress',
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_tenant_projects ON projects(tenant_id);

-- Meetings table
CREATE TABLE meetings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tenant_id TEXT NOT NULL DEFAULT '',
    project_id INTEGER NOT NULL,
    meeting_date TIMESTAMP NOT NULL,
    attendees TEXT NOT NULL DEFAULT '',
    agenda TEXT NOT NULL DEFAULT '',
    mom TEXT NOT NULL DEFAULT '',
    next_steps TEXT NOT NULL DEFAULT '',
    follow_up_date TIMESTAMP,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_meetings ON meetings(tenant_id);
CREATE INDEX idx_project_meetings ON meetings(project_id);
CREATE INDEX idx_meeting_date ON meetings(meeting_date);

-- Issues table
CREATE TABLE issues (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tenant_id TEXT NOT NULL DEFAULT '',
    project_id INTEGER NOT NULL,
    date_reported TIMESTAMP NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'Pending',
    assigned_to TEXT NOT NULL DEFAULT '',
    resolution_date TIMESTAMP,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_issues ON issues(tenant_id);
CREATE INDEX idx_project_issues ON issues(project_id);
CREATE INDEX idx_issue_status ON issues(status);

-- Client updates table
CREATE TABLE client_updates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tenant_id TEXT NOT NULL DEFAULT '',
    project_id INTEGER NOT NULL,
    update_date TIMESTAMP NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    sent_by TEXT NOT NULL DEFAULT '',
    mode TEXT NOT NULL DEFAULT 'Email',
    client_feedback TEXT NOT NULL DEFAULT '',
    next_step TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_updates ON client_updates(tenant_id);
CREATE INDEX idx_project_updates ON client_updates(project_id);
CREATE INDEX idx_update_date ON client_updates(update_date);

-- API keys for authentication
CREATE TABLE api_keys (
    key_hash TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX idx_tenant_keys ON api_keys(tenant_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
