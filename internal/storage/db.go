package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"wingorder/internal"
)

const catalogKey = "pricingConfig"

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
  key TEXT PRIMARY KEY,
  json TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sales (
  date TEXT PRIMARY KEY,
  json TEXT NOT NULL,
  savedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS workspace (
  date TEXT NOT NULL,
  field TEXT NOT NULL,
  json TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(date, field)
);

CREATE TABLE IF NOT EXISTS inbox (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  messageId TEXT NOT NULL,
  subject TEXT,
  sender TEXT,
  receivedAt TEXT,
  fileName TEXT NOT NULL,
  path TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'fetched',
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(messageId, fileName)
);
`
	_, err := d.conn.Exec(schema)
	return err
}

// LoadCatalog returns the stored pricing catalog, seeding the store
// with the factory defaults on first use.
func (d *DB) LoadCatalog(defaults internal.PricingConfig) (internal.PricingConfig, error) {
	var raw string
	err := d.conn.QueryRow(`SELECT json FROM documents WHERE key = ?`, catalogKey).Scan(&raw)
	if err == sql.ErrNoRows {
		if err := d.SaveCatalog(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg internal.PricingConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("stored catalog is corrupt: %w", err)
	}
	return cfg, nil
}

func (d *DB) SaveCatalog(cfg internal.PricingConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = d.conn.Exec(`
INSERT INTO documents (key, json) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET json=excluded.json, updatedAt=CURRENT_TIMESTAMP
`, catalogKey, string(data))
	return err
}

// SaveWorkspaceField merges one field of the day's workspace without
// touching the others.
func (d *DB) SaveWorkspaceField(date, field string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = d.conn.Exec(`
INSERT INTO workspace (date, field, json) VALUES (?, ?, ?)
ON CONFLICT(date, field) DO UPDATE SET json=excluded.json, updatedAt=CURRENT_TIMESTAMP
`, date, field, string(data))
	return err
}

// LoadWorkspace returns every stored field of a day's workspace.
func (d *DB) LoadWorkspace(date string) (map[string]json.RawMessage, error) {
	rows, err := d.conn.Query(`SELECT field, json FROM workspace WHERE date = ?`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]json.RawMessage{}
	for rows.Next() {
		var field, raw string
		if err := rows.Scan(&field, &raw); err != nil {
			return nil, err
		}
		out[field] = json.RawMessage(raw)
	}
	return out, rows.Err()
}

// UpsertDailySales overwrites the whole document for a date.
func (d *DB) UpsertDailySales(sales internal.DailySales) error {
	data, err := json.Marshal(sales)
	if err != nil {
		return err
	}
	_, err = d.conn.Exec(`
INSERT INTO sales (date, json, savedAt) VALUES (?, ?, ?)
ON CONFLICT(date) DO UPDATE SET json=excluded.json, savedAt=excluded.savedAt
`, sales.Date, string(data), sales.SavedAt)
	return err
}

// ListDailySales returns every saved day, newest first.
func (d *DB) ListDailySales() ([]internal.DailySales, error) {
	rows, err := d.conn.Query(`SELECT json FROM sales ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.DailySales
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var sales internal.DailySales
		if err := json.Unmarshal([]byte(raw), &sales); err != nil {
			return nil, err
		}
		out = append(out, sales)
	}
	return out, rows.Err()
}

func (d *DB) GetDailySales(date string) (*internal.DailySales, error) {
	var raw string
	err := d.conn.QueryRow(`SELECT json FROM sales WHERE date = ?`, date).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sales internal.DailySales
	if err := json.Unmarshal([]byte(raw), &sales); err != nil {
		return nil, err
	}
	return &sales, nil
}

func (d *DB) DeleteDailySales(date string) error {
	_, err := d.conn.Exec(`DELETE FROM sales WHERE date = ?`, date)
	return err
}

// UpsertInboxFile registers one fetched attachment, keyed by message
// and file name so refetching is idempotent.
func (d *DB) UpsertInboxFile(file internal.InboxFile) error {
	_, err := d.conn.Exec(`
INSERT INTO inbox (messageId, subject, sender, receivedAt, fileName, path, status)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(messageId, fileName) DO UPDATE SET
  subject=excluded.subject,
  sender=excluded.sender,
  receivedAt=excluded.receivedAt,
  path=excluded.path
`, file.MessageID, file.Subject, file.Sender, file.ReceivedAt, file.FileName, file.Path, file.Status)
	return err
}

func (d *DB) ListInboxFiles(status string, limit int) ([]internal.InboxFile, error) {
	rows, err := d.conn.Query(`
SELECT id, messageId, subject, sender, receivedAt, fileName, path, status
FROM inbox WHERE (? = '' OR status = ?) ORDER BY id DESC LIMIT ?
`, status, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.InboxFile
	for rows.Next() {
		var f internal.InboxFile
		if err := rows.Scan(&f.ID, &f.MessageID, &f.Subject, &f.Sender, &f.ReceivedAt, &f.FileName, &f.Path, &f.Status); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (d *DB) UpdateInboxStatus(id int, status string) error {
	_, err := d.conn.Exec(`UPDATE inbox SET status = ? WHERE id = ?`, status, id)
	return err
}

// HasInboxMessage reports whether any attachment of a message was
// already fetched.
func (d *DB) HasInboxMessage(messageID string) (bool, error) {
	var n int
	if err := d.conn.QueryRow(`SELECT COUNT(1) FROM inbox WHERE messageId = ?`, messageID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
