package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

const schemaVersion = "1"

// Index implements ports.ShortcutIndex using SQLite. The JSON store
// stays the source of truth; the index is a disposable search cache.
type Index struct {
	db       *sql.DB
	dataPath string
	dbPath   string
}

// Ensure Index implements ShortcutIndex
var _ ports.ShortcutIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given shortcut data path
func (idx *Index) Open(dataPath string) error {
	// Expand ~ in path
	if len(dataPath) > 0 && dataPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dataPath = filepath.Join(home, dataPath[1:])
	}

	idx.dataPath = dataPath
	idx.dbPath = databasePath(dataPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS shortcuts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			target TEXT NOT NULL,
			gesture TEXT
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_shortcuts_name ON shortcuts(name);
		CREATE INDEX IF NOT EXISTS idx_shortcuts_type ON shortcuts(type);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, dataHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'data_path_hash'").Scan(&dataHash)

	return version != schemaVersion || dataHash != hashDataPath(idx.dataPath)
}

// Sync replaces the indexed rows with the current shortcut set
func (idx *Index) Sync(shortcuts []domain.Shortcut) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin sync: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM shortcuts`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear index: %w", err)
	}

	for _, sc := range shortcuts {
		_, err := tx.Exec(`
			INSERT INTO shortcuts (id, name, type, target, gesture)
			VALUES (?, ?, ?, ?, ?)
		`, sc.ID, sc.Name, sc.Type.String(), sc.Target, sc.Gesture)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to index shortcut %s: %w", sc.ID, err)
		}
	}

	return tx.Commit()
}

// Search returns shortcuts whose name or target contains the query,
// case-insensitively, ordered by name.
func (idx *Index) Search(query string) ([]domain.Shortcut, error) {
	pattern := "%" + escapeLike(query) + "%"

	rows, err := idx.db.Query(`
		SELECT id, name, type, target, COALESCE(gesture, '')
		FROM shortcuts
		WHERE lower(name) LIKE lower(?) ESCAPE '\'
		   OR lower(target) LIKE lower(?) ESCAPE '\'
		ORDER BY name
	`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	defer rows.Close()

	var results []domain.Shortcut
	for rows.Next() {
		var sc domain.Shortcut
		var typ string
		if err := rows.Scan(&sc.ID, &sc.Name, &typ, &sc.Target, &sc.Gesture); err != nil {
			return nil, err
		}
		sc.Type = domain.ParseType(typ)
		results = append(results, sc)
	}

	return results, rows.Err()
}

// databasePath returns the path for the SQLite database
func databasePath(dataPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash data path for unique DB name
	return filepath.Join(dataHome, "quicklaunch", hashDataPath(dataPath)+".db")
}

// hashDataPath returns a short hash of the shortcut data path
func hashDataPath(dataPath string) string {
	h := sha256.Sum256([]byte(dataPath))
	return hex.EncodeToString(h[:8])
}

// updateMeta updates the schema version and data path hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('data_path_hash', ?);
	`, schemaVersion, hashDataPath(idx.dataPath))
	return err
}

// escapeLike escapes LIKE wildcards in user queries
func escapeLike(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
