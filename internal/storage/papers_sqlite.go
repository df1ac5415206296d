package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/paperdex/paperdex/internal/normalize"
	"github.com/paperdex/paperdex/internal/paper"
)

// DB wraps the ephemeral SQLite query cache. The cache holds denormalized
// lookup columns plus the full JSON record; it is dropped and rebuilt from
// the JSONL file whenever the collection changes.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the cache database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			doi TEXT,
			title TEXT NOT NULL,
			norm_title TEXT NOT NULL,
			venue TEXT,
			year INTEGER,
			citations INTEGER NOT NULL DEFAULT 0,
			country TEXT,
			data TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_papers_doi ON papers(doi) WHERE doi IS NOT NULL AND doi != '';
		CREATE INDEX IF NOT EXISTS idx_papers_norm_title ON papers(norm_title);
		CREATE INDEX IF NOT EXISTS idx_papers_venue_year ON papers(venue, year);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the cache and reloads it from the given collection.
// Returns the number of records loaded.
func (d *DB) Rebuild(papers []paper.Paper) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM papers"); err != nil {
		return 0, fmt.Errorf("clearing papers table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO papers (id, doi, title, norm_title, venue, year, citations, country, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range papers {
		p := &papers[i]
		data, err := json.Marshal(p)
		if err != nil {
			return 0, fmt.Errorf("marshaling paper %s: %w", p.ID, err)
		}
		_, err = stmt.Exec(
			p.ID, p.DOI, p.Title, normalize.Title(p.Title),
			p.Venue.Name, p.Year, p.Citations, p.Country, string(data),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(papers), nil
}

// RebuildFromJSONL reloads the cache from the collection file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	papers, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	return d.Rebuild(papers)
}

// GetByID retrieves a paper by its identifier. Returns nil when not found.
func (d *DB) GetByID(id string) (*paper.Paper, error) {
	return d.scanOne(`SELECT data FROM papers WHERE id = ?`, id)
}

// GetByDOI retrieves a paper by DOI. Returns nil when not found.
func (d *DB) GetByDOI(doi string) (*paper.Paper, error) {
	return d.scanOne(`SELECT data FROM papers WHERE doi = ?`, doi)
}

// FindByTitle retrieves a paper by exact normalized title. Returns nil when
// not found; when several share a normalized title the first stored wins.
func (d *DB) FindByTitle(title string) (*paper.Paper, error) {
	return d.scanOne(
		`SELECT data FROM papers WHERE norm_title = ? ORDER BY rowid LIMIT 1`,
		normalize.Title(title),
	)
}

// List returns papers filtered by venue name and year; zero values disable
// the corresponding filter. Results come back in collection order.
func (d *DB) List(venue string, year, limit int) ([]paper.Paper, error) {
	query := `SELECT data FROM papers WHERE 1=1`
	var args []any
	if venue != "" {
		query += ` AND venue = ?`
		args = append(args, venue)
	}
	if year != 0 {
		query += ` AND year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY rowid`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	defer rows.Close()

	var papers []paper.Paper
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		var p paper.Paper
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decoding paper: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// Count returns the number of cached records.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

func (d *DB) scanOne(query string, args ...any) (*paper.Paper, error) {
	var data string
	err := d.db.QueryRow(query, args...).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying paper: %w", err)
	}

	var p paper.Paper
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decoding paper: %w", err)
	}
	return &p, nil
}
