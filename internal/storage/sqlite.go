// Package storage provides SQLite-based persistence for scenes and the
// history of collision checks run against them.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hitbox/internal/body"
	"github.com/vovakirdan/hitbox/internal/config"
)

// ErrSceneNotFound is returned when a named scene does not exist.
var ErrSceneNotFound = errors.New("storage: scene not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SceneInfo summarizes a stored scene.
type SceneInfo struct {
	ID        string
	Name      string
	Checksum  string
	Elements  int
	UpdatedAt time.Time
}

// CheckRecord is one collision query and its outcome.
type CheckRecord struct {
	ID        int64
	Scene     string
	First     string
	Second    string
	Collides  bool
	Error     string // Empty when the query resolved
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// One connection: sqlite allows a single writer, and a shared connection
	// makes concurrent transactions queue instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			checksum TEXT NOT NULL,
			raw TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS elements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			name TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			UNIQUE(scene_id, name)
		);
		CREATE INDEX IF NOT EXISTS idx_elements_scene ON elements(scene_id);

		CREATE TABLE IF NOT EXISTS element_groups (
			element_id INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (element_id, tag)
		);

		CREATE TABLE IF NOT EXISTS bodies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			element_id INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			shape TEXT NOT NULL,
			w INTEGER NOT NULL,
			h INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			rotation REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_bodies_element ON bodies(element_id, idx);

		CREATE TABLE IF NOT EXISTS body_groups (
			body_id INTEGER NOT NULL,
			grp INTEGER NOT NULL,
			PRIMARY KEY (body_id, grp)
		);

		CREATE TABLE IF NOT EXISTS checks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			first TEXT NOT NULL,
			second TEXT NOT NULL,
			collides INTEGER NOT NULL,
			error TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_checks_scene ON checks(scene);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Checksum fingerprints encoded scene YAML.
func Checksum(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}

// SaveScene stores a scene under name, replacing any earlier version.
// When the stored checksum already matches, nothing is written and the
// existing ID is returned with changed == false.
func (s *Store) SaveScene(name string, sf config.SceneFile) (id string, changed bool, err error) {
	sf.Name = name
	raw, err := sf.Marshal()
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot encode scene: %w", err)
	}
	sum := Checksum(raw)

	tx, err := s.db.Begin()
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	// Lookup and replace share the transaction so concurrent saves of one
	// name serialize instead of racing on UNIQUE(name).
	var existingID, existingSum string
	err = tx.QueryRow("SELECT id, checksum FROM scenes WHERE name = ?", name).Scan(&existingID, &existingSum)
	switch {
	case err == nil && existingSum == sum:
		return existingID, false, nil
	case err != nil && err != sql.ErrNoRows:
		return "", false, fmt.Errorf("storage: cannot query scene: %w", err)
	}

	if existingID != "" {
		if err := deleteSceneRows(tx, existingID); err != nil {
			return "", false, err
		}
	}

	id = uuid.NewString()
	if _, err := tx.Exec(
		"INSERT INTO scenes (id, name, checksum, raw) VALUES (?, ?, ?, ?)",
		id, name, sum, string(raw),
	); err != nil {
		return "", false, fmt.Errorf("storage: cannot save scene: %w", err)
	}

	for _, elName := range sf.Names() {
		if err := insertElement(tx, id, elName, sf.Elements[elName]); err != nil {
			return "", false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("storage: cannot commit scene: %w", err)
	}
	return id, true, nil
}

func insertElement(tx *sql.Tx, sceneID, name string, spec config.ElementSpec) error {
	res, err := tx.Exec(
		"INSERT INTO elements (scene_id, name, x, y) VALUES (?, ?, ?, ?)",
		sceneID, name, spec.X, spec.Y,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save element %q: %w", name, err)
	}
	elementID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, tag := range spec.Groups {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO element_groups (element_id, tag) VALUES (?, ?)",
			elementID, tag,
		); err != nil {
			return fmt.Errorf("storage: cannot save element group: %w", err)
		}
	}

	for i, b := range spec.Bodies {
		res, err := tx.Exec(
			`INSERT INTO bodies (element_id, idx, shape, w, h, x, y, rotation)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			elementID, i, b.Shape.String(), b.W, b.H, b.X, b.Y, b.Rotation,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save body: %w", err)
		}
		bodyID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("storage: cannot get inserted ID: %w", err)
		}
		for _, g := range b.Groups {
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO body_groups (body_id, grp) VALUES (?, ?)",
				bodyID, g,
			); err != nil {
				return fmt.Errorf("storage: cannot save body group: %w", err)
			}
		}
	}
	return nil
}

func deleteSceneRows(tx *sql.Tx, sceneID string) error {
	stmts := []string{
		`DELETE FROM body_groups WHERE body_id IN (
			SELECT b.id FROM bodies b JOIN elements e ON b.element_id = e.id WHERE e.scene_id = ?)`,
		`DELETE FROM bodies WHERE element_id IN (SELECT id FROM elements WHERE scene_id = ?)`,
		`DELETE FROM element_groups WHERE element_id IN (SELECT id FROM elements WHERE scene_id = ?)`,
		`DELETE FROM elements WHERE scene_id = ?`,
		`DELETE FROM scenes WHERE id = ?`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt, sceneID); err != nil {
			return fmt.Errorf("storage: cannot delete scene: %w", err)
		}
	}
	return nil
}

// LoadScene rebuilds a stored scene from its rows.
func (s *Store) LoadScene(name string) (config.SceneFile, error) {
	sf := config.SceneFile{Name: name, Elements: map[string]config.ElementSpec{}}

	var sceneID string
	err := s.db.QueryRow("SELECT id FROM scenes WHERE name = ?", name).Scan(&sceneID)
	if err == sql.ErrNoRows {
		return sf, fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}
	if err != nil {
		return sf, fmt.Errorf("storage: cannot query scene: %w", err)
	}

	rows, err := s.db.Query("SELECT id, name, x, y FROM elements WHERE scene_id = ?", sceneID)
	if err != nil {
		return sf, fmt.Errorf("storage: cannot query elements: %w", err)
	}
	ids := make(map[int64]string)
	for rows.Next() {
		var id int64
		var elName string
		var spec config.ElementSpec
		if err := rows.Scan(&id, &elName, &spec.X, &spec.Y); err != nil {
			rows.Close()
			return sf, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids[id] = elName
		sf.Elements[elName] = spec
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return sf, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for id, elName := range ids {
		spec := sf.Elements[elName]
		if spec.Groups, err = s.elementGroups(id); err != nil {
			return sf, err
		}
		if spec.Bodies, err = s.bodies(id); err != nil {
			return sf, err
		}
		sf.Elements[elName] = spec
	}

	return sf, nil
}

func (s *Store) elementGroups(elementID int64) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT tag FROM element_groups WHERE element_id = ? ORDER BY tag",
		elementID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query element groups: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (s *Store) bodies(elementID int64) ([]config.BodySpec, error) {
	rows, err := s.db.Query(
		`SELECT id, shape, w, h, x, y, rotation FROM bodies
		 WHERE element_id = ? ORDER BY idx`,
		elementID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bodies: %w", err)
	}

	var specs []config.BodySpec
	var bodyIDs []int64
	for rows.Next() {
		var id int64
		var shape string
		var b config.BodySpec
		if err := rows.Scan(&id, &shape, &b.W, &b.H, &b.X, &b.Y, &b.Rotation); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if b.Shape, err = body.ParseShape(shape); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: %w", err)
		}
		specs = append(specs, b)
		bodyIDs = append(bodyIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i, id := range bodyIDs {
		groups, err := s.bodyGroups(id)
		if err != nil {
			return nil, err
		}
		specs[i].Groups = groups
	}
	return specs, nil
}

func (s *Store) bodyGroups(bodyID int64) ([]int, error) {
	rows, err := s.db.Query("SELECT grp FROM body_groups WHERE body_id = ? ORDER BY grp", bodyID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query body groups: %w", err)
	}
	defer rows.Close()

	var groups []int
	for rows.Next() {
		var g int
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// ListScenes returns every stored scene, sorted by name.
func (s *Store) ListScenes() ([]SceneInfo, error) {
	rows, err := s.db.Query(
		`SELECT s.id, s.name, s.checksum, s.updated_at,
		        (SELECT COUNT(*) FROM elements e WHERE e.scene_id = s.id)
		 FROM scenes s
		 ORDER BY s.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenes: %w", err)
	}
	defer rows.Close()

	var infos []SceneInfo
	for rows.Next() {
		var info SceneInfo
		var updatedAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.Checksum, &updatedAt, &info.Elements); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}

// DeleteScene removes a scene and all its rows.
func (s *Store) DeleteScene(name string) error {
	var sceneID string
	err := s.db.QueryRow("SELECT id FROM scenes WHERE name = ?", name).Scan(&sceneID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query scene: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if err := deleteSceneRows(tx, sceneID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// RecordCheck appends a check to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordCheck(rec CheckRecord) (int64, error) {
	var errText sql.NullString
	if rec.Error != "" {
		errText = sql.NullString{String: rec.Error, Valid: true}
	}

	result, err := s.db.Exec(
		"INSERT INTO checks (scene, first, second, collides, error) VALUES (?, ?, ?, ?, ?)",
		rec.Scene, rec.First, rec.Second, rec.Collides, errText,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record check: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentChecks returns the latest checks, newest first.
func (s *Store) RecentChecks(limit int) ([]CheckRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene, first, second, collides, error, created_at
		 FROM checks
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checks: %w", err)
	}
	defer rows.Close()

	var records []CheckRecord
	for rows.Next() {
		var rec CheckRecord
		var errText sql.NullString
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Scene, &rec.First, &rec.Second, &rec.Collides, &errText, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if errText.Valid {
			rec.Error = errText.String
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
