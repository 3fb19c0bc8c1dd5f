package session

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"seastore/internal/domain"
)

// Store persists the token pair and display email per sid cookie. One row
// per sid; the columns are the classic local-storage keys.
type Store struct{ db *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  access_token  TEXT NOT NULL DEFAULT '',
  refresh_token TEXT NOT NULL DEFAULT '',
  user_email    TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_email ON sessions(user_email);
`
	_, err := db.Exec(schema)
	return err
}

// Load returns the session for sid, or an empty logged-out session when the
// sid has never been seen.
func (s *Store) Load(sid string) (*domain.Session, error) {
	var sess domain.Session
	err := s.db.Get(&sess, `SELECT access_token,refresh_token,user_email FROM sessions WHERE id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Session{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Save(sid string, sess domain.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions(id,access_token,refresh_token,user_email,last_seen)
		VALUES(?,?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
		  access_token=excluded.access_token,
		  refresh_token=excluded.refresh_token,
		  user_email=excluded.user_email,
		  last_seen=CURRENT_TIMESTAMP
	`, sid, sess.AccessToken, sess.RefreshToken, sess.Email)
	return err
}

// Clear wipes the persisted keys but keeps the row, matching a logout that
// only removes local credentials (no server-side invalidation).
func (s *Store) Clear(sid string) error {
	_, err := s.db.Exec(`
		UPDATE sessions
		SET access_token='', refresh_token='', user_email='', last_seen=CURRENT_TIMESTAMP
		WHERE id=?
	`, sid)
	return err
}

// Touch records activity for an sid without changing credentials.
func (s *Store) Touch(sid string) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions(id,last_seen) VALUES(?,CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET last_seen=CURRENT_TIMESTAMP
	`, sid)
	return err
}
