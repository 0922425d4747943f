package repos

import "github.com/jmoiron/sqlx"

// SessionRepo tracks anonymous browser sessions. Its one piece of
// state is the splash flag: whether the loading splash has already
// been shown this session.
type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Touch(sid string) error {
	_, err := r.db.Exec(`
	  INSERT INTO sessions(id, last_seen) VALUES(?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET last_seen = CURRENT_TIMESTAMP
	`, sid)
	return err
}

// MarkSplashShown flips the flag and reports whether this call was the
// first (i.e. the splash should be shown now). One UPDATE keeps the
// check-and-set atomic.
func (r *SessionRepo) MarkSplashShown(sid string) (first bool, err error) {
	res, err := r.db.Exec(`
	  UPDATE sessions SET splash_shown = 1
	  WHERE id = ? AND splash_shown = 0
	`, sid)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
