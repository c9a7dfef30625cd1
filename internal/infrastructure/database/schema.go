package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The matches table enforces the core invariant at the storage layer:
// one row per unordered pair, stored canonically as user1_id < user2_id.
// Application code treats a conflict on insert as "already matched".
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	age           INT  NOT NULL,
	gender        TEXT NOT NULL,
	interested_in TEXT NOT NULL,
	bio           TEXT,
	image         TEXT,
	instagram     TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS swipes (
	from_id    TEXT NOT NULL REFERENCES users(id),
	to_id      TEXT NOT NULL REFERENCES users(id),
	direction  TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (from_id, to_id)
);

CREATE INDEX IF NOT EXISTS idx_swipes_to_direction ON swipes (to_id, direction);

CREATE TABLE IF NOT EXISTS matches (
	id          TEXT PRIMARY KEY,
	user1_id    TEXT NOT NULL REFERENCES users(id),
	user2_id    TEXT NOT NULL REFERENCES users(id),
	type        TEXT NOT NULL,
	icebreakers TEXT[],
	created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user1_id, user2_id),
	CHECK (user1_id < user2_id)
);

CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	match_id    TEXT NOT NULL REFERENCES matches(id),
	sender_id   TEXT NOT NULL REFERENCES users(id),
	receiver_id TEXT NOT NULL REFERENCES users(id),
	content     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_messages_match_created ON messages (match_id, created_at);
`

// EnsureSchema creates the tables on startup if they don't exist yet.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
