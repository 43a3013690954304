// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package comms provides full-text search over port communications.
package comms

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/helmstream/helmstream-tui/internal/port"
)

// schema is the in-memory message store with an FTS5 mirror for search.
const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	channel     TEXT NOT NULL,
	sender      TEXT NOT NULL,
	sender_role TEXT,
	subject     TEXT,
	body        TEXT,
	timestamp   TEXT,
	vessel      TEXT,
	category    TEXT,
	unread      INTEGER NOT NULL DEFAULT 0
);

CREATE VIRTUAL TABLE IF NOT EXISTS messages_fts USING fts5(
	subject, body, sender, vessel,
	content='messages', content_rowid='rowid'
);

CREATE TRIGGER IF NOT EXISTS messages_ai AFTER INSERT ON messages BEGIN
	INSERT INTO messages_fts(rowid, subject, body, sender, vessel)
	VALUES (new.rowid, new.subject, new.body, new.sender, new.vessel);
END;

CREATE TRIGGER IF NOT EXISTS messages_ad AFTER DELETE ON messages BEGIN
	INSERT INTO messages_fts(messages_fts, rowid, subject, body, sender, vessel)
	VALUES ('delete', old.rowid, old.subject, old.body, old.sender, old.vessel);
END;
`

// =============================================================================
// MESSAGE INDEX
// =============================================================================

// MessageIndex is an in-memory SQLite index over the fleet's messages.
// It exists purely for search and counting; the fleet remains the source
// of truth and the index is rebuilt on every reload.
type MessageIndex struct {
	db *sql.DB
	mu sync.Mutex
}

// NewMessageIndex opens an empty in-memory index.
func NewMessageIndex() (*MessageIndex, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer; an in-memory database additionally
	// needs a single connection so every statement sees the same data.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &MessageIndex{db: db}, nil
}

// Close releases the database.
func (idx *MessageIndex) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Load replaces the index contents with the given messages.
func (idx *MessageIndex) Load(messages []port.Message) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO messages (id, channel, sender, sender_role, subject, body, timestamp, vessel, category, unread)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range messages {
		unread := 0
		if m.Unread {
			unread = 1
		}
		if _, err := stmt.Exec(m.ID, string(m.Channel), m.Sender, m.SenderRole,
			m.Subject, m.Body, m.Timestamp, m.Vessel, m.Category, unread); err != nil {
			return fmt.Errorf("failed to index message %s: %w", m.ID, err)
		}
	}

	return tx.Commit()
}

// =============================================================================
// SEARCH AND COUNTS
// =============================================================================

// Search runs a full-text query over subjects, bodies, senders, and
// vessel names. Results come back in relevance order, best first. An
// empty query returns no results.
func (idx *MessageIndex) Search(query string, limit int) ([]port.Message, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	ftsQuery := buildFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := idx.db.Query(`
		SELECT m.id, m.channel, m.sender, m.sender_role, m.subject, m.body,
		       m.timestamp, m.vessel, m.category, m.unread
		FROM messages_fts f
		JOIN messages m ON m.rowid = f.rowid
		WHERE messages_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	var out []port.Message
	for rows.Next() {
		var m port.Message
		var channel string
		var unread int
		if err := rows.Scan(&m.ID, &channel, &m.Sender, &m.SenderRole, &m.Subject,
			&m.Body, &m.Timestamp, &m.Vessel, &m.Category, &unread); err != nil {
			return nil, err
		}
		m.Channel = port.Channel(channel)
		m.Unread = unread != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// CountByChannel returns the number of indexed messages per channel.
func (idx *MessageIndex) CountByChannel() (map[port.Channel]int, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	rows, err := idx.db.Query("SELECT channel, COUNT(*) FROM messages GROUP BY channel")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[port.Channel]int)
	for rows.Next() {
		var channel string
		var n int
		if err := rows.Scan(&channel, &n); err != nil {
			return nil, err
		}
		counts[port.Channel(channel)] = n
	}
	return counts, rows.Err()
}

// UnreadCount returns the number of unread indexed messages.
func (idx *MessageIndex) UnreadCount() (int, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var n int
	err := idx.db.QueryRow("SELECT COUNT(*) FROM messages WHERE unread = 1").Scan(&n)
	return n, err
}

// buildFTSQuery turns free text into a safe FTS5 query: each term is
// quoted and terms are ANDed together.
func buildFTSQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, `"`, "")
		if f == "" {
			continue
		}
		terms = append(terms, `"`+f+`"`)
	}
	return strings.Join(terms, " AND ")
}
