package db

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/japaniel/lexis/pkg/practice"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

const metaNextUID = "next_uid"

// SetMeta stores a key/value pair, replacing any previous value.
func SetMeta(db DBExecutor, key, value string) error {
	_, err := db.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}

// GetMeta returns the value stored under key, or "" when absent.
func GetMeta(db DBExecutor, key string) (string, error) {
	var v string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get meta %s: %w", key, err)
	}
	return v, nil
}

// InsertItem writes one lexicon item at the given store position.
func InsertItem(db DBExecutor, position int, it lexicon.Item) error {
	variant, category, err := lexicon.EncodeCategory(it.Category)
	if err != nil {
		return fmt.Errorf("item %d: %w", it.UID, err)
	}
	_, err = db.Exec(
		`INSERT INTO items (position, uid, primary_text, secondary_text, variant, category) VALUES (?, ?, ?, ?, ?, ?)`,
		position, it.UID, it.Primary, it.Secondary, variant, string(category),
	)
	if err != nil {
		return fmt.Errorf("insert item %d: %w", it.UID, err)
	}
	return nil
}

// ListItems returns every stored item in position order.
func ListItems(db DBExecutor) ([]lexicon.Item, error) {
	rows, err := db.Query(`SELECT uid, primary_text, secondary_text, variant, category FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var out []lexicon.Item
	for rows.Next() {
		var (
			uid                uint32
			primary, secondary string
			variant, category  string
		)
		if err := rows.Scan(&uid, &primary, &secondary, &variant, &category); err != nil {
			return nil, err
		}
		c, err := lexicon.DecodeCategory(variant, []byte(category))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", uid, err)
		}
		it := lexicon.NewItem(primary, secondary, c)
		it.UID = uid
		out = append(out, it)
	}
	return out, rows.Err()
}

// SaveLexiconSnapshot writes every item and the uid counter.
func SaveLexiconSnapshot(db DBExecutor, s lexicon.Snapshot) error {
	for i, it := range s.Items {
		if err := InsertItem(db, i, it); err != nil {
			return err
		}
	}
	return SetMeta(db, metaNextUID, strconv.FormatUint(uint64(s.NextUID), 10))
}

// LoadLexiconSnapshot reads back what SaveLexiconSnapshot wrote.
func LoadLexiconSnapshot(db DBExecutor) (lexicon.Snapshot, error) {
	items, err := ListItems(db)
	if err != nil {
		return lexicon.Snapshot{}, err
	}
	raw, err := GetMeta(db, metaNextUID)
	if err != nil {
		return lexicon.Snapshot{}, err
	}
	var next uint64
	if raw != "" {
		next, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return lexicon.Snapshot{}, fmt.Errorf("parse %s: %w", metaNextUID, err)
		}
	}
	return lexicon.Snapshot{Items: items, NextUID: uint32(next)}, nil
}

// InsertGroup writes a group and its questions at the given position.
func InsertGroup(db DBExecutor, position int, g practice.Group) error {
	if _, err := db.Exec(`INSERT INTO groups (position, name) VALUES (?, ?)`, position, g.Name); err != nil {
		return fmt.Errorf("insert group %q: %w", g.Name, err)
	}
	for j, q := range g.Questions {
		_, err := db.Exec(
			`INSERT INTO questions (group_position, position, source, uid) VALUES (?, ?, ?, ?)`,
			position, j, q.Source.String(), q.UID,
		)
		if err != nil {
			return fmt.Errorf("insert question %d of %q: %w", j, g.Name, err)
		}
	}
	return nil
}

// ListGroups returns every group with its questions, both in position order.
func ListGroups(db DBExecutor) ([]practice.Group, error) {
	rows, err := db.Query(`SELECT position, name FROM groups ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	var (
		groups    []practice.Group
		positions = map[int]int{}
	)
	for rows.Next() {
		var pos int
		var name string
		if err := rows.Scan(&pos, &name); err != nil {
			rows.Close()
			return nil, err
		}
		positions[pos] = len(groups)
		groups = append(groups, practice.Group{Name: name})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	qrows, err := db.Query(`SELECT group_position, source, uid FROM questions ORDER BY group_position, position`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer qrows.Close()
	for qrows.Next() {
		var gpos int
		var source string
		var uid uint32
		if err := qrows.Scan(&gpos, &source, &uid); err != nil {
			return nil, err
		}
		src, err := practice.ParseSource(source)
		if err != nil {
			return nil, err
		}
		gi, ok := positions[gpos]
		if !ok {
			return nil, fmt.Errorf("question references missing group %d", gpos)
		}
		groups[gi].Questions = append(groups[gi].Questions, practice.Template{Source: src, UID: uid})
	}
	return groups, qrows.Err()
}
