package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"

	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/japaniel/lexis/pkg/practice"
)

// writeSnapshot builds a fresh database next to path and renames it over path,
// so readers see either the old or the new snapshot.
func writeSnapshot(path string, fill func(tx *sql.Tx) error) error {
	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale %s: %w", tmp, err)
	}

	conn, err := sql.Open("sqlite3", tmp)
	if err != nil {
		return fmt.Errorf("open %s: %w", tmp, err)
	}
	conn.SetMaxOpenConns(1)

	err = func() error {
		if err := InitDB(conn); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		if err := fill(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		return tx.Commit()
	}()
	if cerr := conn.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// readSnapshot opens path read-only and hands it to read. A missing file yields fs.ErrNotExist.
func readSnapshot(path string, read func(db *sql.DB) error) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	dsn := (&url.URL{Scheme: "file", Opaque: path, RawQuery: "mode=ro"}).String()
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)
	return read(conn)
}

// quarantine moves an unreadable snapshot aside so the next save does not destroy it.
func quarantine(path string, logger *slog.Logger) {
	aside := path + ".corrupt"
	if err := os.Rename(path, aside); err != nil {
		logger.Warn("could not move unreadable snapshot aside", "path", path, "error", err)
		return
	}
	logger.Warn("unreadable snapshot moved aside", "path", path, "moved_to", aside)
}

func discardLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

// LexiconFile persists a lexicon as a sqlite snapshot. It implements lexicon.Persister.
type LexiconFile struct {
	Path string
	// Logger is optional; nil discards output.
	Logger *slog.Logger
}

// Save rewrites the whole file with s.
func (f *LexiconFile) Save(s lexicon.Snapshot) error {
	return writeSnapshot(f.Path, func(tx *sql.Tx) error {
		return SaveLexiconSnapshot(tx, s)
	})
}

// Load reads the snapshot stored at Path.
func (f *LexiconFile) Load() (lexicon.Snapshot, error) {
	var s lexicon.Snapshot
	err := readSnapshot(f.Path, func(db *sql.DB) error {
		var err error
		s, err = LoadLexiconSnapshot(db)
		return err
	})
	return s, err
}

// LoadOrNew loads the lexicon stored at Path with f as its persister. A missing file
// gives an empty lexicon; an unreadable one is moved aside and also gives an empty lexicon.
func (f *LexiconFile) LoadOrNew(opts ...lexicon.Option) *lexicon.Lexicon {
	logger := discardLogger(f.Logger)
	opts = append(opts, lexicon.WithPersister(f))

	s, err := f.Load()
	if err == nil {
		l, err := lexicon.FromSnapshot(s, opts...)
		if err == nil {
			logger.Debug("lexicon loaded", "path", f.Path, "items", l.Len())
			return l
		}
		logger.Warn("lexicon snapshot is inconsistent, starting empty", "path", f.Path, "error", err)
		quarantine(f.Path, logger)
		return lexicon.New(opts...)
	}
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("no lexicon snapshot yet, starting empty", "path", f.Path)
	} else {
		logger.Warn("lexicon snapshot is unreadable, starting empty", "path", f.Path, "error", err)
		quarantine(f.Path, logger)
	}
	return lexicon.New(opts...)
}

// GroupFile persists practice groups as a sqlite snapshot. It implements practice.Persister.
type GroupFile struct {
	Path   string
	Logger *slog.Logger
}

// SaveGroups rewrites the whole file with groups.
func (f *GroupFile) SaveGroups(groups []practice.Group) error {
	return writeSnapshot(f.Path, func(tx *sql.Tx) error {
		for i, g := range groups {
			if err := InsertGroup(tx, i, g); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadGroups reads the groups stored at Path.
func (f *GroupFile) LoadGroups() ([]practice.Group, error) {
	var groups []practice.Group
	err := readSnapshot(f.Path, func(db *sql.DB) error {
		var err error
		groups, err = ListGroups(db)
		return err
	})
	return groups, err
}

// LoadOrNew returns the stored collection with f as its persister, or an empty one
// when the file is missing or unreadable.
func (f *GroupFile) LoadOrNew() *practice.Collection {
	logger := discardLogger(f.Logger)
	groups, err := f.LoadGroups()
	switch {
	case err == nil:
		logger.Debug("practice groups loaded", "path", f.Path, "groups", len(groups))
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no practice group snapshot yet, starting empty", "path", f.Path)
	default:
		logger.Warn("practice group snapshot is unreadable, starting empty", "path", f.Path, "error", err)
		quarantine(f.Path, logger)
		groups = nil
	}
	return practice.NewCollection(groups, f, logger)
}
