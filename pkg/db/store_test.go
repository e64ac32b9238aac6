package db

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/japaniel/lexis/pkg/practice"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Ensure single connection to avoid separate in-memory DBs per connection.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleItems() []lexicon.Item {
	chat := lexicon.NewItem("katt", "cat", lexicon.Noun{Singular: "chat", Plural: "chats", Class: lexicon.Being})
	chat.UID = 3
	lui := lexicon.NewItem("han", "he", lexicon.PersonalPronoun{
		Subject: "il", Reflexive: "se", Stressed: "lui",
		Object: lexicon.ObjectPronouns{Direct: "le", Indirect: "lui"},
	})
	lui.UID = 7
	un := lexicon.NewItem("", "one", lexicon.Number{Cardinal: "un", CardinalFeminine: "une", Ordinal: "premier"})
	un.UID = 8
	return []lexicon.Item{chat, lui, un}
}

func TestMeta(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	v, err := GetMeta(db, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if v != "" {
		t.Fatalf("expected empty value, got %q", v)
	}
	if err := SetMeta(db, "k", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := SetMeta(db, "k", "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _ := GetMeta(db, "k"); v != "2" {
		t.Fatalf("expected 2, got %q", v)
	}
}

func TestLexiconSnapshotRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := lexicon.Snapshot{Items: sampleItems(), NextUID: 12}
	if err := SaveLexiconSnapshot(db, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadLexiconSnapshot(db)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestInsertItemRejectsDuplicateUID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	it := sampleItems()[0]
	if err := InsertItem(db, 0, it); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := InsertItem(db, 1, it); err == nil {
		t.Fatalf("expected unique constraint error for uid %d", it.UID)
	}
}

func TestGroupsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := []practice.Group{
		{Name: "verbs", Questions: []practice.Template{{Source: practice.Word, UID: 1}, {Source: practice.Sentence, UID: 4}}},
		{Name: "empty"},
		{Name: "nouns", Questions: []practice.Template{{Source: practice.Word, UID: 9}}},
	}
	for i, g := range want {
		if err := InsertGroup(db, i, g); err != nil {
			t.Fatalf("insert group: %v", err)
		}
	}
	got, err := ListGroups(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("groups mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}
