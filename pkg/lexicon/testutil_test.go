package lexicon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func parler() Verb {
	return Verb{
		Name: "parler",
		Table: VerbForms{
			Conjugation: Regular,
			Present:     [6]string{"parle", "parles", "parle", "parlons", "parlez", "parlent"},
			Compound:    "parlé",
			Imperfect:   [6]string{"parlais", "parlais", "parlait", "parlions", "parliez", "parlaient"},
		},
	}
}

func mustAdd(t *testing.T, l *Lexicon, it Item) Item {
	t.Helper()
	stored, err := l.Add(it)
	require.NoError(t, err)
	return stored
}

type failingPersister struct {
	fail  bool
	saves int
	last  Snapshot
}

var errDiskFull = errors.New("disk full")

func (p *failingPersister) Save(s Snapshot) error {
	if p.fail {
		return errDiskFull
	}
	p.saves++
	p.last = s
	return nil
}
