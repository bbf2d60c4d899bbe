package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/normalize"
)

func TestEntity_LegalSuffixes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"polish limited", "ACME Sp. z o.o.", "ACME"},
		{"polish limited uppercase", "ACME SP. Z O.O.", "ACME"},
		{"polish spelled out", "Acme Spółka z o.o.", "ACME"},
		{"joint stock", "Orlen S.A.", "ORLEN"},
		{"inc", "Apple Inc.", "APPLE"},
		{"ltd", "Tesco Ltd", "TESCO"},
		{"llc", "Cloud Services LLC", "CLOUD SERVICES"},
		{"gmbh", "Siemens GmbH", "SIEMENS"},
		{"dotted ltd", "Tesco L.t.d.", "TESCO"},
		{"dotted inc", "Apple I.N.C", "APPLE"},
		{"no suffix", "Żabka", "ŻABKA"},
		{"suffix inside word survives", "Lincoln Services", "LINCOLN SERVICES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Entity(tt.in))
		})
	}
}

func TestEntity_PunctuationAndWhitespace(t *testing.T) {
	assert.Equal(t, "ACME TRADING", normalize.Entity("  a.c.m.e   trading!  "))
	assert.Equal(t, "JAN KOWALSKI", normalize.Entity("Jan & Kowalski"))
}

func TestEntity_EmptyInput(t *testing.T) {
	assert.Equal(t, domain.UnknownEntity, normalize.Entity(""))
	assert.Equal(t, domain.UnknownEntity, normalize.Entity("   "))
	// Nothing but noise collapses to the sentinel too.
	assert.Equal(t, domain.UnknownEntity, normalize.Entity("Sp. z o.o."))
}

func TestEntity_Idempotent(t *testing.T) {
	inputs := []string{
		"ACME Sp. z o.o.",
		"Orlen S.A.",
		"Żabka",
		"",
		"UNKNOWN_ENTITY",
		"Cloud Services LLC",
		"FOO L.T.D",
		"I.N.C",
		"Acme s-p z o-o",
	}
	for _, in := range inputs {
		once := normalize.Entity(in)
		assert.Equal(t, once, normalize.Entity(once), "normalize must be idempotent for %q", in)
	}
}

func TestEntity_DottedSuffixSpellingsShareIdentity(t *testing.T) {
	// Every spelling of the same company must collapse to one key, or
	// vendor aggregation splits and strict duplicate matching misses.
	assert.Equal(t, "FOO", normalize.Entity("FOO L.T.D"))
	assert.Equal(t, normalize.Entity("FOO LTD"), normalize.Entity("FOO L.T.D"))
	assert.Equal(t, domain.UnknownEntity, normalize.Entity("I.N.C"))
}
