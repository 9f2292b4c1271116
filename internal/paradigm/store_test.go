package paradigm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortlab/deutschtext/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(parseTestBundle(t))
}

func TestStore_FindEntry_DirectBaseForm(t *testing.T) {
	s := newTestStore(t)

	m, ok := s.FindEntry(domain.WordClassVerb, "gehen")
	require.True(t, ok)
	assert.Equal(t, "gehen", m.Entry.Key)
	assert.Nil(t, m.Slot, "direct base-form match carries no slot")
}

func TestStore_FindEntry_SurfaceForm(t *testing.T) {
	s := newTestStore(t)

	m, ok := s.FindEntry(domain.WordClassVerb, "gingst")
	require.True(t, ok)
	assert.Equal(t, "gehen", m.Entry.Key)
	require.NotNil(t, m.Slot)
	assert.Equal(t, "past", m.Slot.Tense)
	assert.Equal(t, "2", m.Slot.Person)
}

func TestStore_FindEntry_NoMatch(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.FindEntry(domain.WordClassVerb, "xyz123")
	assert.False(t, ok)
	_, ok = s.FindEntry(domain.WordClassNoun, "gehe")
	assert.False(t, ok, "verb form must not match the noun class")
}

func TestStore_FindEntry_Idempotent(t *testing.T) {
	s := newTestStore(t)

	first, ok := s.FindEntry(domain.WordClassNoun, "männern")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := s.FindEntry(domain.WordClassNoun, "männern")
		require.True(t, ok)
		assert.Same(t, first.Entry, again.Entry)
		assert.Same(t, first.Slot, again.Slot)
	}
}

func TestStore_AmbiguousSurfaceForm_FirstEntryWins(t *testing.T) {
	// Both nouns inflect to "formen"; the first entry in source order
	// must win every time.
	bundle := `{
	  "form": {
	    "base_form": "Form",
	    "level": "A2",
	    "cases": {"nominative": {"feminine": {"SG": {"form": "form"}, "PL": {"form": "formen"}}}}
	  },
	  "formen": {
	    "base_form": "Formen",
	    "level": "B1",
	    "cases": {"nominative": {"neuter": {"SG": {"form": "formen"}}}}
	  }
	}`
	b, err := ParseBundle(strings.NewReader(bundle))
	require.NoError(t, err)
	s := NewStore(b)

	m, ok := s.FindEntry(domain.WordClassNoun, "formen")
	require.True(t, ok)
	assert.Equal(t, "form", m.Entry.Key)
	require.NotNil(t, m.Slot)
	assert.Equal(t, "PL", m.Slot.Number)
}

func TestStore_AmbiguousSlot_FirstSlotWins(t *testing.T) {
	// "geht" appears as present SG 3 and present PL 2; the first slot
	// in paradigm order decides.
	s := newTestStore(t)

	m, ok := s.FindEntry(domain.WordClassVerb, "geht")
	require.True(t, ok)
	require.NotNil(t, m.Slot)
	assert.Equal(t, "SG", m.Slot.Number)
	assert.Equal(t, "3", m.Slot.Person)
}

func TestDefault_EmbeddedBundle(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Greater(t, s.Len(), 0)

	// Loading again returns the same store.
	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, s, again)

	m, ok := s.FindEntry(domain.WordClassVerb, "ging")
	require.True(t, ok)
	assert.Equal(t, "gehen", m.Entry.BaseForm)
}
