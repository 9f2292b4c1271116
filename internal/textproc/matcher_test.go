package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/paradigm"
)

const matcherBundle = `{
  "gehen": {
    "base_form": "gehen",
    "level": "A1",
    "present": {
      "indicative": {
        "SG": {"3": {"form": "geht"}},
        "PL": {"1": {"form": "gehen"}}
      }
    },
    "past": {
      "indicative": {"SG": {"1": {"form": "ging"}}}
    }
  },
  "geht": {
    "base_form": "Geht",
    "level": "B1",
    "cases": {"nominative": {"neuter": {"SG": {"form": "geht"}}}}
  },
  "mann": {
    "base_form": "Mann",
    "level": "A1",
    "cases": {
      "nominative": {"masculine": {"SG": {"form": "mann"}}},
      "dative": {"masculine": {"PL": {"form": "männern"}}}
    }
  },
  "gut": {
    "base_form": "gut",
    "level": "A1",
    "declensions": {"accusative": {"masculine": {"SG": {"form": "guten"}}}}
  }
}`

func matcherStore(t *testing.T) *paradigm.Store {
	t.Helper()
	b, err := paradigm.ParseBundle(strings.NewReader(matcherBundle))
	require.NoError(t, err)
	return paradigm.NewStore(b)
}

func TestMatchToken_PriorityVerbBeatsNoun(t *testing.T) {
	store := matcherStore(t)

	// "geht" is a verb surface form and a dictionary noun; the verb
	// class must always win.
	class, m, ok := matchToken(store, "geht")
	require.True(t, ok)
	assert.Equal(t, domain.WordClassVerb, class)
	assert.Equal(t, "gehen", m.Entry.Key)
}

func TestMatchToken_ByClass(t *testing.T) {
	store := matcherStore(t)

	tests := []struct {
		token     string
		wantClass domain.WordClass
		wantBase  string
	}{
		{token: "ging", wantClass: domain.WordClassVerb, wantBase: "gehen"},
		{token: "männern", wantClass: domain.WordClassNoun, wantBase: "Mann"},
		{token: "guten", wantClass: domain.WordClassAdjective, wantBase: "gut"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			class, m, ok := matchToken(store, tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.wantClass, class)
			assert.Equal(t, tt.wantBase, m.Entry.BaseForm)
		})
	}
}

func TestMatchToken_NoMatch(t *testing.T) {
	store := matcherStore(t)

	_, _, ok := matchToken(store, "xyz123")
	assert.False(t, ok)
}

func TestResolveFeatures_VerbTense(t *testing.T) {
	store := matcherStore(t)

	class, m, ok := matchToken(store, "ging")
	require.True(t, ok)
	f := resolveFeatures(class, m)
	assert.Equal(t, "past", f.Tense)

	class, m, ok = matchToken(store, "geht")
	require.True(t, ok)
	assert.Equal(t, "present", resolveFeatures(class, m).Tense)
}

func TestResolveFeatures_BaseFormMatchIsUnknown(t *testing.T) {
	store := matcherStore(t)

	// Direct base-form hit: no slot, so every feature is unknown even
	// though "gehen" is also a present-plural surface form.
	class, m, ok := matchToken(store, "gehen")
	require.True(t, ok)
	require.Nil(t, m.Slot)
	assert.Equal(t, "unknown", resolveFeatures(class, m).Tense)
}

func TestResolveFeatures_NounGenderAndCase(t *testing.T) {
	store := matcherStore(t)

	class, m, ok := matchToken(store, "männern")
	require.True(t, ok)
	f := resolveFeatures(class, m)
	assert.Equal(t, "masculine", f.Gender)
	assert.Equal(t, "dative", f.Case)
}

func TestResolveFeatures_AdjectiveCase(t *testing.T) {
	store := matcherStore(t)

	class, m, ok := matchToken(store, "guten")
	require.True(t, ok)
	f := resolveFeatures(class, m)
	assert.Equal(t, "accusative", f.Case)
	assert.Empty(t, f.Gender, "gender is not reported for adjectives")
}
