package textproc

import (
	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/paradigm"
)

// featureUnknown is reported when a feature applies to the word class
// but the matched form does not pin it down.
const featureUnknown = "unknown"

// classPriority is the fixed classification order. A token matching
// both a verb and a noun surface form is always reported as the verb —
// a reproducible contract, not a linguistic judgment.
var classPriority = []domain.WordClass{
	domain.WordClassVerb,
	domain.WordClassNoun,
	domain.WordClassAdjective,
}

// matchToken classifies one lowercase token against the paradigm
// store. The boolean is false when no class matches; the caller treats
// that as the adverb/other fallback, not an error.
func matchToken(store *paradigm.Store, token string) (domain.WordClass, paradigm.Match, bool) {
	for _, class := range classPriority {
		if m, ok := store.FindEntry(class, token); ok {
			return class, m, true
		}
	}
	return "", paradigm.Match{}, false
}

// resolveFeatures derives the coarse features for a matched token from
// the slot the matcher already located, preserving its first-match
// semantics. A nil slot means the token matched the base form directly,
// which resolves every applicable feature to "unknown".
func resolveFeatures(class domain.WordClass, m paradigm.Match) domain.Features {
	switch class {
	case domain.WordClassVerb:
		tense := featureUnknown
		if m.Slot != nil && (m.Slot.Tense == "present" || m.Slot.Tense == "past") {
			tense = m.Slot.Tense
		}
		return domain.Features{Tense: tense}

	case domain.WordClassNoun:
		gender, caseType := featureUnknown, featureUnknown
		if m.Slot != nil {
			if m.Slot.Gender != "" {
				gender = m.Slot.Gender
			}
			if m.Slot.Case != "" {
				caseType = m.Slot.Case
			}
		}
		return domain.Features{Gender: gender, Case: caseType}

	case domain.WordClassAdjective:
		caseType := featureUnknown
		if m.Slot != nil && m.Slot.Case != "" {
			caseType = m.Slot.Case
		}
		return domain.Features{Case: caseType}
	}
	return domain.Features{}
}
