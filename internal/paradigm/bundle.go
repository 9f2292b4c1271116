// Package paradigm loads the bundled German morphological dictionary and
// serves surface-form lookups against it. Pure parsing: bytes in, typed
// entries out. No database dependencies.
//
// The bundle is a single JSON object keyed by lowercase base form. The
// shape of each value determines its word class: entries with
// present/past/imperative blocks are verbs, entries with a cases block
// are nouns, entries with declensions or degrees blocks are adjectives.
// Source order is significant — it fixes match priority for ambiguous
// surface forms — so parsing goes through a token-level decoder that
// preserves object key order instead of encoding/json maps.
package paradigm

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wortlab/deutschtext/internal/domain"
)

// Slot is one flattened inflectional cell of a paradigm: the feature
// coordinates plus the lowercase surface form they produce.
type Slot struct {
	// Verb coordinates. Tense is "present" or "past"; imperative slots
	// carry Mood "imperative" with an empty Tense.
	Tense  string
	Mood   string
	Number string
	Person string

	// Nominal coordinates (nouns and adjectives).
	Case   string
	Gender string

	Form string
}

// Entry is one parsed dictionary entry with its flattened paradigm.
type Entry struct {
	// Key is the lowercase bundle key used for direct lookups.
	Key string
	// BaseForm is the display form (original casing where the bundle
	// provides one, otherwise the key).
	BaseForm string
	Class    domain.WordClass
	Level    string

	// Slots lists every paradigm cell in bundle source order. The
	// order is the match-priority contract for ambiguous forms.
	Slots []Slot

	// Comparison degrees, adjectives only. Not part of the surface
	// index: degree forms are never matched against tokens.
	Comparative string
	Superlative string
}

// Bundle is the parsed dictionary in source order, split by class.
type Bundle struct {
	Verbs      []*Entry
	Nouns      []*Entry
	Adjectives []*Entry
}

// ParseBundle reads a paradigm bundle from r. A malformed bundle is a
// fatal condition for the whole service, so any structural error aborts
// the parse.
func ParseBundle(r io.Reader) (*Bundle, error) {
	root, err := decodeOrdered(r)
	if err != nil {
		return nil, fmt.Errorf("paradigm bundle: %w", err)
	}
	if root.kind != kindObject {
		return nil, fmt.Errorf("paradigm bundle: top level must be an object")
	}

	b := &Bundle{}
	for _, f := range root.fields {
		entry, class, err := parseEntry(f.name, f.value)
		if err != nil {
			return nil, fmt.Errorf("paradigm bundle: entry %q: %w", f.name, err)
		}
		switch class {
		case domain.WordClassVerb:
			b.Verbs = append(b.Verbs, entry)
		case domain.WordClassNoun:
			b.Nouns = append(b.Nouns, entry)
		case domain.WordClassAdjective:
			b.Adjectives = append(b.Adjectives, entry)
		default:
			// No recognizable paradigm shape: the entry is skipped, not fatal.
		}
	}
	return b, nil
}

// parseEntry classifies a bundle value by shape and flattens its
// paradigm. Returns an empty class for entries matching no shape.
func parseEntry(key string, v jsonValue) (*Entry, domain.WordClass, error) {
	if v.kind != kindObject {
		return nil, "", fmt.Errorf("value must be an object")
	}

	e := &Entry{Key: key, BaseForm: key}
	if s, ok := v.stringField("base_form"); ok && s != "" {
		e.BaseForm = s
	}
	e.Level, _ = v.stringField("level")

	present, hasPresent := v.field("present")
	past, hasPast := v.field("past")
	imperative, hasImperative := v.field("imperative")
	if hasPresent || hasPast || hasImperative {
		e.Class = domain.WordClassVerb
		if hasPresent {
			if err := flattenTense(e, "present", present); err != nil {
				return nil, "", err
			}
		}
		if hasPast {
			if err := flattenTense(e, "past", past); err != nil {
				return nil, "", err
			}
		}
		if hasImperative {
			if err := flattenImperative(e, imperative); err != nil {
				return nil, "", err
			}
		}
		return e, e.Class, nil
	}

	if cases, ok := v.field("cases"); ok {
		e.Class = domain.WordClassNoun
		if err := flattenCases(e, cases); err != nil {
			return nil, "", err
		}
		return e, e.Class, nil
	}

	declensions, hasDeclensions := v.field("declensions")
	degrees, hasDegrees := v.field("degrees")
	if hasDeclensions || hasDegrees {
		e.Class = domain.WordClassAdjective
		if hasDeclensions {
			if err := flattenCases(e, declensions); err != nil {
				return nil, "", err
			}
		}
		if hasDegrees && degrees.kind == kindObject {
			e.Comparative, _ = degrees.stringField("comparative")
			e.Superlative, _ = degrees.stringField("superlative")
		}
		return e, e.Class, nil
	}

	return nil, "", nil
}

// flattenTense walks tense → mood → number → person → {form}.
func flattenTense(e *Entry, tense string, v jsonValue) error {
	if v.kind != kindObject {
		return fmt.Errorf("%s: must be an object", tense)
	}
	for _, mood := range v.fields {
		if mood.value.kind != kindObject {
			continue
		}
		for _, number := range mood.value.fields {
			if number.value.kind != kindObject {
				continue
			}
			for _, person := range number.value.fields {
				form, ok := person.value.stringField("form")
				if !ok || form == "" {
					continue
				}
				e.Slots = append(e.Slots, Slot{
					Tense:  tense,
					Mood:   mood.name,
					Number: number.name,
					Person: person.name,
					Form:   lower(form),
				})
			}
		}
	}
	return nil
}

// flattenImperative walks number → [{form}, ...]. Imperatives carry no
// tense: downstream tense resolution reports "unknown" for them.
func flattenImperative(e *Entry, v jsonValue) error {
	if v.kind != kindObject {
		return fmt.Errorf("imperative: must be an object")
	}
	for _, number := range v.fields {
		if number.value.kind != kindArray {
			continue
		}
		for _, item := range number.value.items {
			form, ok := item.stringField("form")
			if !ok || form == "" {
				continue
			}
			e.Slots = append(e.Slots, Slot{
				Mood:   "imperative",
				Number: number.name,
				Form:   lower(form),
			})
		}
	}
	return nil
}

// flattenCases walks case → gender → number → {form}; shared by noun
// cases and adjective declensions.
func flattenCases(e *Entry, v jsonValue) error {
	if v.kind != kindObject {
		return fmt.Errorf("cases: must be an object")
	}
	for _, caseType := range v.fields {
		if caseType.value.kind != kindObject {
			continue
		}
		for _, gender := range caseType.value.fields {
			if gender.value.kind != kindObject {
				continue
			}
			for _, number := range gender.value.fields {
				form, ok := number.value.stringField("form")
				if !ok || form == "" {
					continue
				}
				e.Slots = append(e.Slots, Slot{
					Case:   caseType.name,
					Gender: gender.name,
					Number: number.name,
					Form:   lower(form),
				})
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Order-preserving JSON decoding
// ---------------------------------------------------------------------------

type jsonKind int

const (
	kindNull jsonKind = iota
	kindString
	kindNumber
	kindBool
	kindObject
	kindArray
)

type jsonField struct {
	name  string
	value jsonValue
}

type jsonValue struct {
	kind   jsonKind
	str    string
	fields []jsonField
	items  []jsonValue
}

func (v jsonValue) field(name string) (jsonValue, bool) {
	for _, f := range v.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return jsonValue{}, false
}

func (v jsonValue) stringField(name string) (string, bool) {
	f, ok := v.field(name)
	if !ok || f.kind != kindString {
		return "", false
	}
	return f.str, true
}

func decodeOrdered(r io.Reader) (jsonValue, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return jsonValue{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return jsonValue{}, fmt.Errorf("trailing data after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (jsonValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return jsonValue{}, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (jsonValue, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := jsonValue{kind: kindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return jsonValue{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return jsonValue{}, fmt.Errorf("object key is not a string")
				}
				val, err := decodeValue(dec)
				if err != nil {
					return jsonValue{}, err
				}
				v.fields = append(v.fields, jsonField{name: key, value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return jsonValue{}, err
			}
			return v, nil
		case '[':
			v := jsonValue{kind: kindArray}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return jsonValue{}, err
				}
				v.items = append(v.items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return jsonValue{}, err
			}
			return v, nil
		}
		return jsonValue{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return jsonValue{kind: kindString, str: t}, nil
	case json.Number:
		return jsonValue{kind: kindNumber, str: t.String()}, nil
	case bool:
		return jsonValue{kind: kindBool}, nil
	case nil:
		return jsonValue{kind: kindNull}, nil
	}
	return jsonValue{}, fmt.Errorf("unexpected token %v", tok)
}
