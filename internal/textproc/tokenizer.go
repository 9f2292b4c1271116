// Package textproc implements the text-to-vocabulary extraction
// pipeline: tokenization, paradigm matching, feature resolution,
// novelty classification, and aggregation into a processing result.
package textproc

import (
	"regexp"
	"strings"
)

// reSentence matches one sentence including its terminal punctuation.
var reSentence = regexp.MustCompile(`[^.!?]+[.!?]+`)

// wordCutset is the fixed punctuation set stripped from tokens.
const wordCutset = `.,!?;:()"`

// Sentence is one tokenized sentence: the trimmed original text kept
// for translation and display, plus its lowercase word tokens.
type Sentence struct {
	Text  string
	Words []string
}

// Tokenize splits text into sentences on terminal punctuation and each
// sentence into lowercase word tokens. Input without terminal
// punctuation is treated as a single sentence. Only lowercasing is
// applied — no diacritic folding, German noun capitalization is
// discarded for matching but the sentence text keeps it.
func Tokenize(text string) []Sentence {
	raw := reSentence.FindAllString(text, -1)
	if raw == nil {
		raw = []string{text}
	}

	sentences := make([]Sentence, 0, len(raw))
	for _, s := range raw {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, Sentence{
			Text:  trimmed,
			Words: tokenizeWords(trimmed),
		})
	}
	return sentences
}

func tokenizeWords(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(stripPunct(f))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// stripPunct removes every punctuation character of the fixed set,
// wherever it appears in the token.
func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(wordCutset, r) {
			return -1
		}
		return r
	}, s)
}
