package sentiment

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// negationFactor flips and dampens a negated word ("not good" is mildly negative).
const negationFactor = -0.5

type lexiconFile struct {
	Words     map[string]float64 `yaml:"words"`
	Modifiers map[string]float64 `yaml:"modifiers"`
	Negations []string           `yaml:"negations"`
}

// LexiconClassifier scores text by averaging the polarity of the known words
// it contains. A modifier directly before a word scales it; a negation within
// the two preceding tokens flips it.
type LexiconClassifier struct {
	words     map[string]float64
	modifiers map[string]float64
	negations map[string]struct{}
}

// NewLexiconClassifier builds a classifier over the embedded English lexicon.
func NewLexiconClassifier() (*LexiconClassifier, error) {
	return LoadLexicon(bytes.NewReader(defaultLexicon))
}

// LoadLexicon reads a YAML lexicon with `words`, `modifiers` and `negations` keys.
func LoadLexicon(r io.Reader) (*LexiconClassifier, error) {
	var lf lexiconFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	if len(lf.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words")
	}

	c := &LexiconClassifier{
		words:     make(map[string]float64, len(lf.Words)),
		modifiers: make(map[string]float64, len(lf.Modifiers)),
		negations: make(map[string]struct{}, len(lf.Negations)),
	}
	for w, p := range lf.Words {
		c.words[strings.ToLower(w)] = clamp(p)
	}
	for w, m := range lf.Modifiers {
		c.modifiers[strings.ToLower(w)] = m
	}
	for _, w := range lf.Negations {
		c.negations[strings.ToLower(w)] = struct{}{}
	}
	return c, nil
}

// Polarity implements Classifier. Text with no known words scores 0.
func (c *LexiconClassifier) Polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var n int
	for i, tok := range tokens {
		p, ok := c.words[tok]
		if !ok {
			continue
		}
		if i > 0 {
			if m, ok := c.modifiers[tokens[i-1]]; ok {
				p = clamp(p * m)
			}
		}
		if c.negated(tokens, i) {
			p *= negationFactor
		}
		sum += p
		n++
	}
	if n == 0 {
		return 0
	}
	return clamp(sum / float64(n))
}

func (c *LexiconClassifier) negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		tok := tokens[j]
		if _, ok := c.negations[tok]; ok {
			return true
		}
		if strings.HasSuffix(tok, "n't") {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func clamp(p float64) float64 {
	switch {
	case p > 1:
		return 1
	case p < -1:
		return -1
	default:
		return p
	}
}
