// Package messages holds the localized text shown by the calculator.
//
// A Bundle is loaded once at startup from the embedded default catalog or a
// file, then resolved into a Catalog for a single language. Both are
// read-only after construction.
package messages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"golang.org/x/text/language"
)

// RequiredKeys lists every key a language must define.
var RequiredKeys = []string{
	constants.KeyWelcome,
	constants.KeyGetAmount,
	constants.KeyInvalidAmount,
	constants.KeyGetAPR,
	constants.KeyInvalidAPR,
	constants.KeyGetDuration,
	constants.KeyInvalidDuration,
	constants.KeyThankYou,
	constants.KeyContinue,
	constants.KeyInvalidContinue,
	constants.KeyLoanAmount,
	constants.KeyCurrency,
	constants.KeyAPR,
	constants.KeyLoanDuration,
	constants.KeyMonthlyPayment,
}

// Bundle maps a language tag to its messages.
type Bundle struct {
	languages map[string]map[string]string
}

// NewBundle normalizes the language tags of raw and copies the messages.
func NewBundle(raw map[string]map[string]string) (*Bundle, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("message catalog defines no languages")
	}

	b := &Bundle{languages: make(map[string]map[string]string, len(raw))}
	for code, entries := range raw {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q in message catalog: %w", code, err)
		}
		key := tag.String()
		if _, exists := b.languages[key]; exists {
			return nil, fmt.Errorf("language %q is defined more than once in message catalog", key)
		}
		copied := make(map[string]string, len(entries))
		for k, v := range entries {
			copied[k] = v
		}
		b.languages[key] = copied
	}
	return b, nil
}

// Languages returns the sorted language tags in the bundle.
func (b *Bundle) Languages() []string {
	tags := make([]string, 0, len(b.languages))
	for tag := range b.languages {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Catalog resolves code to a validated single-language catalog. A regional
// tag such as en-US falls back to its base language when it is not defined.
func (b *Bundle) Catalog(code string) (*Catalog, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", code, err)
	}

	entries, ok := b.languages[tag.String()]
	if !ok {
		base, _ := tag.Base()
		entries, ok = b.languages[base.String()]
		if !ok {
			return nil, fmt.Errorf("language %q not found in message catalog (available: %s)",
				code, strings.Join(b.Languages(), ", "))
		}
		tag = language.Make(base.String())
	}

	var missing []string
	for _, key := range RequiredKeys {
		if strings.TrimSpace(entries[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("language %q is missing messages: %s", tag.String(), strings.Join(missing, ", "))
	}

	return &Catalog{language: tag.String(), entries: entries}, nil
}

// Catalog is the message lookup for one language.
type Catalog struct {
	language string
	entries  map[string]string
	currency string
}

// Language returns the resolved language tag.
func (c *Catalog) Language() string {
	return c.language
}

// Get returns the message for key, or an empty string if it is unknown.
func (c *Catalog) Get(key string) string {
	if key == constants.KeyCurrency && c.currency != "" {
		return c.currency
	}
	return c.entries[key]
}

// WithCurrency returns a copy of the catalog whose currency label is replaced
// by label. An empty label keeps the catalog's own.
func (c *Catalog) WithCurrency(label string) *Catalog {
	copied := *c
	if label != "" {
		copied.currency = label
	}
	return &copied
}
