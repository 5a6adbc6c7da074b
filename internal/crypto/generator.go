package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	digitChars     = "0123456789"
	upperChars     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars     = "abcdefghijklmnopqrstuvwxyz"
	punctChars     = "!#$%&*+-=?@^_."
	ambiguousChars = "il1Lo0O"
)

var (
	ErrEmptyAlphabet      = errors.New("no characters available to generate a password")
	ErrClassUnavailable   = errors.New("character class unavailable after filtering")
	ErrLengthInsufficient = errors.New("password length is less than the number of mandatory character classes")
	ErrNotEnoughUnique    = errors.New("not enough unique characters for the requested length")
)

// Class is a character class a password can be required to contain.
type Class int

const (
	ClassDigits Class = iota
	ClassUpper
	ClassLower
	ClassPunct
)

// classOrder is the order in which classes contribute to the alphabet and to
// the mandatory characters of a password.
var classOrder = [...]Class{ClassDigits, ClassUpper, ClassLower, ClassPunct}

func (c Class) String() string {
	switch c {
	case ClassDigits:
		return "digits"
	case ClassUpper:
		return "uppercase letters"
	case ClassLower:
		return "lowercase letters"
	case ClassPunct:
		return "punctuation"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Chars returns every character that belongs to the class.
func (c Class) Chars() string {
	switch c {
	case ClassDigits:
		return digitChars
	case ClassUpper:
		return upperChars
	case ClassLower:
		return lowerChars
	case ClassPunct:
		return punctChars
	}
	return ""
}

// IsAmbiguous reports whether ch is easily confused with another character.
func IsAmbiguous(ch byte) bool {
	return strings.IndexByte(ambiguousChars, ch) >= 0
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length            int
	Digits            bool
	Upper             bool
	Lower             bool
	Punct             bool
	ExcludeAmbiguous  bool
	ExcludeDuplicates bool
}

// Classes returns the selected classes in their fixed order.
func (o GeneratorOptions) Classes() []Class {
	var out []Class
	for _, c := range classOrder {
		if o.selected(c) {
			out = append(out, c)
		}
	}
	return out
}

func (o GeneratorOptions) selected(c Class) bool {
	switch c {
	case ClassDigits:
		return o.Digits
	case ClassUpper:
		return o.Upper
	case ClassLower:
		return o.Lower
	case ClassPunct:
		return o.Punct
	}
	return false
}

// Alphabet is the set of characters eligible for a password.
type Alphabet string

// BuildAlphabet concatenates the selected classes and drops ambiguous
// characters when requested. The result depends only on opts.
func BuildAlphabet(opts GeneratorOptions) Alphabet {
	var sb strings.Builder
	for _, c := range opts.Classes() {
		for i := 0; i < len(c.Chars()); i++ {
			ch := c.Chars()[i]
			if opts.ExcludeAmbiguous && IsAmbiguous(ch) {
				continue
			}
			sb.WriteByte(ch)
		}
	}
	return Alphabet(sb.String())
}

// Of returns the characters of the alphabet that belong to class c.
func (a Alphabet) Of(c Class) []byte {
	var out []byte
	for i := 0; i < len(a); i++ {
		if strings.IndexByte(c.Chars(), a[i]) >= 0 {
			out = append(out, a[i])
		}
	}
	return out
}

// Distinct returns the unique characters of the alphabet in first-seen order.
func (a Alphabet) Distinct() []byte {
	seen := make(map[byte]bool, len(a))
	out := make([]byte, 0, len(a))
	for i := 0; i < len(a); i++ {
		if !seen[a[i]] {
			seen[a[i]] = true
			out = append(out, a[i])
		}
	}
	return out
}

// Validate checks that a password satisfying opts can be drawn from a.
// The first failing rule is reported.
func Validate(opts GeneratorOptions, a Alphabet) error {
	if len(a) == 0 {
		return ErrEmptyAlphabet
	}

	classes := opts.Classes()
	for _, c := range classes {
		if len(a.Of(c)) == 0 {
			return fmt.Errorf("%w: %s", ErrClassUnavailable, c)
		}
	}

	if opts.Length < len(classes) {
		return fmt.Errorf("%w (length %d, mandatory %d)", ErrLengthInsufficient, opts.Length, len(classes))
	}

	if opts.ExcludeDuplicates {
		if unique := len(a.Distinct()); unique < opts.Length {
			return fmt.Errorf("%w (%d unique, length %d)", ErrNotEnoughUnique, unique, opts.Length)
		}
	}

	return nil
}

// IsValidationError reports whether err is a rejection produced by Validate.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyAlphabet) ||
		errors.Is(err, ErrClassUnavailable) ||
		errors.Is(err, ErrLengthInsufficient) ||
		errors.Is(err, ErrNotEnoughUnique)
}

// Generator draws passwords from an alphabet using a uniform random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a Generator reading randomness from r.
// A nil r selects crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate creates one password of exactly opts.Length characters.
// Callers are expected to have run Validate on opts and a.
func (g *Generator) Generate(opts GeneratorOptions, a Alphabet) (string, error) {
	// One character from each selected class.
	mandatory := make([]byte, 0, len(classOrder))
	for _, c := range opts.Classes() {
		ch, err := g.pick(a.Of(c))
		if err != nil {
			return "", fmt.Errorf("%w: %s", err, c)
		}
		mandatory = append(mandatory, ch)
	}

	remaining := opts.Length - len(mandatory)
	if remaining < 0 {
		return "", fmt.Errorf("%w (length %d, mandatory %d)", ErrLengthInsufficient, opts.Length, len(mandatory))
	}

	var filler []byte
	var err error
	if opts.ExcludeDuplicates {
		filler, err = g.sample(without(a.Distinct(), mandatory), remaining)
	} else {
		filler, err = g.choices([]byte(a), remaining)
	}
	if err != nil {
		return "", err
	}

	result := append(mandatory, filler...)
	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateBatch creates count independent passwords.
func (g *Generator) GenerateBatch(opts GeneratorOptions, a Alphabet, count int) ([]string, error) {
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := g.Generate(opts, a)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

// intn returns a uniform random int in [0, n).
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func (g *Generator) pick(set []byte) (byte, error) {
	if len(set) == 0 {
		return 0, ErrClassUnavailable
	}
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// choices draws k characters from set with replacement.
func (g *Generator) choices(set []byte, k int) ([]byte, error) {
	if k > 0 && len(set) == 0 {
		return nil, ErrEmptyAlphabet
	}
	out := make([]byte, k)
	for i := range out {
		ch, err := g.pick(set)
		if err != nil {
			return nil, err
		}
		out[i] = ch
	}
	return out, nil
}

// sample draws k distinct positions of set without replacement using a
// partial Fisher-Yates shuffle. set is reordered in place.
func (g *Generator) sample(set []byte, k int) ([]byte, error) {
	if k > len(set) {
		return nil, fmt.Errorf("%w (%d available, %d needed)", ErrNotEnoughUnique, len(set), k)
	}
	for i := 0; i < k; i++ {
		j, err := g.intn(len(set) - i)
		if err != nil {
			return nil, err
		}
		j += i
		set[i], set[j] = set[j], set[i]
	}
	return set[:k], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// without returns the characters of set that do not appear in drop.
func without(set, drop []byte) []byte {
	out := make([]byte, 0, len(set))
	for _, ch := range set {
		if bytes.IndexByte(drop, ch) < 0 {
			out = append(out, ch)
		}
	}
	return out
}
