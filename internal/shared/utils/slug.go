package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptySlug is returned when a title normalizes to nothing, e.g. a
// title made entirely of symbols.
var ErrEmptySlug = errors.New("title normalizes to an empty slug")

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a display title into a lowercase, hyphen-delimited,
// ASCII-only identifier. Deterministic and idempotent: a generated slug
// passed back in comes out unchanged.
func GenerateSlug(title string) (string, error) {
	// Fold accented characters first, then lowercase.
	// "Étude Façade" → "etude facade"
	lower := strings.ToLower(foldLatin(title))

	// Drop everything that is not a-z, 0-9, whitespace or hyphen.
	cleaned := invalidChars.ReplaceAllString(lower, "")

	// Whitespace runs become a single hyphen, then hyphen runs collapse.
	hyphenated := whitespace.ReplaceAllString(cleaned, "-")
	collapsed := hyphenRuns.ReplaceAllString(hyphenated, "-")

	slug := strings.Trim(collapsed, "-")
	if slug == "" {
		return "", ErrEmptySlug
	}

	return slug, nil
}

// foldLatin maps accented Latin characters to their base letters. This is
// a fixed table rather than Unicode normalization because NFD alone does
// not resolve ligatures ("æ") or esszett ("ß").
func foldLatin(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		if replacement, ok := latinFold[r]; ok {
			b.WriteString(replacement)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

var latinFold = map[rune]string{
	// Lowercase
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'ā': "a", 'ă': "a", 'ą': "a",
	'ç': "c", 'ć': "c", 'č': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ē': "e", 'ė': "e", 'ę': "e", 'ě': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ī': "i", 'į': "i",
	'ñ': "n", 'ń': "n", 'ň': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ō': "o", 'ő': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ū': "u", 'ů': "u", 'ű': "u",
	'ý': "y", 'ÿ': "y",
	'š': "s", 'ś': "s", 'ž': "z", 'ź': "z", 'ż': "z",
	'ř': "r", 'ť': "t", 'ď': "d", 'ģ': "g", 'ķ': "k", 'ļ': "l", 'ņ': "n",

	// Ligatures and letters without a combining decomposition
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'đ': "d", 'ð': "d", 'ł': "l", 'þ': "th",

	// Uppercase
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Ā': "A", 'Ă': "A", 'Ą': "A",
	'Ç': "C", 'Ć': "C", 'Č': "C",
	'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E", 'Ē': "E", 'Ė': "E", 'Ę': "E", 'Ě': "E",
	'Ì': "I", 'Í': "I", 'Î': "I", 'Ï': "I", 'Ī': "I", 'Į': "I",
	'Ñ': "N", 'Ń': "N", 'Ň': "N",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O", 'Ō': "O", 'Ő': "O",
	'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U", 'Ū': "U", 'Ů': "U", 'Ű': "U",
	'Ý': "Y",
	'Š': "S", 'Ś': "S", 'Ž': "Z", 'Ź': "Z", 'Ż': "Z",
	'Ř': "R", 'Ť': "T", 'Ď': "D", 'Ģ': "G", 'Ķ': "K", 'Ļ': "L", 'Ņ': "N",
	'Æ': "AE", 'Œ': "OE", 'Ø': "O", 'Đ': "D", 'Ð': "D", 'Ł': "L", 'Þ': "TH",
}
