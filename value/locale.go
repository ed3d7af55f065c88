package value

import "golang.org/x/text/language"

// commaDecimalLanguages lists base languages whose conventional decimal
// separator is a comma. Everything else defaults to a period.
var commaDecimalLanguages = map[string]bool{
	"af": true, "az": true, "be": true, "bg": true, "bs": true,
	"ca": true, "cs": true, "da": true, "de": true, "el": true,
	"es": true, "et": true, "fi": true, "fr": true, "hr": true,
	"hu": true, "hy": true, "id": true, "is": true, "it": true,
	"ka": true, "kk": true, "lt": true, "lv": true, "mk": true,
	"nb": true, "nl": true, "nn": true, "no": true, "pl": true,
	"pt": true, "ro": true, "ru": true, "sk": true, "sl": true,
	"sq": true, "sr": true, "sv": true, "tr": true, "uk": true,
	"vi": true,
}

// numericGlyphs returns the minus sign and decimal separator used for
// numeric detection under tag.
func numericGlyphs(tag language.Tag) (minus, decimal rune) {
	minus = '-'
	decimal = '.'

	base, conf := tag.Base()
	if conf == language.No {
		return minus, decimal
	}
	if commaDecimalLanguages[base.String()] {
		decimal = ','
	}
	return minus, decimal
}

// IsNumeric reports whether the wrapped string is a plain decimal number
// under the conventions of tag. The scan permits at most one leading minus
// sign and at most one decimal separator; any other non-digit character
// rejects the string. At least one digit is required, so the empty and
// all-whitespace strings are not numeric.
func (s Str) IsNumeric(tag language.Tag) bool {
	if s.s == "" {
		return false
	}

	minus, decimal := numericGlyphs(tag)
	seenDigit := false
	seenDecimal := false

	for i, r := range s.s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == minus:
			if i != 0 {
				return false
			}
		case r == decimal:
			if seenDecimal {
				return false
			}
			seenDecimal = true
		default:
			return false
		}
	}
	return seenDigit
}
