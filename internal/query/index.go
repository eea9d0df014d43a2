package query

import (
	"fmt"
	"unicode/utf8"
)

type hangulRange struct {
	consonant rune
	first     rune
	next      rune
}

// hangulIndex maps each index consonant to the syllables whose leading
// consonant sorts under it, as [first, next). Tense consonants (ㄲ ㄸ ㅃ ㅆ ㅉ)
// fall under their plain counterpart, so the 14 ranges tile the whole
// syllable block from 가 (U+AC00) to 힣 (U+D7A3).
var hangulIndex = [...]hangulRange{
	{'ㄱ', '가', '나'},
	{'ㄴ', '나', '다'},
	{'ㄷ', '다', '라'},
	{'ㄹ', '라', '마'},
	{'ㅁ', '마', '바'},
	{'ㅂ', '바', '사'},
	{'ㅅ', '사', '아'},
	{'ㅇ', '아', '자'},
	{'ㅈ', '자', '차'},
	{'ㅊ', '차', '카'},
	{'ㅋ', '카', '타'},
	{'ㅌ', '타', '파'},
	{'ㅍ', '파', '하'},
	{'ㅎ', '하', '힣' + 1},
}

// HangulRange returns the closed-open code point range of syllables indexed
// under consonant.
func HangulRange(consonant rune) (first, next rune, ok bool) {
	for _, hr := range hangulIndex {
		if hr.consonant == consonant {
			return hr.first, hr.next, true
		}
	}
	return 0, 0, false
}

// ResolveIndex converts an alphabetic index token into a single predicate.
// A Hangul consonant restricts the first character of the Korean title to the
// consonant's syllable range; a Latin letter matches Korean or English titles
// starting with the upper-case letter. Empty or unrecognised tokens yield no
// predicate.
func ResolveIndex(token string, d Dialect) (Predicate, bool) {
	token = clean(token)
	if utf8.RuneCountInString(token) != 1 {
		return Predicate{}, false
	}

	r, _ := utf8.DecodeRuneInString(token)

	if first, next, ok := HangulRange(r); ok {
		cp := d.CodePoint(colTitleKo)
		return Predicate{
			SQL:  fmt.Sprintf("(%s >= ? AND %s < ?)", cp, cp),
			Args: []interface{}{int(first), int(next)},
		}, true
	}

	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r >= 'A' && r <= 'Z' {
		letter := string(r)
		return Predicate{
			SQL:  fmt.Sprintf("(SUBSTR(%s, 1, 1) = ? OR SUBSTR(%s, 1, 1) = ?)", colTitleKo, colTitleEn),
			Args: []interface{}{letter, letter},
		}, true
	}

	return Predicate{}, false
}
