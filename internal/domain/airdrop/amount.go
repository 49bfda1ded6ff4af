package airdrop

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var magnitudes = map[rune]float64{
	'k': 1e3,
	'm': 1e6,
	'b': 1e9,
}

// ParseAmount reads the first number out of free text such as "$1,200",
// "~2.5k" or "1,234,567 XP". It reports false when no number is found.
func ParseAmount(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return 0, false
	}
	if start > 0 && s[start-1] == '.' {
		start--
	}

	var num strings.Builder
	i := start
scan:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c == '.':
			num.WriteByte(c)
		case c == ',' || c == '_':
		default:
			break scan
		}
	}

	v, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return 0, false
	}

	rest := strings.TrimLeft(s[i:], " ")
	if rest != "" {
		r := rune(rest[0])
		if mul, ok := magnitudes[r]; ok && (len(rest) == 1 || !unicode.IsLetter(rune(rest[1]))) {
			v *= mul
		}
	}
	return v, true
}

// SortByAmount orders airdrops by the number parsed from field. Records
// without a parsable value go last in both directions.
func SortByAmount(list []Airdrop, field func(Airdrop) *string, desc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		vi, oki := parseField(field(list[i]))
		vj, okj := parseField(field(list[j]))
		if oki != okj {
			return oki
		}
		if desc {
			return vi > vj
		}
		return vi < vj
	})
}

func parseField(s *string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	return ParseAmount(*s)
}

func EstimatedValue(a Airdrop) *string { return a.EstimatedVal }
func FarmingPoints(a Airdrop) *string  { return a.FarmingPoints }
