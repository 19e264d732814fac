package columns

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/mariokirby1703/pemon-information-table/levels"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two rows ascending: negative if a sorts before b,
// positive if after, zero if equal.
type Comparator func(a, b levels.Level) int

// collator is not safe for concurrent use, hence the lock.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

// CompareText compares case-insensitively using locale aware collation.
func CompareText(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// CompareStripped compares like CompareText after dropping every rune that is
// neither a letter nor a digit.
func CompareStripped(a, b string) int {
	return CompareText(stripNonAlphanumeric(a), stripNonAlphanumeric(b))
}

func stripNonAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// CompareRank orders by position in vocab. Values missing from the
// vocabulary rank -1 and therefore sort first.
func CompareRank(vocab []string, a, b string) int {
	return compareInts(levels.Rank(vocab, a), levels.Rank(vocab, b))
}

// CompareSongID sorts numeric ids numerically and before any non numeric id.
// Two non numeric ids compare lexically.
func CompareSongID(a, b levels.SongID) int {
	na, aNum := a.Numeric()
	nb, bNum := b.Numeric()
	switch {
	case aNum && bNum:
		return compareFloats(na, nb)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(a.String(), b.String())
}

const rateDateLayout = "2/1/2006"

// ParseRateDate parses DD/MM/YYYY, accepting single digit days and months.
func ParseRateDate(s string) (time.Time, bool) {
	t, err := time.Parse(rateDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CompareRateDate sorts chronologically; unparseable dates sort first.
func CompareRateDate(a, b string) int {
	ta, aOK := ParseRateDate(a)
	tb, bOK := ParseRateDate(b)
	switch {
	case aOK && bOK:
		return ta.Compare(tb)
	case aOK:
		return 1
	case bOK:
		return -1
	}
	return 0
}

// CompareOptional compares optional counters; absent values sort first.
func CompareOptional(a, b *int) int {
	switch {
	case a != nil && b != nil:
		return compareInts(*a, *b)
	case a != nil:
		return 1
	case b != nil:
		return -1
	}
	return 0
}

func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func byText(field func(levels.Level) string) Comparator {
	return func(a, b levels.Level) int { return CompareText(field(a), field(b)) }
}

func byStripped(field func(levels.Level) string) Comparator {
	return func(a, b levels.Level) int { return CompareStripped(field(a), field(b)) }
}

func byInt(field func(levels.Level) int) Comparator {
	return func(a, b levels.Level) int { return compareInts(field(a), field(b)) }
}

func byOptional(field func(levels.Level) *int) Comparator {
	return func(a, b levels.Level) int { return CompareOptional(field(a), field(b)) }
}

func byRank(vocab []string, field func(levels.Level) string) Comparator {
	return func(a, b levels.Level) int { return CompareRank(vocab, field(a), field(b)) }
}
