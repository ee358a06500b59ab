// Package ledgertag encodes and matches the khata association tags embedded
// in the free-text notes and reference fields of ledger entries.
//
// A khata association is the token "khata:<id>" anywhere inside either field.
// There is no foreign key; the tag is the wire contract the UI and older data
// rely on, so the format cannot change. Matching is boundary-aware: khata 1
// does not match "khata:10".
package ledgertag

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	khataPrefix = "khata:"
	partyPrefix = "party:"
	syncPrefix  = "synced:"

	// PartyNone marks a bill with no party attached.
	PartyNone = "none"
)

var khataTagRe = regexp.MustCompile(`khata:([0-9]+)`)

// Khata renders the khata association tag for id.
func Khata(id int64) string {
	return khataPrefix + strconv.FormatInt(id, 10)
}

// Party renders the party tag for a synced bill. A nil partyID renders
// "party:none".
func Party(partyID *int64) string {
	if partyID == nil {
		return partyPrefix + PartyNone
	}
	return partyPrefix + strconv.FormatInt(*partyID, 10)
}

// SyncedAt renders the sync timestamp tag written by the bill synchronizer.
func SyncedAt(t time.Time) string {
	return syncPrefix + t.UTC().Format(time.RFC3339)
}

// HasKhata reports whether text contains the exact khata token for id.
// The id must not be followed by a further digit, so HasKhata("khata:10", 1)
// is false.
func HasKhata(text string, id int64) bool {
	tag := Khata(id)
	for idx := strings.Index(text, tag); idx >= 0; {
		end := idx + len(tag)
		if end >= len(text) || !isDigit(text[end]) {
			return true
		}
		next := strings.Index(text[end:], tag)
		if next < 0 {
			return false
		}
		idx = end + next
	}
	return false
}

// HasAnyKhata reports whether text carries any khata tag at all.
func HasAnyKhata(text string) bool {
	return khataTagRe.MatchString(text)
}

// ExtractKhata returns the id of the first well-formed khata tag in text.
func ExtractKhata(text string) (int64, bool) {
	m := khataTagRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Append adds tag to text, separated by a single space when text is non-empty.
func Append(text, tag string) string {
	if text == "" {
		return tag
	}
	return text + " " + tag
}

// KhataPattern returns the POSIX regular expression used by SQL predicates to
// match the khata token with the same digit-boundary rule as HasKhata.
// Postgres evaluates it with the ~ operator.
func KhataPattern(id int64) string {
	return fmt.Sprintf("khata:%d([^0-9]|$)", id)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
