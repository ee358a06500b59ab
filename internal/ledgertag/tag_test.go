package ledgertag_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sutratex/bunai-backend/internal/ledgertag"
)

func TestHasKhata(t *testing.T) {
	tests := []struct {
		name string
		text string
		id   int64
		want bool
	}{
		{"exact match", "khata:1", 1, true},
		{"match inside notes", "opening balance khata:7 party:none", 7, true},
		{"no tag at all", "opening balance", 1, false},
		{"longer id must not match", "khata:10", 1, false},
		{"longer id must not match mid-text", "bill khata:117 synced", 11, false},
		{"tag at end of text", "bill for fabric khata:42", 42, true},
		{"tag followed by separator", "khata:42,party:3", 42, true},
		{"second occurrence matches after prefix miss", "khata:10 khata:1", 1, true},
		{"different id", "khata:2", 1, false},
		{"multi-digit exact", "khata:117", 117, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledgertag.HasKhata(tt.text, tt.id))
		})
	}
}

func TestHasAnyKhata(t *testing.T) {
	assert.True(t, ledgertag.HasAnyKhata("khata:3"))
	assert.True(t, ledgertag.HasAnyKhata("some notes khata:3 more"))
	assert.False(t, ledgertag.HasAnyKhata("no tags here"))
	// bare prefix without an id is not a tag
	assert.False(t, ledgertag.HasAnyKhata("khata: pending"))
}

func TestExtractKhata(t *testing.T) {
	id, ok := ledgertag.ExtractKhata("BILL-0042 khata:12 party:none")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	_, ok = ledgertag.ExtractKhata("no tag")
	assert.False(t, ok)

	// first well-formed tag wins
	id, ok = ledgertag.ExtractKhata("khata:5 khata:9")
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)
}

func TestAppend(t *testing.T) {
	assert.Equal(t, "khata:1", ledgertag.Append("", ledgertag.Khata(1)))
	assert.Equal(t, "existing khata:1", ledgertag.Append("existing", ledgertag.Khata(1)))
}

func TestTagRendering(t *testing.T) {
	assert.Equal(t, "khata:9", ledgertag.Khata(9))

	partyID := int64(4)
	assert.Equal(t, "party:4", ledgertag.Party(&partyID))
	assert.Equal(t, "party:none", ledgertag.Party(nil))

	ts := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "synced:2025-03-09T10:30:00Z", ledgertag.SyncedAt(ts))
}

func TestKhataPattern(t *testing.T) {
	assert.Equal(t, "khata:1([^0-9]|$)", ledgertag.KhataPattern(1))
}
