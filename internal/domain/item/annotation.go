package item

import (
	"fmt"
	"strings"
	"time"
)

const annotationTimeLayout = "2006-01-02 15:04:05 MST"

const (
	provenancePrefix = "[Reported on "
	claimedPrefix    = "[Claimed by "
)

// AppendNote appends a bracketed note to desc without touching what is
// already there.
func AppendNote(desc, note string) string {
	if strings.TrimSpace(desc) == "" {
		return note
	}
	return desc + " " + note
}

// ProvenanceNote is stamped into the description when the item is registered.
func ProvenanceNote(at time.Time) string {
	return fmt.Sprintf(provenancePrefix+"%s]", at.UTC().Format(annotationTimeLayout))
}

// ClaimedNote records the approval that moved the item to claimed.
func ClaimedNote(claimerName string, claimerID, claimID uint64, at time.Time) string {
	return fmt.Sprintf(claimedPrefix+"%s (user #%d) via claim #%d on %s]",
		claimerName, claimerID, claimID, at.UTC().Format(annotationTimeLayout))
}

// SplitNotes separates the free text of desc from the trailing annotations.
// notes starts at the first annotation and is empty when there is none.
func SplitNotes(desc string) (text, notes string) {
	idx := -1
	for _, p := range []string{provenancePrefix, claimedPrefix} {
		if i := strings.Index(desc, p); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return strings.TrimSpace(desc), ""
	}
	return strings.TrimSpace(desc[:idx]), desc[idx:]
}

// HasNotes reports whether s carries anything that looks like an annotation.
func HasNotes(s string) bool {
	_, notes := SplitNotes(s)
	return notes != ""
}

// ReplaceText swaps the free text of desc and keeps its annotations as they are.
func ReplaceText(desc, text string) string {
	_, notes := SplitNotes(desc)
	text = strings.TrimSpace(text)
	if notes == "" {
		return text
	}
	return AppendNote(text, notes)
}
