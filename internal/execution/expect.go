package execution

import (
	"strings"

	"github.com/google/go-cmp/cmp"
)

// compareOutput compares captured output against an expected literal after
// whitespace trimming. On mismatch it returns a unified -want +got diff for
// the failure message.
func compareOutput(want, got string) (bool, string) {
	trimmed := strings.TrimSpace(got)
	if trimmed == want {
		return true, ""
	}
	return false, cmp.Diff(want, trimmed)
}
