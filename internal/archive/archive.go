// Package archive keeps every raw processor callback for audit, whatever
// happens to it afterwards.
package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	namePrefix = "pix_notification_"
	nameSuffix = ".json"

	// RecentLimit is how many names the status endpoint reports.
	RecentLimit = 10
)

// NewName builds pix_notification_<YYYYmmdd_HHMMSS>_<8 hex>.json. The random
// part keeps names unique when several callbacks land in the same second.
func NewName(now time.Time) string {
	return fmt.Sprintf("%s%s_%s%s", namePrefix, now.Format("20060102_150405"), uuid.New().String()[:8], nameSuffix)
}

func IsArchiveName(name string) bool {
	return strings.HasPrefix(name, namePrefix) && strings.HasSuffix(name, nameSuffix)
}

// Recent sorts names newest first and keeps at most limit of them.
func Recent(names []string, limit int) []string {
	sorted := append([]string(nil), names...)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// prettyJSON indents valid JSON and leaves anything else untouched.
func prettyJSON(raw []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return raw
	}
	return buf.Bytes()
}
