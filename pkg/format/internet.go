package format

import (
	"strings"
	"time"

	"github.com/datekit-go/datekit/pkg/date"
)

// InternetDateLayout is the RFC-1123-style layout used for internet dates:
// "Www, D Mon YYYY HH:mm:ss TZ" with an unpadded day of month.
const InternetDateLayout = "Mon, 2 Jan 2006 15:04:05 MST"

// gmt renders internet dates with the conventional "GMT" zone name rather
// than Go's "UTC".
var gmt = time.FixedZone("GMT", 0)

// ToInternetDate renders ts in the internet date format, always in GMT.
func ToInternetDate(ts date.Timestamp) string {
	return ts.Time().In(gmt).Format(InternetDateLayout)
}

// parseLayouts are tried in order by ParseInternetDate. The canonical layout
// accepts both padded and unpadded days, so RFC 1123 input parses too; the
// remaining layouts cover numeric zones and two-digit years.
var parseLayouts = []string{
	InternetDateLayout,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
}

// ParseInternetDate parses an internet date string. Parsing is lenient by
// contract: malformed input yields the epoch timestamp (millisecond count
// 0), never an error.
func ParseInternetDate(s string) date.Timestamp {
	s = strings.TrimSpace(s)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return date.FromTime(t)
		}
	}
	return date.Epoch
}
