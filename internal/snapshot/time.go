package snapshot

import (
	"fmt"
	"time"
)

// ticksPerSecond and unixEpochTicks anchor the 100-ns ticks §3/§6 store
// time values in to the .NET DateTime epoch, 0001-01-01T00:00:00Z. The
// teacher's own format uses Unix-epoch UnixNano timestamps throughout;
// this repo's wire format instead follows the ticks-since-a-fixed-epoch
// convention the spec's snapshot grammar spells out, so encoding/decoding
// lives here rather than reusing restic's time helpers.
const ticksPerSecond = 10_000_000

// unixEpochTicks is the tick count of 1970-01-01T00:00:00Z relative to
// epoch (0001-01-01T00:00:00Z): 719162 days * 86400 seconds/day *
// ticksPerSecond. time.Time.Sub caps its result at a time.Duration, which
// tops out around 292 years — far short of the ~1970 years between epoch
// and any real timestamp — so ticks must be computed from Unix seconds and
// nanoseconds directly rather than by subtracting two time.Time values.
const unixEpochTicks = 621355968000000000

// ToTicks converts t to 100-ns ticks since epoch, as stored in the Time
// section and in every File/Folder timestamp field.
func ToTicks(t time.Time) uint64 {
	u := t.UTC()
	ticks := u.Unix()*ticksPerSecond + int64(u.Nanosecond())/100 + unixEpochTicks
	return uint64(ticks)
}

// FromTicks converts a 100-ns tick count back to a UTC time.Time.
func FromTicks(ticks uint64) time.Time {
	unixTicks := int64(ticks) - unixEpochTicks
	sec := unixTicks / ticksPerSecond
	rem := unixTicks % ticksPerSecond
	return time.Unix(sec, rem*100).UTC()
}

// SnapshotName formats t as the timestamp string used for a snapshot
// file's base name: YYYYMMDD_HHMMSS_fffffff, where fffffff is the
// fractional part of the second in 100-ns ticks, right-padded to 7 digits.
// Lexicographic order on this string equals chronological order.
func SnapshotName(t time.Time) string {
	t = t.UTC()
	frac := t.Nanosecond() / 100
	return fmt.Sprintf("%04d%02d%02d_%02d%02d%02d_%07d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), frac)
}
