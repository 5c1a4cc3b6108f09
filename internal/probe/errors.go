package probe

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotMedia is returned when the content is not something ffprobe can
// read as media. It is an outcome, not a failure.
var ErrNotMedia = errors.New("not a media file")

// Kind classifies a probe failure.
type Kind int

const (
	KindFailed     Kind = iota // ffprobe failed for a reason not listed below.
	KindPermission             // The file could not be opened.
	KindTimeout                // ffprobe did not finish within the per-file timeout.
	KindMalformed              // ffprobe succeeded but its output was unreadable.
)

func (k Kind) String() string {
	switch k {
	case KindPermission:
		return "permission denied"
	case KindTimeout:
		return "timed out"
	case KindMalformed:
		return "malformed output"
	default:
		return "failed"
	}
}

// Error is a probe failure distinct from ErrNotMedia: the file looked like
// media (or could not be looked at) and probing it went wrong.
type Error struct {
	Kind   Kind
	Path   string
	Detail string // First meaningful line of ffprobe's stderr, if any.
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("probe %s: %s", e.Path, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil && e.Detail == "" {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsFailure reports whether err is (or wraps) a probe *Error.
func IsFailure(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}

// Pre-compiled patterns for classifying ffprobe stderr. ffprobe prints
// "<path>: <reason>" on open failures.
var (
	reNotMedia = regexp.MustCompile(
		`Invalid data found when processing input|` +
			`Unknown input format`)

	rePermission = regexp.MustCompile(`(?i)Permission denied`)

	// Messages from a demuxer ("[mov,mp4,m4a @ 0x55d0] moov atom not found")
	// mean the container was recognized and then failed to parse.
	reDemuxerMessage = regexp.MustCompile(`(?m)^\[[\w,]+ @ 0x[0-9a-f]+\] (.+)$`)
)

// MatchNotMedia reports whether stderr says the input is not media. A
// recognized-but-corrupt container is not "not media".
func MatchNotMedia(stderr string) bool {
	return reNotMedia.MatchString(stderr) && !reDemuxerMessage.MatchString(stderr)
}

// DemuxerMessage returns the first demuxer complaint in stderr, or "".
func DemuxerMessage(stderr string) string {
	if m := reDemuxerMessage.FindStringSubmatch(stderr); m != nil {
		return m[1]
	}
	return ""
}

// MatchPermission reports whether stderr reports an access failure.
func MatchPermission(stderr string) bool {
	return rePermission.MatchString(stderr)
}
