package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/avcp/internal/classify"
	"github.com/backmassage/avcp/internal/media"
)

// Summary line columns, left to right:
//
//	duration  Mbps   vcodec  W x H  @ fps+scan  acodec layout language  name
//
// Every column has a fixed width and values that would overflow it are
// clamped or truncated, so names always start in the same column.
const (
	hoursWidth      = 3
	mbpsWidth       = 7 // "999.999"
	videoCodecWidth = 5
	dimensionWidth  = 5
	frameRateWidth  = 7
	audioCodecWidth = 5
	layoutWidth     = 9 // "(unknown)"
	languageWidth   = 9

	maxSeconds   = 999*3600 + 59*60 + 59
	maxMbps      = 999.999
	maxDimension = 99999
)

var summaryPrefixWidth = len(prefix(&media.FileDescriptor{}))

// SummaryLine renders d as one fixed-column report line. A non-media
// descriptor prints only its name, in the same column as the others.
func SummaryLine(d *media.FileDescriptor) string {
	if !d.IsMedia() {
		return strings.Repeat(" ", summaryPrefixWidth) + d.Name
	}
	return prefix(d) + d.Name
}

func prefix(d *media.FileDescriptor) string {
	var b strings.Builder
	secs := clamp(int64(d.Container.DurationSeconds), maxSeconds)
	mbps := float64(d.Container.BitRate) / 1e6
	if mbps > maxMbps {
		mbps = maxMbps
	} else if mbps < 0 {
		mbps = 0
	}
	fmt.Fprintf(&b, "%*d:%02d:%02d %*.3f  ",
		hoursWidth, secs/3600, (secs/60)%60, secs%60,
		mbpsWidth, mbps)

	v := &d.Video
	if v.StreamIndex >= 0 && d.IsMedia() {
		fmt.Fprintf(&b, "%-*.*s %*d x %-*d @ %-*.*s ",
			videoCodecWidth, videoCodecWidth, v.Codec.ShortName,
			dimensionWidth, clamp(int64(v.Width), maxDimension),
			dimensionWidth, clamp(int64(v.Height), maxDimension),
			frameRateWidth, frameRateWidth, classify.FormatFrameRate(v.FrameRate)+v.ScanType.Suffix())
	} else {
		b.WriteString(strings.Repeat(" ", videoCodecWidth+1+dimensionWidth+3+dimensionWidth+3+frameRateWidth+1))
	}

	a := &d.Audio
	if a.StreamIndex >= 0 && d.IsMedia() {
		fmt.Fprintf(&b, "%-*.*s %-*.*s %-*.*s  ",
			audioCodecWidth, audioCodecWidth, a.Codec.ShortName,
			layoutWidth, layoutWidth, a.Channel.Layout,
			languageWidth, languageWidth, a.Language)
	} else {
		b.WriteString(strings.Repeat(" ", audioCodecWidth+1+layoutWidth+1+languageWidth+2))
	}
	return b.String()
}

func clamp(n, limit int64) int64 {
	switch {
	case n < 0:
		return 0
	case n > limit:
		return limit
	}
	return n
}
