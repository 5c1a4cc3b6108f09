package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/avcp/internal/classify"
	"github.com/backmassage/avcp/internal/media"
)

const sectionRule = "_______________________"

// VerboseDump renders every field of d as labeled sections. A non-media
// descriptor renders as a single line.
func VerboseDump(d *media.FileDescriptor) string {
	var b strings.Builder
	if !d.IsMedia() {
		b.WriteString("### not a media file\n")
		return b.String()
	}
	kv := func(label, format string, args ...interface{}) {
		fmt.Fprintf(&b, "%12s: %s\n", label, fmt.Sprintf(format, args...))
	}
	section := func(name string) {
		b.WriteString(sectionRule + "\n" + name + "\n")
	}

	c := &d.Container
	section("Container")
	kv("format", "%s", c.FormatShortName)
	kv("long name", "%s", c.FormatLongName)
	kv("size", "%s", FormatBytes(d.Size()))
	kv("bitrate", "%d (%s)", c.BitRate, FormatBitrateLabel(c.BitRate/1000))
	kv("duration", "%d s", int64(c.DurationSeconds))
	kv("chapters", "%d", c.ChapterCount)
	kv("streams", "%d", c.StreamCount)

	v := &d.Video
	section("Video")
	kv("stream", "%d", v.StreamIndex)
	kv("count", "%d", v.StreamCount)
	if v.StreamIndex >= 0 {
		kv("codec", "%s", v.Codec.ShortName)
		kv("long name", "%s", v.Codec.LongName)
		kv("profile", "%s @ %d.%d", v.Codec.Profile, v.Codec.Level/10, v.Codec.Level%10)
		if v.BitRate > 0 {
			kv("bitrate", "%d", v.BitRate)
		}
		kv("resolution", "%d x %d", v.Width, v.Height)
		kv("fps", "%s (%s)", dumpFrameRate(v.FrameRate), v.FrameRateType)
		kv("scan type", "%s", v.ScanType)
		kv("orientation", "%s", v.Orientation)
	}

	a := &d.Audio
	section("Audio")
	kv("stream", "%d", a.StreamIndex)
	kv("count", "%d", a.StreamCount)
	if a.StreamIndex >= 0 {
		kv("codec", "%s", a.Codec.ShortName)
		kv("long name", "%s", a.Codec.LongName)
		kv("bitrate", "%d", a.BitRate)
		kv("sample rate", "%d Hz", a.Sample.RateHz)
		kv("sample bits", "%d", a.Sample.BitDepth)
		kv("channels", "%d", a.Channel.Count)
		kv("layout", "%s", a.Channel.Layout)
		kv("language", "%s", a.Language)
	}

	kv("probe time", "%s", d.ProbeDuration)
	return b.String()
}

// dumpFrameRate prints whole rates without decimals and the rest with all
// three.
func dumpFrameRate(fr int) string {
	if fr%1000 == 0 {
		return fmt.Sprintf("%d", fr/1000)
	}
	return classify.FormatFrameRateFixed(fr)
}
