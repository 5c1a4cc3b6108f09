// Package media defines the per-file descriptor record and the builder that
// fills it from a probe result.
//
// A FileDescriptor whose Container.StreamCount is zero is the sentinel for
// "not a media file": callers must check IsMedia before reading the Video
// and Audio sections, which are otherwise zero-valued.
package media

import (
	"os"
	"time"

	"github.com/backmassage/avcp/internal/classify"
)

// FileDescriptor is the normalized record for one input path. It is built
// once and never mutated afterwards.
type FileDescriptor struct {
	Name          string
	Stat          os.FileInfo   // Nil when the path could not be stat'ed.
	ProbeDuration time.Duration // Wall-clock time spent building the descriptor.
	Score         int           // Reserved for duplicate ranking; never set.

	Container Container
	Video     Video
	Audio     Audio
}

// IsMedia reports whether the descriptor carries probe data.
func (d *FileDescriptor) IsMedia() bool {
	return d.Container.StreamCount > 0
}

// Size returns the file size from Stat, or 0.
func (d *FileDescriptor) Size() int64 {
	if d.Stat == nil {
		return 0
	}
	return d.Stat.Size()
}

// Container describes the outer format.
type Container struct {
	FormatShortName string
	FormatLongName  string
	BitRate         int64   // Bits per second.
	DurationSeconds float64 // Seconds.
	StreamCount     int
	ChapterCount    int
}

// VideoCodec identifies the video codec. ShortName/LongName are ffprobe's
// strings and are independent of the canonical ID.
type VideoCodec struct {
	ID        classify.VideoCodec
	ShortName string
	LongName  string
	Profile   classify.Profile
	Level     int // Raw tenths, 41 = 4.1.
}

// Video describes the representative video stream.
type Video struct {
	StreamIndex   int // -1 when a media file has no video.
	StreamCount   int
	BitRate       int64
	Width         int
	Height        int
	Orientation   classify.Orientation
	FrameRate     int // Fixed point, fps x 1000.
	FrameRateType classify.FrameRateType
	ScanType      classify.ScanType
	Codec         VideoCodec
}

// AudioCodec identifies the audio codec.
type AudioCodec struct {
	ID        classify.AudioCodec
	ShortName string
	LongName  string
}

// Sample describes the audio sample format.
type Sample struct {
	RateHz   int
	BitDepth int
}

// Channel describes the speaker configuration.
type Channel struct {
	Count  int
	Layout classify.ChannelLayout
}

// Audio describes the representative audio stream.
type Audio struct {
	StreamIndex int // -1 when a media file has no audio.
	StreamCount int
	BitRate     int64
	Language    classify.Language
	Codec       AudioCodec
	Sample      Sample
	Channel     Channel
}
