package media

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/backmassage/avcp/internal/classify"
	"github.com/backmassage/avcp/internal/probe"
)

// Prober is the probe adapter consumed by Builder. *probe.Prober satisfies it.
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.Result, error)
}

// Logger is the minimal logging interface needed by Builder.
type Logger interface {
	Debug(string, ...interface{})
}

// Builder turns a path into a FileDescriptor. It holds no per-file state
// and may be shared by concurrent workers.
type Builder struct {
	prober Prober
	log    Logger
}

// NewBuilder returns a Builder probing through p. log may be nil.
func NewBuilder(p Prober, log Logger) *Builder {
	if log == nil {
		log = nopLogger{}
	}
	return &Builder{prober: p, log: log}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Build stats and probes path. The returned descriptor is never nil. When
// the path cannot be accessed or probing fails, the descriptor is the
// non-media sentinel and the error is the diagnostic to report (a
// *PathAccessError or a *probe.Error). Content that is simply not media
// yields the sentinel with a nil error.
func (b *Builder) Build(ctx context.Context, path string) (*FileDescriptor, error) {
	start := time.Now()
	d := &FileDescriptor{Name: path}
	err := b.fill(ctx, d)
	d.ProbeDuration = time.Since(start)
	return d, err
}

func (b *Builder) fill(ctx context.Context, d *FileDescriptor) error {
	fi, err := os.Stat(d.Name)
	if err != nil {
		return &PathAccessError{Op: "stat", Path: d.Name, Err: unwrapPathError(err)}
	}
	d.Stat = fi

	if !fi.Mode().IsRegular() {
		b.log.Debug("%s: not a regular file (%s)", d.Name, fi.Mode().Type())
		return nil
	}

	res, err := b.prober.Probe(ctx, d.Name)
	switch {
	case errors.Is(err, probe.ErrNotMedia):
		b.log.Debug("%s: not media", d.Name)
		return nil
	case err != nil:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return &PathAccessError{Op: "open", Path: d.Name, Err: pathErr.Err}
		}
		return err
	}

	d.Container, d.Video, d.Audio = Describe(res)
	return nil
}

// Describe runs the classifiers over a probe result.
func Describe(r *probe.Result) (Container, Video, Audio) {
	return describeContainer(r), describeVideo(r), describeAudio(r)
}

func describeContainer(r *probe.Result) Container {
	return Container{
		FormatShortName: r.Format.FormatName,
		FormatLongName:  r.Format.FormatLongName,
		BitRate:         r.Format.BitRate,
		DurationSeconds: r.Format.Duration,
		StreamCount:     r.StreamCount(),
		ChapterCount:    r.Chapters,
	}
}

func describeVideo(r *probe.Result) Video {
	v := Video{StreamIndex: -1}
	for i := range r.Video {
		if !r.Video[i].IsAttachedPic {
			v.StreamCount++
		}
	}
	s := r.BestVideo()
	if s == nil {
		return v
	}

	avg := classify.ParseRational(s.AvgFrameRate)
	base := classify.ParseRational(s.RealFrameRate)

	v.StreamIndex = s.Index
	v.BitRate = s.BitRate
	v.Width = s.Width
	v.Height = s.Height
	v.Orientation = classify.OrientationOf(s.Width, s.Height)
	v.FrameRate = classify.FrameRateOf(avg)
	v.FrameRateType = classify.FrameRateTypeOf(avg, base)
	v.ScanType = classify.ScanTypeFromFieldOrder(s.FieldOrder)
	v.Codec = VideoCodec{
		ID:        classify.VideoCodecFromName(s.Codec),
		ShortName: s.Codec,
		LongName:  s.CodecLongName,
		Profile:   classify.ProfileFromName(s.Profile),
		Level:     s.Level,
	}
	return v
}

func describeAudio(r *probe.Result) Audio {
	a := Audio{StreamIndex: -1, StreamCount: len(r.Audio)}
	s := r.BestAudio()
	if s == nil {
		return a
	}

	mask := classify.ChannelMaskFromName(s.ChannelLayout)
	if s.ChannelLayout == "" {
		mask = classify.DefaultChannelMask(s.Channels)
	}
	depth := s.BitsPerRawSample
	if depth <= 0 {
		depth = classify.SampleBitsFromFormat(s.SampleFmt)
	}

	a.StreamIndex = s.Index
	a.BitRate = s.BitRate
	a.Language = classify.LanguageFromCode(s.Language)
	a.Codec = AudioCodec{
		ID:        classify.AudioCodecFromName(s.Codec),
		ShortName: s.Codec,
		LongName:  s.CodecLongName,
	}
	a.Sample = Sample{RateHz: s.SampleRate, BitDepth: depth}
	a.Channel = Channel{Count: s.Channels, Layout: classify.ChannelLayoutOf(mask)}
	return a
}

// unwrapPathError strips the *fs.PathError layer, whose Op and Path
// PathAccessError already carries.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
