package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultTimeout bounds a single ffprobe run.
const DefaultTimeout = 30 * time.Second

// Runner executes a command and returns its stdout and stderr. The default
// runs the real binary; tests substitute canned output.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Options configures a Prober. Zero values select the defaults.
type Options struct {
	FfprobePath string        // Default: "ffprobe".
	Timeout     time.Duration // Default: DefaultTimeout.
	Runner      Runner        // Default: os/exec.
}

// Prober runs ffprobe against one file per call. It keeps no state between
// calls and is safe for concurrent use.
type Prober struct {
	ffprobe string
	timeout time.Duration
	run     Runner
}

// New returns a Prober configured by opts.
func New(opts Options) *Prober {
	p := &Prober{
		ffprobe: opts.FfprobePath,
		timeout: opts.Timeout,
		run:     opts.Runner,
	}
	if p.ffprobe == "" {
		p.ffprobe = "ffprobe"
	}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}
	if p.run == nil {
		p.run = execRunner
	}
	return p
}

// Probe inspects path. It returns the parsed result, ErrNotMedia when the
// content is not media, or a *Error describing why probing failed.
//
// The file is opened once, read-only, to sniff its content type; plain
// text never reaches ffprobe (which would accept it through its tty
// demuxer). The handle is closed before Probe returns.
func (p *Prober) Probe(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := KindFailed
		if errors.Is(err, fs.ErrPermission) {
			kind = KindPermission
		}
		return nil, &Error{Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, &Error{Kind: KindFailed, Path: path, Detail: "read", Err: err}
	}
	if isText(mt) {
		return nil, ErrNotMedia
	}

	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	stdout, stderr, err := p.run(runCtx, p.ffprobe, Args(path)...)
	if err != nil {
		return nil, p.classifyFailure(ctx, runCtx, path, string(stderr), err)
	}

	res, err := ParseJSON(stdout)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Path: path, Err: err}
	}
	if res.StreamCount() == 0 || res.Format.FormatName == "tty" {
		return nil, ErrNotMedia
	}
	return res, nil
}

// Args returns the ffprobe arguments used for path.
func Args(path string) []string {
	return []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams", "-show_chapters",
		path,
	}
}

func (p *Prober) classifyFailure(parent, runCtx context.Context, path, stderr string, err error) error {
	detail := DemuxerMessage(stderr)
	if detail == "" {
		detail = firstLine(stderr)
	}
	switch {
	case parent.Err() != nil:
		return &Error{Kind: KindFailed, Path: path, Err: parent.Err()}
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Path: path, Detail: "after " + p.timeout.String(), Err: runCtx.Err()}
	case errors.Is(err, exec.ErrNotFound):
		return &Error{Kind: KindFailed, Path: path, Detail: p.ffprobe + " not found", Err: err}
	case MatchNotMedia(stderr):
		return ErrNotMedia
	case MatchPermission(stderr):
		return &Error{Kind: KindPermission, Path: path, Detail: detail, Err: err}
	default:
		return &Error{Kind: KindFailed, Path: path, Detail: detail, Err: err}
	}
}

func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// firstLine returns the first non-empty stderr line, without the
// "<path>: " prefix ffprobe puts on open errors.
func firstLine(stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i := strings.LastIndex(line, ": "); i >= 0 && i+2 < len(line) {
			return line[i+2:]
		}
		return line
	}
	return ""
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format   ffprobeFormat    `json:"format"`
	Streams  []ffprobeStream  `json:"streams"`
	Chapters []ffprobeChapter `json:"chapters"`
}

type ffprobeFormat struct {
	Filename       string            `json:"filename"`
	NbStreams      int               `json:"nb_streams"`
	FormatName     string            `json:"format_name"`
	FormatLongName string            `json:"format_long_name"`
	Duration       string            `json:"duration"`
	Size           string            `json:"size"`
	BitRate        string            `json:"bit_rate"`
	Tags           map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Index            int               `json:"index"`
	CodecName        string            `json:"codec_name"`
	CodecLongName    string            `json:"codec_long_name"`
	CodecType        string            `json:"codec_type"`
	Profile          string            `json:"profile"`
	Level            int               `json:"level"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	BitRate          string            `json:"bit_rate"`
	FieldOrder       string            `json:"field_order"`
	AvgFrameRate     string            `json:"avg_frame_rate"`
	RFrameRate       string            `json:"r_frame_rate"`
	Channels         int               `json:"channels"`
	ChannelLayout    string            `json:"channel_layout"`
	SampleRate       string            `json:"sample_rate"`
	SampleFmt        string            `json:"sample_fmt"`
	BitsPerRawSample string            `json:"bits_per_raw_sample"`
	Disposition      map[string]int    `json:"disposition"`
	Tags             map[string]string `json:"tags"`
}

type ffprobeChapter struct {
	ID int64 `json:"id"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{
		Format:   convertFormat(&raw.Format),
		Chapters: len(raw.Chapters),
	}
	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			r.Video = append(r.Video, convertVideo(s))
		case "audio":
			r.Audio = append(r.Audio, convertAudio(s))
		}
	}
	return r
}

func convertFormat(f *ffprobeFormat) FormatInfo {
	return FormatInfo{
		Filename:       f.Filename,
		NbStreams:      f.NbStreams,
		FormatName:     f.FormatName,
		FormatLongName: f.FormatLongName,
		Duration:       parseFloat(f.Duration),
		Size:           parseInt64(f.Size),
		BitRate:        parseInt64(f.BitRate),
		Tags:           f.Tags,
	}
}

func convertVideo(s *ffprobeStream) VideoStream {
	return VideoStream{
		Index:         s.Index,
		Codec:         s.CodecName,
		CodecLongName: s.CodecLongName,
		Profile:       s.Profile,
		Level:         s.Level,
		Width:         s.Width,
		Height:        s.Height,
		BitRate:       streamBitRate(s),
		FieldOrder:    s.FieldOrder,
		AvgFrameRate:  s.AvgFrameRate,
		RealFrameRate: s.RFrameRate,
		IsAttachedPic: s.Disposition["attached_pic"] == 1,
		IsDefault:     s.Disposition["default"] == 1,
	}
}

func convertAudio(s *ffprobeStream) AudioStream {
	return AudioStream{
		Index:            s.Index,
		Codec:            s.CodecName,
		CodecLongName:    s.CodecLongName,
		Channels:         s.Channels,
		ChannelLayout:    s.ChannelLayout,
		SampleRate:       parseInt(s.SampleRate),
		SampleFmt:        s.SampleFmt,
		BitsPerRawSample: parseInt(s.BitsPerRawSample),
		BitRate:          streamBitRate(s),
		Language:         s.Tags["language"],
		IsDefault:        s.Disposition["default"] == 1,
	}
}

// streamBitRate prefers bit_rate; Matroska muxers leave it empty and
// record the rate in a BPS (or BPS-<lang>) statistics tag instead.
func streamBitRate(s *ffprobeStream) int64 {
	if br := parseInt64(s.BitRate); br > 0 {
		return br
	}
	if br := parseInt64(s.Tags["BPS"]); br > 0 {
		return br
	}
	for k, v := range s.Tags {
		if strings.HasPrefix(k, "BPS-") {
			if br := parseInt64(v); br > 0 {
				return br
			}
		}
	}
	return 0
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	n, _ := strconv.Atoi(s)
	return n
}
