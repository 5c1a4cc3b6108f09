package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename       string
	NbStreams      int
	FormatName     string
	FormatLongName string
	Duration       float64 // Seconds.
	Size           int64
	BitRate        int64
	Tags           map[string]string
}

// VideoStream holds the raw properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	CodecLongName string
	Profile       string
	Level         int // Raw ffprobe level (41 = 4.1 for H.264).
	Width         int
	Height        int
	BitRate       int64
	FieldOrder    string
	AvgFrameRate  string // "N/D" as printed by ffprobe.
	RealFrameRate string // r_frame_rate.
	IsAttachedPic bool
	IsDefault     bool
}

// AudioStream holds the raw properties of a single audio stream.
type AudioStream struct {
	Index            int
	Codec            string
	CodecLongName    string
	Channels         int
	ChannelLayout    string
	SampleRate       int
	SampleFmt        string
	BitsPerRawSample int
	BitRate          int64
	Language         string
	IsDefault        bool
}

// Result is the parsed output of a single ffprobe JSON call. Streams keep
// ffprobe's order; use BestVideo/BestAudio for the representative ones.
type Result struct {
	Format   FormatInfo
	Video    []VideoStream
	Audio    []AudioStream
	Chapters int
}

// StreamCount is the number of streams in the container, of any type.
func (r *Result) StreamCount() int {
	if r.Format.NbStreams > 0 {
		return r.Format.NbStreams
	}
	return len(r.Video) + len(r.Audio)
}
