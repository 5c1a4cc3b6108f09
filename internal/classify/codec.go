package classify

import "strings"

// VideoCodec is the canonical video codec family.
type VideoCodec int

const (
	VideoCodecUnknown VideoCodec = iota
	VideoCodecMPEG2
	VideoCodecMPEG4
	VideoCodecH264
	VideoCodecH265
)

var videoCodecsByName = map[string]VideoCodec{
	"mpeg2video": VideoCodecMPEG2,
	"mpeg4":      VideoCodecMPEG4,
	"h264":       VideoCodecH264,
	"hevc":       VideoCodecH265,
}

// VideoCodecFromName maps an ffprobe codec_name to its family.
func VideoCodecFromName(name string) VideoCodec {
	if c, ok := videoCodecsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return VideoCodecUnknown
}

func (c VideoCodec) String() string {
	switch c {
	case VideoCodecMPEG2:
		return "MPEG2"
	case VideoCodecMPEG4:
		return "MPEG4"
	case VideoCodecH264:
		return "H264"
	case VideoCodecH265:
		return "H265"
	default:
		return "Unknown"
	}
}

// AudioCodec is the canonical audio codec family.
type AudioCodec int

const (
	AudioCodecUnknown AudioCodec = iota
	AudioCodecMP3
	AudioCodecAAC
	AudioCodecAC3
	AudioCodecEAC3
	AudioCodecDTS
	AudioCodecTrueHD
)

var audioCodecsByName = map[string]AudioCodec{
	"mp3":    AudioCodecMP3,
	"aac":    AudioCodecAAC,
	"ac3":    AudioCodecAC3,
	"eac3":   AudioCodecEAC3,
	"dts":    AudioCodecDTS,
	"truehd": AudioCodecTrueHD,
}

// AudioCodecFromName maps an ffprobe codec_name to its family.
func AudioCodecFromName(name string) AudioCodec {
	if c, ok := audioCodecsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return AudioCodecUnknown
}

func (c AudioCodec) String() string {
	switch c {
	case AudioCodecMP3:
		return "MP3"
	case AudioCodecAAC:
		return "AAC"
	case AudioCodecAC3:
		return "AC3"
	case AudioCodecEAC3:
		return "EAC3"
	case AudioCodecDTS:
		return "DTS"
	case AudioCodecTrueHD:
		return "TrueHD"
	default:
		return "Unknown"
	}
}

// Profile is the canonical video profile. Only the two profiles the
// report distinguishes are named.
type Profile int

const (
	ProfileUnknown Profile = iota
	ProfileMain
	ProfileHigh
)

// ProfileFromName matches ffprobe's profile string case-insensitively.
// "Main 10", "High 4:4:4" and friends are not Main/High.
func ProfileFromName(name string) Profile {
	switch {
	case strings.EqualFold(name, "main"):
		return ProfileMain
	case strings.EqualFold(name, "high"):
		return ProfileHigh
	default:
		return ProfileUnknown
	}
}

func (p Profile) String() string {
	switch p {
	case ProfileMain:
		return "Main"
	case ProfileHigh:
		return "High"
	default:
		return "Unknown"
	}
}
