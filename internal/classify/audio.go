package classify

import (
	"strconv"
	"strings"
)

// Speaker position bits, as in libavutil's AV_CH_* constants.
const (
	SpeakerFrontLeft          uint64 = 0x1
	SpeakerFrontRight         uint64 = 0x2
	SpeakerFrontCenter        uint64 = 0x4
	SpeakerLowFrequency       uint64 = 0x8
	SpeakerBackLeft           uint64 = 0x10
	SpeakerBackRight          uint64 = 0x20
	SpeakerFrontLeftOfCenter  uint64 = 0x40
	SpeakerFrontRightOfCenter uint64 = 0x80
	SpeakerSideLeft           uint64 = 0x200
	SpeakerSideRight          uint64 = 0x400
)

// Channel masks of the recognized layouts.
const (
	MaskMono            = SpeakerFrontCenter
	MaskStereo          = SpeakerFrontLeft | SpeakerFrontRight
	Mask2Point1         = MaskStereo | SpeakerLowFrequency
	Mask5Point0         = MaskStereo | SpeakerFrontCenter | SpeakerSideLeft | SpeakerSideRight
	Mask5Point0Back     = MaskStereo | SpeakerFrontCenter | SpeakerBackLeft | SpeakerBackRight
	Mask5Point1         = Mask5Point0 | SpeakerLowFrequency
	Mask5Point1Back     = Mask5Point0Back | SpeakerLowFrequency
	Mask7Point1         = Mask5Point1 | SpeakerBackLeft | SpeakerBackRight
	Mask7Point1Wide     = Mask5Point1 | SpeakerFrontLeftOfCenter | SpeakerFrontRightOfCenter
	Mask7Point1WideBack = Mask5Point1Back | SpeakerFrontLeftOfCenter | SpeakerFrontRightOfCenter
)

// ChannelLayout is the canonical speaker configuration.
type ChannelLayout int

const (
	LayoutUnknown ChannelLayout = iota
	LayoutMono
	LayoutStereo
	Layout2Point1
	Layout5Point0
	Layout5Point1
	Layout7Point1
)

// Several masks collapse onto one layout (side vs back surrounds).
var layoutsByMask = map[uint64]ChannelLayout{
	MaskMono:            LayoutMono,
	MaskStereo:          LayoutStereo,
	Mask2Point1:         Layout2Point1,
	Mask5Point0:         Layout5Point0,
	Mask5Point0Back:     Layout5Point0,
	Mask5Point1:         Layout5Point1,
	Mask5Point1Back:     Layout5Point1,
	Mask7Point1:         Layout7Point1,
	Mask7Point1Wide:     Layout7Point1,
	Mask7Point1WideBack: Layout7Point1,
}

// ChannelLayoutOf matches mask exactly against the recognized layouts.
func ChannelLayoutOf(mask uint64) ChannelLayout {
	if l, ok := layoutsByMask[mask]; ok {
		return l
	}
	return LayoutUnknown
}

var masksByName = map[string]uint64{
	"mono":           MaskMono,
	"stereo":         MaskStereo,
	"2.1":            Mask2Point1,
	"5.0":            Mask5Point0Back,
	"5.0(side)":      Mask5Point0,
	"5.1":            Mask5Point1Back,
	"5.1(side)":      Mask5Point1,
	"7.1":            Mask7Point1,
	"7.1(wide)":      Mask7Point1WideBack,
	"7.1(wide-side)": Mask7Point1Wide,
}

// ChannelMaskFromName translates ffprobe's channel_layout string into a
// speaker mask. Names ffprobe prints for layouts without a canonical value
// yield 0. A bare hex mask ("0x60f") is accepted as well.
func ChannelMaskFromName(name string) uint64 {
	name = strings.ToLower(strings.TrimSpace(name))
	if m, ok := masksByName[name]; ok {
		return m
	}
	if hex, ok := strings.CutPrefix(name, "0x"); ok {
		if m, err := strconv.ParseUint(hex, 16, 64); err == nil {
			return m
		}
	}
	return 0
}

// DefaultChannelMask is the layout assumed for a bare channel count when
// the stream reports no layout name.
func DefaultChannelMask(channels int) uint64 {
	switch channels {
	case 1:
		return MaskMono
	case 2:
		return MaskStereo
	case 3:
		return Mask2Point1
	case 5:
		return Mask5Point0Back
	case 6:
		return Mask5Point1Back
	case 8:
		return Mask7Point1
	default:
		return 0
	}
}

func (l ChannelLayout) String() string {
	switch l {
	case LayoutMono:
		return "1.0"
	case LayoutStereo:
		return "2.0"
	case Layout2Point1:
		return "2.1"
	case Layout5Point0:
		return "5.0"
	case Layout5Point1:
		return "5.1"
	case Layout7Point1:
		return "7.1"
	default:
		return "(unknown)"
	}
}

// Language is the audio track language.
type Language int

const (
	LanguageUnknown Language = iota
	LanguageEnglish
	LanguageFrench
	LanguageSpanish
	LanguageGerman
)

// ISO 639-2 codes; French and German have both B and T forms.
var languagesByCode = map[string]Language{
	"eng": LanguageEnglish,
	"fra": LanguageFrench,
	"fre": LanguageFrench,
	"spa": LanguageSpanish,
	"ger": LanguageGerman,
	"deu": LanguageGerman,
}

// LanguageFromCode matches a language tag case-insensitively. Only exact
// codes are recognized; "English" or "en" are Unknown.
func LanguageFromCode(code string) Language {
	if l, ok := languagesByCode[strings.ToLower(code)]; ok {
		return l
	}
	return LanguageUnknown
}

func (l Language) String() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageFrench:
		return "Francais"
	case LanguageSpanish:
		return "Espanol"
	case LanguageGerman:
		return "Deutsch"
	default:
		return "(unknown)"
	}
}

// SampleBitsFromFormat returns the container sample size in bits for an
// ffprobe sample_fmt (planar "p" variants alike). Unknown formats yield 0.
func SampleBitsFromFormat(sampleFmt string) int {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(sampleFmt)), "p") {
	case "u8":
		return 8
	case "s16":
		return 16
	case "s32", "flt":
		return 32
	case "s64", "dbl":
		return 64
	default:
		return 0
	}
}
