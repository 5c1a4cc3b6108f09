package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoCodecFromName(t *testing.T) {
	tests := []struct {
		name string
		want VideoCodec
	}{
		{"hevc", VideoCodecH265},
		{"h264", VideoCodecH264},
		{"H264", VideoCodecH264},
		{"mpeg4", VideoCodecMPEG4},
		{"mpeg2video", VideoCodecMPEG2},
		{"av1", VideoCodecUnknown},
		{"vp9", VideoCodecUnknown},
		{"", VideoCodecUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VideoCodecFromName(tt.name))
		})
	}
}

func TestAudioCodecFromName(t *testing.T) {
	tests := []struct {
		name string
		want AudioCodec
	}{
		{"mp3", AudioCodecMP3},
		{"aac", AudioCodecAAC},
		{"ac3", AudioCodecAC3},
		{"eac3", AudioCodecEAC3},
		{"dts", AudioCodecDTS},
		{"truehd", AudioCodecTrueHD},
		{"opus", AudioCodecUnknown},
		{"flac", AudioCodecUnknown},
		{"", AudioCodecUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AudioCodecFromName(tt.name))
		})
	}
}

func TestProfileFromName(t *testing.T) {
	assert.Equal(t, ProfileMain, ProfileFromName("Main"))
	assert.Equal(t, ProfileMain, ProfileFromName("main"))
	assert.Equal(t, ProfileHigh, ProfileFromName("HIGH"))
	assert.Equal(t, ProfileUnknown, ProfileFromName("Main 10"))
	assert.Equal(t, ProfileUnknown, ProfileFromName("Baseline"))
	assert.Equal(t, ProfileUnknown, ProfileFromName(""))
}

func TestOrientationOf(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want Orientation
	}{
		{"scope 1920x800", 1920, 800, OrientationLandscapeWide},
		{"hd 1920x1080", 1920, 1080, OrientationLandscapeWide},
		{"4x3", 4, 3, OrientationLandscape},
		{"3:2 exactly is not wide", 1500, 1000, OrientationLandscape},
		{"square", 100, 100, OrientationUnknown},
		{"portrait 3x4", 3, 4, OrientationPortrait},
		{"vertical 1080x1920", 1080, 1920, OrientationPortraitTall},
		{"zero height", 1920, 0, OrientationUnknown},
		{"zero width", 0, 1080, OrientationUnknown},
		{"negative", -4, 3, OrientationUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrientationOf(tt.w, tt.h))
		})
	}
}

func TestScanTypeFromFieldOrder(t *testing.T) {
	tests := []struct {
		in   string
		want ScanType
	}{
		{"progressive", ScanProgressive},
		{"unknown", ScanUnknown},
		{"", ScanUnknown},
		{"tt", ScanInterlaced},
		{"bb", ScanInterlaced},
		{"tb", ScanInterlaced},
		{"bt", ScanInterlaced},
		{"something-new", ScanInterlaced},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanTypeFromFieldOrder(tt.in))
		})
	}
	assert.Equal(t, "p", ScanProgressive.Suffix())
	assert.Equal(t, "i", ScanInterlaced.Suffix())
	assert.Equal(t, " ", ScanUnknown.Suffix())
}

func TestChannelLayoutOf(t *testing.T) {
	tests := []struct {
		name string
		mask uint64
		want ChannelLayout
	}{
		{"mono", 0x4, LayoutMono},
		{"stereo", 0x3, LayoutStereo},
		{"2.1", 0xB, Layout2Point1},
		{"5.0 side", 0x607, Layout5Point0},
		{"5.0 back", 0x37, Layout5Point0},
		{"5.1 side", 0x60F, Layout5Point1},
		{"5.1 back", 0x3F, Layout5Point1},
		{"7.1", 0x63F, Layout7Point1},
		{"7.1 wide", 0x6CF, Layout7Point1},
		{"7.1 wide back", 0xFF, Layout7Point1},
		{"zero", 0, LayoutUnknown},
		{"quad", 0x33, LayoutUnknown},
		{"all bits", ^uint64(0), LayoutUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChannelLayoutOf(tt.mask))
		})
	}
}

func TestChannelMaskFromName(t *testing.T) {
	assert.Equal(t, Layout5Point1, ChannelLayoutOf(ChannelMaskFromName("5.1")))
	assert.Equal(t, Layout5Point1, ChannelLayoutOf(ChannelMaskFromName("5.1(side)")))
	assert.Equal(t, Layout7Point1, ChannelLayoutOf(ChannelMaskFromName("7.1(wide)")))
	assert.Equal(t, LayoutStereo, ChannelLayoutOf(ChannelMaskFromName("Stereo")))
	assert.Equal(t, Layout5Point1, ChannelLayoutOf(ChannelMaskFromName("0x60f")))
	assert.Equal(t, uint64(0), ChannelMaskFromName("quad"))
	assert.Equal(t, uint64(0), ChannelMaskFromName("0xzz"))
	assert.Equal(t, uint64(0), ChannelMaskFromName(""))
}

func TestDefaultChannelMask(t *testing.T) {
	assert.Equal(t, LayoutMono, ChannelLayoutOf(DefaultChannelMask(1)))
	assert.Equal(t, LayoutStereo, ChannelLayoutOf(DefaultChannelMask(2)))
	assert.Equal(t, Layout5Point1, ChannelLayoutOf(DefaultChannelMask(6)))
	assert.Equal(t, Layout7Point1, ChannelLayoutOf(DefaultChannelMask(8)))
	assert.Equal(t, LayoutUnknown, ChannelLayoutOf(DefaultChannelMask(4)))
	assert.Equal(t, LayoutUnknown, ChannelLayoutOf(DefaultChannelMask(0)))
}

func TestLanguageFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"ENG", LanguageEnglish},
		{"eng", LanguageEnglish},
		{"fra", LanguageFrench},
		{"fre", LanguageFrench},
		{"spa", LanguageSpanish},
		{"ger", LanguageGerman},
		{"DEU", LanguageGerman},
		{"xyz", LanguageUnknown},
		{"English", LanguageUnknown},
		{"", LanguageUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageFromCode(tt.code))
		})
	}
}

func TestSampleBitsFromFormat(t *testing.T) {
	assert.Equal(t, 8, SampleBitsFromFormat("u8"))
	assert.Equal(t, 16, SampleBitsFromFormat("s16p"))
	assert.Equal(t, 32, SampleBitsFromFormat("fltp"))
	assert.Equal(t, 32, SampleBitsFromFormat("s32"))
	assert.Equal(t, 64, SampleBitsFromFormat("dbl"))
	assert.Equal(t, 0, SampleBitsFromFormat("weird"))
	assert.Equal(t, 0, SampleBitsFromFormat(""))
}

// Out-of-range enum values must still render.
func TestStringTotal(t *testing.T) {
	assert.Equal(t, "Unknown", VideoCodec(99).String())
	assert.Equal(t, "Unknown", AudioCodec(-1).String())
	assert.Equal(t, "Unknown", Profile(42).String())
	assert.Equal(t, "Unknown", Orientation(42).String())
	assert.Equal(t, "Unknown", ScanType(42).String())
	assert.Equal(t, "Unknown", FrameRateType(42).String())
	assert.Equal(t, "(unknown)", ChannelLayout(42).String())
	assert.Equal(t, "(unknown)", Language(42).String())

	assert.Equal(t, "Landscape - wide", OrientationLandscapeWide.String())
	assert.Equal(t, "Portrait - tall", OrientationPortraitTall.String())
	assert.Equal(t, "5.1", Layout5Point1.String())
	assert.Equal(t, "Francais", LanguageFrench.String())
	assert.Equal(t, "H265", VideoCodecH265.String())
	assert.Equal(t, "TrueHD", AudioCodecTrueHD.String())
}
