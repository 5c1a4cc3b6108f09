package classify

import "strings"

// Orientation is derived from frame dimensions only.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationLandscapeWide
	OrientationLandscape
	OrientationPortrait
	OrientationPortraitTall
)

// wideRatio is the aspect ratio (x1000) above which a frame counts as
// wide (or tall): 3:2.
const wideRatio = 1500

// OrientationOf classifies width x height. Square frames and frames with a
// zero or negative dimension have no orientation.
func OrientationOf(width, height int) Orientation {
	if width <= 0 || height <= 0 || width == height {
		return OrientationUnknown
	}
	long, short := width, height
	if height > width {
		long, short = height, width
	}
	ratio := int64(long) * 1000 / int64(short)
	if width > height {
		if ratio > wideRatio {
			return OrientationLandscapeWide
		}
		return OrientationLandscape
	}
	if ratio > wideRatio {
		return OrientationPortraitTall
	}
	return OrientationPortrait
}

func (o Orientation) String() string {
	switch o {
	case OrientationLandscapeWide:
		return "Landscape - wide"
	case OrientationLandscape:
		return "Landscape"
	case OrientationPortrait:
		return "Portrait"
	case OrientationPortraitTall:
		return "Portrait - tall"
	default:
		return "Unknown"
	}
}

// ScanType is progressive vs interlaced.
type ScanType int

const (
	ScanUnknown ScanType = iota
	ScanInterlaced
	ScanProgressive
)

// ScanTypeFromFieldOrder maps ffprobe's field_order. Any value other than
// "progressive" or unknown/absent is interlaced (tt, bb, tb, bt and whatever
// future orders ffprobe reports).
func ScanTypeFromFieldOrder(fieldOrder string) ScanType {
	switch strings.ToLower(strings.TrimSpace(fieldOrder)) {
	case "", "unknown":
		return ScanUnknown
	case "progressive":
		return ScanProgressive
	default:
		return ScanInterlaced
	}
}

func (s ScanType) String() string {
	switch s {
	case ScanInterlaced:
		return "Interlaced"
	case ScanProgressive:
		return "Progressive"
	default:
		return "Unknown"
	}
}

// Suffix is the letter appended to the frame rate in the summary line.
func (s ScanType) Suffix() string {
	switch s {
	case ScanInterlaced:
		return "i"
	case ScanProgressive:
		return "p"
	default:
		return " "
	}
}
