package rw

// Format version bounds. Versions are encoded major*100+minor.
const (
	// CurrentVersion is the highest format version this build reads.
	CurrentVersion = 410
	// OldestVersion is the oldest supported legacy version.
	OldestVersion = 114
	// Version300 is the 3.0 pre-release format, recognized but
	// unsupported; the host offers a dedicated converter for it.
	Version300 = 300
	// currentGenThreshold is the first version of the current
	// generation. Files at or past it carry their complete style; older
	// files store only deltas over their generation's baseline.
	currentGenThreshold = 400
)

// Generation identifies which version-specific reader parses a document
// body.
type Generation int

const (
	// Generation114 reads first-generation files (versions <= 114).
	Generation114 Generation = iota + 1
	// Generation206 reads second-generation files (115..207).
	Generation206
	// Generation302 reads third-generation files (208..399).
	Generation302
	// Generation400 reads current-generation files (>= 400).
	Generation400
)

func (g Generation) String() string {
	switch g {
	case Generation114:
		return "1.x"
	case Generation206:
		return "2.x"
	case Generation302:
		return "3.x"
	case Generation400:
		return "4.x"
	default:
		return "unknown"
	}
}

// GenerationFor maps a format version to the reader generation that
// parses it. Test mode forces the third-generation path for versions
// below it and even for current-generation files, matching the
// dispatcher's style-baseline behavior.
func GenerationFor(version int, testMode bool) Generation {
	switch {
	case version <= 114:
		return Generation114
	case version <= 207:
		return Generation206
	case version < currentGenThreshold || testMode:
		return Generation302
	default:
		return Generation400
	}
}
