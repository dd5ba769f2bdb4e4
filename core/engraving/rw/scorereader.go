// Score pack loading: the top-level orchestrator (LoadPack), the version
// dispatcher (ReadScore), and the current-generation body reader.
//
// A load is sequential: style and chord list before the score body,
// the master before its excerpts, link-table seeding before excerpt
// parsing. Independent loads of different packs may run concurrently;
// the image store is the only shared resource and guards itself.
package rw

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/imagestore"
	"github.com/cantusworks/cantus/core/pack"
	"github.com/cantusworks/cantus/core/xmlstream"
	"github.com/cantusworks/cantus/internal/logging"
)

// rootTag is the expected root element of every score document.
const rootTag = "cantus"

// Pack is the container a load reads from. *pack.Reader implements it;
// tests substitute in-memory fakes.
type Pack interface {
	IsOpened() bool
	Params() pack.Params
	ReadStyleFile() []byte
	ReadChordListFile() []byte
	ReadScoreFile() []byte
	ReadAudioFile() []byte
	ImageFileNames() []string
	ReadImageFile(name string) []byte
	ExcerptNames() []string
	ReadExcerptFile(name string) []byte
	ReadExcerptStyleFile(name string) []byte
}

// Images is the store pack images are registered into. It is process
// wide; replace it only in tests or at session teardown.
var Images = imagestore.Default

// LoadPack loads an opened score pack into master. The returned
// CompatSettings carry the compatibility findings accumulated while
// reading; the returned error is the classification of the main score
// parse. Excerpt and audio processing happen after the main parse
// regardless of its result; a failure inside one excerpt skips that
// excerpt and is not merged into the returned result.
func LoadPack(master *engraving.MasterScore, p Pack, ignoreVersionError bool) (CompatSettings, error) {
	if !p.IsOpened() {
		return CompatSettings{}, &OpenError{Path: p.Params().FilePath}
	}

	master.SetFilePath(p.Params().FilePath)
	docName := filepath.Base(p.Params().FilePath)

	// Style
	if data := p.ReadStyleFile(); len(data) > 0 {
		if err := master.Style().Read(data); err != nil {
			logging.LoadError("style", docName, err)
		}
	}

	// Chord list
	if data := p.ReadChordListFile(); len(data) > 0 {
		if err := master.ChordList().Read(data); err != nil {
			logging.LoadError("chordlist", docName, err)
		}
	}

	// Images
	if !SkipImages {
		for _, name := range p.ImageFileNames() {
			Images.Add(name, p.ReadImageFile(name))
		}
	}

	masterCtx := NewReadContext(&master.Score)
	masterCtx.SetIgnoreVersionError(ignoreVersionError)

	// Score
	var ret error
	{
		r := xmlstream.NewReader(p.ReadScoreFile())
		r.SetDocName(docName)
		hook := NewStyleHook(master)
		ret = ReadScore(master, r, masterCtx, hook)
	}

	// Excerpts. Only the excerpt-capable generation declares them; a
	// legacy master ignores excerpt-shaped streams in the pack.
	if master.Version() >= currentGenThreshold {
		for _, name := range p.ExcerptNames() {
			if err := loadExcerpt(master, masterCtx, p, name); err != nil {
				logging.LoadError("excerpt", name, err)
				continue
			}
			logging.LoadEvent("excerpt", name)
		}
	}

	// Audio
	if master.Audio() != nil {
		master.Audio().SetData(p.ReadAudioFile())
	}

	return masterCtx.TakeSettings(), ret
}

// loadExcerpt creates, parses and links one part document.
func loadExcerpt(master *engraving.MasterScore, masterCtx *ReadContext, p Pack, name string) error {
	part := master.NewPartScore()
	SetupDefaultStyle(part)

	ex := engraving.NewExcerpt(master)
	ex.SetExcerptScore(part)

	if styleData := p.ReadExcerptStyleFile(name); len(styleData) > 0 {
		if err := part.Style().Read(styleData); err != nil {
			return fmt.Errorf("excerpt style: %w", err)
		}
	}

	ctx := NewReadContext(part)
	ctx.InitLinks(masterCtx)

	r := xmlstream.NewReader(p.ReadExcerptFile(name))
	r.SetDocName(name)

	// Excerpts never take the legacy branches; their documents are
	// always written by the current generation.
	if err := readDocument400(part, r, ctx); err != nil {
		return err
	}

	part.LinkMeasures(master, ctx.Links())
	ex.SetTracks(ctx.Tracks())
	ex.SetName(name)

	master.AddExcerpt(ex)
	return nil
}

// ReadScore scans the stream for the root element, enforces the
// version-acceptance policy, stages the style baseline, and dispatches
// the body to the generation-matched reader. Only the first root element
// is processed.
func ReadScore(master *engraving.MasterScore, r *xmlstream.Reader, ctx *ReadContext, hook *StyleHook) error {
	for r.ReadNextStartElement() {
		if r.Name() != rootTag {
			r.Unknown()
			continue
		}

		versionAttr := r.Attribute("version")
		version, err := parseVersion(versionAttr)
		if err != nil {
			return &CorruptError{Diag: fmt.Sprintf("malformed version attribute %q", versionAttr)}
		}
		master.SetVersion(version)
		ctx.settings.SourceVersion = master.Version()

		if !ctx.IgnoreVersionError() {
			if master.Version() > CurrentVersion {
				return ErrFileTooNew
			}
			if master.Version() < OldestVersion {
				return ErrFileTooOld
			}
			if master.Version() == Version300 {
				return ErrFileOld300Format
			}
		}

		// Legacy files hold only the user's style deltas; the baseline
		// their generation shipped with must be installed before any
		// element is read. Current-generation files carry the complete
		// style, so nothing is injected outside test mode.
		if hook != nil && (master.Version() < currentGenThreshold || TestMode) {
			hook.Setup()
			ctx.settings.StyleMigrated = true
		}

		var readErr error
		switch GenerationFor(master.Version(), TestMode) {
		case Generation114:
			readErr = read114(master, r, ctx)
		case Generation206:
			readErr = read206(master, r, ctx)
		case Generation302:
			readErr = read302(master, r, ctx)
		default:
			// Make sure we have a chord list; load the default one
			// otherwise.
			master.CheckChordList()
			readErr = readBody(master, r, ctx)
		}

		master.SetExcerptsChanged(false)
		// Don't autosave as long as there's no change to the score.
		master.SetAutosaveDirty(false)

		return readErr
	}

	return &CorruptError{Diag: r.ErrorString()}
}

// parseVersion parses "<major>.<minor>" into major*100+minor. Malformed
// strings are rejected rather than crashing on a missing component.
func parseVersion(s string) (int, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0, fmt.Errorf("version %q: missing minor component", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("version %q: %w", s, err)
	}
	return major*100 + minor, nil
}

// readBody reads the top-level children of a current-generation root.
func readBody(master *engraving.MasterScore, r *xmlstream.Reader, ctx *ReadContext) error {
	for r.ReadNextStartElement() {
		switch r.Name() {
		case "programVersion":
			master.SetAppVersion(r.ReadText())
		case "programRevision":
			master.SetAppRevision(r.ReadInt(16))
		case "Score":
			if !readScoreElement400(&master.Score, r, ctx) {
				return classifyElementFailure(r)
			}
		case "Revision":
			// Historical revision metadata, intentionally ignored.
			r.SkipCurrentElement()
		default:
			r.Unknown()
		}
	}
	return nil
}

// readDocument400 reads a whole part document with the current-generation
// reader: no version policy, no style hook.
func readDocument400(score *engraving.Score, r *xmlstream.Reader, ctx *ReadContext) error {
	for r.ReadNextStartElement() {
		if r.Name() != rootTag {
			r.Unknown()
			continue
		}
		for r.ReadNextStartElement() {
			switch r.Name() {
			case "Score":
				if !readScoreElement400(score, r, ctx) {
					return classifyElementFailure(r)
				}
			default:
				r.Unknown()
			}
		}
		return nil
	}
	return &CorruptError{Diag: r.ErrorString()}
}
