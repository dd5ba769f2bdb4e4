// Package pack reads Cantus score containers: a named collection of byte
// streams holding the main score document, a style sheet, a chord list,
// embedded images, an audio rendering, and per-excerpt documents.
//
// The primary container layout is a ZIP file (.cnsz). Tar bundles
// (.cnsz.tar.gz, .cnsz.tar.xz) are accepted for interchange with
// archive-based tooling. Entry roles are resolved by path convention:
//
//	score.cnsx                    main score document
//	score.cnst                    style sheet
//	chordlist.xml                 chord symbol list
//	Images/<name>                 embedded images
//	audio.ogg                     rendered audio
//	Excerpts/<name>/<name>.cnsx   excerpt (part) document
//	Excerpts/<name>/<name>.cnst   excerpt style sheet
package pack

import (
	"archive/zip"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/cantusworks/cantus/core/errors"
	"github.com/cantusworks/cantus/internal/archive"
)

// Entry names and prefixes inside a container.
const (
	ScoreEntry     = "score.cnsx"
	StyleEntry     = "score.cnst"
	ChordListEntry = "chordlist.xml"
	AudioEntry     = "audio.ogg"
	ImagesPrefix   = "Images/"
	ExcerptsPrefix = "Excerpts/"
)

// Params describes how a container was opened.
type Params struct {
	FilePath string
}

// Reader is an opened, read-only score container. All entries are held in
// memory; a Reader stays usable after the source file is gone.
type Reader struct {
	params  Params
	entries map[string][]byte
	opened  bool
}

// Open opens a container file. ZIP content is detected by signature;
// otherwise the path's suffix selects a tar bundle reader.
func Open(filePath string) (*Reader, error) {
	var entries map[string][]byte
	var err error

	switch {
	case strings.HasSuffix(filePath, ".tar.gz"), strings.HasSuffix(filePath, ".tar.xz"):
		entries, err = archive.ReadAll(filePath)
	default:
		entries, err = readZip(filePath)
	}
	if err != nil {
		return nil, errors.NewIO("open", filePath, err)
	}

	return &Reader{
		params:  Params{FilePath: filePath},
		entries: entries,
		opened:  true,
	}, nil
}

// NewFromEntries builds an opened in-memory Reader, mainly for tests and
// for callers that already hold the container's bytes.
func NewFromEntries(entries map[string][]byte, filePath string) *Reader {
	copied := make(map[string][]byte, len(entries))
	for name, data := range entries {
		copied[name] = data
	}
	return &Reader{
		params:  Params{FilePath: filePath},
		entries: copied,
		opened:  true,
	}
}

func readZip(filePath string) (map[string][]byte, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	entries := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		entries[strings.TrimPrefix(f.Name, "./")] = data
	}
	return entries, nil
}

// Close releases the Reader. Reads after Close fail the loader's
// open-precondition check.
func (r *Reader) Close() {
	r.opened = false
	r.entries = nil
}

// IsOpened reports whether the container is open for reading.
func (r *Reader) IsOpened() bool { return r.opened }

// Params returns the open parameters, used only for diagnostics.
func (r *Reader) Params() Params { return r.params }

func (r *Reader) read(name string) []byte {
	if !r.opened {
		return nil
	}
	return r.entries[name]
}

// ReadScoreFile returns the main score document, or nil if absent.
func (r *Reader) ReadScoreFile() []byte { return r.read(ScoreEntry) }

// ReadStyleFile returns the style sheet, or nil if absent.
func (r *Reader) ReadStyleFile() []byte { return r.read(StyleEntry) }

// ReadChordListFile returns the chord list, or nil if absent.
func (r *Reader) ReadChordListFile() []byte { return r.read(ChordListEntry) }

// ReadAudioFile returns the rendered audio bytes, or nil if absent.
func (r *Reader) ReadAudioFile() []byte { return r.read(AudioEntry) }

// ImageFileNames lists embedded image names, sorted.
func (r *Reader) ImageFileNames() []string {
	if !r.opened {
		return nil
	}
	var names []string
	for name := range r.entries {
		if strings.HasPrefix(name, ImagesPrefix) && name != ImagesPrefix {
			names = append(names, strings.TrimPrefix(name, ImagesPrefix))
		}
	}
	sort.Strings(names)
	return names
}

// ReadImageFile returns the named image's bytes, or nil if absent.
func (r *Reader) ReadImageFile(name string) []byte {
	return r.read(ImagesPrefix + name)
}

// ExcerptNames lists declared excerpt names, sorted. An excerpt is
// declared by the presence of its content document.
func (r *Reader) ExcerptNames() []string {
	if !r.opened {
		return nil
	}
	var names []string
	for entry := range r.entries {
		if !strings.HasPrefix(entry, ExcerptsPrefix) {
			continue
		}
		rest := strings.TrimPrefix(entry, ExcerptsPrefix)
		name, file, ok := strings.Cut(rest, "/")
		if !ok || name == "" {
			continue
		}
		if file == name+".cnsx" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ReadExcerptFile returns the named excerpt's content document.
func (r *Reader) ReadExcerptFile(name string) []byte {
	return r.read(path.Join(ExcerptsPrefix+name, name+".cnsx"))
}

// ReadExcerptStyleFile returns the named excerpt's style sheet.
func (r *Reader) ReadExcerptStyleFile(name string) []byte {
	return r.read(path.Join(ExcerptsPrefix+name, name+".cnst"))
}
