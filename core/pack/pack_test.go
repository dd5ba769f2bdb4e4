package pack

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleEntries() map[string][]byte {
	return map[string][]byte{
		ScoreEntry:                   []byte("<cantus version=\"4.10\"/>"),
		StyleEntry:                   []byte("<cantus><Style/></cantus>"),
		ChordListEntry:               []byte("<ChordList/>"),
		AudioEntry:                   {0x4f, 0x67, 0x67, 0x53},
		"Images/logo.png":            {0x89, 0x50},
		"Images/cover.jpg":           {0xff, 0xd8},
		"Excerpts/Flute/Flute.cnsx":  []byte("<cantus/>"),
		"Excerpts/Flute/Flute.cnst":  []byte("<cantus><Style/></cantus>"),
		"Excerpts/Oboe/Oboe.cnsx":    []byte("<cantus/>"),
		"Excerpts/Cello/stray.cnst":  []byte("style without content doc"),
	}
}

func writeZip(t *testing.T, dir string, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(dir, "score.cnsz")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_Zip(t *testing.T) {
	path := writeZip(t, t.TempDir(), sampleEntries())

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !r.IsOpened() {
		t.Fatal("reader should report opened")
	}
	if r.Params().FilePath != path {
		t.Errorf("Params().FilePath = %q", r.Params().FilePath)
	}
	if !bytes.Equal(r.ReadScoreFile(), sampleEntries()[ScoreEntry]) {
		t.Error("score bytes mismatch")
	}
	if !bytes.Equal(r.ReadAudioFile(), sampleEntries()[AudioEntry]) {
		t.Error("audio bytes mismatch")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.cnsz")); err == nil {
		t.Error("expected error for missing container")
	}
}

func TestImageFileNames(t *testing.T) {
	r := NewFromEntries(sampleEntries(), "mem")
	got := r.ImageFileNames()
	want := []string{"cover.jpg", "logo.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ImageFileNames = %v, want %v", got, want)
	}
	if r.ReadImageFile("logo.png") == nil {
		t.Error("ReadImageFile returned nil for present image")
	}
	if r.ReadImageFile("missing.png") != nil {
		t.Error("ReadImageFile should return nil for absent image")
	}
}

func TestExcerptNames(t *testing.T) {
	r := NewFromEntries(sampleEntries(), "mem")
	got := r.ExcerptNames()
	// Cello has only a stray style sheet, no content document.
	want := []string{"Flute", "Oboe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExcerptNames = %v, want %v", got, want)
	}
}

func TestExcerptStreams(t *testing.T) {
	r := NewFromEntries(sampleEntries(), "mem")
	if r.ReadExcerptFile("Flute") == nil {
		t.Error("Flute content missing")
	}
	if r.ReadExcerptStyleFile("Flute") == nil {
		t.Error("Flute style missing")
	}
	// Oboe declares no style sheet; that is not an error.
	if r.ReadExcerptStyleFile("Oboe") != nil {
		t.Error("Oboe style should be nil")
	}
}

func TestClose(t *testing.T) {
	r := NewFromEntries(sampleEntries(), "mem")
	r.Close()
	if r.IsOpened() {
		t.Error("closed reader reports opened")
	}
	if r.ReadScoreFile() != nil {
		t.Error("closed reader should not return entries")
	}
	if r.ExcerptNames() != nil || r.ImageFileNames() != nil {
		t.Error("closed reader should not enumerate entries")
	}
}

func TestNewFromEntries_CopiesMap(t *testing.T) {
	entries := sampleEntries()
	r := NewFromEntries(entries, "mem")
	delete(entries, ScoreEntry)
	if r.ReadScoreFile() == nil {
		t.Error("reader should hold its own copy of the entry table")
	}
}
