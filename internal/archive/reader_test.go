package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

// writeTar writes entries into w as a tar stream.
func writeTar(t *testing.T, w io.Writer, entries map[string][]byte) {
	t.Helper()
	tw := tar.NewWriter(w)
	for name, data := range entries {
		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
}

func makeTarGz(t *testing.T, dir string, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(dir, "bundle.tar.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	writeTar(t, gz, entries)
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func makeTarXz(t *testing.T, dir string, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(dir, "bundle.tar.xz")
	var buf bytes.Buffer
	xzw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	writeTar(t, xzw, entries)
	if err := xzw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadAll_TarGz(t *testing.T) {
	entries := map[string][]byte{
		"score.cnsx":    []byte("<cantus/>"),
		"chordlist.xml": []byte("<ChordList/>"),
	}
	path := makeTarGz(t, t.TempDir(), entries)

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if string(got["score.cnsx"]) != "<cantus/>" {
		t.Errorf("score.cnsx = %q", got["score.cnsx"])
	}
}

func TestReadAll_TarXz(t *testing.T) {
	entries := map[string][]byte{
		"Images/logo.png": {0x89, 0x50, 0x4e, 0x47},
	}
	path := makeTarXz(t, t.TempDir(), entries)

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got["Images/logo.png"], entries["Images/logo.png"]) {
		t.Error("image bytes mismatch")
	}
}

func TestReadAll_StripsLeadingDotSlash(t *testing.T) {
	path := makeTarGz(t, t.TempDir(), map[string][]byte{
		"./score.cnsx": []byte("x"),
	})
	got, err := ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got["score.cnsx"]; !ok {
		t.Errorf("entry names should be normalized, got %v", got)
	}
}

func TestNewReader_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.rar")
	if err := os.WriteFile(path, []byte("not an archive"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewReader(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestNewReader_MissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.tar.gz")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIterate_Stop(t *testing.T) {
	path := makeTarGz(t, t.TempDir(), map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	})
	count := 0
	err := IterateBundle(path, func(h *tar.Header, _ io.Reader) (bool, error) {
		count++
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("visitor ran %d times, want 1", count)
	}
}
