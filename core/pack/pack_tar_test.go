package pack

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeTarGz(t *testing.T, dir string, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(dir, "score.cnsz.tar.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, data := range entries {
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(data))}
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
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_TarBundle(t *testing.T) {
	path := writeTarGz(t, t.TempDir(), sampleEntries())

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !r.IsOpened() {
		t.Fatal("reader should report opened")
	}
	if len(r.ExcerptNames()) != 2 {
		t.Errorf("ExcerptNames = %v", r.ExcerptNames())
	}
	if r.ReadChordListFile() == nil {
		t.Error("chord list missing from tar bundle")
	}
}
