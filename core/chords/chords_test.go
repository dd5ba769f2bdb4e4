package chords

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cl := Default()
	if cl.IsEmpty() {
		t.Fatal("default chord list should not be empty")
	}
	if e, ok := cl.Get(4); !ok || e.Name != "maj7" {
		t.Errorf("Get(4) = %+v, %v", e, ok)
	}
}

func TestRead(t *testing.T) {
	cl := New()
	data := []byte(`<ChordList>
  <chord id="1" name="maj"/>
  <chord id="3" name="7"/>
  <renderRoot>stack</renderRoot>
</ChordList>`)
	if err := cl.Read(data); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cl.Len() != 2 {
		t.Fatalf("Len = %d", cl.Len())
	}
	if e, _ := cl.Get(3); e.Name != "7" {
		t.Errorf("Get(3) = %+v", e)
	}
}

func TestRead_ReplacesByID(t *testing.T) {
	cl := Default()
	before := cl.Len()
	if err := cl.Read([]byte(`<ChordList><chord id="2" name="min"/></ChordList>`)); err != nil {
		t.Fatal(err)
	}
	if cl.Len() != before {
		t.Errorf("Len changed from %d to %d", before, cl.Len())
	}
	if e, _ := cl.Get(2); e.Name != "min" {
		t.Errorf("Get(2) = %+v", e)
	}
}

func TestRead_SkipsEntriesWithoutID(t *testing.T) {
	cl := New()
	if err := cl.Read([]byte(`<ChordList><chord name="ghost"/><chord id="x1" name="bad"/></ChordList>`)); err != nil {
		t.Fatal(err)
	}
	if !cl.IsEmpty() {
		t.Errorf("entries without a numeric id should be skipped, got %v", cl.Entries())
	}
}

func TestRead_Errors(t *testing.T) {
	cl := New()
	if err := cl.Read([]byte(`<Wrong/>`)); err == nil {
		t.Error("expected error for wrong root element")
	}
	if err := cl.Read([]byte(`<ChordList><chord`)); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestEntriesOrderAndCopy(t *testing.T) {
	cl := New()
	cl.Add(Entry{ID: 5, Name: "m7"})
	cl.Add(Entry{ID: 1, Name: "maj"})
	entries := cl.Entries()
	if entries[0].ID != 5 || entries[1].ID != 1 {
		t.Errorf("document order not preserved: %v", entries)
	}
	entries[0].Name = "mutated"
	if e, _ := cl.Get(5); e.Name != "m7" {
		t.Error("Entries should return a copy")
	}
}
