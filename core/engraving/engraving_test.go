package engraving

import (
	"testing"
)

func TestNewMasterScore(t *testing.T) {
	m := NewMasterScore()
	if m.Master() != m {
		t.Error("master's Master() should return itself")
	}
	if m.Style() == nil || m.ChordList() == nil {
		t.Error("master should own style and chord list")
	}
	if m.Version() != 0 {
		t.Errorf("fresh master version = %d", m.Version())
	}
	if m.ID() == (NewMasterScore().ID()) {
		t.Error("document ids should be unique")
	}
}

func TestSetVersion_Immutable(t *testing.T) {
	m := NewMasterScore()
	m.SetVersion(302)
	m.SetVersion(410)
	if m.Version() != 302 {
		t.Errorf("version changed after first set: %d", m.Version())
	}
}

func TestNewPartScore(t *testing.T) {
	m := NewMasterScore()
	p := m.NewPartScore()
	if p.Master() != m {
		t.Error("part should reference its master")
	}
	if p.Style() == m.Style() {
		t.Error("part must own its own style object")
	}
	if p.ID() == m.ID() {
		t.Error("part should have its own identity")
	}
}

func TestCheckChordList(t *testing.T) {
	m := NewMasterScore()
	if !m.ChordList().IsEmpty() {
		t.Fatal("fresh chord list should be empty")
	}
	m.CheckChordList()
	if m.ChordList().IsEmpty() {
		t.Error("CheckChordList should install the default list")
	}

	// A populated list is kept as-is.
	before := m.ChordList()
	m.CheckChordList()
	if m.ChordList() != before {
		t.Error("CheckChordList should not replace a populated list")
	}
}

func TestNTracks(t *testing.T) {
	m := NewMasterScore()
	p1 := &Part{ID: 1, Name: "Flute"}
	p1.AddStaff(&Staff{ID: 1})
	p2 := &Part{ID: 2, Name: "Piano"}
	p2.AddStaff(&Staff{ID: 2})
	p2.AddStaff(&Staff{ID: 3})
	m.AddPart(p1)
	m.AddPart(p2)
	if m.NTracks() != 3 {
		t.Errorf("NTracks = %d", m.NTracks())
	}
}

func TestAddMeasure_AssignsIndex(t *testing.T) {
	m := NewMasterScore()
	m.AddMeasure(&Measure{Tick: 0, Ticks: 480})
	m.AddMeasure(&Measure{Tick: 480, Ticks: 480})
	ms := m.Measures()
	if ms[0].Index != 0 || ms[1].Index != 1 {
		t.Errorf("indices = %d, %d", ms[0].Index, ms[1].Index)
	}
}

func TestLinkTable(t *testing.T) {
	tbl := NewLinkTable()
	g1 := tbl.Group(7)
	if g2 := tbl.Group(7); g2 != g1 {
		t.Error("Group should return the same group for the same id")
	}
	fresh := tbl.NewGroup()
	if fresh.ID == 7 {
		t.Error("NewGroup must not collide with registered ids")
	}
	if _, ok := tbl.Lookup(fresh.ID); !ok {
		t.Error("NewGroup should register its group")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len = %d", tbl.Len())
	}
	if ids := tbl.IDs(); len(ids) != 2 || ids[0] > ids[1] {
		t.Errorf("IDs = %v", ids)
	}
}

func TestLinkMeasures(t *testing.T) {
	master := NewMasterScore()
	for i := 0; i < 3; i++ {
		master.AddMeasure(&Measure{Tick: i * 480, Ticks: 480})
	}
	links := NewLinkTable()

	part := master.NewPartScore()
	for i := 0; i < 3; i++ {
		part.AddMeasure(&Measure{Tick: i * 480, Ticks: 480})
	}
	part.LinkMeasures(master, links)

	for i, mm := range master.Measures() {
		pm := part.Measures()[i]
		if mm.Links() == nil || mm.Links() != pm.Links() {
			t.Fatalf("measure %d not sharing a group", i)
		}
		if len(mm.Links().Elements()) != 2 {
			t.Errorf("measure %d group has %d elements", i, len(mm.Links().Elements()))
		}
	}

	// A second part joins the existing groups instead of allocating new ones.
	before := links.Len()
	part2 := master.NewPartScore()
	for i := 0; i < 3; i++ {
		part2.AddMeasure(&Measure{Tick: i * 480, Ticks: 480})
	}
	part2.LinkMeasures(master, links)
	if links.Len() != before {
		t.Errorf("second part allocated new groups: %d -> %d", before, links.Len())
	}
	if len(master.Measures()[0].Links().Elements()) != 3 {
		t.Error("second part's measures should join the shared groups")
	}
}

func TestLinkMeasures_ShorterPart(t *testing.T) {
	master := NewMasterScore()
	master.AddMeasure(&Measure{Ticks: 480})
	master.AddMeasure(&Measure{Ticks: 480})
	part := master.NewPartScore()
	part.AddMeasure(&Measure{Ticks: 480})
	part.LinkMeasures(master, NewLinkTable())
	if master.Measures()[1].Links() != nil {
		t.Error("unpaired master measure should stay unlinked")
	}
}

func TestExcerpt(t *testing.T) {
	master := NewMasterScore()
	ex := NewExcerpt(master)
	part := master.NewPartScore()
	ex.SetExcerptScore(part)
	ex.SetName("Flute")

	tracks := TracksMap{0: 2, 1: 3}
	ex.SetTracks(tracks)
	tracks[0] = 99
	if ex.Tracks()[0] != 2 {
		t.Error("SetTracks should copy the mapping")
	}
	if ex.Master() != master || ex.ExcerptScore() != part || ex.Name() != "Flute" {
		t.Error("excerpt accessors mismatch")
	}
}

func TestTracksMap(t *testing.T) {
	m := TracksMap{3: 1, 0: 4}
	if got := m.Sources(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("Sources = %v", got)
	}
	if !m.Equal(TracksMap{0: 4, 3: 1}) {
		t.Error("Equal should match identical maps")
	}
	if m.Equal(TracksMap{0: 4}) || m.Equal(TracksMap{0: 4, 3: 2}) {
		t.Error("Equal should reject differing maps")
	}
}

func TestAudio(t *testing.T) {
	m := NewMasterScore()
	if m.Audio() != nil {
		t.Error("fresh score should declare no audio")
	}
	a := NewAudio()
	m.SetAudio(a)
	a.SetData([]byte{1, 2})
	if len(m.Audio().Data()) != 2 {
		t.Error("audio data not attached")
	}
}

func TestMasterFlags(t *testing.T) {
	m := NewMasterScore()
	m.SetExcerptsChanged(true)
	m.SetAutosaveDirty(true)
	if !m.ExcerptsChanged() || !m.AutosaveDirty() {
		t.Error("flags not set")
	}
	m.SetExcerptsChanged(false)
	m.SetAutosaveDirty(false)
	if m.ExcerptsChanged() || m.AutosaveDirty() {
		t.Error("flags not cleared")
	}
}
