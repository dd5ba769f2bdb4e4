package engraving

import "sort"

// LinkGroup joins elements that are logically the same across a master
// document and its part documents: a slur read in the master and the
// same slur inside a part resolve to one group, whichever document was
// read first.
type LinkGroup struct {
	ID       int
	elements []any
}

// Add appends an element to the group.
func (g *LinkGroup) Add(el any) { g.elements = append(g.elements, el) }

// Elements returns the linked elements in registration order.
func (g *LinkGroup) Elements() []any { return g.elements }

// LinkTable maps stable link ids to groups. One table is shared between
// a master's read context and the contexts of all its parts, so ids
// stored in either document resolve to the same group regardless of
// read order.
type LinkTable struct {
	groups map[int]*LinkGroup
	nextID int
}

// NewLinkTable returns an empty table.
func NewLinkTable() *LinkTable {
	return &LinkTable{groups: make(map[int]*LinkGroup), nextID: 1}
}

// Group returns the group registered under id, creating it on first use.
func (t *LinkTable) Group(id int) *LinkGroup {
	if g, ok := t.groups[id]; ok {
		return g
	}
	g := &LinkGroup{ID: id}
	t.groups[id] = g
	if id >= t.nextID {
		t.nextID = id + 1
	}
	return g
}

// NewGroup allocates a group under a fresh id.
func (t *LinkTable) NewGroup() *LinkGroup {
	for {
		if _, ok := t.groups[t.nextID]; !ok {
			break
		}
		t.nextID++
	}
	g := &LinkGroup{ID: t.nextID}
	t.groups[t.nextID] = g
	t.nextID++
	return g
}

// Lookup returns the group registered under id, if any.
func (t *LinkTable) Lookup(id int) (*LinkGroup, bool) {
	g, ok := t.groups[id]
	return g, ok
}

// Len returns the number of registered groups.
func (t *LinkTable) Len() int { return len(t.groups) }

// IDs returns the registered ids, sorted.
func (t *LinkTable) IDs() []int {
	ids := make([]int, 0, len(t.groups))
	for id := range t.groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// linked is embedded by elements that can join a LinkGroup.
type linked struct {
	group *LinkGroup
}

// Links returns the element's link group, or nil when unlinked.
func (l *linked) Links() *LinkGroup { return l.group }

// LinkTo joins the element to a group.
func (l *linked) LinkTo(g *LinkGroup, el any) {
	l.group = g
	g.Add(el)
}

// LinkMeasures establishes the structural correspondence between this
// part document's timeline and the master's: measures are paired by
// index and joined into shared groups allocated from links. Master
// measures that already carry a group keep it; the part's measure joins
// the existing group.
func (s *Score) LinkMeasures(master *MasterScore, links *LinkTable) {
	n := len(s.measures)
	if len(master.measures) < n {
		n = len(master.measures)
	}
	for i := 0; i < n; i++ {
		mm := master.measures[i]
		pm := s.measures[i]
		g := mm.Links()
		if g == nil {
			g = links.NewGroup()
			mm.LinkTo(g, mm)
		}
		pm.LinkTo(g, pm)
	}
}
