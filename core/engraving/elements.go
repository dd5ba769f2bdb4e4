package engraving

// Part groups the staves of one instrument.
type Part struct {
	ID     int
	Name   string
	Staves []*Staff
}

// AddStaff appends a staff to the part.
func (p *Part) AddStaff(s *Staff) { p.Staves = append(p.Staves, s) }

// Staff is one staff line of a part. A staff in a part document may be
// linked to the corresponding staff of the master.
type Staff struct {
	linked
	ID int
}

// Measure is one measure of a document's timeline. Measures of a part
// document are linked to the structurally corresponding measures of the
// master.
type Measure struct {
	linked
	Index int
	Tick  int
	Ticks int
}

// Audio is the rendered-audio payload of a document. It exists when the
// score body declares an audio section; the raw bytes are attached by
// the loader from the pack's audio stream.
type Audio struct {
	data []byte
}

// NewAudio returns an empty audio payload declaration.
func NewAudio() *Audio { return &Audio{} }

// Data returns the raw audio bytes.
func (a *Audio) Data() []byte { return a.data }

// SetData attaches the raw audio bytes.
func (a *Audio) SetData(data []byte) { a.data = data }
