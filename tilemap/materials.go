package tilemap

// Materials assigns each tile set a stable index in an append-only list.
// The renderer keeps one texture per entry, in the same order.
type Materials struct {
	ids   []string
	index map[string]int
}

func NewMaterials() *Materials {
	return &Materials{index: make(map[string]int)}
}

// Index returns the material index of tileSet, appending a new entry on
// first use. added is true when the entry was created by this call.
func (m *Materials) Index(tileSet string) (idx int, added bool) {
	if i, ok := m.index[tileSet]; ok {
		return i, false
	}
	m.ids = append(m.ids, tileSet)
	m.index[tileSet] = len(m.ids) - 1
	return len(m.ids) - 1, true
}

// Lookup returns the index of tileSet without assigning one.
func (m *Materials) Lookup(tileSet string) (int, bool) {
	i, ok := m.index[tileSet]
	return i, ok
}

// At returns the tile set of material i, or "" if i is out of range.
func (m *Materials) At(i int) string {
	if i < 0 || i >= len(m.ids) {
		return ""
	}
	return m.ids[i]
}

func (m *Materials) Len() int {
	return len(m.ids)
}
