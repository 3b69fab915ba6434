package ir

// TableSegment seeds a run of table slots with function names, starting at
// the element Offset evaluates to.
type TableSegment struct {
	Offset Expression
	Data   []string
}

// Table is the module's function table. A module always holds one Table
// value; Exists tells whether the module actually defines or imports it.
// Sizes are in elements.
type Table struct {
	Importable
	Exists   bool
	Name     string
	Initial  Address
	Max      Address
	Segments []TableSegment
}

// NewTable returns a table in the cleared state.
func NewTable() Table {
	return Table{Name: "0", Max: TableMaxSize}
}

// HasMax reports whether the table declares a maximum size.
func (t *Table) HasMax() bool {
	return t.Max != TableUnlimitedSize
}

// Clear resets the table to the non-existent state.
func (t *Table) Clear() {
	t.Importable = Importable{}
	t.Exists = false
	t.Name = ""
	t.Initial = 0
	t.Max = TableMaxSize
	t.Segments = nil
}
