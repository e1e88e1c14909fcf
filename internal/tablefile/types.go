package tablefile

// Record is one row of a table.
// Index is the zero-based position of the row within its own table.
type Record struct {
	Key     int64
	Payload string
	Index   int
}

// Table is an ordered sequence of records.
type Table []Record

// Header is the parsed "<n0> <n1>" line.
type Header struct {
	N0 int
	N1 int
}

// Total returns the number of records the header announces.
func (h Header) Total() int {
	return h.N0 + h.N1
}

// Tables holds both sections of a table file.
type Tables struct {
	Header Header
	T0     Table
	T1     Table
}
