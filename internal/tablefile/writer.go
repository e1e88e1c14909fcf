package tablefile

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/roach88/joincheck/internal/lineformat"
)

// Write emits t in table-file format. Payloads are truncated to fewer than
// dataLength characters; the header is taken from the table lengths.
func Write(w io.Writer, t *Tables, dataLength int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n\n", len(t.T0), len(t.T1))
	writeTable(bw, t.T0, dataLength)
	bw.WriteString("\n")
	writeTable(bw, t.T1, dataLength)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table file: %w", err)
	}
	return nil
}

func writeTable(w *bufio.Writer, table Table, dataLength int) {
	for _, rec := range table {
		fmt.Fprintf(w, "%d %s\n", rec.Key, lineformat.Truncate(rec.Payload, dataLength))
	}
}

// WriteFile writes t to path, replacing any existing file.
func WriteFile(path string, t *Tables, dataLength int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	if err := Write(f, t, dataLength); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SortByKey returns a copy of t with each table stably sorted by key.
// Record indexes are renumbered to the new positions.
func SortByKey(t *Tables) *Tables {
	return &Tables{
		Header: Header{N0: len(t.T0), N1: len(t.T1)},
		T0:     sortTable(t.T0),
		T1:     sortTable(t.T1),
	}
}

func sortTable(table Table) Table {
	sorted := slices.Clone(table)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i := range sorted {
		sorted[i].Index = i
	}
	return sorted
}
