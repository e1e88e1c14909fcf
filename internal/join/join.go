package join

import (
	"github.com/roach88/joincheck/internal/tablefile"
)

// Row is one joined pair of records. KeyR always equals KeyS.
type Row struct {
	KeyR     int64
	KeyS     int64
	PayloadR string
	PayloadS string
	IdxR     int
	IdxS     int
}

// Tuple is the part of a joined row that takes part in equality.
type Tuple struct {
	KeyR int64  `json:"key_r"`
	KeyS int64  `json:"key_s"`
	PayR string `json:"pay_r"`
	PayS string `json:"pay_s"`
}

// Tuple projects r onto its comparable fields.
func (r Row) Tuple() Tuple {
	return Tuple{KeyR: r.KeyR, KeyS: r.KeyS, PayR: r.PayloadR, PayS: r.PayloadS}
}

// Join returns every pair (r, s) with r from primary, s from other and
// r.Key == s.Key.
//
// The smaller table is grouped by key and the larger one probes it. Rows
// always keep primary on the R side, whichever table was grouped.
func Join(primary, other tablefile.Table) []Row {
	if len(primary) == 0 || len(other) == 0 {
		return nil
	}

	buildSide, probeSide := other, primary
	buildIsPrimary := false
	if len(primary) < len(other) {
		buildSide, probeSide = primary, other
		buildIsPrimary = true
	}

	groups := groupByKey(buildSide)

	var rows []Row
	for _, p := range probeSide {
		for _, b := range groups[p.Key] {
			r, s := p, b
			if buildIsPrimary {
				r, s = b, p
			}
			rows = append(rows, Row{
				KeyR:     r.Key,
				KeyS:     s.Key,
				PayloadR: r.Payload,
				PayloadS: s.Payload,
				IdxR:     r.Index,
				IdxS:     s.Index,
			})
		}
	}
	return rows
}

// groupByKey buckets records by key, preserving table order in each bucket.
func groupByKey(table tablefile.Table) map[int64][]tablefile.Record {
	groups := make(map[int64][]tablefile.Record, len(table))
	for _, rec := range table {
		groups[rec.Key] = append(groups[rec.Key], rec)
	}
	return groups
}

// Project converts rows to their comparable tuples.
func Project(rows []Row) []Tuple {
	tuples := make([]Tuple, len(rows))
	for i, r := range rows {
		tuples[i] = r.Tuple()
	}
	return tuples
}
