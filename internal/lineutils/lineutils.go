// Package lineutils reconstructs reading order from unordered positioned
// text fragments. PDF text extraction reports fragments in content-stream
// order with page coordinates; a single visual row is often emitted as
// several fragments with slightly different baselines, so rows are rebuilt
// by clustering on the vertical coordinate.
package lineutils

import (
	"sort"
	"strings"

	"rsoni/hisab/internal/models"
)

// DefaultRowTolerance is the vertical distance within which two fragments
// are considered part of the same visual row.
const DefaultRowTolerance = 5.0

// Row is a cluster of fragments inferred to form one visual text row. The
// representative Y is the vertical coordinate of the first fragment assigned
// to the row.
type Row struct {
	Y         float64
	Fragments []models.TextFragment
}

// Text serializes the row into reading order: fragments sorted left to
// right, texts joined with a single space.
func (r Row) Text() string {
	frags := make([]models.TextFragment, len(r.Fragments))
	copy(frags, r.Fragments)
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].X < frags[j].X
	})

	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}

// GroupRows clusters one page's fragments into visual rows. A fragment joins
// an existing row when its vertical coordinate differs from the row's
// representative coordinate by less than tolerance, otherwise it starts a
// new row. Rows are returned top to bottom (descending Y). Cost is
// fragments x rows, which is fine at single-page fragment counts.
func GroupRows(fragments []models.TextFragment, tolerance float64) []Row {
	if tolerance <= 0 {
		tolerance = DefaultRowTolerance
	}

	var rows []Row
	for _, frag := range fragments {
		idx := -1
		for i := range rows {
			if diff := rows[i].Y - frag.Y; diff < tolerance && diff > -tolerance {
				idx = i
				break
			}
		}
		if idx >= 0 {
			rows[idx].Fragments = append(rows[idx].Fragments, frag)
		} else {
			rows = append(rows, Row{Y: frag.Y, Fragments: []models.TextFragment{frag}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Y > rows[j].Y
	})

	return rows
}

// RowTexts is a convenience wrapper returning only the serialized text of
// each reconstructed row, in reading order.
func RowTexts(fragments []models.TextFragment, tolerance float64) []string {
	rows := GroupRows(fragments, tolerance)
	texts := make([]string, 0, len(rows))
	for _, row := range rows {
		texts = append(texts, row.Text())
	}
	return texts
}
