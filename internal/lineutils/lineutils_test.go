package lineutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsoni/hisab/internal/models"
)

func frag(text string, x, y float64) models.TextFragment {
	return models.TextFragment{Text: text, X: x, Y: y, Page: 1}
}

func TestGroupRowsClustersByVerticalPosition(t *testing.T) {
	fragments := []models.TextFragment{
		frag("15/04/2024", 10, 700.0),
		frag("AMAZON", 120, 702.3), // same visual row, slightly different baseline
		frag("2,450.00", 400, 698.9),
		frag("01/05/2024", 10, 680.0), // next row, clearly below
	}

	rows := GroupRows(fragments, DefaultRowTolerance)

	require.Len(t, rows, 2)
	assert.Len(t, rows[0].Fragments, 3)
	assert.Len(t, rows[1].Fragments, 1)
}

func TestGroupRowsOrdersTopToBottom(t *testing.T) {
	fragments := []models.TextFragment{
		frag("bottom", 0, 100),
		frag("top", 0, 700),
		frag("middle", 0, 400),
	}

	texts := RowTexts(fragments, DefaultRowTolerance)

	assert.Equal(t, []string{"top", "middle", "bottom"}, texts)
}

func TestRowTextOrdersLeftToRight(t *testing.T) {
	fragments := []models.TextFragment{
		frag("2,450.00", 400, 700),
		frag("15/04/2024", 10, 700),
		frag("AMAZON PURCHASE", 120, 700),
	}

	texts := RowTexts(fragments, DefaultRowTolerance)

	require.Len(t, texts, 1)
	assert.Equal(t, "15/04/2024 AMAZON PURCHASE 2,450.00", texts[0])
}

func TestGroupRowsToleranceBoundary(t *testing.T) {
	fragments := []models.TextFragment{
		frag("a", 0, 100.0),
		frag("b", 10, 104.9), // within tolerance
		frag("c", 20, 105.0), // exactly at tolerance: new row
	}

	rows := GroupRows(fragments, 5.0)

	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].Text())
	assert.Equal(t, "a b", rows[1].Text())
}

func TestGroupRowsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupRows(nil, DefaultRowTolerance))
	assert.Empty(t, RowTexts(nil, 0))
}
