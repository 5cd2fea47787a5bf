package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

var totals = []types.RunningTotal{
	{RowNo: 2, Product: "A", ItemCount: 3, Cumulative: 3},
	{RowNo: 5, Product: "A", ItemCount: 4, Cumulative: 7},
	{RowNo: 4, Product: "B", ItemCount: 1, Cumulative: 1},
}

var skipped = []types.SkippedRow{
	{RowNo: 3, Message: "Row #3 was skipped because of missing PartNumber"},
	{RowNo: 6, Message: "Row #6 was skipped because of non-positive itemCount"},
}

func TestSuccessLines(t *testing.T) {
	assert.Equal(t, []string{
		"Product, ItemCount, RunningTotal, RowNo",
		"A, 3, 3, 2",
		"A, 4, 7, 5",
		"B, 1, 1, 4",
	}, SuccessLines(totals))

	assert.Equal(t, []string{SuccessHeader}, SuccessLines(nil))
}

func TestErrorLines(t *testing.T) {
	assert.Equal(t, []string{
		"Row #3 was skipped because of missing PartNumber",
		"Row #6 was skipped because of non-positive itemCount",
	}, ErrorLines(skipped))
	assert.Empty(t, ErrorLines(nil))
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "", JoinLines(nil))
	assert.Equal(t, "a\nb\n", JoinLines([]string{"a", "b"}))
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, totals, skipped))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetRunningTotals, SheetSkipped}, f.GetSheetList())

	rows, err := f.GetRows(SheetRunningTotals)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Product", "ItemCount", "RunningTotal", "RowNo"},
		{"A", "3", "3", "2"},
		{"A", "4", "7", "5"},
		{"B", "1", "1", "4"},
	}, rows)

	rows, err = f.GetRows(SheetSkipped)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"3", "Row #3 was skipped because of missing PartNumber"}, rows[1])
}
