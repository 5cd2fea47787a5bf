package csvparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

const validRow = " 26392 , 1e2ad9d6-2d4b-4fa1-a35f-4ee2b4d0a1e1,1234,9b5b4a2e-1f7e-4d3c-9a7f-0c2b1d3e4f50, user ,example.com ,Item,Plan A,0,EA000001GB0O , 2000 "

func TestParseRow_TrimsEveryField(t *testing.T) {
	fields, err := ParseRow(validRow, 2)
	require.NoError(t, err)
	require.Len(t, fields, types.FieldCount)

	for i, f := range fields {
		assert.Equal(t, strings.TrimSpace(f), f, "field %d not trimmed", i)
	}
	assert.Equal(t, "26392", fields[types.FieldPartnerID])
	assert.Equal(t, "example.com", fields[types.FieldDomain])
	assert.Equal(t, "EA000001GB0O", fields[types.FieldPartNumber])
	assert.Equal(t, "2000", fields[types.FieldItemCount])
}

func TestParseRow_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		row     int
		wantMsg string
	}{
		{
			name:    "negative row number",
			line:    validRow,
			row:     -1,
			wantMsg: "rowNumber must be 0 or more",
		},
		{
			name:    "empty line",
			line:    "",
			row:     4,
			wantMsg: "invalid row #4: empty row encountered",
		},
		{
			name:    "too few fields",
			line:    "a,b,c",
			row:     7,
			wantMsg: "invalid row #7: a row must contain exactly 11 fields and actually 3 fields found",
		},
		{
			name:    "too many fields",
			line:    validRow + ",extra",
			row:     9,
			wantMsg: "actually 12 fields found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ParseRow(tt.line, tt.row)
			require.Error(t, err)
			assert.Nil(t, fields)
			assert.ErrorIs(t, err, types.ErrInvalidRow)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseRow_ZeroRowNumberAllowed(t *testing.T) {
	_, err := ParseRow(validRow, 0)
	assert.NoError(t, err)
}

func TestParseRow_EmptyFieldsKept(t *testing.T) {
	fields, err := ParseRow(",,,,,,,,,,", 3)
	require.NoError(t, err)
	for _, f := range fields {
		assert.Empty(t, f)
	}
}

func TestLineReader(t *testing.T) {
	input := "\ufeffheader\r\nfirst\nsecond\n"
	lr := NewLineReader(strings.NewReader(input))

	var lines []string
	var rows []int
	for lr.Next() {
		lines = append(lines, lr.Line())
		rows = append(rows, lr.Row())
	}
	require.NoError(t, lr.Err())

	assert.Equal(t, []string{"header", "first", "second"}, lines)
	assert.Equal(t, []int{1, 2, 3}, rows)
}

func TestLineReader_KeepsInnerEmptyLines(t *testing.T) {
	lr := NewLineReader(strings.NewReader("a\n\nb"))

	var lines []string
	for lr.Next() {
		lines = append(lines, lr.Line())
	}
	require.NoError(t, lr.Err())
	assert.Equal(t, []string{"a", "", "b"}, lines)
}
