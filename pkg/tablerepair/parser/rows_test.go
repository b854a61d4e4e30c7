package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/tablerepair-go/pkg/tablerepair/models"
)

func TestCleanRows(t *testing.T) {
	req := require.New(t)

	short := []models.CellValue{ParseCell("Lead")}
	empty := []models.CellValue{ParseCell(""), ParseCell("-"), ParseCell(nil)}
	long := []models.CellValue{ParseCell("a"), ParseCell("b"), ParseCell("c"), ParseCell("d")}

	rows := CleanRows([][]models.CellValue{short, empty, long}, 3)

	req.Len(rows, 2)
	req.Len(rows[0], 3)
	req.Equal("Lead", rows[0][0].RawText)
	req.True(rows[0][1].IsEmpty)
	req.True(rows[0][2].IsEmpty)
	req.Len(rows[1], 4, "wider rows are never truncated")

	req.Len(short, 1, "input rows are not modified")
}
