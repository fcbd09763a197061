package polyat

import (
	"log/slog"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

// WriteXlsx writes the summary table as a one-sheet workbook.
func (report *AggregateReport) WriteXlsx(path string) {
	var (
		xlsx  = excelize.NewFile()
		sheet = "Summary"
	)
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))

	var header []interface{}
	header = append(header, "Sample")
	for _, label := range report.CountsHeader() {
		header = append(header, label)
	}
	SetRow(xlsx, sheet, 1, 1, header)

	for i, row := range report.Rows {
		var fields []interface{}
		fields = append(fields, row.Sample)
		fields = append(fields, filepath.Base(row.Path), row.TotalReads)
		for j, count := range row.Counts {
			fields = append(fields, count, row.Percents[j])
		}
		SetRow(xlsx, sheet, 1, i+2, fields)
	}

	simpleUtil.CheckErr(xlsx.SetColWidth(sheet, "A", "B", 30))
	simpleUtil.CheckErr(xlsx.SaveAs(path))
	slog.Info("save xlsx", "path", path)
}
