package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName       = "Appointments"
	localTimeLayout = "2006-01-02 15:04"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var xlsxHeader = []string{"Date", "Start", "End", "Status", "Customer", "Email", "Phone", "Notes", "Booked at"}

// AppointmentsXLSX renders one row per appointment with times in loc.
func AppointmentsXLSX(rows []*queries.AppointmentView, loc *time.Location) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errs.Wrap(err, "failed to drop default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create header style")
	}

	for i, title := range xlsxHeader {
		if err := f.SetCellValue(sheetName, cell(i, 1), title); err != nil {
			return nil, errs.Wrap(err, "failed to write header")
		}
	}
	if err := f.SetCellStyle(sheetName, cell(0, 1), cell(len(xlsxHeader)-1, 1), headerStyle); err != nil {
		return nil, errs.Wrap(err, "failed to style header")
	}
	_ = f.SetColWidth(sheetName, "A", "C", 12)
	_ = f.SetColWidth(sheetName, "E", "F", 28)
	_ = f.SetColWidth(sheetName, "H", "H", 40)
	_ = f.SetColWidth(sheetName, "I", "I", 18)

	for r, v := range rows {
		start := v.Start.In(loc)
		values := []any{
			start.Format("2006-01-02"),
			start.Format("15:04"),
			v.End.In(loc).Format("15:04"),
			v.Status,
			v.CustomerName,
			v.CustomerEmail,
			v.CustomerPhone,
			v.Notes,
			v.CreatedAt.In(loc).Format(localTimeLayout),
		}
		if err := f.SetSheetRow(sheetName, cell(0, r+2), &values); err != nil {
			return nil, errs.Wrap(err, "failed to write row")
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, errs.Wrap(err, "failed to write workbook")
	}
	return buf, nil
}

// XLSXFilename names the download after the business and the requested
// range. A zero bound is written as "all".
func XLSXFilename(businessName string, from, to time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", businessName, fileDate(from), fileDate(to))
}

func fileDate(t time.Time) string {
	if t.IsZero() {
		return "all"
	}
	return t.Format("20060102")
}

// cell takes a zero-based column and a one-based row.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
