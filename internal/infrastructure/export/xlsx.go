// Package export renders request lists as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/saase/requesthub/internal/application/request/dto"
)

const sheetName = "Requests"

var columns = []string{
	"Request ID",
	"Full Name",
	"Email",
	"Company",
	"Phone",
	"Request Type",
	"Project Title",
	"Description",
	"Timeline",
	"Budget",
	"Status",
	"Priority",
	"Source",
	"Report Location",
	"Has AI Summary",
	"Created At",
	"Updated At",
}

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func row(r *dto.RequestDTO) []interface{} {
	return []interface{}{
		r.RequestID,
		r.FullName,
		r.Email,
		r.Company,
		r.Phone,
		r.RequestType,
		r.ProjectTitle,
		r.Description,
		r.Timeline,
		r.Budget,
		r.Status,
		r.Priority,
		r.Source,
		r.ReportLocation,
		r.Summary != nil,
		r.CreatedAt,
		r.UpdatedAt,
	}
}

// ExportRequests writes one header row and one row per request.
func (e *XLSXExporter) ExportRequests(requests []*dto.RequestDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range requests {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := row(r)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
