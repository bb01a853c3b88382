package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/prospects"
)

const maxExportRows = 10000

// Service generates prospect exports
type Service struct {
	prospectService *prospects.Service
}

// NewService creates a new export service
func NewService(prospectService *prospects.Service) *Service {
	return &Service{prospectService: prospectService}
}

// Export writes the filtered prospect list to w in the requested
// format and returns a suggested file name.
func (s *Service) Export(ctx context.Context, format string, filters models.ProspectListRequest, w io.Writer) (string, error) {
	if format != "csv" && format != "xlsx" {
		return "", fmt.Errorf("invalid format: must be csv or xlsx")
	}

	rows, err := s.collect(ctx, filters)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("prospects-%s.%s", time.Now().Format("20060102-150405"), format)

	if format == "csv" {
		if err := writeCSV(w, rows); err != nil {
			return "", err
		}
		return fileName, nil
	}

	if err := writeXLSX(w, rows); err != nil {
		return "", err
	}
	return fileName, nil
}

// collect pages through the prospect list until exhausted or the
// export cap is hit.
func (s *Service) collect(ctx context.Context, filters models.ProspectListRequest) ([]models.ProspectResponse, error) {
	var out []models.ProspectResponse

	filters.Page = 1
	filters.Limit = 100

	for len(out) < maxExportRows {
		page, err := s.prospectService.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Prospects...)
		if filters.Page >= page.Pagination.Pages {
			break
		}
		filters.Page++
	}

	if len(out) > maxExportRows {
		out = out[:maxExportRows]
	}
	return out, nil
}

var exportHeaders = []string{
	"ID", "Name", "Type", "Status", "Address", "Postal Code", "City", "Country",
	"Phone", "Email", "Website", "Manager", "Note Avg", "Visits", "Created At",
}

func writeCSV(w io.Writer, rows []models.ProspectResponse) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range rows {
		record := []string{
			p.ID.String(),
			p.Name,
			p.Type,
			p.Status,
			p.Address,
			p.PostalCode,
			p.City,
			p.Country,
			p.Phone,
			p.Email,
			p.Website,
			p.ManagerName,
			fmt.Sprintf("%.2f", p.NoteAvg),
			strconv.Itoa(p.VisitsCount),
			p.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

func writeXLSX(w io.Writer, rows []models.ProspectResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Prospects"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, p := range rows {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.ID.String())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Address)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.PostalCode)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.City)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), p.Country)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), p.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), p.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), p.Website)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), p.ManagerName)
		f.SetCellValue(sheetName, fmt.Sprintf("M%d", row), p.NoteAvg)
		f.SetCellValue(sheetName, fmt.Sprintf("N%d", row), p.VisitsCount)
		f.SetCellValue(sheetName, fmt.Sprintf("O%d", row), p.CreatedAt)
	}

	f.SetActiveSheet(index)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
