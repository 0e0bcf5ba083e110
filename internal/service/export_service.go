package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/repository"
)

// ── export errors ──

var (
	ErrExportNoRecords = errors.New("no attendance records in the requested range")
	ErrExportBadRange  = errors.New("from must not be after to")
)

// ExportService renders admin reports. The attendance sheet is returned as an
// in-memory .xlsx buffer; the handler sets the download headers.
type ExportService interface {
	AttendanceReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) AttendanceReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	if from.After(to) {
		return nil, "", ErrExportBadRange
	}

	recs, err := s.repo.Attendance.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, "", err
	}
	if len(recs) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Student ID", "Student Name", "Time", "Status", "Confidence"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellValue(sheet, col+"1", h); err != nil {
			return nil, "", err
		}
	}

	for i, rec := range recs {
		row := i + 2
		values := []interface{}{
			rec.Date.Format("2006-01-02"),
			rec.StudentID,
			rec.StudentName,
			rec.Time,
			rec.Status,
			rec.Confidence,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx",
		from.Format("20060102"), to.Format("20060102"))

	return buf, filename, nil
}
