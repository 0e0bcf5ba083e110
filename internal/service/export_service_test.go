package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/model"
)

func TestExportService_AttendanceReport(t *testing.T) {
	repo, mocks := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())

	date, _ := time.Parse("2006-01-02", "2025-01-10")
	_ = mocks.attendance.Create(context.Background(), &model.AttendanceRecord{
		StudentID:   "CS2021001",
		StudentName: "John Doe",
		Date:        date,
		Time:        "09:12:45",
		Status:      model.AttendancePresent,
		Confidence:  0.88,
	})

	from, _ := time.Parse("2006-01-02", "2025-01-01")
	to, _ := time.Parse("2006-01-02", "2025-01-31")
	buf, filename, err := svc.AttendanceReport(context.Background(), from, to)
	if err != nil {
		t.Fatalf("AttendanceReport: %v", err)
	}
	if filename != "attendance_20250101_20250131.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Attendance", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if header != "Date" {
		t.Errorf("A1 = %q, want Date", header)
	}
	student, _ := f.GetCellValue("Attendance", "B2")
	if student != "CS2021001" {
		t.Errorf("B2 = %q, want CS2021001", student)
	}
	status, _ := f.GetCellValue("Attendance", "E2")
	if status != model.AttendancePresent {
		t.Errorf("E2 = %q, want present", status)
	}
}

func TestExportService_AttendanceReport_EmptyRange(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())

	from, _ := time.Parse("2006-01-02", "2025-01-01")
	to, _ := time.Parse("2006-01-02", "2025-01-31")
	if _, _, err := svc.AttendanceReport(context.Background(), from, to); !errors.Is(err, ErrExportNoRecords) {
		t.Fatalf("err = %v, want ErrExportNoRecords", err)
	}
}

func TestExportService_AttendanceReport_BadRange(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())

	from, _ := time.Parse("2006-01-02", "2025-02-01")
	to, _ := time.Parse("2006-01-02", "2025-01-01")
	if _, _, err := svc.AttendanceReport(context.Background(), from, to); !errors.Is(err, ErrExportBadRange) {
		t.Fatalf("err = %v, want ErrExportBadRange", err)
	}
}
