package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/facerec"
	"github.com/Sujithrababu/attendance-system/internal/model"
)

type stubMatcher struct {
	match *facerec.Match
	err   error
}

func (m *stubMatcher) Match(_ context.Context, _ []byte) (*facerec.Match, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.match, nil
}

func TestAttendanceService_Mark(t *testing.T) {
	repo, mocks := newTestRepo()
	matcher := &stubMatcher{match: &facerec.Match{StudentID: "CS2021001", Name: "John Doe", Confidence: 0.91}}
	svc := NewAttendanceService(repo, matcher, zap.NewNop())

	resp, err := svc.Mark(context.Background(), []byte("snapshot"))
	if err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if resp.Student.StudentID != "CS2021001" {
		t.Errorf("student = %q, want CS2021001", resp.Student.StudentID)
	}
	if resp.Confidence != 0.91 {
		t.Errorf("confidence = %v, want 0.91", resp.Confidence)
	}

	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	rec, err := mocks.attendance.GetByStudentAndDate(context.Background(), "CS2021001", today)
	if err != nil {
		t.Fatalf("record not persisted: %v", err)
	}
	if rec.Status != model.AttendancePresent {
		t.Errorf("status = %q, want present", rec.Status)
	}
}

func TestAttendanceService_Mark_Twice(t *testing.T) {
	repo, _ := newTestRepo()
	matcher := &stubMatcher{match: &facerec.Match{StudentID: "CS2021001", Name: "John Doe", Confidence: 0.85}}
	svc := NewAttendanceService(repo, matcher, zap.NewNop())

	if _, err := svc.Mark(context.Background(), []byte("snapshot")); err != nil {
		t.Fatalf("first Mark: %v", err)
	}
	if _, err := svc.Mark(context.Background(), []byte("snapshot")); !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("err = %v, want ErrAlreadyMarked", err)
	}
}

func TestAttendanceService_Mark_NoRegisteredFaces(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewAttendanceService(repo, &stubMatcher{err: facerec.ErrNoRegisteredFaces}, zap.NewNop())

	if _, err := svc.Mark(context.Background(), []byte("snapshot")); !errors.Is(err, ErrNoFaceMatch) {
		t.Fatalf("err = %v, want ErrNoFaceMatch", err)
	}
}

func TestAttendanceService_Recognize(t *testing.T) {
	repo, mocks := newTestRepo()
	matcher := &stubMatcher{match: &facerec.Match{StudentID: "CS2021001", Name: "John Doe", Confidence: 0.85}}
	svc := NewAttendanceService(repo, matcher, zap.NewNop())

	resp, err := svc.Recognize(context.Background(), []byte("snapshot"))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if resp.Message != "Face recognized successfully! Welcome John Doe" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(mocks.attendance.recs) != 0 {
		t.Error("recognition preview must not persist attendance")
	}
}
