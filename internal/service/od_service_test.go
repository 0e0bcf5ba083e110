package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/internal/ocr"
)

// ── test collaborators ──

type fakeExtractor struct {
	text     string
	lastPath string
	lastKind ocr.Kind
}

func (f *fakeExtractor) Extract(_ context.Context, path string, kind ocr.Kind) string {
	f.lastPath = path
	f.lastKind = kind
	return f.text
}

type fakeStore struct {
	saved   int
	lastExt string
	err     error
}

func (f *fakeStore) Allowed(ext string) bool {
	switch strings.ToLower(ext) {
	case "pdf", "jpg", "jpeg", "png":
		return true
	}
	return false
}

func (f *fakeStore) Save(studentID, originalName string, content io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved++
	f.lastExt = originalName[strings.LastIndex(originalName, ".")+1:]
	_, _ = io.Copy(io.Discard, content)
	return "/uploads/od_" + studentID + "_20250114_090000." + f.lastExt, nil
}

func testStudent() *dto.UserResponse {
	return &dto.UserResponse{
		UserID:    "user-001",
		Username:  "student1",
		Role:      model.RoleStudent,
		StudentID: "CS2021001",
		Name:      "John Doe",
	}
}

func testSubmitForm() *dto.SubmitODForm {
	return &dto.SubmitODForm{
		ActivityType: "sports",
		ActivityName: "Inter-College Football Tournament",
		EventDate:    "2025-01-10",
		EventVenue:   "Main Ground",
		OrganizedBy:  "Sports Department",
		ODReason:     "Representing the college team",
	}
}

// ── Submit ──

func TestODService_Submit_VerifiedDocument(t *testing.T) {
	repo, mocks := newTestRepo()
	extractor := &fakeExtractor{
		text: "This is to certify that John Doe of the college football team participated in the annual sports tournament. The match was approved by the sports coordinator.",
	}
	store := &fakeStore{}
	svc := NewODService(repo, extractor, store, zap.NewNop())

	resp, err := svc.Submit(context.Background(), testStudent(), testSubmitForm(), "certificate.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !resp.Verification.IsValid {
		t.Error("expected verification to pass")
	}
	if resp.Verification.DetectedActivity != "sports" {
		t.Errorf("detected activity = %q, want sports", resp.Verification.DetectedActivity)
	}
	if store.saved != 1 {
		t.Errorf("store.saved = %d, want 1", store.saved)
	}
	if extractor.lastKind != ocr.KindPDF {
		t.Errorf("extract kind = %v, want KindPDF", extractor.lastKind)
	}

	req, err := mocks.odRequests.GetByID(context.Background(), resp.RequestID)
	if err != nil {
		t.Fatalf("request not persisted: %v", err)
	}
	if req.Status != model.ODStatusPending {
		t.Errorf("status = %q, want pending", req.Status)
	}
	if !req.VerifiedByOCR {
		t.Error("expected VerifiedByOCR = true")
	}
	if req.DetectedCategory != "sports" {
		t.Errorf("detected category = %q, want sports", req.DetectedCategory)
	}
	if req.OCRText != extractor.text {
		t.Error("extracted text not stored on the request")
	}
}

func TestODService_Submit_InsufficientEvidence(t *testing.T) {
	repo, mocks := newTestRepo()
	extractor := &fakeExtractor{text: "hello world, nothing relevant here"}
	svc := NewODService(repo, extractor, &fakeStore{}, zap.NewNop())

	resp, err := svc.Submit(context.Background(), testStudent(), testSubmitForm(), "photo.jpg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp.Verification.IsValid {
		t.Error("expected verification to fail")
	}
	if resp.Verification.Message != "Insufficient evidence of valid extracurricular activity" {
		t.Errorf("message = %q", resp.Verification.Message)
	}

	// unverified submissions are still queued for review
	req, err := mocks.odRequests.GetByID(context.Background(), resp.RequestID)
	if err != nil {
		t.Fatalf("request not persisted: %v", err)
	}
	if req.Status != model.ODStatusPending {
		t.Errorf("status = %q, want pending", req.Status)
	}
	if req.VerifiedByOCR {
		t.Error("expected VerifiedByOCR = false")
	}
}

func TestODService_Submit_UnsupportedFileType(t *testing.T) {
	repo, mocks := newTestRepo()
	store := &fakeStore{}
	svc := NewODService(repo, &fakeExtractor{}, store, zap.NewNop())

	_, err := svc.Submit(context.Background(), testStudent(), testSubmitForm(), "malware.exe", strings.NewReader("MZ"))
	if !errors.Is(err, ErrUnsupportedUpload) {
		t.Fatalf("err = %v, want ErrUnsupportedUpload", err)
	}
	if store.saved != 0 {
		t.Error("nothing should be written for a rejected type")
	}
	if len(mocks.odRequests.reqs) != 0 {
		t.Error("no request should be created for a rejected type")
	}
}

func TestODService_Submit_BadEventDate(t *testing.T) {
	repo, _ := newTestRepo()
	store := &fakeStore{}
	svc := NewODService(repo, &fakeExtractor{}, store, zap.NewNop())

	form := testSubmitForm()
	form.EventDate = "10-01-2025"
	_, err := svc.Submit(context.Background(), testStudent(), form, "certificate.pdf", strings.NewReader("%PDF"))
	if !errors.Is(err, ErrInvalidEventDate) {
		t.Fatalf("err = %v, want ErrInvalidEventDate", err)
	}
	if store.saved != 0 {
		t.Error("file must not be stored when the form is invalid")
	}
}

// ── Approve ──

func submitPending(t *testing.T, svc ODService) string {
	t.Helper()
	resp, err := svc.Submit(context.Background(), testStudent(), testSubmitForm(), "certificate.pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return resp.RequestID
}

func TestODService_Approve_BackfillsAttendance(t *testing.T) {
	repo, mocks := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{text: "certificate participation tournament"}, &fakeStore{}, zap.NewNop())
	id := submitPending(t, svc)

	if err := svc.Approve(context.Background(), id, "verified with coordinator"); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	req, _ := mocks.odRequests.GetByID(context.Background(), id)
	if req.Status != model.ODStatusApproved {
		t.Errorf("status = %q, want approved", req.Status)
	}
	if req.AdminNotes != "verified with coordinator" {
		t.Errorf("admin notes = %q", req.AdminNotes)
	}

	eventDate, _ := time.Parse("2006-01-02", "2025-01-10")
	rec, err := mocks.attendance.GetByStudentAndDate(context.Background(), "CS2021001", eventDate)
	if err != nil {
		t.Fatalf("attendance not back-filled: %v", err)
	}
	if rec.Status != model.AttendanceOnDuty {
		t.Errorf("attendance status = %q, want on_duty", rec.Status)
	}
	if rec.Time != "00:00:00" {
		t.Errorf("attendance time = %q, want 00:00:00", rec.Time)
	}
	if rec.Confidence != 1.0 {
		t.Errorf("attendance confidence = %v, want 1.0", rec.Confidence)
	}
}

func TestODService_Approve_SupersedesPresentMark(t *testing.T) {
	repo, mocks := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{text: "certificate participation tournament"}, &fakeStore{}, zap.NewNop())

	eventDate, _ := time.Parse("2006-01-02", "2025-01-10")
	if err := mocks.attendance.Create(context.Background(), &model.AttendanceRecord{
		StudentID:   "CS2021001",
		StudentName: "John Doe",
		Date:        eventDate,
		Time:        "09:12:45",
		Status:      model.AttendancePresent,
		Confidence:  0.88,
	}); err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	id := submitPending(t, svc)
	if err := svc.Approve(context.Background(), id, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	rec, _ := mocks.attendance.GetByStudentAndDate(context.Background(), "CS2021001", eventDate)
	if rec.Status != model.AttendanceOnDuty {
		t.Errorf("attendance status = %q, want on_duty after approval", rec.Status)
	}
	if rec.Confidence != 1.0 {
		t.Errorf("attendance confidence = %v, want 1.0 after approval", rec.Confidence)
	}
}

func TestODService_Approve_RejectedIsTerminal(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{}, &fakeStore{}, zap.NewNop())
	id := submitPending(t, svc)

	if err := svc.Reject(context.Background(), id, "no"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if err := svc.Approve(context.Background(), id, "changed my mind"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestODService_Approve_NotFound(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{}, &fakeStore{}, zap.NewNop())

	if err := svc.Approve(context.Background(), "missing", ""); !errors.Is(err, ErrODRequestNotFound) {
		t.Fatalf("err = %v, want ErrODRequestNotFound", err)
	}
}

// ── Reject ──

func TestODService_Reject_RefreshesNotes(t *testing.T) {
	repo, mocks := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{}, &fakeStore{}, zap.NewNop())
	id := submitPending(t, svc)

	if err := svc.Reject(context.Background(), id, "no supporting document"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if err := svc.Reject(context.Background(), id, "duplicate of earlier request"); err != nil {
		t.Fatalf("second Reject: %v", err)
	}

	req, _ := mocks.odRequests.GetByID(context.Background(), id)
	if req.Status != model.ODStatusRejected {
		t.Errorf("status = %q, want rejected", req.Status)
	}
	if req.AdminNotes != "duplicate of earlier request" {
		t.Errorf("admin notes = %q, want latest notes", req.AdminNotes)
	}
}

func TestODService_Reject_ApprovedIsTerminal(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{text: "certificate participation tournament"}, &fakeStore{}, zap.NewNop())
	id := submitPending(t, svc)

	if err := svc.Approve(context.Background(), id, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if err := svc.Reject(context.Background(), id, "too late"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
}

// ── queries ──

func TestODService_List_StatusFilter(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{}, &fakeStore{}, zap.NewNop())

	first := submitPending(t, svc)
	submitPending(t, svc)
	if err := svc.Reject(context.Background(), first, "no"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	pending, err := svc.List(context.Background(), model.ODStatusPending)
	if err != nil {
		t.Fatalf("List(pending): %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending = %d, want 1", len(pending))
	}

	all, err := svc.List(context.Background(), "all")
	if err != nil {
		t.Fatalf("List(all): %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
	if all[0].StudentID == "" {
		t.Error("admin listing should include the student identity")
	}

	if _, err := svc.List(context.Background(), "bogus"); !errors.Is(err, ErrBadStatusFilter) {
		t.Fatalf("err = %v, want ErrBadStatusFilter", err)
	}
}

func TestODService_ListByStudent_OmitsIdentity(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{}, &fakeStore{}, zap.NewNop())
	submitPending(t, svc)

	mine, err := svc.ListByStudent(context.Background(), "CS2021001")
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("mine = %d, want 1", len(mine))
	}
	if mine[0].StudentID != "" {
		t.Error("own listing should not repeat the student identity")
	}
}

func TestODService_Get(t *testing.T) {
	repo, _ := newTestRepo()
	svc := NewODService(repo, &fakeExtractor{text: "certificate participation tournament"}, &fakeStore{}, zap.NewNop())
	id := submitPending(t, svc)

	detail, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.ODReason != "Representing the college team" {
		t.Errorf("od reason = %q", detail.ODReason)
	}
	if detail.OCRText == "" {
		t.Error("detail view should carry the extracted text")
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrODRequestNotFound) {
		t.Fatalf("err = %v, want ErrODRequestNotFound", err)
	}
}
