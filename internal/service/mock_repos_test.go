package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/internal/repository"
)

type testRepos struct {
	users      *mockUserRepo
	attendance *mockAttendanceRepo
	odRequests *mockODRequestRepo
	activities *mockActivityRepo
}

// newTestRepo assembles a Repository over in-memory mocks. The zero db means
// Transaction runs its callback directly.
func newTestRepo() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		users:      newMockUserRepo(),
		attendance: newMockAttendanceRepo(),
		odRequests: newMockODRequestRepo(),
		activities: &mockActivityRepo{},
	}
	repo := &repository.Repository{
		User:       mocks.users,
		Attendance: mocks.attendance,
		ODRequest:  mocks.odRequests,
		Activity:   mocks.activities,
	}
	return repo, mocks
}

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByStudentID(_ context.Context, studentID string) (*model.User, error) {
	for _, u := range m.users {
		if u.StudentID == studentID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListStudents(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == model.RoleStudent {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) CountStudents(_ context.Context) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == model.RoleStudent {
			n++
		}
	}
	return n, nil
}

// ── mock AttendanceRepository ──

type mockAttendanceRepo struct {
	recs map[string]*model.AttendanceRecord // keyed by student_id|date
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{recs: make(map[string]*model.AttendanceRecord)}
}

func attendanceKey(studentID string, date time.Time) string {
	return studentID + "|" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Create(_ context.Context, rec *model.AttendanceRecord) error {
	key := attendanceKey(rec.StudentID, rec.Date)
	if _, ok := m.recs[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if rec.AttendanceID == "" {
		rec.AttendanceID = "att-" + key
	}
	m.recs[key] = rec
	return nil
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, rec *model.AttendanceRecord) error {
	key := attendanceKey(rec.StudentID, rec.Date)
	if rec.AttendanceID == "" {
		rec.AttendanceID = "att-" + key
	}
	m.recs[key] = rec
	return nil
}

func (m *mockAttendanceRepo) GetByStudentAndDate(_ context.Context, studentID string, date time.Time) (*model.AttendanceRecord, error) {
	if rec, ok := m.recs[attendanceKey(studentID, date)]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) CountByDate(_ context.Context, date time.Time) (int64, error) {
	var n int64
	for _, rec := range m.recs {
		if rec.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			n++
		}
	}
	return n, nil
}

func (m *mockAttendanceRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, rec := range m.recs {
		if !rec.Date.Before(from) && !rec.Date.After(to) {
			result = append(result, *rec)
		}
	}
	return result, nil
}

// ── mock ODRequestRepository ──

type mockODRequestRepo struct {
	reqs  map[string]*model.ODRequest
	order []string // insertion order, newest last
	seq   int
}

func newMockODRequestRepo() *mockODRequestRepo {
	return &mockODRequestRepo{reqs: make(map[string]*model.ODRequest)}
}

func (m *mockODRequestRepo) Create(_ context.Context, req *model.ODRequest) error {
	if req.ODRequestID == "" {
		m.seq++
		req.ODRequestID = fmt.Sprintf("od-%03d", m.seq)
	}
	req.CreatedAt = time.Now()
	m.reqs[req.ODRequestID] = req
	m.order = append(m.order, req.ODRequestID)
	return nil
}

func (m *mockODRequestRepo) GetByID(_ context.Context, id string) (*model.ODRequest, error) {
	if req, ok := m.reqs[id]; ok {
		return req, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockODRequestRepo) Update(_ context.Context, req *model.ODRequest) error {
	m.reqs[req.ODRequestID] = req
	return nil
}

func (m *mockODRequestRepo) ListByStudent(_ context.Context, studentID string) ([]model.ODRequest, error) {
	var result []model.ODRequest
	for i := len(m.order) - 1; i >= 0; i-- {
		if req := m.reqs[m.order[i]]; req.StudentID == studentID {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (m *mockODRequestRepo) List(_ context.Context, status string) ([]model.ODRequest, error) {
	var result []model.ODRequest
	for i := len(m.order) - 1; i >= 0; i-- {
		req := m.reqs[m.order[i]]
		if status == "" || req.Status == status {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (m *mockODRequestRepo) RecentByStudent(ctx context.Context, studentID string, limit int) ([]model.ODRequest, error) {
	all, _ := m.ListByStudent(ctx, studentID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockODRequestRepo) Recent(ctx context.Context, limit int) ([]model.ODRequest, error) {
	all, _ := m.List(ctx, "")
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockODRequestRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, req := range m.reqs {
		counts[req.Status]++
	}
	return counts, nil
}

func (m *mockODRequestRepo) CountByStatusForStudent(_ context.Context, studentID string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, req := range m.reqs {
		if req.StudentID == studentID {
			counts[req.Status]++
		}
	}
	return counts, nil
}

// ── mock ActivityRepository ──

type mockActivityRepo struct {
	activities []model.Activity
}

func (m *mockActivityRepo) ListApproved(_ context.Context) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.Approved {
			result = append(result, a)
		}
	}
	return result, nil
}
