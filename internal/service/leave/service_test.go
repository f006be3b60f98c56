package leave

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type fakeLeaveTypeRepo struct {
	types []leave.LeaveType
}

func (f *fakeLeaveTypeRepo) ListAvailable(_ context.Context, _, companyID string) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, t := range f.types {
		if t.CompanyID == companyID && t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeLeaveRequestRepo struct {
	mu       sync.Mutex
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = fmt.Sprintf("lr-%d", len(f.requests)+1)
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRequestRepo) GetMyRequests(_ context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, leave.StatusCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.LeaveRequest
	var counts leave.StatusCounts
	for _, r := range f.requests {
		if r.EmployeeID != employeeID {
			continue
		}
		switch r.Status {
		case leave.LeaveRequestStatusApproved:
			counts.Approved++
		case leave.LeaveRequestStatusWaitingApproval:
			counts.Pending++
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), counts, nil
}

func (f *fakeLeaveRequestRepo) HasOverlap(_ context.Context, employeeID string, from, to time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r.EmployeeID != employeeID || r.Status == leave.LeaveRequestStatusRejected || r.Status == leave.LeaveRequestStatusCancelled {
			continue
		}
		if !r.EndDate.Before(from) && !r.StartDate.After(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRequestRepo) ListApprovedBetween(context.Context, string, time.Time, time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

type keyedTx struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (k *keyedTx) WithinLockedTransaction(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
	defer l.Unlock()
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func setupLeaveService() (*LeaveServiceImpl, *fakeLeaveRequestRepo) {
	types := &fakeLeaveTypeRepo{types: []leave.LeaveType{
		{ID: "lt-annual", CompanyID: "company-1", Name: "Annual Leave", Code: strPtr("AL"), IsActive: true},
		{ID: "lt-sick", CompanyID: "company-1", Name: "Sick Leave", IsActive: true},
		{ID: "lt-old", CompanyID: "company-1", Name: "Retired", IsActive: false},
		{ID: "lt-other", CompanyID: "company-2", Name: "Other Company", IsActive: true},
	}}
	requests := &fakeLeaveRequestRepo{}
	svc := NewLeaveService(&keyedTx{locks: make(map[string]*sync.Mutex)}, types, requests).(*LeaveServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return svc, requests
}

var actor = employee.Employee{ID: "emp-1", CompanyID: "company-1", JobTitle: strPtr("Engineer")}

func TestListLeaveTypes(t *testing.T) {
	svc, _ := setupLeaveService()

	types, err := svc.ListLeaveTypes(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Annual Leave", types[0].Name)
	assert.Equal(t, "AL", *types[0].Code)
}

func TestCreateLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("success counts calendar days inclusively", func(t *testing.T) {
		svc, repo := setupLeaveService()
		resp, err := svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: "lt-annual",
			DateFrom:    "2026-10-19",
			DateTo:      "2026-10-23",
			Reason:      "Family trip",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, "Annual Leave", resp.LeaveType)
		assert.Equal(t, "Engineer", resp.JobTitle)
		assert.Equal(t, "waiting_approval", resp.Status)
		assert.Equal(t, "19 Oct 2026 - 23 Oct 2026", resp.Period)
		assert.Equal(t, "2026-10-17T09:00:00Z", resp.SubmittedAt)
		assert.Len(t, repo.requests, 1)
	})

	t.Run("single day", func(t *testing.T) {
		svc, _ := setupLeaveService()
		resp, err := svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: "lt-sick", DateFrom: "2026-10-19", DateTo: "2026-10-19", Reason: "Flu",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalDays)
	})

	t.Run("unavailable leave type", func(t *testing.T) {
		for _, id := range []string{"lt-old", "lt-other", "lt-missing"} {
			svc, _ := setupLeaveService()
			_, err := svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
				LeaveTypeID: id, DateFrom: "2026-10-19", DateTo: "2026-10-19", Reason: "x",
			})
			assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound, id)
		}
	})

	t.Run("overlap is rejected", func(t *testing.T) {
		svc, _ := setupLeaveService()
		_, err := svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: "lt-annual", DateFrom: "2026-10-19", DateTo: "2026-10-23", Reason: "Trip",
		})
		require.NoError(t, err)

		_, err = svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
			LeaveTypeID: "lt-sick", DateFrom: "2026-10-23", DateTo: "2026-10-24", Reason: "Flu",
		})
		assert.ErrorIs(t, err, leave.ErrLeaveOverlap)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := setupLeaveService()
		_, err := svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
			DateFrom: "2026-10-23", DateTo: "2026-10-19",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := verrs.ToMap()
		assert.Contains(t, fields, "leave_type_id")
		assert.Contains(t, fields, "reason")
		assert.Contains(t, fields, "date_to")
	})

	t.Run("concurrent duplicates produce one request", func(t *testing.T) {
		svc, repo := setupLeaveService()
		var g errgroup.Group
		for i := 0; i < 8; i++ {
			g.Go(func() error {
				_, _ = svc.CreateLeave(ctx, actor, leave.CreateLeaveRequest{
					LeaveTypeID: "lt-annual", DateFrom: "2026-11-02", DateTo: "2026-11-03", Reason: "Wedding",
				})
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Len(t, repo.requests, 1)
	})
}

func TestListMyLeaves(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupLeaveService()
	repo.requests = []leave.LeaveRequest{
		{ID: "1", EmployeeID: "emp-1", Status: leave.LeaveRequestStatusApproved},
		{ID: "2", EmployeeID: "emp-1", Status: leave.LeaveRequestStatusWaitingApproval},
		{ID: "3", EmployeeID: "emp-1", Status: leave.LeaveRequestStatusRejected},
		{ID: "4", EmployeeID: "emp-2", Status: leave.LeaveRequestStatusApproved},
	}

	res, err := svc.ListMyLeaves(ctx, actor, leave.LeaveFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.TotalCount)
	assert.EqualValues(t, 1, res.ApprovedCount)
	assert.EqualValues(t, 1, res.PendingCount)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.Limit)

	status := "approved"
	res, err = svc.ListMyLeaves(ctx, actor, leave.LeaveFilter{Status: &status})
	require.NoError(t, err)
	assert.Len(t, res.Leaves, 1)

	bad := "pending"
	_, err = svc.ListMyLeaves(ctx, actor, leave.LeaveFilter{Status: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
