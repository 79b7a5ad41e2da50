package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	serviceTypeRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/servicetype"
	"github.com/m04kA/coaching-scheduler/internal/service/catalog/models"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
	"github.com/m04kA/coaching-scheduler/pkg/ptr"
)

type fakeRepo struct {
	byID       map[uuid.UUID]*domain.ServiceType
	onlyActive *bool
	createErr  error
	listErr    error
}

func newFakeRepo(items ...*domain.ServiceType) *fakeRepo {
	f := &fakeRepo{byID: make(map[uuid.UUID]*domain.ServiceType)}
	for _, st := range items {
		f.byID[st.ID] = st
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	st.ID = uuid.New()
	f.byID[st.ID] = st
	return st, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ServiceType, error) {
	st, ok := f.byID[id]
	if !ok {
		return nil, serviceTypeRepo.ErrServiceTypeNotFound
	}
	cp := *st
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, onlyActive bool) ([]*domain.ServiceType, error) {
	f.onlyActive = &onlyActive
	if f.listErr != nil {
		return nil, f.listErr
	}
	var items []*domain.ServiceType
	for _, st := range f.byID {
		if onlyActive && !st.IsActive {
			continue
		}
		items = append(items, st)
	}
	return items, nil
}

func (f *fakeRepo) Update(_ context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	if _, ok := f.byID[st.ID]; !ok {
		return nil, serviceTypeRepo.ErrServiceTypeNotFound
	}
	f.byID[st.ID] = st
	return st, nil
}

func (f *fakeRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	st, ok := f.byID[id]
	if !ok {
		return serviceTypeRepo.ErrServiceTypeNotFound
	}
	st.IsActive = active
	return nil
}

var (
	admin  = domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}
	client = domain.Identity{UserID: uuid.New(), Role: domain.RoleClient}
)

func budgeting() *domain.ServiceType {
	return &domain.ServiceType{ID: uuid.New(), Name: "Budgeting Session", DurationMinutes: 60, Price: ptr.Ptr(120.0), IsActive: true}
}

func retired() *domain.ServiceType {
	return &domain.ServiceType{ID: uuid.New(), Name: "Tax Prep", DurationMinutes: 30, IsActive: false}
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name      string
		caller    domain.Identity
		wantCount int
	}{
		{name: "anonymous sees active", caller: domain.Identity{}, wantCount: 1},
		{name: "client sees active", caller: client, wantCount: 1},
		{name: "admin sees all", caller: admin, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(budgeting(), retired())
			svc := NewService(repo, logger.NewNop())

			resp, err := svc.List(context.Background(), tt.caller)
			require.NoError(t, err)
			assert.Len(t, resp.ServiceTypes, tt.wantCount)
			require.NotNil(t, repo.onlyActive)
			assert.Equal(t, !tt.caller.IsAdmin(), *repo.onlyActive)
		})
	}
}

func TestService_List_StorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("db down")
	svc := NewService(repo, logger.NewNop())

	_, err := svc.List(context.Background(), client)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestService_GetByID(t *testing.T) {
	active, inactive := budgeting(), retired()
	svc := NewService(newFakeRepo(active, inactive), logger.NewNop())

	resp, err := svc.GetByID(context.Background(), client, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budgeting Session", resp.Name)

	_, err = svc.GetByID(context.Background(), client, inactive.ID)
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)

	resp, err = svc.GetByID(context.Background(), admin, inactive.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	_, err = svc.GetByID(context.Background(), admin, uuid.New())
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		caller    domain.Identity
		req       models.CreateServiceTypeRequest
		createErr error
		wantErr   error
	}{
		{
			name:   "ok",
			caller: admin,
			req:    models.CreateServiceTypeRequest{Name: "Debt Plan", DurationMinutes: 45, Price: ptr.Ptr(80.0)},
		},
		{
			name:    "client",
			caller:  client,
			req:     models.CreateServiceTypeRequest{Name: "Debt Plan", DurationMinutes: 45},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "missing name",
			caller:  admin,
			req:     models.CreateServiceTypeRequest{DurationMinutes: 45},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "too short",
			caller:  admin,
			req:     models.CreateServiceTypeRequest{Name: "Quick", DurationMinutes: 10},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "too long",
			caller:  admin,
			req:     models.CreateServiceTypeRequest{Name: "Marathon", DurationMinutes: 300},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			caller:  admin,
			req:     models.CreateServiceTypeRequest{Name: "Refund", DurationMinutes: 30, Price: ptr.Ptr(-1.0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:      "duplicate name",
			caller:    admin,
			req:       models.CreateServiceTypeRequest{Name: "Budgeting Session", DurationMinutes: 60},
			createErr: fmt.Errorf("%w: %q", serviceTypeRepo.ErrDuplicateName, "Budgeting Session"),
			wantErr:   ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.createErr = tt.createErr
			svc := NewService(repo, logger.NewNop())

			resp, err := svc.Create(context.Background(), tt.caller, &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, resp.ID)
			assert.True(t, resp.IsActive)
			assert.Equal(t, tt.req.DurationMinutes, resp.DurationMinutes)
		})
	}
}

func TestService_Update(t *testing.T) {
	st := budgeting()
	repo := newFakeRepo(st)
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.Update(context.Background(), admin, st.ID, &models.UpdateServiceTypeRequest{
		DurationMinutes: ptr.Ptr(90),
		Description:     ptr.Ptr("Monthly budget review"),
	})
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, "Monthly budget review", resp.Description)
	assert.Equal(t, "Budgeting Session", resp.Name)

	_, err = svc.Update(context.Background(), admin, st.ID, &models.UpdateServiceTypeRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), admin, st.ID, &models.UpdateServiceTypeRequest{Name: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), client, st.ID, &models.UpdateServiceTypeRequest{Name: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Update(context.Background(), admin, uuid.New(), &models.UpdateServiceTypeRequest{Name: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestService_SetActive(t *testing.T) {
	st := budgeting()
	repo := newFakeRepo(st)
	svc := NewService(repo, logger.NewNop())

	require.NoError(t, svc.SetActive(context.Background(), admin, st.ID, false))
	assert.False(t, repo.byID[st.ID].IsActive)

	assert.ErrorIs(t, svc.SetActive(context.Background(), client, st.ID, true), ErrAccessDenied)
	assert.ErrorIs(t, svc.SetActive(context.Background(), admin, uuid.New(), true), ErrServiceTypeNotFound)
}
