package mocks

import (
	"context"

	"salarydash/internal/model"
	"salarydash/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Options(ctx context.Context) (model.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.FilterOptions), args.Error(1)
}

func (m *MockDashboardService) Dashboard(ctx context.Context, sel model.Selection) (*service.Dashboard, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockDashboardService) View(ctx context.Context, sel model.Selection) ([]model.Record, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockDashboardService) Records(ctx context.Context, sel model.Selection, limit, offset int) (*service.RecordPage, error) {
	args := m.Called(ctx, sel, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecordPage), args.Error(1)
}

func (m *MockDashboardService) Warm(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDashboardService) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}
