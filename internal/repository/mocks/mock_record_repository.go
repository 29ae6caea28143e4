package mocks

import (
	"context"

	"salarydash/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) LoadAll(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRecordRepository) Source() string {
	return "mock://records"
}

func (m *MockRecordRepository) Kind() string {
	return "mock"
}
