package iocache

import (
	"context"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordStore is a mock implementation of RecordStore for testing.
type MockRecordStore struct {
	mock.Mock
}

var _ contract.RecordStore = &MockRecordStore{} // Compile-time check

// FetchAll implements the RecordReader interface.
func (m *MockRecordStore) FetchAll(ctx context.Context) ([]schema.RawRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.RawRecord)
	return records, args.Error(1)
}

// FetchActions implements the ActionReader interface.
func (m *MockRecordStore) FetchActions(ctx context.Context) ([]schema.RemedialAction, error) {
	args := m.Called(ctx)
	actions, _ := args.Get(0).([]schema.RemedialAction)
	return actions, args.Error(1)
}

// InsertRecord implements the RecordStore interface.
func (m *MockRecordStore) InsertRecord(ctx context.Context, r schema.RawRecord) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

// InsertAction implements the RecordStore interface.
func (m *MockRecordStore) InsertAction(ctx context.Context, a schema.RemedialAction) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

// GetStatus implements the RecordStore interface.
func (m *MockRecordStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the RecordStore interface.
func (m *MockRecordStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
