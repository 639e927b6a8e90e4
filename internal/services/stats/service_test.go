package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"grabbber/internal/services/revenue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Counts(ctx context.Context, keys ...string) (map[string]int64, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func TestService_Record(t *testing.T) {
	tests := []struct {
		name      string
		record    func(Service) error
		setupMock func(*MockStore)
		wantErr   error
	}{
		{
			name:   "selection",
			record: func(s Service) error { return s.RecordSelection(context.Background(), revenue.Tier1MTo10M) },
			setupMock: func(m *MockStore) {
				m.On("Incr", mock.Anything, "stats:selection:1m-10m").Return(int64(4), nil)
			},
		},
		{
			name:   "inquiry",
			record: func(s Service) error { return s.RecordInquiry(context.Background(), revenue.Tier50MTo100M) },
			setupMock: func(m *MockStore) {
				m.On("Incr", mock.Anything, "stats:inquiry:50m-100m").Return(int64(1), nil)
			},
		},
		{
			name:    "invalid tier",
			record:  func(s Service) error { return s.RecordSelection(context.Background(), "bogus") },
			wantErr: revenue.ErrInvalidTier,
		},
		{
			name:   "store failure",
			record: func(s Service) error { return s.RecordInquiry(context.Background(), revenue.Tier500KTo1M) },
			setupMock: func(m *MockStore) {
				m.On("Incr", mock.Anything, "stats:inquiry:500k-1m").Return(int64(0), errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			if tt.setupMock != nil {
				tt.setupMock(store)
			}

			err := tt.record(NewService(store, nil))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestService_Snapshot(t *testing.T) {
	store := new(MockStore)
	store.On("Counts", mock.Anything, mock.Anything).Return(map[string]int64{
		"stats:selection:500k-1m": 10,
		"stats:selection:1m-10m":  5,
		"stats:inquiry:1m-10m":    2,
	}, nil)

	svc := NewService(store, nil).(*service)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(15), snap.TotalSelections)
	assert.Equal(t, int64(2), snap.TotalInquiries)
	assert.Equal(t, int64(10), snap.Selections[revenue.Tier500KTo1M])
	assert.Equal(t, int64(0), snap.Selections[revenue.Tier50MTo100M])
	assert.Len(t, snap.Selections, 5)
	assert.Len(t, snap.Inquiries, 5)
	assert.Equal(t, fixed, snap.TakenAt)

	keys := store.Calls[0].Arguments.Get(1).([]string)
	assert.Len(t, keys, 10)
}

func TestService_SnapshotError(t *testing.T) {
	store := new(MockStore)
	store.On("Counts", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewService(store, nil).Snapshot(context.Background())
	assert.Error(t, err)
}
