//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errLogsDown = errors.New("logs collection unavailable")

type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	docs, _ := args.Get(0).([]*repository.LogEntryDocument)
	return docs, args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func addItemEntry() *model.LogEntry {
	return &model.LogEntry{
		Level:      "info",
		Message:    "cart action " + ActionAddItem,
		RequestID:  "req-1",
		SessionID:  "s1",
		ActionType: ActionAddItem,
		Outcome:    string(model.OutcomeApplied),
		Fields:     map[string]interface{}{"product_id": "B1"},
	}
}

func TestLoggingService_CreateLog(t *testing.T) {
	fixed := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		entry     *model.LogEntry
		repoErr   error
		check     func(*testing.T, *repository.LogEntryDocument)
		wantError bool
	}{
		{
			name:  "fills id and timestamp",
			entry: addItemEntry(),
			check: func(t *testing.T, doc *repository.LogEntryDocument) {
				assert.False(t, doc.ID.IsZero())
				assert.False(t, doc.Timestamp.IsZero())
				assert.Equal(t, ActionAddItem, doc.ActionType)
				assert.Equal(t, "B1", doc.Fields["product_id"])
			},
		},
		{
			name: "keeps an existing id and timestamp",
			entry: &model.LogEntry{
				ID:        id,
				Timestamp: fixed,
				Level:     "warn",
				Message:   "cart action " + ActionAdjustQuantity,
			},
			check: func(t *testing.T, doc *repository.LogEntryDocument) {
				assert.Equal(t, id, doc.ID)
				assert.Equal(t, fixed, doc.Timestamp)
			},
		},
		{
			name:      "wraps repository errors",
			entry:     addItemEntry(),
			repoErr:   errLogsDown,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLogsRepository)
			var written *repository.LogEntryDocument
			repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				written = args.Get(1).(*repository.LogEntryDocument)
			}).Return(tt.repoErr)

			err := NewLoggingService(repo).CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errLogsDown)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, written)
			assert.Equal(t, tt.entry.ID, written.ID, "id is filled in place")
			tt.check(t, written)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	tests := []struct {
		name      string
		entries   []*model.LogEntry
		repoErr   error
		wantDocs  int
		wantWrite bool
		wantError bool
	}{
		{name: "writes the batch at once", entries: []*model.LogEntry{addItemEntry(), addItemEntry()}, wantDocs: 2, wantWrite: true},
		{name: "skips nil entries", entries: []*model.LogEntry{nil, addItemEntry(), nil}, wantDocs: 1, wantWrite: true},
		{name: "empty batch is a no-op", entries: nil},
		{name: "batch of nils is a no-op", entries: []*model.LogEntry{nil}},
		{name: "wraps repository errors", entries: []*model.LogEntry{addItemEntry()}, repoErr: errLogsDown, wantDocs: 1, wantWrite: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLogsRepository)
			repo.On("CreateMany", mock.Anything, mock.Anything).Return(tt.repoErr)

			err := NewLoggingService(repo).CreateLogs(context.Background(), tt.entries)

			if tt.wantError {
				assert.ErrorIs(t, err, errLogsDown)
			} else {
				assert.NoError(t, err)
			}
			if !tt.wantWrite {
				repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
				return
			}
			repo.AssertCalled(t, "CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
				return len(docs) == tt.wantDocs
			}))
		})
	}
}

func TestLoggingService_QueryLogs(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name      string
		opts      model.LogQueryOptions
		docs      []*repository.LogEntryDocument
		repoErr   error
		wantCount int
		wantError bool
	}{
		{
			name: "passes every filter through",
			opts: model.LogQueryOptions{
				RequestID:  "req-1",
				SessionID:  "s1",
				ActionType: ActionCheckout,
				Outcome:    "failed",
				Level:      "warn",
				StartTime:  &start,
				EndTime:    &end,
				Limit:      10,
				Skip:       20,
			},
			docs: []*repository.LogEntryDocument{
				{ID: primitive.NewObjectID(), SessionID: "s1", ActionType: ActionCheckout},
			},
			wantCount: 1,
		},
		{
			name:      "no matches returns an empty slice",
			opts:      model.LogQueryOptions{SessionID: "unknown"},
			wantCount: 0,
		},
		{
			name:      "wraps repository errors",
			opts:      model.LogQueryOptions{Level: "error"},
			repoErr:   errLogsDown,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLogsRepository)
			repo.On("Query", mock.Anything, toRepositoryQuery(tt.opts)).Return(tt.docs, tt.repoErr)

			entries, err := NewLoggingService(repo).QueryLogs(context.Background(), tt.opts)

			if tt.wantError {
				assert.ErrorIs(t, err, errLogsDown)
				assert.Nil(t, entries)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Len(t, entries, tt.wantCount)
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CountLogs(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		repoErr   error
		wantCount int64
	}{
		{name: "returns the repository count", count: 42, wantCount: 42},
		{name: "wraps repository errors", repoErr: errLogsDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLogsRepository)
			opts := model.LogQueryOptions{SessionID: "s1", ActionType: ActionDeleteItem}
			repo.On("Count", mock.Anything, toRepositoryQuery(opts)).Return(tt.count, tt.repoErr)

			count, err := NewLoggingService(repo).CountLogs(context.Background(), opts)

			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestDocumentConversionRoundTrip(t *testing.T) {
	entry := addItemEntry()
	entry.Method = "POST"
	entry.Path = "/api/cart/items"
	entry.StatusCode = 200
	entry.Duration = 12

	doc := toDocument(entry)
	back := fromDocument(doc)

	assert.Equal(t, *entry, back)
}
