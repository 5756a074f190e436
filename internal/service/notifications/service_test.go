package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AuditoriumService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-AuditoriumService/internal/infra/storage/notification"
)

type fakeNotificationRepo struct {
	byID    map[int64]*domain.Notification
	unread  []*domain.Notification
	listErr error
	markErr error

	markedIDs []int64
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id int64) (*domain.Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, notificationRepo.ErrNotificationNotFound
	}
	return n, nil
}

func (f *fakeNotificationRepo) ListUnreadByRecipient(_ context.Context, _ string) ([]*domain.Notification, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.unread, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	if _, ok := f.byID[id]; !ok {
		return notificationRepo.ErrNotificationNotFound
	}
	f.markedIDs = append(f.markedIDs, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func notification(id int64, email string) *domain.Notification {
	return &domain.Notification{
		ID:        id,
		UserEmail: email,
		Message:   "Your booking 'Spring Concert' on Apr 12, 2025 has been approved.",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, int(id), 0, time.UTC),
	}
}

func TestGetUnread(t *testing.T) {
	repo := &fakeNotificationRepo{
		unread: []*domain.Notification{
			notification(2, "teacher@school.edu"),
			notification(1, "teacher@school.edu"),
		},
	}
	svc := NewService(repo, false, nopLogger{})

	resp, err := svc.GetUnread(context.Background(), "teacher@school.edu")
	require.NoError(t, err)

	// Порядок репозитория (свежие первыми) сохраняется
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(2), resp.Notifications[0].ID)
	assert.Equal(t, int64(1), resp.Notifications[1].ID)
	assert.Nil(t, resp.Notifications[0].ReadAt)
}

func TestGetUnread_EmptyEmail(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, false, nopLogger{})

	_, err := svc.GetUnread(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUnread_RepositoryError(t *testing.T) {
	repo := &fakeNotificationRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, false, nopLogger{})

	_, err := svc.GetUnread(context.Background(), "teacher@school.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestMarkRead_WithoutOwnershipCheck(t *testing.T) {
	repo := &fakeNotificationRepo{
		byID: map[int64]*domain.Notification{
			7: notification(7, "owner@school.edu"),
		},
	}
	svc := NewService(repo, false, nopLogger{})

	// Проверка владельца выключена: чужой вызов с известным ID проходит
	err := svc.MarkRead(context.Background(), 7, "someone-else@school.edu")
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.markedIDs)
}

func TestMarkRead_OwnershipEnforced(t *testing.T) {
	repo := &fakeNotificationRepo{
		byID: map[int64]*domain.Notification{
			7: notification(7, "owner@school.edu"),
		},
	}
	svc := NewService(repo, true, nopLogger{})

	err := svc.MarkRead(context.Background(), 7, "someone-else@school.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, repo.markedIDs)

	err = svc.MarkRead(context.Background(), 7, "owner@school.edu")
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.markedIDs)
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{byID: map[int64]*domain.Notification{}}, false, nopLogger{})

	err := svc.MarkRead(context.Background(), 999, "teacher@school.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkRead_InvalidID(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, false, nopLogger{})

	err := svc.MarkRead(context.Background(), 0, "teacher@school.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
