//go:build unit

package delivery_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"laborlink/internal/delivery"
	"laborlink/internal/domain/notification"
	"laborlink/internal/infra"
	"laborlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationReader struct {
	views map[uuid.UUID]*queries.NotificationView
}

func (f *fakeNotificationReader) FindByID(_ context.Context, id uuid.UUID) (*queries.NotificationView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return v, nil
}

type fakeStatusWriter struct {
	mu       sync.Mutex
	statuses map[uuid.UUID]notification.DeliveryStatus
}

func (f *fakeStatusWriter) UpdateDeliveryStatus(_ context.Context, id uuid.UUID, status notification.DeliveryStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]notification.DeliveryStatus)
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeStatusWriter) statusOf(id uuid.UUID) (notification.DeliveryStatus, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.statuses[id]
	return s, ok
}

type fakeContactStore struct {
	contacts map[uuid.UUID]*delivery.RecipientContact
}

func (f *fakeContactStore) FindContact(_ context.Context, userID uuid.UUID) (*delivery.RecipientContact, error) {
	c, ok := f.contacts[userID]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return c, nil
}

type fakeEmailSender struct {
	mu    sync.Mutex
	calls int
	fail  func(call int) error
}

func (f *fakeEmailSender) Send(context.Context, string, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail != nil {
		return f.fail(f.calls)
	}
	return nil
}

func (f *fakeEmailSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
}

func (f *fakePublisher) Publish(_ context.Context, topic string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakePushGateway struct {
	mu     sync.Mutex
	tokens []string
	err    error
}

func (f *fakePushGateway) Send(_ context.Context, deviceToken, _, _ string, _ map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, deviceToken)
	return f.err
}

type taskFixture struct {
	view     *queries.NotificationView
	reader   *fakeNotificationReader
	statuses *fakeStatusWriter
	contacts *fakeContactStore
	email    *fakeEmailSender
	realtime *fakePublisher
	push     *fakePushGateway
}

func newTaskFixture(contact *delivery.RecipientContact) *taskFixture {
	view := &queries.NotificationView{
		ID:          uuid.New(),
		RecipientID: contact.UserID,
		Type:        notification.TypeNewJobPosting.String(),
		Message:     "New Job Alert: A 'Plumbing' job is available.",
		Status:      notification.StatusSent.String(),
		CreatedAt:   time.Now(),
	}
	return &taskFixture{
		view:     view,
		reader:   &fakeNotificationReader{views: map[uuid.UUID]*queries.NotificationView{view.ID: view}},
		statuses: &fakeStatusWriter{},
		contacts: &fakeContactStore{contacts: map[uuid.UUID]*delivery.RecipientContact{contact.UserID: contact}},
		email:    &fakeEmailSender{},
		realtime: &fakePublisher{},
		push:     &fakePushGateway{},
	}
}

func (f *taskFixture) newTask() *delivery.Task {
	policy := delivery.BackoffPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	return delivery.NewTask(f.reader, f.statuses, f.contacts, f.email, f.realtime, f.push, policy, testLogger())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTaskRun(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("successful email marks notification delivered", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		f.newTask().Run(ctx, f.view.ID)

		assert.Equal(t, 1, f.email.callCount())
		status, ok := f.statuses.statusOf(f.view.ID)
		require.True(t, ok)
		assert.Equal(t, notification.StatusDelivered, status)
	})

	t.Run("transient email failure recovers within the budget", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		f.email.fail = func(call int) error {
			if call < 3 {
				return errors.New("smtp timeout")
			}
			return nil
		}
		f.newTask().Run(ctx, f.view.ID)

		assert.Equal(t, 3, f.email.callCount())
		status, ok := f.statuses.statusOf(f.view.ID)
		require.True(t, ok)
		assert.Equal(t, notification.StatusDelivered, status)
	})

	t.Run("exhausted retries leave status untouched", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		f.email.fail = func(int) error { return errors.New("smtp timeout") }
		f.newTask().Run(ctx, f.view.ID)

		assert.Equal(t, 3, f.email.callCount())
		_, ok := f.statuses.statusOf(f.view.ID)
		assert.False(t, ok)
	})

	t.Run("permanent rejection marks notification failed", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		f.email.fail = func(int) error { return delivery.Permanent(errors.New("mailbox does not exist")) }
		f.newTask().Run(ctx, f.view.ID)

		assert.Equal(t, 1, f.email.callCount())
		status, ok := f.statuses.statusOf(f.view.ID)
		require.True(t, ok)
		assert.Equal(t, notification.StatusFailed, status)
	})

	t.Run("missing email address skips the channel", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID})
		f.newTask().Run(ctx, f.view.ID)

		assert.Equal(t, 0, f.email.callCount())
		_, ok := f.statuses.statusOf(f.view.ID)
		assert.False(t, ok)
	})

	t.Run("realtime payload goes to the recipient topic", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		f.newTask().Run(ctx, f.view.ID)

		require.Len(t, f.realtime.topics, 1)
		assert.Equal(t, delivery.RecipientTopic(userID), f.realtime.topics[0])

		var payload map[string]any
		require.NoError(t, json.Unmarshal(f.realtime.payloads[0], &payload))
		assert.Equal(t, f.view.ID.String(), payload["id"])
		assert.Equal(t, f.view.Message, payload["message"])
		assert.Equal(t, false, payload["is_read"])
	})

	t.Run("push runs only when a device token is registered", func(t *testing.T) {
		token := "device-token-1"
		withToken := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com", DeviceToken: &token})
		withToken.newTask().Run(ctx, withToken.view.ID)
		require.Len(t, withToken.push.tokens, 1)
		assert.Equal(t, token, withToken.push.tokens[0])

		withoutToken := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		withoutToken.newTask().Run(ctx, withoutToken.view.ID)
		assert.Empty(t, withoutToken.push.tokens)
	})

	t.Run("unknown notification is abandoned", func(t *testing.T) {
		f := newTaskFixture(&delivery.RecipientContact{UserID: userID, Email: "worker@example.com"})
		f.newTask().Run(ctx, uuid.New())

		assert.Equal(t, 0, f.email.callCount())
		assert.Empty(t, f.realtime.topics)
	})
}

func TestRecipientTopic(t *testing.T) {
	id := uuid.MustParse("2b0e9f3c-58a1-4f46-9c39-6f2d35f9a111")
	assert.Equal(t, "user:2b0e9f3c-58a1-4f46-9c39-6f2d35f9a111:notifications", delivery.RecipientTopic(id))
}
