package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []entity.ContactMessage
	err  error
}

func (m *recordingMailer) SendContactNotification(msg *entity.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, *msg)
	return m.err
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestContactService_Create(t *testing.T) {
	factory := newTestFactory(t)
	mail := &recordingMailer{}
	pub := &recordingPublisher{}
	svc := NewContactService(factory, mail, pub, nopLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateContactMessageRequest{
		Name:    " Ali ",
		Email:   "Ali@Example.com",
		Phone:   "+92 300 1234567",
		Message: "Need a quote for 10kW",
	})
	require.NoError(t, err)
	assert.Equal(t, "Message received", res.Message)

	assert.Eventually(t, func() bool { return mail.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{events.ContactReceived}, pub.types())

	list, err := svc.List(ctx, &dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list.Messages, 1)
	assert.Equal(t, res.Id, list.Messages[0].Id)
	assert.Equal(t, "Ali", list.Messages[0].Name)
	assert.Equal(t, "ali@example.com", list.Messages[0].Email)
	assert.Equal(t, int64(1), list.Total)
}

func TestContactService_CreateValidation(t *testing.T) {
	svc := NewContactService(newTestFactory(t), nil, &recordingPublisher{}, nopLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateContactMessageRequest{Name: "A", Email: "not-an-email", Phone: "1", Message: "m"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, &dto.CreateContactMessageRequest{Name: "A", Email: "a@b.co", Phone: "1", Message: "   "})
	requireStatus(t, err, http.StatusBadRequest)

	list, err := svc.List(ctx, &dto.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, list.Messages)
}

func TestContactService_MailFailureDoesNotFailRequest(t *testing.T) {
	mail := &recordingMailer{err: errBoom}
	svc := NewContactService(newTestFactory(t), mail, &recordingPublisher{}, nopLogger())

	_, err := svc.Create(context.Background(), &dto.CreateContactMessageRequest{Name: "A", Email: "a@b.co", Phone: "1", Message: "m"})
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return mail.count() == 1 }, time.Second, 10*time.Millisecond)
}
