package mailer

import (
	"bytes"
	"errors"
	"testing"

	"solar-catalog-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	sent []*gomail.Message
	err  error
}

func (r *recordingSender) DialAndSend(m ...*gomail.Message) error {
	r.sent = append(r.sent, m...)
	return r.err
}

func TestSendContactNotification(t *testing.T) {
	sender := &recordingSender{}
	svc := NewEmailServiceWithSender(sender, "noreply@example.com", "Solar Catalog", "sales@example.com")

	err := svc.SendContactNotification(&entity.ContactMessage{
		Name:    "Budi <script>",
		Email:   "budi@example.com",
		Phone:   "0812",
		Message: "Need a quote\nfor 10 panels",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	m := sender.sent[0]
	assert.Equal(t, []string{"sales@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"budi@example.com"}, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Budi &lt;script&gt;")
}

func TestSendContactNotification_PropagatesError(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	svc := NewEmailServiceWithSender(sender, "noreply@example.com", "Solar Catalog", "sales@example.com")

	err := svc.SendContactNotification(&entity.ContactMessage{Name: "x"})
	assert.ErrorContains(t, err, "smtp down")
}
