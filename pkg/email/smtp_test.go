package email

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestBuildMsgHeaders(t *testing.T) {
	m, err := buildMsg(&Message{
		From:    "site@gmail.com",
		To:      "owner@example.com",
		Subject: "New contact message: Hi",
		HTML:    "<p>Hello there</p>",
		ReplyTo: "ana@example.com",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "From: <site@gmail.com>")
	assert.Contains(t, raw, "To: <owner@example.com>")
	assert.Contains(t, raw, "Reply-To: <ana@example.com>")
	assert.Contains(t, raw, "Subject: New contact message: Hi")
	assert.Contains(t, raw, "Content-Type: text/html")
	assert.Contains(t, raw, "<p>Hello there</p>")
}

func TestBuildMsgWithoutReplyTo(t *testing.T) {
	m, err := buildMsg(&Message{From: "site@gmail.com", To: "ana@example.com", Subject: "Thanks", HTML: "<p>ok</p>"})
	require.NoError(t, err)
	assert.Empty(t, m.GetAddrHeaderString(mail.HeaderReplyTo))
	assert.Equal(t, []string{"<ana@example.com>"}, m.GetToString())
}

func TestBuildMsgSubjectCannotInjectHeaders(t *testing.T) {
	m, err := buildMsg(&Message{From: "site@gmail.com", To: "owner@example.com", Subject: "Hi\r\nBcc: x@y.z", HTML: "<p>x</p>"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "\r\nBcc: x@y.z")
}

func TestBuildMsgRejectsBadAddresses(t *testing.T) {
	cases := map[string]*Message{
		"from":      {From: "not an address", To: "owner@example.com"},
		"recipient": {From: "site@gmail.com", To: "owner@"},
		"reply-to":  {From: "site@gmail.com", To: "owner@example.com", ReplyTo: "ana at example"},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := buildMsg(msg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestSMTPSenderClient(t *testing.T) {
	cases := []struct {
		port     int
		implicit bool
	}{
		{port: 465, implicit: true},
		{port: 587, implicit: false},
		{port: 25, implicit: false},
	}
	for _, tc := range cases {
		s := NewSMTPSender(&config.Config{
			SMTPHost:           "smtp.gmail.com",
			SMTPPort:           tc.port,
			SMTPUsername:       "site@gmail.com",
			SMTPPassword:       "app-password",
			SMTPTimeoutSeconds: 10,
		})
		assert.Equal(t, tc.implicit, s.implicitTLS(), "port %d", tc.port)

		client, err := s.newClient()
		require.NoError(t, err)
		assert.Equal(t, "TLSMandatory", client.TLSPolicy(), "port %d", tc.port)
		assert.Equal(t, "smtp.gmail.com:"+strconv.Itoa(tc.port), client.ServerAddr())
	}
}

func TestSMTPSenderTimeoutFallback(t *testing.T) {
	s := NewSMTPSender(&config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: 587, SMTPTimeoutSeconds: 0})
	assert.Equal(t, config.DefaultSMTPTimeoutSeconds*time.Second, s.timeout)

	s = NewSMTPSender(&config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: 587, SMTPTimeoutSeconds: 7})
	assert.Equal(t, 7*time.Second, s.timeout)
}
