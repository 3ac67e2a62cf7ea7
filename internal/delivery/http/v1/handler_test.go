package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/response"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func newRouter(t *testing.T, sender email.Sender, health usecase.HealthUsecase) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		FrontendURL:             "https://alvaro.dev",
		SMTPFromEmail:           "site@gmail.com",
		ContactEmailTo:          "owner@example.com",
		ContactMinMessageLength: 10,
		EmailTemplate:           email.ThemeClassic,
		OwnerName:               "Álvaro",
		OwnerTitle:              "Full Stack Developer",
		GitHubURL:               "https://github.com/TiL3Ss",
	}
	v := validation.New()

	svc, err := email.NewEmailService(cfg, sender)
	require.NoError(t, err)
	repo, err := catalog.NewDefaultRepository(v)
	require.NoError(t, err)
	if health == nil {
		health = usecase.NewHealthUsecase(nil)
	}

	return v1.NewRouter(v1.RouterDeps{
		ContactUC:   usecase.NewContactUsecase(svc, nil, v, cfg.ContactMinMessageLength),
		PortfolioUC: usecase.NewPortfolioUsecase(repo, v, cfg),
		HealthUC:    health,
		Config:      cfg,
	})
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeRaw(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const validBody = `{"name":"Ana","email":"ana@example.com","subject":"Hi","message":"Hello there, loved your work"}`

func TestSubmitContactSuccess(t *testing.T) {
	sender := new(MockSender)
	var sent []*email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("*email.Message")).Return(nil).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(*email.Message))
	})
	r := newRouter(t, sender, nil)

	w := postContact(r, validBody)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeRaw(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
	assert.NotContains(t, body, "error")

	require.Len(t, sent, 2)
	assert.Equal(t, "owner@example.com", sent[0].To)
	assert.Equal(t, "ana@example.com", sent[0].ReplyTo)
	assert.Equal(t, "ana@example.com", sent[1].To)
}

func TestSubmitContactValidation(t *testing.T) {
	sender := new(MockSender)
	r := newRouter(t, sender, nil)

	cases := map[string]struct {
		body    string
		message string
	}{
		"missing name":     {`{"email":"ana@example.com","subject":"Hi","message":"Hello there, loved your work"}`, usecase.MsgAllFieldsRequired},
		"blank subject":    {`{"name":"Ana","email":"ana@example.com","subject":"  ","message":"Hello there, loved your work"}`, usecase.MsgAllFieldsRequired},
		"empty object":     {`{}`, usecase.MsgAllFieldsRequired},
		"malformed email":  {`{"name":"Ana","email":"ana@example","subject":"Hi","message":"Hello there, loved your work"}`, usecase.MsgInvalidEmail},
		"short message":    {`{"name":"Ana","email":"ana@example.com","subject":"Hi","message":"Hey"}`, "Message must be at least 10 characters"},
		"not json":         {`name=Ana`, "Invalid request body"},
		"wrong field type": {`{"name":42,"email":"ana@example.com","subject":"Hi","message":"Hello there, loved your work"}`, "Invalid request body"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := postContact(r, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeRaw(t, w)
			assert.Equal(t, tc.message, body["error"])
			assert.Equal(t, false, body["success"])
		})
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitContactDeliveryFailure(t *testing.T) {
	t.Run("first send throws", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("535 5.7.8 bad credentials")).Once()
		r := newRouter(t, sender, nil)

		w := postContact(r, validBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "535")
		assert.NotContains(t, w.Body.String(), "notification")
		assert.Equal(t, usecase.MsgSendFailed, decodeRaw(t, w)["error"])
	})

	t.Run("second send throws after first succeeded", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
		r := newRouter(t, sender, nil)

		w := postContact(r, validBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "confirmation")
		sender.AssertNumberOfCalls(t, "Send", 2)
	})
}

func TestSubmitContactTrimsEmail(t *testing.T) {
	sender := new(MockSender)
	var sent []*email.Message
	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(*email.Message))
	})
	r := newRouter(t, sender, nil)

	w := postContact(r, `{"name":"Ana","email":" ana@example.com ","subject":"Hi","message":"Hello there, loved your work"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sent, 2)
	assert.Equal(t, "ana@example.com", sent[1].To)
}

func TestSubmitContactFailureLoggedOnce(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay timeout")).Once()
	r := newRouter(t, sender, nil)

	require.Equal(t, http.StatusInternalServerError, postContact(r, validBody).Code)

	var causes []observer.LoggedEntry
	for _, entry := range logs.All() {
		if msg, ok := entry.ContextMap()["error"].(string); ok && strings.Contains(msg, "relay timeout") {
			causes = append(causes, entry)
		}
	}
	require.Len(t, causes, 1)
	assert.Contains(t, causes[0].ContextMap()["error"], "confirmation email")
}

func TestSubmitContactTwiceSendsTwice(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	r := newRouter(t, sender, nil)

	assert.Equal(t, http.StatusOK, postContact(r, validBody).Code)
	assert.Equal(t, http.StatusOK, postContact(r, validBody).Code)
	sender.AssertNumberOfCalls(t, "Send", 4)
}

func TestSubmitContactPreservesLineBreaks(t *testing.T) {
	sender := new(MockSender)
	var sent []*email.Message
	sender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(*email.Message))
	})
	r := newRouter(t, sender, nil)

	body := `{"name":"Ana","email":"ana@example.com","subject":"Hi","message":"First line\nSecond line\nThird line"}`
	require.Equal(t, http.StatusOK, postContact(r, body).Code)

	require.Len(t, sent, 2)
	for _, msg := range sent {
		assert.Contains(t, msg.HTML, "First line<br>Second line<br>Third line")
	}
}

func TestPortfolioEndpoints(t *testing.T) {
	r := newRouter(t, new(MockSender), nil)

	t.Run("list projects", func(t *testing.T) {
		w := get(r, "/v1/projects?category=api")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool             `json:"success"`
			Data    []domain.Project `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Len(t, body.Data, 2)
	})

	t.Run("unknown filter", func(t *testing.T) {
		w := get(r, "/v1/projects?status=abandoned")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get project", func(t *testing.T) {
		w := get(r, "/v1/projects/file-processor")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"planning"`)
	})

	t.Run("missing project", func(t *testing.T) {
		w := get(r, "/v1/projects/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
		var body response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Project not found", body.Error)
	})

	t.Run("tech stack", func(t *testing.T) {
		w := get(r, "/v1/tech-stack")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "GitHub Actions")
	})

	t.Run("profile", func(t *testing.T) {
		w := get(r, "/v1/profile")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "https://github.com/TiL3Ss")
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(r, "/v1/nope").Code)
	})
}

func TestHealth(t *testing.T) {
	w := get(newRouter(t, new(MockSender), nil), "/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "disabled", decodeRaw(t, w)["database"])

	w = get(newRouter(t, new(MockSender), usecase.NewHealthUsecase(fakePinger{})), "/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeRaw(t, w)["database"])

	w = get(newRouter(t, new(MockSender), usecase.NewHealthUsecase(fakePinger{err: errors.New("down")})), "/v1/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unreachable", decodeRaw(t, w)["database"])
}
