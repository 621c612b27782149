// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_PostsMessage(t *testing.T) {
	var (
		gotPath, gotAuth, gotMethod string
		gotBody                     map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotAuth, gotMethod = r.URL.Path, r.Header.Get("Authorization"), r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := NewMailNotifier(
		NewComposer("http://localhost:3000/auth", "from@example.com"),
		NewHTTPSender(config.Notifier{Address: srv.URL, APIKey: "key", RequestTimeout: time.Second}),
	)

	err := n.SendConfirmation(context.Background(), models.AccountMail{Name: "Ana", Email: "ana@example.com", Token: "tok"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, sendPath, gotPath)
	assert.Equal(t, "Bearer key", gotAuth)
	assert.Equal(t, "ana@example.com", gotBody["to"])
	assert.Equal(t, "from@example.com", gotBody["from"])
	assert.Equal(t, confirmationTitle, gotBody["subject"])
	assert.Contains(t, gotBody["text"], "/confirmar/tok")
	assert.NotContains(t, gotBody, "Kind")
}

func TestHTTPSender_RejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	n := NewMailNotifier(NewComposer("http://x/auth", "f"), NewHTTPSender(config.Notifier{Address: srv.URL}))

	err := n.SendPasswordReset(context.Background(), models.AccountMail{Email: "ana@example.com", Token: "tok"})
	assert.ErrorIs(t, err, ErrMailRejected)
}

func TestHTTPSender_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	sender := NewHTTPSender(config.Notifier{Address: addr, RequestTimeout: time.Second})

	err := sender.Send(context.Background(), models.OutgoingMail{To: "ana@example.com"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMailRejected))
}

func TestLogSender_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	n := NewMailNotifier(NewComposer("http://localhost:3000/auth", "f"), NewLogSender(log))

	require.NoError(t, n.SendPasswordReset(context.Background(), models.AccountMail{Name: "Ana", Email: "ana@example.com", Token: "tok"}))

	out := buf.String()
	assert.Contains(t, out, `"kind":"password_reset"`)
	assert.Contains(t, out, `"to":"ana@example.com"`)
	assert.Contains(t, out, "/olvide-password/tok")
}

func TestLogSender_TokenOnlyAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	n := NewMailNotifier(NewComposer("http://localhost:3000/auth", "f"), NewLogSender(log))

	require.NoError(t, n.SendConfirmation(context.Background(), models.AccountMail{Name: "Ana", Email: "ana@example.com", Token: "secret-tok"}))

	out := buf.String()
	assert.Contains(t, out, `"kind":"confirmation"`)
	assert.Contains(t, out, `"to":"ana@example.com"`)
	assert.NotContains(t, out, "secret-tok")
}

type failingSender struct{ err error }

func (f failingSender) Send(context.Context, models.OutgoingMail) error { return f.err }

func TestMailNotifier_WrapsSenderError(t *testing.T) {
	boom := errors.New("boom")
	n := NewMailNotifier(NewComposer("http://x/auth", "f"), failingSender{err: boom})

	err := n.SendConfirmation(context.Background(), models.AccountMail{})
	assert.ErrorIs(t, err, boom)
}

func TestNew_PicksSender(t *testing.T) {
	httpNotifier := New(config.Notifier{Address: "http://mail.example"}, "http://x/auth", logger.Nop()).(*mailNotifier)
	assert.IsType(t, &httpSender{}, httpNotifier.sender)

	logNotifier := New(config.Notifier{}, "http://x/auth", logger.Nop()).(*mailNotifier)
	assert.IsType(t, &logSender{}, logNotifier.sender)
}
