package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/mocks"
	"github.com/dtroode/carlisting-server/internal/testutil"
)

func TestImage_Get(t *testing.T) {
	t.Run("streams with content type", func(t *testing.T) {
		svc := mocks.NewCarService(t)
		svc.On("GetImage", mock.Anything, "1_abcd1234_front.png").Return(io.NopCloser(strings.NewReader("png-bytes")), nil)
		h := NewImage(svc, testutil.MakeNoopLogger())

		rec := serve(newTestEcho(), httptest.NewRequest(http.MethodGet, "/uploads/1_abcd1234_front.png", nil), h.Get,
			map[string]string{"key": "1_abcd1234_front.png"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", readAll(t, rec.Body))
	})

	t.Run("missing", func(t *testing.T) {
		svc := mocks.NewCarService(t)
		svc.On("GetImage", mock.Anything, "gone.jpg").Return(nil, apierror.NewErrImageNotFound("gone.jpg"))
		h := NewImage(svc, testutil.MakeNoopLogger())

		rec := serve(newTestEcho(), httptest.NewRequest(http.MethodGet, "/uploads/gone.jpg", nil), h.Get,
			map[string]string{"key": "gone.jpg"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealth_Get(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "db down", pingErr: errors.New("refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mocks.NewPinger(t)
			db.On("Ping", mock.Anything).Return(tt.pingErr)
			h := NewHealth(db, testutil.MakeNoopLogger())

			rec := serve(newTestEcho(), httptest.NewRequest(http.MethodGet, "/health", nil), h.Get, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
