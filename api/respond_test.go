package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aargomedo/astracore-backend/errs"
)

func TestWriteJSONWithStatusSetsContentTypeBeforeStatus(t *testing.T) {
	t.Parallel()

	responder := NewResponder(zerolog.Nop())

	rec := httptest.NewRecorder()
	responder.WriteJSONWithStatus(rec, http.StatusCreated, map[string]string{"status": "success"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}

func TestWriteErrorCarriesStatusAndDetails(t *testing.T) {
	t.Parallel()

	responder := NewResponder(zerolog.Nop())

	rec := httptest.NewRecorder()
	responder.WriteError(rec, errs.NewMissingRequiredFieldError("title"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "title", body["field"])
}

func TestWriteErrorMasksUnexpectedErrors(t *testing.T) {
	t.Parallel()

	responder := NewResponder(zerolog.Nop())

	rec := httptest.NewRecorder()
	responder.WriteError(rec, errors.New("pg: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "password")
}
