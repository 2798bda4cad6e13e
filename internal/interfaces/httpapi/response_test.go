package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantCode   int
		wantStatus string
	}{
		{err: fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput), wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{err: fmt.Errorf("%w: sport=CURLING", usecase.ErrNotFound), wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{err: fmt.Errorf("%w: player #12", usecase.ErrConflict), wantCode: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantStatus: "INTERNAL"},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, tc.err)

		if rec.Code != tc.wantCode {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.wantCode, rec.Code)
		}

		var body map[string]any
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
		errorObj, ok := body["error"].(map[string]any)
		if !ok {
			t.Fatalf("expected error object in response")
		}
		if got, _ := errorObj["status"].(string); got != tc.wantStatus {
			t.Fatalf("%v: expected error status %s, got %v", tc.err, tc.wantStatus, errorObj["status"])
		}
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("secret detail"))

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, _ := body["error"].(map[string]any)
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("expected generic message, got %q", got)
	}
}
