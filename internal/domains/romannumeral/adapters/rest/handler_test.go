package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"romannumeral/go-backend/internal/domains/romannumeral/model"
	"romannumeral/go-backend/internal/domains/romannumeral/usecase"
	"romannumeral/go-backend/pkg/models"
)

type fakeRecorder struct {
	requests int
	errors   map[string]int
}

func (f *fakeRecorder) RecordRequest() { f.requests++ }

func (f *fakeRecorder) RecordError(kind string) {
	if f.errors == nil {
		f.errors = map[string]int{}
	}
	f.errors[kind]++
}

func newTestHandler(rec Recorder) *Handler {
	h := NewHandler(usecase.NewService(), rec, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	h.now = func() time.Time { return time.Date(2021, 2, 15, 10, 30, 0, 0, time.UTC) }
	return h
}

func TestHandlerSuccess(t *testing.T) {
	cases := map[string]models.RomanNumeral{
		"/romannumeral?query=3999": {Input: "3999", Output: "MMMCMXCIX"},
		"/romannumeral?query=123":  {Input: "123", Output: "CXXIII"},
		"/romannumeral?query=1000": {Input: "1000", Output: "M"},
	}
	for target, want := range cases {
		rec := &fakeRecorder{}
		w := httptest.NewRecorder()
		newTestHandler(rec).ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d body=%s", target, w.Code, w.Body.String())
		}
		var got models.RomanNumeral
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		if got != want {
			t.Fatalf("%s: got %+v want %+v", target, got, want)
		}
		if rec.requests != 1 || len(rec.errors) != 0 {
			t.Fatalf("%s: unexpected counters %+v", target, rec)
		}
	}
}

func TestHandlerErrors(t *testing.T) {
	cases := []struct {
		target     string
		wantStatus int
		wantCode   int
		wantKind   string
	}{
		{"/romannumeral?query=", http.StatusBadRequest, 1, "missing_input"},
		{"/romannumeral?query=%20%20%20", http.StatusBadRequest, 1, "missing_input"},
		{"/romannumeral", http.StatusBadRequest, 1, "missing_input"},
		{"/romannumeral?query=2.5", http.StatusUnprocessableEntity, 2, "malformed_integer"},
		{"/romannumeral?query=ab123", http.StatusUnprocessableEntity, 2, "malformed_integer"},
		{"/romannumeral?query=0", http.StatusUnprocessableEntity, 3, "out_of_range"},
		{"/romannumeral?query=4000", http.StatusUnprocessableEntity, 3, "out_of_range"},
		{"/romannumeral?query=-10", http.StatusUnprocessableEntity, 3, "out_of_range"},
	}
	for _, tc := range cases {
		rec := &fakeRecorder{}
		w := httptest.NewRecorder()
		newTestHandler(rec).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.target, nil))

		if w.Code != tc.wantStatus {
			t.Fatalf("%s: status=%d want %d", tc.target, w.Code, tc.wantStatus)
		}
		var details models.ErrorDetails
		if err := json.Unmarshal(w.Body.Bytes(), &details); err != nil {
			t.Fatalf("%s: decode: %v", tc.target, err)
		}
		if details.ErrorCode != tc.wantCode {
			t.Fatalf("%s: errorCode=%d want %d", tc.target, details.ErrorCode, tc.wantCode)
		}
		if details.Message == "" {
			t.Fatalf("%s: empty message", tc.target)
		}
		if details.Details != "uri=/romannumeral" {
			t.Fatalf("%s: details=%q", tc.target, details.Details)
		}
		if details.Timestamp != "2021-02-15T10:30:00.000Z" {
			t.Fatalf("%s: timestamp=%q", tc.target, details.Timestamp)
		}
		if rec.requests != 1 || rec.errors[tc.wantKind] != 1 {
			t.Fatalf("%s: unexpected counters %+v", tc.target, rec)
		}
	}
}

func TestHandlerRejectsNonGet(t *testing.T) {
	rec := &fakeRecorder{}
	w := httptest.NewRecorder()
	newTestHandler(rec).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/romannumeral?query=1", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d", w.Code)
	}
	if got := w.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow=%q", got)
	}
	if rec.requests != 0 {
		t.Fatal("rejected methods must not count as conversion requests")
	}
}

func TestHandlerWithoutRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	newTestHandler(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/romannumeral?query=x", nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestStatusForUnexpected(t *testing.T) {
	if got := StatusFor(0); got != http.StatusInternalServerError {
		t.Fatalf("status=%d", got)
	}
}

type unexpectedConverter struct{}

func (unexpectedConverter) Convert(raw string) model.ConversionResult {
	return model.Failed(raw, model.KindUnexpected, "internal failure")
}

func rejectionLevel(t *testing.T, converter Converter, target string) string {
	t.Helper()
	var buf bytes.Buffer
	h := NewHandler(converter, nil, slog.New(slog.NewJSONHandler(&buf, nil)))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		if entry["msg"] == "conversion rejected" {
			level, _ := entry["level"].(string)
			return level
		}
	}
	t.Fatalf("%s: no rejection logged in %q", target, buf.String())
	return ""
}

func TestHandlerLogsClientFailuresAtWarn(t *testing.T) {
	for _, target := range []string{"/romannumeral", "/romannumeral?query=2.5", "/romannumeral?query=4000"} {
		if got := rejectionLevel(t, usecase.NewService(), target); got != "WARN" {
			t.Fatalf("%s: level=%q want WARN", target, got)
		}
	}
	if got := rejectionLevel(t, unexpectedConverter{}, "/romannumeral?query=1"); got != "ERROR" {
		t.Fatalf("unexpected failure: level=%q want ERROR", got)
	}
}
