package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tdhoang/vocadict-backend/internal/domain"
	"github.com/tdhoang/vocadict-backend/internal/service/importer"
)

type importFnMock struct {
	fn func(ctx context.Context, in importer.Input) (importer.Result, error)
}

func (m importFnMock) Import(ctx context.Context, in importer.Input) (importer.Result, error) {
	return m.fn(ctx, in)
}

func TestImport_OK(t *testing.T) {
	t.Parallel()

	svc := importFnMock{
		fn: func(_ context.Context, in importer.Input) (importer.Result, error) {
			if in.Word != "hello" {
				return importer.Result{}, fmt.Errorf("unexpected word %q", in.Word)
			}
			return importer.Result{Success: true, Word: in.Word}, nil
		},
	}
	h := NewImportHandler(svc, discardLogger())

	body := `{"word":"hello","definitions":[{"pos":"noun","definition_en":"a greeting"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp importer.Result
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Word != "hello" {
		t.Errorf("unexpected result: %+v", resp)
	}
}

func TestImport_BadBody(t *testing.T) {
	t.Parallel()

	svc := importFnMock{
		fn: func(context.Context, importer.Input) (importer.Result, error) {
			t.Error("service should not be called for a bad body")
			return importer.Result{}, nil
		},
	}
	h := NewImportHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestImport_PartialFailureTo500(t *testing.T) {
	t.Parallel()

	svc := importFnMock{
		fn: func(context.Context, importer.Input) (importer.Result, error) {
			return importer.Result{}, fmt.Errorf("import %q: definitions: %w", "hello", domain.ErrImportPartial)
		},
	}
	h := NewImportHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader(`{"word":"hello"}`))
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestTranslate_OK(t *testing.T) {
	t.Parallel()

	svc := translateFnMock{
		fn: func(_ context.Context, text, source, target string) (string, error) {
			if text != "good morning" || source != "en" || target != "vi" {
				return "", fmt.Errorf("unexpected args %q %q %q", text, source, target)
			}
			return "chào buổi sáng", nil
		},
	}
	h := NewTranslateHandler(svc, discardLogger())

	body := `{"text":"good morning","source_lang":"en","target_lang":"vi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Translate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp translateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Translation != "chào buổi sáng" {
		t.Errorf("unexpected translation %q", resp.Translation)
	}
}

func TestTranslate_EmptyText(t *testing.T) {
	t.Parallel()

	svc := translateFnMock{
		fn: func(context.Context, string, string, string) (string, error) {
			t.Error("service should not be called for empty text")
			return "", nil
		},
	}
	h := NewTranslateHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"text":"  "}`))
	rec := httptest.NewRecorder()

	h.Translate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

type translateFnMock struct {
	fn func(ctx context.Context, text, source, target string) (string, error)
}

func (m translateFnMock) Translate(ctx context.Context, text, source, target string) (string, error) {
	return m.fn(ctx, text, source, target)
}
