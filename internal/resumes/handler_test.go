package resumes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hireflow-backend/internal/bootstrap"
	"hireflow-backend/internal/extract"
	"hireflow-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func multipartBody(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + fieldName + `"; filename="` + fileName + `"`}
	header["Content-Type"] = []string{contentType}
	fileWriter, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create form part: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

type parseEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ParsedData struct {
			PersonalInfo struct {
				Email     string `json:"email"`
				FirstName string `json:"firstName"`
			} `json:"personalInfo"`
			Skills            []string `json:"skills"`
			NeedsManualReview bool     `json:"needsManualReview"`
		} `json:"parsedData"`
		FileURL       string `json:"fileUrl"`
		QualityReport struct {
			Issues    []string `json:"issues"`
			Strengths []string `json:"strengths"`
		} `json:"qualityReport"`
	} `json:"data"`
	Message string `json:"message"`
}

func TestParseEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body, contentType := multipartBody(t, "file", "resume.txt", "text/plain", []byte(sampleResumeText))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope parseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success=true")
	}
	if envelope.Data.ParsedData.PersonalInfo.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q", envelope.Data.ParsedData.PersonalInfo.Email)
	}
	if envelope.Data.FileURL == "" {
		t.Fatal("expected fileUrl")
	}
	if envelope.Data.ParsedData.NeedsManualReview {
		t.Fatal("expected clean parse")
	}
	if envelope.Message != "Resume parsed successfully" {
		t.Fatalf("message = %q", envelope.Message)
	}

	// History now holds one record.
	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	listReq.Header.Set("X-Guest-Id", "test-guest")
	listResp := httptest.NewRecorder()
	router.ServeHTTP(listResp, listReq)

	if listResp.Code != http.StatusOK {
		t.Fatalf("list expected 200, got %d", listResp.Code)
	}
	var records []struct {
		RecordID string `json:"recordId"`
		FileName string `json:"fileName"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 1 || records[0].FileName != "resume.txt" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestParseEndpointReparse(t *testing.T) {
	router := newTestRouter(t)

	body, contentType := multipartBody(t, "file", "resume.txt", "text/plain", []byte(sampleResumeText))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("parse expected 200, got %d", resp.Code)
	}

	var first parseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&first); err != nil {
		t.Fatalf("decode parse: %v", err)
	}

	payload, _ := json.Marshal(map[string]string{"fileUrl": first.Data.FileURL})
	reparseReq := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/reparse", bytes.NewReader(payload))
	reparseReq.Header.Set("Content-Type", "application/json")
	reparseReq.Header.Set("X-Guest-Id", "test-guest")
	reparseResp := httptest.NewRecorder()
	router.ServeHTTP(reparseResp, reparseReq)

	if reparseResp.Code != http.StatusOK {
		t.Fatalf("reparse expected 200, got %d: %s", reparseResp.Code, reparseResp.Body.String())
	}
	var second parseEnvelope
	if err := json.NewDecoder(reparseResp.Body).Decode(&second); err != nil {
		t.Fatalf("decode reparse: %v", err)
	}
	if second.Data.ParsedData.PersonalInfo.Email != first.Data.ParsedData.PersonalInfo.Email {
		t.Fatalf("email changed across reparse")
	}
}

func TestParseEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	// Missing file part.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing file expected 400, got %d", resp.Code)
	}

	// Unsupported media type.
	body, contentType := multipartBody(t, "file", "image.png", "image/png", []byte(sampleResumeText))
	req = httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unsupported type expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error code, got %s", resp.Body.String())
	}
}

func TestParseEndpointOversizedQuotesLimit(t *testing.T) {
	router := newTestRouter(t)

	// The last size overflows the request body cap itself, not just the
	// file limit; the limit must still be quoted.
	for _, size := range []int{extract.MaxFileSize + 1, 11 << 20, 13 << 20} {
		oversized := bytes.Repeat([]byte("a"), size)
		body, contentType := multipartBody(t, "file", "big.txt", "text/plain", oversized)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-Guest-Id", "test-guest")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("size %d: expected 400, got %d", size, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "10485760") {
			t.Fatalf("size %d: expected limit quoted in error, got %s", size, resp.Body.String())
		}
	}
}

func TestParseEndpointRequiresIdentity(t *testing.T) {
	router := newTestRouter(t)

	body, contentType := multipartBody(t, "file", "resume.txt", "text/plain", []byte(sampleResumeText))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}
}

func TestSupportedTypesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/supported-types", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		MediaTypes []string `json:"mediaTypes"`
		Extensions []string `json:"extensions"`
		MaxBytes   int      `json:"maxBytes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.MediaTypes) != 4 || len(payload.Extensions) != 4 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.MaxBytes != extract.MaxFileSize {
		t.Fatalf("maxBytes = %d", payload.MaxBytes)
	}
}
