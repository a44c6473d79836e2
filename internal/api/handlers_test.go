package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"academiclint/internal/config"
	"academiclint/internal/lerr"
	"academiclint/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer("127.0.0.1:0", config.Default(), logging.NewDiscard())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	testCases := []struct {
		path string
		want string
	}{
		{"/health", "ok"},
		{"/ready", "ready"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodGet, tc.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["status"] != tc.want {
				t.Errorf("status = %q, want %q", body["status"], tc.want)
			}
		})
	}
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/version", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["version"] == "" {
		t.Error("empty version")
	}
}

func TestDomainsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/domains", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Domains []domainInfo `json:"domains"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Domains) == 0 {
		t.Fatal("no domains returned")
	}

	found := false
	for _, d := range body.Domains {
		if d.Name == "philosophy" {
			found = true
			if d.TermCount == 0 {
				t.Error("philosophy has no terms")
			}
		}
	}
	if !found {
		t.Error("philosophy missing from domain list")
	}
}

func TestDomainsEndpointMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/domains", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestCheckEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{"text": "In today's society, many things are very important."}`
	rec := doRequest(t, s, http.MethodPost, "/check", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var res struct {
		ID      string `json:"id"`
		Summary struct {
			Density   float64 `json:"density"`
			FlagCount int     `json:"flagCount"`
			Grade     string  `json:"grade"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(res.ID, "check_") {
		t.Errorf("id = %q", res.ID)
	}
	if res.Summary.FlagCount == 0 {
		t.Error("expected flags for vague text")
	}
	if res.Summary.Grade == "" {
		t.Error("empty grade")
	}
}

func TestCheckEndpointWithOverrides(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"text": "The impact on society was significant.",
		"config": {"level": "strict", "domainTerms": ["impact", "society", "significant"]}
	}`
	rec := doRequest(t, s, http.MethodPost, "/check", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Summary struct {
			FlagCount int `json:"flagCount"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Summary.FlagCount != 0 {
		t.Errorf("flag count = %d with all terms exempted", res.Summary.FlagCount)
	}
}

func TestCheckEndpointErrors(t *testing.T) {
	s := newTestServer(t)

	testCases := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantCode   lerr.ErrorCode
	}{
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			body:       "",
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   lerr.ValidationFailed,
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantCode:   lerr.ValidationFailed,
		},
		{
			name:       "empty text",
			method:     http.MethodPost,
			body:       `{"text": ""}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   lerr.ValidationFailed,
		},
		{
			name:       "unknown level",
			method:     http.MethodPost,
			body:       `{"text": "Some text.", "config": {"level": "casual"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown domain",
			method:     http.MethodPost,
			body:       `{"text": "Some text.", "config": {"domain": "astrology"}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, tc.method, "/check", tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if tc.wantCode != "" && resp.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tc.wantCode)
			}
			if resp.Message == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestRequestConfigNilOverride(t *testing.T) {
	s := newTestServer(t)

	cfg, err := s.requestConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level != s.baseCfg.Level || cfg.MinDensity != s.baseCfg.MinDensity {
		t.Errorf("base config not preserved: %+v", cfg)
	}
}
