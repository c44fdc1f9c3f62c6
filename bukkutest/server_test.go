package bukkutest

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type call struct {
	method string
	path   string
	body   string
	header map[string]string
}

func serve(t *testing.T, s *Server, c call) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
	req.Header.Set("Authorization", "Bearer "+DefaultToken)
	req.Header.Set("Company-Subdomain", DefaultSubdomain)
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s response %q: %v", c.method, c.path, w.Body.String(), err)
		}
	}
	return w.Code, out
}

func TestAuthentication(t *testing.T) {
	s := New()

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{name: "valid", want: http.StatusOK},
		{name: "bad token", header: map[string]string{"Authorization": "Bearer nope"}, want: http.StatusUnauthorized},
		{name: "bad subdomain", header: map[string]string{"Company-Subdomain": "other"}, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := serve(t, s, call{method: http.MethodGet, path: "/contacts", header: tt.header})
			if code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}

	if got := len(s.Requests()); got != 3 {
		t.Errorf("recorded %d requests, want 3", got)
	}
}

func TestCollectionLifecycle(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return fixed }))

	code, out := serve(t, s, call{method: http.MethodPost, path: "/sales/invoices", body: `{"contact_id":4,"status":"draft"}`})
	if code != http.StatusOK {
		t.Fatalf("create status = %d", code)
	}
	inv := out["transaction"].(map[string]any)
	if inv["id"].(float64) != 1 || inv["created_at"] != "2026-03-01 09:30:00" {
		t.Errorf("created = %v", inv)
	}

	code, out = serve(t, s, call{method: http.MethodPatch, path: "/sales/invoices/1", body: `{"status":"void"}`})
	if code != http.StatusOK {
		t.Fatalf("patch status = %d", code)
	}
	inv = out["transaction"].(map[string]any)
	if inv["status"] != "void" || inv["contact_id"].(float64) != 4 {
		t.Errorf("patched = %v", inv)
	}

	code, out = serve(t, s, call{method: http.MethodPut, path: "/sales/invoices/1", body: `{"contact_id":9}`})
	if code != http.StatusOK {
		t.Fatalf("put status = %d", code)
	}
	inv = out["transaction"].(map[string]any)
	if _, ok := inv["status"]; ok {
		t.Errorf("put kept fields it should replace: %v", inv)
	}
	if inv["id"].(float64) != 1 {
		t.Errorf("put lost the id: %v", inv)
	}

	if code, _ = serve(t, s, call{method: http.MethodDelete, path: "/sales/invoices/1"}); code != http.StatusNoContent {
		t.Fatalf("delete status = %d", code)
	}
	code, out = serve(t, s, call{method: http.MethodGet, path: "/sales/invoices/1"})
	if code != http.StatusNotFound || out["message"] != "Record not found." {
		t.Errorf("get after delete = %d %v", code, out)
	}
}

func TestListPagingAndSearch(t *testing.T) {
	s := New()
	for _, name := range []string{"Acme Trading", "Beta Supplies", "acme retail"} {
		s.Seed("/contacts", map[string]any{"legal_name": name})
	}
	s.Seed("/locations", map[string]any{"code": "HQ"})

	_, out := serve(t, s, call{method: http.MethodGet, path: "/contacts?search=ACME&page_size=1&page=2"})
	items := out["contacts"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["legal_name"] != "acme retail" {
		t.Errorf("items = %v", items)
	}
	paging := out["paging"].(map[string]any)
	if paging["current_page"].(float64) != 2 || paging["per_page"].(float64) != 1 || paging["total"].(float64) != 2 {
		t.Errorf("paging = %v", paging)
	}

	_, out = serve(t, s, call{method: http.MethodGet, path: "/locations"})
	paging = out["paging"].(map[string]any)
	if _, ok := paging["pageSize"]; !ok {
		t.Errorf("control panel paging = %v", paging)
	}

	_, out = serve(t, s, call{method: http.MethodGet, path: "/products/groups"})
	if _, ok := out["paging"]; ok {
		t.Errorf("product groups should not page: %v", out)
	}
}

func TestTagGroupCreateReturnsArray(t *testing.T) {
	s := New()
	_, out := serve(t, s, call{method: http.MethodPost, path: "/tags/groups", body: `{"name":"Region"}`})
	groups, ok := out["tag_group"].([]any)
	if !ok || len(groups) != 1 {
		t.Fatalf("tag_group = %v", out["tag_group"])
	}
}

func TestStubQueue(t *testing.T) {
	s := New()
	s.Stub(http.MethodGet, "/accounts/5", http.StatusInternalServerError, `{"message":"boom"}`)
	s.Stub(http.MethodGet, "/accounts/5", http.StatusOK, `{"account":{"id":5}}`)

	code, out := serve(t, s, call{method: http.MethodGet, path: "/accounts/5"})
	if code != http.StatusInternalServerError || out["message"] != "boom" {
		t.Errorf("first = %d %v", code, out)
	}
	code, _ = serve(t, s, call{method: http.MethodGet, path: "/accounts/5"})
	if code != http.StatusOK {
		t.Errorf("second = %d", code)
	}
	code, _ = serve(t, s, call{method: http.MethodGet, path: "/accounts/5"})
	if code != http.StatusNotFound {
		t.Errorf("stubs should be consumed, got %d", code)
	}
}

func TestUploadFile(t *testing.T) {
	s := New()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "logo.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	part.Write([]byte("png-bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/files", &buf)
	req.Header.Set("Authorization", "Bearer "+DefaultToken)
	req.Header.Set("Company-Subdomain", DefaultSubdomain)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var out struct {
		File struct {
			ID       int    `json:"id"`
			Filename string `json:"filename"`
			Size     int64  `json:"size"`
			URL      string `json:"url"`
		} `json:"file"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.File.Filename != "logo.png" || out.File.Size != 9 || !strings.HasSuffix(out.File.URL, "/logo.png") {
		t.Errorf("file = %+v", out.File)
	}
	if _, ok := s.Object("/files", out.File.ID); !ok {
		t.Error("upload not stored")
	}
}

func TestGetLists(t *testing.T) {
	s := New()
	s.SetList("countries", map[string]any{"items": []any{map[string]any{"code": "MY"}}})

	_, out := serve(t, s, call{method: http.MethodPost, path: "/v2/lists", body: `{"lists":["countries","terms"]}`})
	if _, ok := out["countries"]; !ok {
		t.Errorf("countries missing: %v", out)
	}
	terms := out["terms"].(map[string]any)
	if items := terms["items"].([]any); len(items) != 0 {
		t.Errorf("terms = %v", terms)
	}

	code, _ := serve(t, s, call{method: http.MethodPost, path: "/v2/lists", body: `{"lists":[]}`})
	if code != http.StatusUnprocessableEntity {
		t.Errorf("empty lists status = %d", code)
	}
}

func TestRecordAndReset(t *testing.T) {
	s := New()
	serve(t, s, call{method: http.MethodPost, path: "/contacts/groups", body: `{"name":"VIP"}`})

	req, ok := s.LastRequest()
	if !ok {
		t.Fatal("no request recorded")
	}
	var body map[string]string
	if err := req.DecodeJSON(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Path != "/contacts/groups" || body["name"] != "VIP" {
		t.Errorf("recorded %s %v", req.Path, body)
	}

	s.Reset()
	if _, ok := s.LastRequest(); ok {
		t.Error("Reset kept requests")
	}
}
