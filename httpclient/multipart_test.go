package httpclient

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func readParts(t *testing.T, data []byte, contentType string) map[string]*bytes.Buffer {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}

	parts := map[string]*bytes.Buffer{}
	mr := multipart.NewReader(bytes.NewReader(data), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		buf := &bytes.Buffer{}
		if _, err := io.Copy(buf, part); err != nil {
			t.Fatalf("read part: %v", err)
		}
		parts[part.FormName()] = buf
	}
	return parts
}

func TestMultipartBody_Encode_FieldsOnly(t *testing.T) {
	mp := &MultipartBody{
		Fields: map[string]string{"name": "test", "value": "hello"},
	}

	data, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}

	parts := readParts(t, data, contentType)
	if parts["name"].String() != "test" || parts["value"].String() != "hello" {
		t.Errorf("fields = %v, want name=test, value=hello", parts)
	}
}

func TestMultipartBody_Encode_FieldOrder(t *testing.T) {
	mp := &MultipartBody{Fields: map[string]string{"b": "2", "a": "1", "c": "3"}}

	data, _, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	ia := bytes.Index(data, []byte(`name="a"`))
	ib := bytes.Index(data, []byte(`name="b"`))
	ic := bytes.Index(data, []byte(`name="c"`))
	if ia >= ib || ib >= ic {
		t.Errorf("fields not written in sorted order: a=%d b=%d c=%d", ia, ib, ic)
	}
}

func TestMultipartBody_Encode_WithFileContentType(t *testing.T) {
	mp := &MultipartBody{
		Files: []FileField{{
			FieldName:   "file",
			FileName:    `receipt "march".pdf`,
			ContentType: "application/pdf",
			Data:        []byte("%PDF"),
		}},
	}

	data, _, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	if !bytes.Contains(data, []byte("Content-Type: application/pdf")) {
		t.Error("expected Content-Type: application/pdf in multipart body")
	}
	if !bytes.Contains(data, []byte(`filename="receipt \"march\".pdf"`)) {
		t.Errorf("file name not escaped: %s", data)
	}
}

func TestMultipartBody_Encode_WithReader(t *testing.T) {
	mp := &MultipartBody{
		Files: []FileField{{FieldName: "file", FileName: "data.txt", Reader: bytes.NewReader([]byte("streamed content"))}},
	}

	data, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	parts := readParts(t, data, contentType)
	if got := parts["file"].String(); got != "streamed content" {
		t.Errorf("file content = %q, want %q", got, "streamed content")
	}
}

func TestClient_Do_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm error: %v", err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile error: %v", err)
			return
		}
		defer file.Close()

		if header.Filename != "invoice.pdf" {
			t.Errorf("filename = %q, want %q", header.Filename, "invoice.pdf")
		}
		data, _ := io.ReadAll(file)
		if string(data) != "pdf bytes" {
			t.Errorf("file data = %q, want %q", data, "pdf bytes")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"file":{"id":9}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, NewHTTPTransportFromClient(srv.Client()))
	resp, err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/files",
		Body: &MultipartBody{Files: []FileField{
			{FieldName: "file", FileName: "invoice.pdf", Data: []byte("pdf bytes")},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
