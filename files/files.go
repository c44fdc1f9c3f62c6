// Package files uploads attachments and lists previously uploaded files.
package files

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/kbukum/bukku-go/common"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/resource"
)

const (
	path = "/files"
	key  = "file"
)

// TypeFilter narrows List to one kind of file.
type TypeFilter string

const (
	TypeImage TypeFilter = "IMAGE"
	TypeVideo TypeFilter = "VIDEO"
	TypeExcel TypeFilter = "EXCEL"
	TypePDF   TypeFilter = "PDF"
)

// UploadedFile is a stored file.
type UploadedFile struct {
	ID        int    `json:"id"`
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FileResponse is the Upload response.
type FileResponse struct {
	File UploadedFile `json:"file"`
}

// ListParams filters List. PageSize must be between 10 and 100.
type ListParams struct {
	Search   string            `json:"search,omitempty"`
	Type     TypeFilter        `json:"type,omitempty"`
	IsUsed   *bool             `json:"is_used,omitempty"`
	Page     int               `json:"page,omitempty"`
	PageSize int               `json:"page_size,omitempty"`
	Extra    httpclient.Params `json:"-"`
}

// List is the List response.
type List struct {
	Paging common.Pagination `json:"paging"`
	Files  []UploadedFile    `json:"files"`
}

// Service manages /files.
type Service struct {
	col *resource.Collection[UploadedFile, List]
}

// NewService binds the service to client.
func NewService(client *httpclient.Client) *Service {
	return &Service{col: resource.NewCollection[UploadedFile, List](client, path, key)}
}

// Upload sends content as the "file" part of a multipart form. The part's
// content type is derived from the file name extension.
func (s *Service) Upload(ctx context.Context, content []byte, fileName string) (*FileResponse, error) {
	return s.upload(ctx, httpclient.FileField{
		FieldName:   key,
		FileName:    fileName,
		ContentType: contentTypeOf(fileName),
		Data:        content,
	})
}

// UploadReader is Upload for streamed content. An empty contentType is
// derived from fileName.
func (s *Service) UploadReader(ctx context.Context, r io.Reader, fileName, contentType string) (*FileResponse, error) {
	if contentType == "" {
		contentType = contentTypeOf(fileName)
	}
	return s.upload(ctx, httpclient.FileField{
		FieldName:   key,
		FileName:    fileName,
		ContentType: contentType,
		Reader:      r,
	})
}

func (s *Service) upload(ctx context.Context, field httpclient.FileField) (*FileResponse, error) {
	return httpclient.Call[FileResponse](ctx, s.col.Client(), httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   &httpclient.MultipartBody{Files: []httpclient.FileField{field}},
	})
}

// List returns uploaded files. params may be nil.
func (s *Service) List(ctx context.Context, params *ListParams) (*List, error) {
	return s.col.List(ctx, params)
}

// Get fetches one file.
func (s *Service) Get(ctx context.Context, id int) (*UploadedFile, error) {
	return s.col.Get(ctx, id)
}

func contentTypeOf(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
