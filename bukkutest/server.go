package bukkutest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/bukku-go/httpclient"
)

// Default credentials accepted by the fake.
const (
	DefaultToken     = "test-token"
	DefaultSubdomain = "test-company"
)

const (
	defaultPageSize = 30
	timestampLayout = "2006-01-02 15:04:05"
)

// Request is a recorded call.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// DecodeJSON unmarshals the recorded body into v.
func (r Request) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

type stub struct {
	status int
	body   string
}

type table struct {
	order []int
	items map[int]map[string]any
}

// Server is the fake API.
type Server struct {
	engine      *gin.Engine
	token       string
	subdomain   string
	collections []Collection

	mu       sync.Mutex
	nextID   int
	tables   map[string]*table
	lists    map[string]any
	stubs    map[string][]stub
	requests []Request
	now      func() time.Time

	ts *httptest.Server
}

// Option customizes a Server.
type Option func(*Server)

// WithCredentials changes the accepted token and subdomain.
func WithCredentials(token, subdomain string) Option {
	return func(s *Server) {
		s.token = token
		s.subdomain = subdomain
	}
}

// WithCollections replaces DefaultCollections.
func WithCollections(cols ...Collection) Option {
	return func(s *Server) { s.collections = cols }
}

// WithClock fixes the created_at/updated_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New builds a fake whose routes live on its own gin engine.
func New(opts ...Option) *Server {
	s := &Server{
		token:       DefaultToken,
		subdomain:   DefaultSubdomain,
		collections: DefaultCollections,
		nextID:      1,
		tables:      make(map[string]*table),
		lists:       make(map[string]any),
		stubs:       make(map[string][]stub),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.Register(s.engine)
	return s
}

// NewServer starts the fake on a local listener for the duration of tb.
func NewServer(tb testing.TB, opts ...Option) *Server {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	s := New(opts...)
	s.ts = httptest.NewServer(s.engine)
	tb.Cleanup(s.ts.Close)
	return s
}

// Handler returns the fake as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// URL returns the base URL of a server started by NewServer.
func (s *Server) URL() string {
	if s.ts == nil {
		return ""
	}
	return s.ts.URL
}

// NewClient returns a pipeline client pointed at the running fake.
func (s *Server) NewClient(tb testing.TB, opts ...httpclient.Option) *httpclient.Client {
	tb.Helper()
	if s.ts == nil {
		tb.Fatal("bukkutest: NewClient requires a server started with NewServer")
	}
	client, err := httpclient.New(httpclient.Config{
		AccessToken:      s.token,
		CompanySubdomain: s.subdomain,
		BaseURL:          s.ts.URL,
		Transport:        httpclient.NewHTTPTransportFromClient(s.ts.Client()),
	}, opts...)
	if err != nil {
		tb.Fatalf("bukkutest: create client: %v", err)
	}
	return client
}

// Register mounts the fake API on r.
func (s *Server) Register(r gin.IRouter) {
	api := r.Group("")
	api.Use(s.record, s.authenticate, s.stubbed)

	for _, col := range s.collections {
		g := api.Group(col.Path)
		g.POST("", s.create(col))
		g.GET("", s.list(col))
		g.GET("/:id", s.get(col))
		g.PUT("/:id", s.update(col))
		g.PATCH("/:id", s.patch(col))
		g.DELETE("/:id", s.remove(col))
	}

	api.POST("/files", s.uploadFile)
	api.GET("/files", s.list(filesCollection))
	api.GET("/files/:id", s.get(filesCollection))
	api.POST("/v2/lists", s.getLists)
}

var filesCollection = Collection{Path: "/files", Key: "file", ListKey: "files"}

// Seed stores obj in the collection at path and returns its id. An "id"
// already present in obj is kept.
func (s *Server) Seed(path string, obj map[string]any) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(path, cloneMap(obj))
}

// Object returns a copy of a stored object.
func (s *Server) Object(path string, id int) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.table(path).items[id]
	if !ok {
		return nil, false
	}
	return cloneMap(obj), true
}

// SetList sets the value returned for a list type by POST /v2/lists.
// Unset list types return {"items": []}.
func (s *Server) SetList(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[name] = value
}

// Stub makes the next call to method and path answer status with body.
// Stubs queue up and are consumed in order.
func (s *Server) Stub(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.stubs[key] = append(s.stubs[key], stub{status: status, body: body})
}

// Requests returns every recorded call.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// LastRequest returns the most recent call.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Reset forgets recorded calls.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   c.Request.Method,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
		Header:   c.Request.Header.Clone(),
		Body:     body,
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) authenticate(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+s.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}
	if c.GetHeader("Company-Subdomain") != s.subdomain {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Company not found."})
		return
	}
	c.Next()
}

func (s *Server) stubbed(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path

	s.mu.Lock()
	queue := s.stubs[key]
	var next *stub
	if len(queue) > 0 {
		next = &queue[0]
		s.stubs[key] = queue[1:]
	}
	s.mu.Unlock()

	if next == nil {
		c.Next()
		return
	}
	if next.status == http.StatusNoContent {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Data(next.status, contentTypeOf(next.body), []byte(next.body))
	c.Abort()
}

func contentTypeOf(body string) string {
	if json.Valid([]byte(body)) {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

func (s *Server) create(col Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj, ok := bindObject(c)
		if !ok {
			return
		}

		s.mu.Lock()
		id := s.insert(col.Path, obj)
		stored := cloneMap(s.table(col.Path).items[id])
		s.mu.Unlock()

		if col.CreateReturnsArray {
			c.JSON(http.StatusOK, gin.H{col.Key: []any{stored}})
			return
		}
		c.JSON(http.StatusOK, gin.H{col.Key: stored})
	}
}

func (s *Server) list(col Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := queryInt(c, "page", 1)
		pageSize := queryInt(c, "page_size", defaultPageSize)
		search := strings.ToLower(c.Query("search"))

		s.mu.Lock()
		t := s.table(col.Path)
		matched := make([]map[string]any, 0, len(t.order))
		for _, id := range t.order {
			obj := t.items[id]
			if search == "" || matches(obj, search) {
				matched = append(matched, cloneMap(obj))
			}
		}
		s.mu.Unlock()

		total := len(matched)
		start := min((page-1)*pageSize, total)
		end := min(start+pageSize, total)
		items := matched[start:end]

		resp := gin.H{col.ListKey: items}
		switch col.Paging {
		case PagingStandard:
			resp["paging"] = gin.H{"current_page": page, "per_page": pageSize, "total": total}
		case PagingControlPanel:
			resp["paging"] = gin.H{"page": page, "pageSize": pageSize, "total": total}
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (s *Server) get(col Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		obj, found := s.table(col.Path).items[id]
		if found {
			obj = cloneMap(obj)
		}
		s.mu.Unlock()

		if !found {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{col.Key: obj})
	}
}

func (s *Server) update(col Collection) gin.HandlerFunc {
	return s.modify(col, func(current, incoming map[string]any) map[string]any {
		incoming["id"] = current["id"]
		incoming["created_at"] = current["created_at"]
		return incoming
	})
}

func (s *Server) patch(col Collection) gin.HandlerFunc {
	return s.modify(col, func(current, incoming map[string]any) map[string]any {
		for k, v := range incoming {
			current[k] = v
		}
		return current
	})
}

func (s *Server) modify(col Collection, apply func(current, incoming map[string]any) map[string]any) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		incoming, ok := bindObject(c)
		if !ok {
			return
		}

		s.mu.Lock()
		t := s.table(col.Path)
		current, found := t.items[id]
		var updated map[string]any
		if found {
			updated = apply(current, incoming)
			updated["updated_at"] = s.now().UTC().Format(timestampLayout)
			t.items[id] = updated
			updated = cloneMap(updated)
		}
		s.mu.Unlock()

		if !found {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{col.Key: updated})
	}
}

func (s *Server) remove(col Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		t := s.table(col.Path)
		_, found := t.items[id]
		if found {
			delete(t.items, id)
			t.order = slices.DeleteFunc(t.order, func(v int) bool { return v == id })
		}
		s.mu.Unlock()

		if !found {
			notFound(c)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) uploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "The file field is required."})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	s.mu.Lock()
	id := s.insert(filesCollection.Path, map[string]any{
		"filename":  header.Filename,
		"mime_type": mimeType,
		"size":      header.Size,
	})
	obj := s.table(filesCollection.Path).items[id]
	obj["url"] = fmt.Sprintf("https://files.bukku.test/%d/%s", id, header.Filename)
	stored := cloneMap(obj)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{filesCollection.Key: stored})
}

func (s *Server) getLists(c *gin.Context) {
	var body struct {
		Lists  []string         `json:"lists"`
		Params []map[string]any `json:"params"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Lists) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "The lists field is required."})
		return
	}

	resp := gin.H{}
	s.mu.Lock()
	for _, name := range body.Lists {
		if v, ok := s.lists[name]; ok {
			resp[name] = v
			continue
		}
		resp[name] = gin.H{"items": []any{}}
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, resp)
}

// insert must be called with s.mu held.
func (s *Server) insert(path string, obj map[string]any) int {
	id, ok := intValue(obj["id"])
	if !ok || id <= 0 {
		id = s.nextID
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}

	now := s.now().UTC().Format(timestampLayout)
	obj["id"] = id
	if _, ok := obj["created_at"]; !ok {
		obj["created_at"] = now
	}
	obj["updated_at"] = now

	t := s.table(path)
	if _, exists := t.items[id]; !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = obj
	return id
}

// table must be called with s.mu held.
func (s *Server) table(path string) *table {
	t, ok := s.tables[path]
	if !ok {
		t = &table{items: make(map[int]map[string]any)}
		s.tables[path] = t
	}
	return t
}

func bindObject(c *gin.Context) (map[string]any, bool) {
	obj := map[string]any{}
	if c.Request.ContentLength == 0 {
		return obj, true
	}
	if err := c.ShouldBindJSON(&obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed JSON body."})
		return nil, false
	}
	return obj, true
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		notFound(c)
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Record not found."})
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

func matches(obj map[string]any, search string) bool {
	for _, v := range obj {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
