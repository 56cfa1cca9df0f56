package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IMPERIALX7/cosmic-resume/internal/export"
	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	RenderFunc func(ctx context.Context, html string) ([]byte, error)
}

func (f *fakeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	return f.RenderFunc(ctx, html)
}

func (f *fakeRenderer) Extension() string   { return "pdf" }
func (f *fakeRenderer) ContentType() string { return "application/pdf" }

func pdfRenderer() *fakeRenderer {
	return &fakeRenderer{RenderFunc: func(context.Context, string) ([]byte, error) {
		return []byte("%PDF-1.4 test"), nil
	}}
}

func newTestServer(t *testing.T, cfg Config, r export.Renderer) (*Server, *session.Session) {
	t.Helper()
	doc := types.NewDocument()
	doc.Personal.Name = "Ada Lovelace"
	sess := session.New(doc)

	var exporter *export.Exporter
	if r != nil {
		exporter = export.NewExporter(r, nil)
	}
	return New(cfg, sess, exporter, nil), sess
}

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t, Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleIndex_RendersSnapshot(t *testing.T) {
	s, sess := newTestServer(t, Config{}, nil)

	sess.Update(func(doc *types.Document) bool {
		doc.Personal.Title = "Analyst"
		return true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Analyst")
	assert.Contains(t, body, "EventSource")
	assert.Contains(t, body, `id="photo-upload-placeholder"`)
}

func TestHandleIndex_UnknownPath(t *testing.T) {
	s, _ := newTestServer(t, Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDocument(t *testing.T) {
	s, _ := newTestServer(t, Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/document.json", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc types.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Ada Lovelace", doc.Personal.Name)
}

func TestHandleExport(t *testing.T) {
	s, _ := newTestServer(t, Config{}, pdfRenderer())

	req := httptest.NewRequest(http.MethodGet, "/export.pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ada_lovelace.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 test", rec.Body.String())
}

func TestHandleExport_NotConfigured(t *testing.T) {
	s, _ := newTestServer(t, Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/export.pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleExport_RendererFailure(t *testing.T) {
	r := &fakeRenderer{RenderFunc: func(context.Context, string) ([]byte, error) {
		return nil, errors.New("no browser")
	}}
	s, _ := newTestServer(t, Config{}, r)

	req := httptest.NewRequest(http.MethodGet, "/export.pdf", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "no browser")
}

func TestHandleExport_Throttled(t *testing.T) {
	s, _ := newTestServer(t, Config{ExportEvery: time.Hour}, pdfRenderer())

	first := httptest.NewRecorder()
	s.Handler().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/export.pdf", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	s.Handler().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/export.pdf", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

// readEvent returns the next dispatched event, skipping field-only blocks
// such as the retry hint
func readEvent(t *testing.T, r *bufio.Reader) (event, data, id string) {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "id: "):
			id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && event != "":
			return event, data, id
		}
	}
}

func TestHandleEvents_StreamsCommits(t *testing.T) {
	s, sess := newTestServer(t, Config{}, nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	reader := bufio.NewReader(resp.Body)

	event, data, id := readEvent(t, reader)
	assert.Equal(t, EventReady, event)
	assert.JSONEq(t, `{"version":0}`, data)
	assert.Equal(t, "0", id)

	sess.Update(func(doc *types.Document) bool {
		doc.Personal.Title = "Engineer"
		return true
	})

	event, data, id = readEvent(t, reader)
	assert.Equal(t, EventDocument, event)
	assert.JSONEq(t, `{"version":1}`, data)
	assert.Equal(t, "1", id)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t, Config{}, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestHandleEvents_SendsRetryHintFirst(t *testing.T) {
	s, _ := newTestServer(t, Config{}, nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "retry: 2000\n", line)
}
