package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/store"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/types"
)

type stubGenerator struct {
	slug          string
	content       string
	contentErr    error
	nameCalls     int
	pageCalls     int
	lastImagePath string
}

func (s *stubGenerator) GenerateFilename(_ context.Context, _ string) string {
	s.nameCalls++
	return fmt.Sprintf("%s-%d", s.slug, 1234)
}

func (s *stubGenerator) GenerateLandingPage(_ context.Context, _ string, imagePath string) (string, error) {
	s.pageCalls++
	s.lastImagePath = imagePath
	if s.contentErr != nil {
		return "", s.contentErr
	}
	return s.content, nil
}

type stubUploader struct {
	img   types.UploadedImage
	err   error
	calls int
}

func (s *stubUploader) Save(*multipart.FileHeader) (types.UploadedImage, error) {
	s.calls++
	if s.err != nil {
		return types.UploadedImage{}, s.err
	}
	return s.img, nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir(), "/landing-page")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return s
}

func imageFileHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})
	w.Close()
	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("image")
	if err != nil {
		t.Fatal(err)
	}
	return fh
}

func TestRunGeneratesAndPersists(t *testing.T) {
	gen := &stubGenerator{
		slug:    "family-law-attorney-sd",
		content: "```html\n<!DOCTYPE html><html><body>Law</body></html>\n```",
	}
	assetStore := newTestStore(t)
	p := New(gen, assetStore, &stubUploader{}, "/landing-page")

	result, err := p.Run(context.Background(), "Family Law Attorney in San Diego", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	filePattern := regexp.MustCompile(`^family-law-attorney-sd-\d{4}\.html$`)
	if !filePattern.MatchString(result.Filename) {
		t.Errorf("filename %q does not match %v", result.Filename, filePattern)
	}
	if result.FileURL != "/landing-page/"+result.Filename {
		t.Errorf("fileUrl %q does not derive from filename", result.FileURL)
	}

	pages, err := assetStore.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pages) != 1 || pages[0].Filename != result.Filename {
		t.Fatalf("stored asset not listed: %+v", pages)
	}
}

func TestRunSanitizesContent(t *testing.T) {
	gen := &stubGenerator{
		slug:    "coffee-shop",
		content: "```html\n<html></html>\n```",
	}
	saved := &capturingStore{}
	p := New(gen, saved, &stubUploader{}, "/landing-page")

	if _, err := p.Run(context.Background(), "A coffee shop", nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(saved.content, "```") {
		t.Errorf("persisted content still contains fence markers: %q", saved.content)
	}
}

func TestRunEmptyDescription(t *testing.T) {
	gen := &stubGenerator{slug: "x", content: "<html></html>"}
	p := New(gen, newTestStore(t), &stubUploader{}, "/landing-page")

	_, err := p.Run(context.Background(), "   ", nil)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if gen.nameCalls != 0 || gen.pageCalls != 0 {
		t.Errorf("generation service called for invalid request: name=%d page=%d", gen.nameCalls, gen.pageCalls)
	}
}

func TestRunRejectedUpload(t *testing.T) {
	gen := &stubGenerator{slug: "x", content: "<html></html>"}
	uploader := &stubUploader{err: store.ErrUploadTooBig}
	p := New(gen, newTestStore(t), uploader, "/landing-page")

	_, err := p.Run(context.Background(), "valid description", imageFileHeader(t))
	if !errors.Is(err, ErrInvalidUpload) {
		t.Fatalf("err = %v, want ErrInvalidUpload", err)
	}
	if gen.nameCalls != 0 {
		t.Errorf("name generator reached after upload rejection (%d calls)", gen.nameCalls)
	}
}

func TestRunPassesImagePathToContentPrompt(t *testing.T) {
	gen := &stubGenerator{slug: "x", content: "<html></html>"}
	uploader := &stubUploader{img: types.UploadedImage{
		StoragePath: "uploads/111-222.png",
		MimeType:    "image/png",
		SizeBytes:   8,
	}}
	p := New(gen, newTestStore(t), uploader, "/landing-page")

	if _, err := p.Run(context.Background(), "desc", imageFileHeader(t)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.lastImagePath != "uploads/111-222.png" {
		t.Errorf("image path = %q, want uploads/111-222.png", gen.lastImagePath)
	}
}

func TestRunContentFailureLeavesNoAsset(t *testing.T) {
	gen := &stubGenerator{slug: "doomed-page", contentErr: errors.New("quota exceeded")}
	assetStore := newTestStore(t)
	p := New(gen, assetStore, &stubUploader{}, "/landing-page")

	_, err := p.Run(context.Background(), "valid description", nil)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
	// The name stage ran before the failure.
	if gen.nameCalls != 1 {
		t.Errorf("name generator calls = %d, want 1", gen.nameCalls)
	}
	pages, listErr := assetStore.List()
	if listErr != nil {
		t.Fatalf("List: %v", listErr)
	}
	if len(pages) != 0 {
		t.Errorf("asset listed despite failed content generation: %+v", pages)
	}
}

func TestRunStoreFailure(t *testing.T) {
	gen := &stubGenerator{slug: "x", content: "<html></html>"}
	p := New(gen, failingStore{}, &stubUploader{}, "/landing-page")

	_, err := p.Run(context.Background(), "desc", nil)
	if !errors.Is(err, ErrStoreFailed) {
		t.Fatalf("err = %v, want ErrStoreFailed", err)
	}
}

type capturingStore struct {
	filename string
	content  string
}

func (c *capturingStore) Save(filename, content string) error {
	c.filename = filename
	c.content = content
	return nil
}

type failingStore struct{}

func (failingStore) Save(string, string) error {
	return errors.New("disk full")
}
