package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/types"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/utils"
)

// Sentinel errors the transport layer maps onto HTTP statuses with errors.Is.
var (
	ErrInvalidRequest   = errors.New("description is required")
	ErrInvalidUpload    = errors.New("invalid image upload")
	ErrGenerationFailed = errors.New("landing page generation failed")
	ErrStoreFailed      = errors.New("failed to store landing page")
)

// Generator is the two-stage AI dependency. GenerateFilename must never fail
// outward (it falls back internally); GenerateLandingPage's errors are
// terminal for the request.
type Generator interface {
	GenerateFilename(ctx context.Context, description string) string
	GenerateLandingPage(ctx context.Context, description, imagePath string) (string, error)
}

// AssetStore persists sanitized documents.
type AssetStore interface {
	Save(filename, content string) error
}

// Uploader is the gate an optional image passes through before the content
// prompt may reference it.
type Uploader interface {
	Save(fh *multipart.FileHeader) (types.UploadedImage, error)
}

type Result struct {
	Filename string
	FileURL  string
}

// Pipeline runs one generation request end to end: validate, gate the
// optional upload, name, generate, sanitize, persist. One instance serves all
// requests; it holds no per-request state.
type Pipeline struct {
	gen        Generator
	store      AssetStore
	uploader   Uploader
	publicPath string
}

func New(gen Generator, store AssetStore, uploader Uploader, publicPath string) *Pipeline {
	return &Pipeline{
		gen:        gen,
		store:      store,
		uploader:   uploader,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}
}

// Run executes the pipeline for a single request. No step is retried, and a
// stored upload is not deleted if a later step fails. No asset file is written
// unless content generation succeeded.
func (p *Pipeline) Run(ctx context.Context, description string, image *multipart.FileHeader) (Result, error) {
	requestID := uuid.New().String()

	if strings.TrimSpace(description) == "" {
		return Result{}, ErrInvalidRequest
	}

	imagePath := ""
	if image != nil {
		uploaded, err := p.uploader.Save(image)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
		}
		imagePath = uploaded.StoragePath
		log.Printf("[%s] Stored uploaded image %s (%s, %d bytes)", requestID, uploaded.StoragePath, uploaded.MimeType, uploaded.SizeBytes)
	}

	filename := p.gen.GenerateFilename(ctx, description) + ".html"
	log.Printf("[%s] Generated filename %s", requestID, filename)

	content, err := p.gen.GenerateLandingPage(ctx, description, imagePath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := p.store.Save(filename, utils.CleanHTMLContent(content)); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	log.Printf("[%s] Landing page saved as %s", requestID, filename)
	return Result{
		Filename: filename,
		FileURL:  p.publicPath + "/" + filename,
	}, nil
}
