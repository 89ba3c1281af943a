package store

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/types"
)

var (
	ErrNotAnImage   = errors.New("only image files are allowed")
	ErrUploadTooBig = errors.New("uploaded file exceeds the size limit")
)

// Uploader validates image attachments and stores them under
// collision-resistant names (<unix-millis>-<random>.<original-extension>).
type Uploader struct {
	dir      string
	maxBytes int64
}

// NewUploader ensures the upload directory exists.
func NewUploader(dir string, maxBytes int64) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", dir, err)
	}
	return &Uploader{dir: dir, maxBytes: maxBytes}, nil
}

// Save runs the upload gate: reject anything over the size limit or whose
// content is not an image, then persist under a fresh unique name. On
// rejection nothing is left on disk.
func (u *Uploader) Save(fh *multipart.FileHeader) (types.UploadedImage, error) {
	if fh.Size > u.maxBytes {
		return types.UploadedImage{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrUploadTooBig, fh.Size, u.maxBytes)
	}

	src, err := fh.Open()
	if err != nil {
		return types.UploadedImage{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Sniff the real content type instead of trusting the client header.
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return types.UploadedImage{}, fmt.Errorf("failed to detect upload mime type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return types.UploadedImage{}, fmt.Errorf("%w: got %s", ErrNotAnImage, mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return types.UploadedImage{}, fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = mtype.Extension()
	}
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	path := filepath.Join(u.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return types.UploadedImage{}, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return types.UploadedImage{}, fmt.Errorf("failed to store upload: %w", err)
	}

	return types.UploadedImage{
		StoragePath: path,
		MimeType:    mtype.String(),
		SizeBytes:   written,
	}, nil
}
