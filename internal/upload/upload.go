// Package upload handles multipart image attachments: temp-dir disk
// storage, MIME allowlisting, size/count limits and a post-processing
// resize step. Stored files land in the temp directory pending the
// downstream catalog step.
package upload

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"marquesa/internal/domain"
)

const (
	// MaxFileSize caps each file at 5 MiB.
	MaxFileSize = 5 << 20
	// MaxFiles caps files per request.
	MaxFiles = 10

	FieldImage  = "image"
	FieldImages = "images"

	processedWidth   = 800
	processedQuality = 80
)

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/tiff": true,
}

// AllowedType reports whether a content type is on the image allowlist.
func AllowedType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return allowedMIMETypes[ct]
}

type Stored struct {
	Field        string `json:"field"`
	OriginalName string `json:"originalName"`
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

// Uploader owns a destination directory, created at construction so the
// side effect is explicit instead of hiding in package init.
type Uploader struct {
	Dir string
}

func New(dir string) (*Uploader, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: no se pudo crear %s: %w", dir, err)
	}
	return &Uploader{Dir: dir}, nil
}

// Filename builds "{field}-{timestamp}-{random}{ext}". Collisions are
// negligible but not impossible; there is no retry.
func (u *Uploader) Filename(field, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixNano(), rand.Int63n(1_000_000_000), ext)
}

// SaveFile validates and persists a single file header to the temp dir.
func (u *Uploader) SaveFile(fh *multipart.FileHeader, field string) (Stored, error) {
	var out Stored
	if fh == nil {
		return out, domain.ValidationError{Field: field, Msg: "archivo no recibido"}
	}
	if fh.Size > MaxFileSize {
		return out, domain.ValidationError{Field: field, Msg: "el archivo supera el límite de 5MB"}
	}
	contentType := fh.Header.Get("Content-Type")
	if !AllowedType(contentType) {
		return out, domain.ValidationError{
			Field: field,
			Msg:   fmt.Sprintf("tipo de archivo no permitido (%s); solo se aceptan imágenes jpeg, jpg, png, gif, webp o tiff", contentType),
		}
	}

	src, err := fh.Open()
	if err != nil {
		return out, domain.InternalError{Msg: "no se pudo leer el archivo", Err: err}
	}
	defer src.Close()

	name := u.Filename(field, fh.Filename)
	dstPath := filepath.Join(u.Dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return out, domain.InternalError{Msg: "no se pudo guardar el archivo", Err: err}
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return out, domain.InternalError{Msg: "no se pudo guardar el archivo", Err: err}
	}

	return Stored{
		Field:        field,
		OriginalName: fh.Filename,
		Filename:     name,
		Path:         dstPath,
		Size:         written,
	}, nil
}

// SaveAll persists up to MaxFiles headers for one field.
func (u *Uploader) SaveAll(files []*multipart.FileHeader, field string) ([]Stored, error) {
	if len(files) == 0 {
		return nil, domain.ValidationError{Field: field, Msg: "no se recibieron archivos"}
	}
	if len(files) > MaxFiles {
		return nil, domain.ValidationError{Field: field, Msg: "máximo 10 archivos por solicitud"}
	}

	out := make([]Stored, 0, len(files))
	for _, fh := range files {
		st, err := u.SaveFile(fh, field)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// Process resizes a stored image to 800px wide and re-encodes it as
// JPEG under a fresh uuid name. Formats the decoder cannot handle
// (webp, tiff) pass through untouched.
func (u *Uploader) Process(st Stored) (string, error) {
	src, err := os.Open(st.Path)
	if err != nil {
		return "", domain.InternalError{Msg: "no se pudo abrir el archivo", Err: err}
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return st.Path, nil
	}

	scaled := resize.Resize(processedWidth, 0, img, resize.Lanczos3)
	name := fmt.Sprintf("%s.jpg", uuid.New().String())
	outPath := filepath.Join(u.Dir, name)

	dst, err := os.Create(outPath)
	if err != nil {
		return "", domain.InternalError{Msg: "no se pudo guardar la imagen procesada", Err: err}
	}
	defer dst.Close()

	if err := jpeg.Encode(dst, scaled, &jpeg.Options{Quality: processedQuality}); err != nil {
		return "", domain.InternalError{Msg: "no se pudo codificar la imagen procesada", Err: err}
	}
	return outPath, nil
}
