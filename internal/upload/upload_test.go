package upload

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquesa/internal/domain"
)

func TestAllowedType(t *testing.T) {
	for _, ct := range []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif",
		"image/webp", "image/tiff", "IMAGE/PNG", "image/png; charset=binary",
	} {
		assert.True(t, AllowedType(ct), ct)
	}
	for _, ct := range []string{"application/pdf", "video/mp4", "text/html", ""} {
		assert.False(t, AllowedType(ct), ct)
	}
}

func TestFilenamePattern(t *testing.T) {
	u, err := New(t.TempDir())
	require.NoError(t, err)

	name := u.Filename(FieldImage, "ramo rosas.PNG")
	assert.Regexp(t, regexp.MustCompile(`^image-\d+-\d+\.png$`), name)

	// extension-less originals still get unique names
	name = u.Filename(FieldImages, "foto")
	assert.Regexp(t, regexp.MustCompile(`^images-\d+-\d+$`), name)
}

func fakeHeader(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "foto.png",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestSaveFileRejections(t *testing.T) {
	u, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = u.SaveFile(fakeHeader(MaxFileSize+1, "image/png"), FieldImage)
	assert.True(t, domain.IsValidation(err))

	_, err = u.SaveFile(fakeHeader(100, "application/pdf"), FieldImage)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "tipo de archivo no permitido")

	_, err = u.SaveFile(nil, FieldImage)
	assert.True(t, domain.IsValidation(err))
}

func TestSaveAllLimits(t *testing.T) {
	u, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = u.SaveAll(nil, FieldImages)
	assert.True(t, domain.IsValidation(err))

	headers := make([]*multipart.FileHeader, MaxFiles+1)
	for i := range headers {
		headers[i] = fakeHeader(10, "image/png")
	}
	_, err = u.SaveAll(headers, FieldImages)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "máximo 10")
}

// realHeader builds a FileHeader whose Open works, by round-tripping a
// multipart body through the stdlib reader.
func realHeader(t *testing.T, field, filename string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveFileAndProcess(t *testing.T) {
	dir := t.TempDir()
	u, err := New(dir)
	require.NoError(t, err)

	st, err := u.SaveFile(realHeader(t, FieldImage, "mini.png", pngBytes(t)), FieldImage)
	require.NoError(t, err)
	assert.Equal(t, FieldImage, st.Field)
	assert.Equal(t, "mini.png", st.OriginalName)
	assert.FileExists(t, st.Path)
	assert.Greater(t, st.Size, int64(0))

	processed, err := u.Process(st)
	require.NoError(t, err)
	assert.Regexp(t, `\.jpg$`, processed)
	assert.FileExists(t, processed)
}

func TestProcessPassesThroughUndecodable(t *testing.T) {
	dir := t.TempDir()
	u, err := New(dir)
	require.NoError(t, err)

	st, err := u.SaveFile(realHeader(t, FieldImage, "raro.webp", []byte("not an image")), FieldImage)
	require.NoError(t, err)

	processed, err := u.Process(st)
	require.NoError(t, err)
	assert.Equal(t, st.Path, processed)
}
