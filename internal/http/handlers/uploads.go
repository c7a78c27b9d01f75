package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marquesa/internal/http/middleware"
	"marquesa/internal/upload"
	"marquesa/internal/utils"
)

// UploadImage handles the single-file `image` field and runs the resize
// step before responding.
func UploadImage(c *gin.Context) {
	fh, err := c.FormFile(upload.FieldImage)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "archivo no recibido", err)
		return
	}

	up := getUploader()
	st, err := up.SaveFile(fh, upload.FieldImage)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	processed, err := up.Process(st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "upload", "image", st.Filename)
	RespondSuccess(c, http.StatusCreated, gin.H{
		"file":          st,
		"processedPath": processed,
	})
}

// UploadImages handles the multi-file `images` field, up to ten files.
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "formulario multipart no válido", err)
		return
	}

	up := getUploader()
	stored, err := up.SaveAll(form.File[upload.FieldImages], upload.FieldImages)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "upload", "images", "archivos guardados")
	RespondSuccess(c, http.StatusCreated, gin.H{
		"files": stored,
		"count": len(stored),
	})
}

// UploadMedia accepts the combined form: one optional `image` plus up
// to ten `images`. At least one of the two must be present.
func UploadMedia(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "formulario multipart no válido", err)
		return
	}

	up := getUploader()
	out := gin.H{}

	singles := form.File[upload.FieldImage]
	batch := form.File[upload.FieldImages]
	if len(singles) == 0 && len(batch) == 0 {
		RespondError(c, http.StatusBadRequest, "no se recibieron archivos", nil)
		return
	}

	if len(singles) > 0 {
		st, err := up.SaveFile(singles[0], upload.FieldImage)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out["image"] = st
	}

	if len(batch) > 0 {
		stored, err := up.SaveAll(batch, upload.FieldImages)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		out["images"] = stored
	}

	utils.LogEvent(middleware.GetRequestID(c), "upload", "media", "archivos guardados")
	RespondSuccess(c, http.StatusCreated, out)
}
