package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type verificationRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func normalizedEmail(c *gin.Context, raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !strings.Contains(email, "@") {
		RespondError(c, http.StatusBadRequest, "correo electrónico no válido", nil)
		return "", false
	}
	return email, true
}

// RequestVerificationCode sends a fresh code, honoring the resend cooldown.
func RequestVerificationCode(c *gin.Context) {
	var req verificationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	email, ok := normalizedEmail(c, req.Email)
	if !ok {
		return
	}

	if err := getVerifier().Request(c.Request.Context(), email); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "código enviado")
}

// VerifyCode checks a submitted code against the stored hash.
func VerifyCode(c *gin.Context) {
	var req verificationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	email, ok := normalizedEmail(c, req.Email)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		RespondError(c, http.StatusBadRequest, "el código es obligatorio", nil)
		return
	}

	if err := getVerifier().Verify(email, strings.TrimSpace(req.Code)); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "correo verificado")
}

// VerificationStatus reports where an email sits in the resend cycle.
func VerificationStatus(c *gin.Context) {
	email, ok := normalizedEmail(c, c.Query("email"))
	if !ok {
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{
		"email": email,
		"state": getVerifier().State(email),
	})
}
