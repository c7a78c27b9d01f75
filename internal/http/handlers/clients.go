package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marquesa/internal/http/middleware"
	"marquesa/internal/repositories"
	"marquesa/internal/services"
	"marquesa/internal/utils"
)

// ListClients returns the client listing plus the total count for the
// admin panel, both fetched in one joined call.
func ListClients(c *gin.Context) {
	svc := services.StatsService{
		ClientRepo: repositories.ClientRepository{},
		SaleRepo:   repositories.SaleRepository{},
	}
	clients, total, err := svc.ClientsWithTotal(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{
		"clients": clients,
		"total":   total,
	})
}

// ClientsTotal returns only the client count, for the dashboard badge.
func ClientsTotal(c *gin.Context) {
	repo := repositories.ClientRepository{}
	total, err := repo.Count(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"total": total})
}

// authClientID resolves the numeric client id from the verified token.
func authClientID(c *gin.Context) (int64, bool) {
	raw := middleware.AuthUserID(c)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusUnauthorized, "sesión no válida", err)
		return 0, false
	}
	return id, true
}

func RuletaStatus(c *gin.Context) {
	clientID, ok := authClientID(c)
	if !ok {
		return
	}

	repo := repositories.ClientRepository{}
	enabled, err := repo.RuletaStatus(c.Request.Context(), clientID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusOK, gin.H{"ruletaEnabled": enabled})
}

func ToggleRuleta(c *gin.Context) {
	clientID, ok := authClientID(c)
	if !ok {
		return
	}

	repo := repositories.ClientRepository{}
	enabled, err := repo.ToggleRuleta(c.Request.Context(), clientID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "clients", "toggle_ruleta",
		"cliente "+strconv.FormatInt(clientID, 10)+" ruleta="+strconv.FormatBool(enabled))
	RespondSuccess(c, http.StatusOK, gin.H{"ruletaEnabled": enabled})
}
