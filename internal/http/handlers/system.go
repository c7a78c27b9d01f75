package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "marquesa/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "api la marquesa en línea"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "base de datos no disponible", err)
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "fallo al consultar la base de datos", err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"products_in_db": count})
}
