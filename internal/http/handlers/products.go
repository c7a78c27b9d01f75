package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marquesa/internal/repositories"
)

func ListFeaturedProducts(c *gin.Context) {
	repo := repositories.ProductRepository{}
	products, err := repo.ListFeatured()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || pid <= 0 {
		RespondError(c, http.StatusBadRequest, "id de producto no válido", err)
		return
	}

	repo := repositories.ProductRepository{}
	product, err := repo.GetByID(pid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, product)
}
