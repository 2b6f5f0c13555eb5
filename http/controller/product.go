package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jrandrade/datastore-gateway/entity"
	"github.com/jrandrade/datastore-gateway/http/controller/dto"
	"github.com/jrandrade/datastore-gateway/utils"
)

func parseProductID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSON400(c, "invalid product id")
		return 0, false
	}
	return id, true
}

// TestMySQLConnection godoc
// @Summary  Relational-store health probe
// @Tags     produtos
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Failure  500 {object} map[string]string
// @Router   /mysql/testar-conexao [get]
func (ctrl *Controller) TestMySQLConnection(c *gin.Context) {
	ctx := c.Request.Context()

	test, err := ctrl.Infra.MySQL.TestConnection(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] MySQL connection probe failed")
		utils.JSON500(c, "MySQL connection failed", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] MySQL connection probe succeeded")
	utils.JSON200(c, gin.H{"message": "MySQL connection succeeded", "test": test})
}

// CreateProduct godoc
// @Summary  Create a product
// @Tags     produtos
// @Accept   json
// @Produce  json
// @Param    product body dto.CreateProductRequest true "product"
// @Success  201 {object} entity.Product
// @Failure  400 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /produtos [post]
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Product] Invalid create payload: %v", err)
		utils.JSON400(c, "nome, descricao and preco are required")
		return
	}

	product, err := ctrl.Repository.ProductRepo.Create(ctx, req.Nome, req.Descricao, *req.Preco)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to create product")
		utils.JSON500(c, "Failed to create product", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Product created: %d", product.ID)
	utils.JSON201(c, product)
}

// ListProducts godoc
// @Summary  List all products
// @Tags     produtos
// @Produce  json
// @Success  200 {array} entity.Product
// @Failure  500 {object} map[string]string
// @Router   /produtos [get]
func (ctrl *Controller) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := ctrl.Repository.ProductRepo.FindAll(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to list products")
		utils.JSON500(c, "Failed to list products", err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Listed %d products", len(products))
	utils.JSON200(c, products)
}

// GetProductByID godoc
// @Summary  Get one product
// @Tags     produtos
// @Produce  json
// @Param    id path int true "product id"
// @Success  200 {object} entity.Product
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /produtos/{id} [get]
func (ctrl *Controller) GetProductByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := ctrl.Repository.ProductRepo.FindByID(ctx, id)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Product] Product not found: %d", id)
		utils.JSON404(c, "product not found")
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to fetch product %d", id)
		utils.JSON500(c, "Failed to fetch product", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Product found: %d", id)
		utils.JSON200(c, product)
	}
}

// UpdateProductByID godoc
// @Summary  Replace one product
// @Tags     produtos
// @Accept   json
// @Produce  json
// @Param    id      path int                      true "product id"
// @Param    product body dto.UpdateProductRequest true "full replacement"
// @Success  200 {object} entity.Product
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /produtos/{id} [put]
func (ctrl *Controller) UpdateProductByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	// Full-replace semantics: every column must be resupplied, unlike the
	// document resource's partial merge.
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Product] Invalid update payload: %v", err)
		utils.JSON400(c, "nome, descricao and preco are required")
		return
	}

	product, err := ctrl.Repository.ProductRepo.UpdateByID(ctx, id, req.Nome, req.Descricao, *req.Preco)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Product] Product not found for update: %d", id)
		utils.JSON404(c, "product not found")
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to update product %d", id)
		utils.JSON500(c, "Failed to update product", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Product updated: %d", id)
		utils.JSON200(c, product)
	}
}

// DeleteProductByID godoc
// @Summary  Delete one product
// @Tags     produtos
// @Produce  json
// @Param    id path int true "product id"
// @Success  200 {object} map[string]string
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /produtos/{id} [delete]
func (ctrl *Controller) DeleteProductByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	err := ctrl.Repository.ProductRepo.DeleteByID(ctx, id)
	switch {
	case errors.Is(err, entity.ErrNotFound):
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Product] Product not found for delete: %d", id)
		utils.JSON404(c, "product not found")
	case err != nil:
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to delete product %d", id)
		utils.JSON500(c, "Failed to delete product", err)
	default:
		ctrl.Infra.Logger.InfoWithContextf(ctx, "[Product] Product deleted: %d", id)
		utils.JSON200(c, gin.H{"message": "product deleted"})
	}
}
