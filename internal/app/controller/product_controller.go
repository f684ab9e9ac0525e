package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/model"
	"github.com/mohammadsaqib2064/onyx-aura/internal/app/service"
	"github.com/mohammadsaqib2064/onyx-aura/internal/errors"
	"github.com/mohammadsaqib2064/onyx-aura/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductRequest is the create/update payload. On update every field is
// optional; absent fields leave the stored value alone.
type ProductRequest struct {
	Name           string                `json:"name"`
	Price          string                `json:"price"`
	Image          string                `json:"image"`
	Images         []string              `json:"images"`
	Category       model.ProductCategory `json:"category"`
	Description    string                `json:"description"`
	Height         model.ProductHeight   `json:"height"`
	Specifications model.Specifications  `json:"specifications"`
}

func (req *ProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:           req.Name,
		Price:          req.Price,
		Image:          req.Image,
		Images:         model.StringArray(req.Images),
		Category:       req.Category,
		Description:    req.Description,
		Height:         req.Height,
		Specifications: req.Specifications,
	}
}

// GetAllProducts returns the catalog, oldest first. An optional category
// query filters to Collection or Spotlight.
// GET /api/products
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var category *model.ProductCategory
	if raw := c.Query("category"); raw != "" {
		cat := model.ProductCategory(raw)
		category = &cat
	}

	products, err := ctrl.productService.ListProducts(c.Request.Context(), category)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		errors.InternalError(c, "Failed to fetch products")
		return
	}

	log.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// GetProductByID returns a single product.
// GET /api/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	product, err := ctrl.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			errors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// CreateProduct adds a product to the catalog (admin only).
// POST /api/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, "Invalid request data")
		return
	}

	product := req.toModel()
	if err := ctrl.productService.CreateProduct(c.Request.Context(), product); err != nil {
		if stderrors.Is(err, service.ErrMissingFields) || stderrors.Is(err, service.ErrInvalidCategory) {
			log.Warn("Product validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			errors.BadRequest(c, err.Error())
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.InternalError(c, "Failed to create product")
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// UpdateProduct applies a partial update to a product (admin only).
// PUT /api/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		errors.BadRequest(c, "Invalid request data")
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), id, req.toModel())
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for update", map[string]interface{}{
				"product_id": id,
			})
			errors.NotFound(c, "Product not found")
			return
		}
		if stderrors.Is(err, service.ErrMissingFields) || stderrors.Is(err, service.ErrInvalidCategory) {
			errors.BadRequest(c, err.Error())
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "Failed to update product")
		return
	}

	log.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// DeleteProduct removes a product from the catalog (admin only).
// DELETE /api/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for deletion", map[string]interface{}{
				"product_id": id,
			})
			errors.NotFound(c, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "Failed to delete product")
		return
	}

	log.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}
