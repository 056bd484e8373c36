package handler

import (
	"net/http"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct{ svc service.ProductService }

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create POST /product/
//
// @Summary  Create a product
// @Tags     product
// @Accept   json
// @Produce  json
// @Param    body body     dto.CreateProductRequest true "Product"
// @Success  201  {object} dto.ProductResponse
// @Failure  400  {object} apierror.APIError
// @Failure  422  {object} apierror.ValidationError
// @Router   /product/ [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "Product")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get GET /product/:id
//
// @Summary  Get a product
// @Tags     product
// @Produce  json
// @Param    id  path     int true "Product ID"
// @Success  200 {object} dto.ProductResponse
// @Failure  404 {object} apierror.APIError
// @Router   /product/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List GET /product/
//
// @Summary  List products
// @Tags     product
// @Produce  json
// @Param    skip  query int false "Rows to skip"  default(0)
// @Param    limit query int false "Rows to return" default(100)
// @Success  200   {array} dto.ProductResponse
// @Router   /product/ [get]
func (h *ProductHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /product/:id
//
// @Summary  Partially update a product
// @Tags     product
// @Accept   json
// @Produce  json
// @Param    id   path     int                     true "Product ID"
// @Param    body body     dto.UpdateProductRequest true "Fields to change"
// @Success  200  {object} dto.ProductResponse
// @Failure  404  {object} apierror.APIError
// @Router   /product/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /product/:id
//
// @Summary  Delete a product
// @Tags     product
// @Param    id  path int true "Product ID"
// @Success  204
// @Failure  404 {object} apierror.APIError
// @Failure  409 {object} apierror.APIError
// @Router   /product/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Product")
		return
	}
	c.Status(http.StatusNoContent)
}
