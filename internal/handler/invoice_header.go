package handler

import (
	"net/http"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoiceHeaderHandler struct{ svc service.InvoiceHeaderService }

func NewInvoiceHeaderHandler(svc service.InvoiceHeaderService) *InvoiceHeaderHandler {
	return &InvoiceHeaderHandler{svc: svc}
}

// Create POST /invoice/
//
// @Summary  Create an invoice header
// @Tags     invoice
// @Accept   json
// @Produce  json
// @Param    body body     dto.CreateInvoiceHeaderRequest true "InvoiceHeader"
// @Success  201  {object} dto.InvoiceHeaderResponse
// @Failure  400  {object} apierror.APIError
// @Failure  422  {object} apierror.ValidationError
// @Router   /invoice/ [post]
func (h *InvoiceHeaderHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceHeaderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "InvoiceHeader")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get GET /invoice/:id
//
// @Summary  Get an invoice header with its detail lines
// @Tags     invoice
// @Produce  json
// @Param    id  path     int true "InvoiceHeader ID"
// @Success  200 {object} dto.InvoiceHeaderResponse
// @Failure  404 {object} apierror.APIError
// @Router   /invoice/{id} [get]
func (h *InvoiceHeaderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "InvoiceHeader")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List GET /invoice/
//
// @Summary  List invoice headers
// @Tags     invoice
// @Produce  json
// @Param    skip  query int false "Rows to skip"  default(0)
// @Param    limit query int false "Rows to return" default(100)
// @Success  200   {array} dto.InvoiceHeaderResponse
// @Router   /invoice/ [get]
func (h *InvoiceHeaderHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err, "InvoiceHeader")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /invoice/:id
//
// @Summary  Partially update an invoice header
// @Tags     invoice
// @Accept   json
// @Produce  json
// @Param    id   path     int                     true "InvoiceHeader ID"
// @Param    body body     dto.UpdateInvoiceHeaderRequest true "Fields to change"
// @Success  200  {object} dto.InvoiceHeaderResponse
// @Failure  404  {object} apierror.APIError
// @Router   /invoice/{id} [put]
func (h *InvoiceHeaderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceHeaderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, "InvoiceHeader")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /invoice/:id
//
// @Summary  Delete an invoice header
// @Tags     invoice
// @Param    id  path int true "InvoiceHeader ID"
// @Success  204
// @Failure  404 {object} apierror.APIError
// @Failure  409 {object} apierror.APIError
// @Router   /invoice/{id} [delete]
func (h *InvoiceHeaderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "InvoiceHeader")
		return
	}
	c.Status(http.StatusNoContent)
}
