package handler

import (
	"net/http"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoiceDetailHandler struct{ svc service.InvoiceDetailService }

func NewInvoiceDetailHandler(svc service.InvoiceDetailService) *InvoiceDetailHandler {
	return &InvoiceDetailHandler{svc: svc}
}

// Create POST /invoice_detail/
//
// @Summary  Create an invoice detail
// @Tags     invoice_detail
// @Accept   json
// @Produce  json
// @Param    body body     dto.CreateInvoiceDetailRequest true "InvoiceDetail"
// @Success  201  {object} dto.InvoiceDetailResponse
// @Failure  400  {object} apierror.APIError
// @Failure  422  {object} apierror.ValidationError
// @Router   /invoice_detail/ [post]
func (h *InvoiceDetailHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceDetailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "InvoiceDetail")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get GET /invoice_detail/:id
//
// @Summary  Get an invoice detail
// @Tags     invoice_detail
// @Produce  json
// @Param    id  path     int true "InvoiceDetail ID"
// @Success  200 {object} dto.InvoiceDetailResponse
// @Failure  404 {object} apierror.APIError
// @Router   /invoice_detail/{id} [get]
func (h *InvoiceDetailHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "InvoiceDetail")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List GET /invoice_detail/
//
// @Summary  List invoice details
// @Tags     invoice_detail
// @Produce  json
// @Param    skip  query int false "Rows to skip"  default(0)
// @Param    limit query int false "Rows to return" default(100)
// @Success  200   {array} dto.InvoiceDetailResponse
// @Router   /invoice_detail/ [get]
func (h *InvoiceDetailHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err, "InvoiceDetail")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /invoice_detail/:id
//
// @Summary  Partially update an invoice detail
// @Tags     invoice_detail
// @Accept   json
// @Produce  json
// @Param    id   path     int                     true "InvoiceDetail ID"
// @Param    body body     dto.UpdateInvoiceDetailRequest true "Fields to change"
// @Success  200  {object} dto.InvoiceDetailResponse
// @Failure  404  {object} apierror.APIError
// @Router   /invoice_detail/{id} [put]
func (h *InvoiceDetailHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceDetailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, "InvoiceDetail")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /invoice_detail/:id
//
// @Summary  Delete an invoice detail
// @Tags     invoice_detail
// @Param    id  path int true "InvoiceDetail ID"
// @Success  204
// @Failure  404 {object} apierror.APIError
// @Failure  409 {object} apierror.APIError
// @Router   /invoice_detail/{id} [delete]
func (h *InvoiceDetailHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "InvoiceDetail")
		return
	}
	c.Status(http.StatusNoContent)
}
