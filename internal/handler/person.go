package handler

import (
	"net/http"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/dto"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct{ svc service.PersonService }

func NewPersonHandler(svc service.PersonService) *PersonHandler {
	return &PersonHandler{svc: svc}
}

// Create POST /person/
//
// @Summary  Create a person
// @Tags     person
// @Accept   json
// @Produce  json
// @Param    body body     dto.CreatePersonRequest true "Person"
// @Success  201  {object} dto.PersonResponse
// @Failure  400  {object} apierror.APIError
// @Failure  422  {object} apierror.ValidationError
// @Router   /person/ [post]
func (h *PersonHandler) Create(c *gin.Context) {
	var req dto.CreatePersonRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "Person")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get GET /person/:id
//
// @Summary  Get a person
// @Tags     person
// @Produce  json
// @Param    id  path     int true "Person ID"
// @Success  200 {object} dto.PersonResponse
// @Failure  404 {object} apierror.APIError
// @Router   /person/{id} [get]
func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Person")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List GET /person/
//
// @Summary  List persons
// @Tags     person
// @Produce  json
// @Param    skip  query int false "Rows to skip"  default(0)
// @Param    limit query int false "Rows to return" default(100)
// @Success  200   {array} dto.PersonResponse
// @Router   /person/ [get]
func (h *PersonHandler) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err, "Person")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /person/:id
//
// @Summary  Partially update a person
// @Tags     person
// @Accept   json
// @Produce  json
// @Param    id   path     int                     true "Person ID"
// @Param    body body     dto.UpdatePersonRequest true "Fields to change"
// @Success  200  {object} dto.PersonResponse
// @Failure  404  {object} apierror.APIError
// @Router   /person/{id} [put]
func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePersonRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err, "Person")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /person/:id
//
// @Summary  Delete a person
// @Tags     person
// @Param    id  path int true "Person ID"
// @Success  204
// @Failure  404 {object} apierror.APIError
// @Failure  409 {object} apierror.APIError
// @Router   /person/{id} [delete]
func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Person")
		return
	}
	c.Status(http.StatusNoContent)
}
