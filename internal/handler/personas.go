package handler

import (
	"errors"
	"net/http"
	"strconv"

	"personas/internal/apierror"
	"personas/internal/dto"
	"personas/internal/service"

	"github.com/gin-gonic/gin"
)

type PersonasHandler struct{ svc service.PersonaService }

func NewPersonasHandler(svc service.PersonaService) *PersonasHandler {
	return &PersonasHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearPersonaRequest true "Datos de la persona"
// @Success      201  {object} dto.PersonaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /personas/ [post]
func (h *PersonasHandler) Crear(c *gin.Context) {
	var req dto.CrearPersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar personas
// @Description  Orden natural de la tabla (sin ORDER BY).
// @Tags         personas
// @Produce      json
// @Param        skip  query    int false "Cantidad a omitir" default(0)   minimum(0)
// @Param        limit query    int false "Cantidad a devolver" default(100) minimum(1) maximum(1000)
// @Success      200   {array}  dto.PersonaResponse
// @Failure      422   {object} apierror.ValidationError
// @Router       /personas/ [get]
func (h *PersonasHandler) Listar(c *gin.Context) {
	var q dto.ListarQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener persona
// @Tags         personas
// @Produce      json
// @Param        id  path     int true "ID de la persona"
// @Success      200 {object} dto.PersonaResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /personas/{id} [get]
func (h *PersonasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, h.notFound)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar persona
// @Description  Solo se modifican los campos presentes en el cuerpo.
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        id   path     int                          true "ID de la persona"
// @Param        body body     dto.ActualizarPersonaRequest true "Campos a modificar"
// @Success      200  {object} dto.PersonaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /personas/{id} [put]
func (h *PersonasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, h.notFound)
	if !ok {
		return
	}
	var req dto.ActualizarPersonaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, id, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar persona
// @Tags         personas
// @Param        id  path int true "ID de la persona"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /personas/{id} [delete]
func (h *PersonasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, h.notFound)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.fail(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Buscar godoc
// @Summary      Buscar personas por nombre
// @Description  Coincidencia parcial, sin distinguir mayúsculas, sobre nombre o apellido.
// @Description  Recorre como máximo 1000 registros; no escala a tablas grandes.
// @Tags         personas
// @Produce      json
// @Param        nombre query    string true "Texto a buscar" minlength(2)
// @Success      200    {array}  dto.PersonaResponse
// @Failure      422    {object} apierror.ValidationError
// @Router       /personas/search/ [get]
func (h *PersonasHandler) Buscar(c *gin.Context) {
	var q dto.BuscarQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), q.Nombre)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonasHandler) fail(c *gin.Context, id uint, err error) {
	if errors.Is(err, service.ErrPersonaNoEncontrada) {
		h.notFound(c, strconv.FormatUint(uint64(id), 10))
		return
	}
	_ = c.Error(err)
}

func (h *PersonasHandler) notFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, apierror.Newf("Persona con id %s no encontrada", id))
}
