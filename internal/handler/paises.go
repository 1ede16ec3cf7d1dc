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

type PaisesHandler struct{ svc service.PaisService }

func NewPaisesHandler(svc service.PaisService) *PaisesHandler {
	return &PaisesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear país
// @Tags         paises
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearPaisRequest true "Datos del país"
// @Success      201  {object} dto.PaisResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /paises/ [post]
func (h *PaisesHandler) Crear(c *gin.Context) {
	var req dto.CrearPaisRequest
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
// @Summary      Listar países
// @Description  Orden natural de la tabla (sin ORDER BY).
// @Tags         paises
// @Produce      json
// @Param        skip  query    int false "Cantidad a omitir" default(0)   minimum(0)
// @Param        limit query    int false "Cantidad a devolver" default(100) minimum(1) maximum(1000)
// @Success      200   {array}  dto.PaisResponse
// @Failure      422   {object} apierror.ValidationError
// @Router       /paises/ [get]
func (h *PaisesHandler) Listar(c *gin.Context) {
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
// @Summary      Obtener país
// @Tags         paises
// @Produce      json
// @Param        id  path     int true "ID del país"
// @Success      200 {object} dto.PaisResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /paises/{id} [get]
func (h *PaisesHandler) ObtenerPorID(c *gin.Context) {
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
// @Summary      Actualizar país
// @Description  Solo se modifican los campos presentes en el cuerpo.
// @Tags         paises
// @Accept       json
// @Produce      json
// @Param        id   path     int                          true "ID del país"
// @Param        body body     dto.ActualizarPaisRequest true "Campos a modificar"
// @Success      200  {object} dto.PaisResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /paises/{id} [put]
func (h *PaisesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, h.notFound)
	if !ok {
		return
	}
	var req dto.ActualizarPaisRequest
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
// @Summary      Eliminar país
// @Tags         paises
// @Param        id  path int true "ID del país"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /paises/{id} [delete]
func (h *PaisesHandler) Eliminar(c *gin.Context) {
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
// @Summary      Buscar países por nombre
// @Description  Coincidencia parcial, sin distinguir mayúsculas, sobre el nombre.
// @Description  Recorre como máximo 1000 registros; no escala a tablas grandes.
// @Tags         paises
// @Produce      json
// @Param        nombre query    string true "Texto a buscar" minlength(2)
// @Success      200    {array}  dto.PaisResponse
// @Failure      422    {object} apierror.ValidationError
// @Router       /paises/search/ [get]
func (h *PaisesHandler) Buscar(c *gin.Context) {
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

func (h *PaisesHandler) fail(c *gin.Context, id uint, err error) {
	if errors.Is(err, service.ErrPaisNoEncontrado) {
		h.notFound(c, strconv.FormatUint(uint64(id), 10))
		return
	}
	_ = c.Error(err)
}

func (h *PaisesHandler) notFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, apierror.Newf("Pais con id %s no encontrado", id))
}
