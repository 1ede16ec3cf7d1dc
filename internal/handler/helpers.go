package handler

import (
	"errors"
	"net/http"
	"strconv"

	"personas/internal/apierror"
	"personas/internal/dto"

	"github.com/gin-gonic/gin"
)

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails.
// The caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return validateRequest(c, req)
}

// bindQuery is bindAndValidate for query-string parameters.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Parametros invalidos: "+err.Error()))
		return false
	}
	return validateRequest(c, req)
}

func validateRequest(c *gin.Context, req interface{}) bool {
	if err := dto.Validate(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(dto.FieldErrors(err)))
		return false
	}
	return true
}

// parseID reads the :id path parameter. Text that is not an integer is a 400.
// An integer that cannot be a stored key (zero, negative or beyond int64) is
// handed to notFound, the same answer as a key with no row.
func parseID(c *gin.Context, notFound func(c *gin.Context, id string)) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		notFound(c, raw)
		return 0, false
	case err != nil:
		c.JSON(http.StatusBadRequest, apierror.New(apierror.MsgIDInvalido))
		return 0, false
	case id <= 0:
		notFound(c, strconv.FormatInt(id, 10))
		return 0, false
	}
	return uint(id), true
}
