package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// WriteFields carries per-field messages next to the error code.
func WriteFields(c *gin.Context, status int, code, message string, fields map[string]string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Validation(c *gin.Context, fields map[string]string) {
	WriteFields(c, http.StatusBadRequest, CodeValidationFailed, "Dados inválidos.", fields)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func BadGateway(c *gin.Context, code, message string, fields map[string]string) {
	WriteFields(c, http.StatusBadGateway, code, message, fields)
}
