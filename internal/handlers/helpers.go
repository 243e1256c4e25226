package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

const msgInvalidType = "Tipo inválido."

// parseID validates the :id route parameter and writes the 400 itself.
func parseID(c *gin.Context) (uint, bool) {
	id, errs := validation.ParseID(c.Param("id"))
	if errs != nil {
		httperr.Validation(c, errs)
		return 0, false
	}
	return id, true
}

// bindClient decodes the JSON body. A value of the wrong JSON type is
// reported against its field together with every other failing rule of
// the partly decoded input.
func bindClient(c *gin.Context, in *validation.ClientInput) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			fields := validation.Errors{}
			for k, v := range validation.ValidateClient(*in) {
				fields[k] = v
			}
			fields[ute.Field] = msgInvalidType
			httperr.Validation(c, fields)
			return false
		}
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Corpo da requisição inválido.")
		return false
	}
	return true
}
