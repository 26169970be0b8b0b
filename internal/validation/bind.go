package validation

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// BindAndValidate binds the JSON body into out and runs validation.
// On failure it writes a 400 with the uniform {success:false, error}
// envelope and returns an error for the handler to short-circuit on.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   firstErrorMessage(err),
		})
		return err
	}
	return nil
}

// firstErrorMessage turns the first validation failure into the
// client-facing message. First failure wins, matching the handler
// contract of reporting one problem at a time.
func firstErrorMessage(err error) string {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "Invalid request"
	}
	fe := ve[0]
	switch {
	case fe.Tag() == "required":
		return fmt.Sprintf("Missing required field: %s", fe.Field())
	case fe.Field() == "items" && fe.Tag() == "min":
		return "Order must contain at least one item"
	case fe.Field() == "quantity" && fe.Tag() == "min":
		return "Quantity must be at least 1"
	default:
		return fmt.Sprintf("Invalid field: %s", fe.Field())
	}
}
