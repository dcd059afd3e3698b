package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO con sus tags `validate` y devuelve un error legible
// que nombra el primer campo inválido (los errores de validación sí revelan
// el campo; los de autorización nunca revelan el motivo).
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	ok := false
	for _, e := range err.(validator.ValidationErrors) {
		verrs = append(verrs, e)
		ok = true
	}
	if !ok {
		return err
	}
	first := verrs[0]
	return fmt.Errorf("campo '%s' inválido (regla: %s)", strings.ToLower(first.Field()), first.Tag())
}
