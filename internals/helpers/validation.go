package helper

import (
	"github.com/go-playground/validator/v10"
)

// MapValidationErrors mengubah validator.ValidationErrors → map field → pesan tag
func MapValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}

// ValidateStruct: nil jika valid, selain itu map field→error utk JsonValidationError
func ValidateStruct(v *validator.Validate, payload any) map[string][]string {
	if err := v.Struct(payload); err != nil {
		return MapValidationErrors(err)
	}
	return nil
}
