package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// IsEmail 校验邮箱格式
func IsEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
