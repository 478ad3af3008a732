package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

var validate = validator.New()

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isEmail(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required,email") == nil
}

// validateSignUp checks a sign-up request. The first failed check wins.
func validateSignUp(req *models.SignUpRequest) error {
	if req == nil ||
		isBlank(req.Email) ||
		isBlank(req.Forename) ||
		isBlank(req.Surname) ||
		isBlank(req.Password) ||
		isBlank(req.ConfirmPassword) {
		return services.ErrEmptyRequest
	}
	if !isEmail(req.Email) {
		return services.ErrEmailInvalid
	}
	if req.Password != req.ConfirmPassword {
		return services.ErrPasswordMismatch
	}
	return nil
}

// validateSignIn checks a sign-in request.
func validateSignIn(req *models.SignInRequest) error {
	if req == nil || req.Email == "" || req.Password == "" {
		return services.ErrEmptyRequest
	}
	if !isEmail(req.Email) {
		return services.ErrEmailInvalid
	}
	return nil
}

func validateCreateBlog(req *models.CreateBlogRequest) error {
	if req == nil || isBlank(req.Title) || isBlank(req.Content) || req.CategoryID <= 0 {
		return services.ErrEmptyRequest
	}
	return nil
}
