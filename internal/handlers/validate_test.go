package handlers

import (
	"testing"

	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestValidateSignUp(t *testing.T) {
	valid := models.SignUpRequest{
		Email:           "a@b.com",
		Forename:        "A",
		Surname:         "B",
		Password:        "x",
		ConfirmPassword: "x",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.SignUpRequest)
		nilReq  bool
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.SignUpRequest) {}},
		{name: "nil request", nilReq: true, wantErr: services.ErrEmptyRequest},
		{name: "empty email", mutate: func(r *models.SignUpRequest) { r.Email = "" }, wantErr: services.ErrEmptyRequest},
		{name: "blank forename", mutate: func(r *models.SignUpRequest) { r.Forename = "   " }, wantErr: services.ErrEmptyRequest},
		{name: "empty surname", mutate: func(r *models.SignUpRequest) { r.Surname = "" }, wantErr: services.ErrEmptyRequest},
		{name: "empty password", mutate: func(r *models.SignUpRequest) { r.Password = "" }, wantErr: services.ErrEmptyRequest},
		{name: "empty confirmation", mutate: func(r *models.SignUpRequest) { r.ConfirmPassword = "" }, wantErr: services.ErrEmptyRequest},
		{name: "invalid email", mutate: func(r *models.SignUpRequest) { r.Email = "not-an-email" }, wantErr: services.ErrEmailInvalid},
		{name: "password mismatch", mutate: func(r *models.SignUpRequest) { r.ConfirmPassword = "y" }, wantErr: services.ErrPasswordMismatch},
		{
			name: "empty wins over invalid email",
			mutate: func(r *models.SignUpRequest) {
				r.Email = "bad"
				r.Surname = ""
			},
			wantErr: services.ErrEmptyRequest,
		},
		{
			name: "invalid email wins over mismatch",
			mutate: func(r *models.SignUpRequest) {
				r.Email = "bad"
				r.ConfirmPassword = "y"
			},
			wantErr: services.ErrEmailInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *models.SignUpRequest
			if !tt.nilReq {
				r := valid
				tt.mutate(&r)
				req = &r
			}
			assert.Equal(t, tt.wantErr, validateSignUp(req))
		})
	}
}

func TestValidateSignIn(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.SignInRequest
		wantErr error
	}{
		{name: "valid", req: &models.SignInRequest{Email: "a@b.com", Password: "x"}},
		{name: "nil", req: nil, wantErr: services.ErrEmptyRequest},
		{name: "no email", req: &models.SignInRequest{Password: "x"}, wantErr: services.ErrEmptyRequest},
		{name: "no password", req: &models.SignInRequest{Email: "a@b.com"}, wantErr: services.ErrEmptyRequest},
		{name: "invalid email", req: &models.SignInRequest{Email: "a@", Password: "x"}, wantErr: services.ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, validateSignIn(tt.req))
		})
	}
}

func TestValidateCreateBlog(t *testing.T) {
	assert.NoError(t, validateCreateBlog(&models.CreateBlogRequest{Title: "t", Content: "c", CategoryID: 1}))
	assert.Equal(t, services.ErrEmptyRequest, validateCreateBlog(nil))
	assert.Equal(t, services.ErrEmptyRequest, validateCreateBlog(&models.CreateBlogRequest{Title: " ", Content: "c", CategoryID: 1}))
	assert.Equal(t, services.ErrEmptyRequest, validateCreateBlog(&models.CreateBlogRequest{Title: "t", Content: "c"}))
}
