package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-ms/internal/middlewares"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/services"
)

//go:generate mockgen -source=blogs.go -destination=mock_blogs.go -package=handlers

// BlogsGetter returns a page of blogs.
type BlogsGetter interface {
	GetBlogs(ctx context.Context, page models.Page) ([]models.BlogDTO, error)
}

// BlogGetter returns a single blog.
type BlogGetter interface {
	GetBlogByID(ctx context.Context, id int64) (*models.BlogDTO, error)
}

// CategoriesGetter returns every blog category.
type CategoriesGetter interface {
	GetCategories(ctx context.Context) ([]models.BlogCategoryDTO, error)
}

// BlogCreator stores new blogs.
type BlogCreator interface {
	CreateBlog(ctx context.Context, authorID int64, req *models.CreateBlogRequest) (*models.BlogDTO, error)
}

// BlogDeleter removes blogs.
type BlogDeleter interface {
	DeleteBlog(ctx context.Context, authorID, id int64) error
}

// NewGetBlogsHandler returns an HTTP handler that lists blogs page by page.
func NewGetBlogsHandler(svc BlogsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		blogs, err := svc.GetBlogs(r.Context(), page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, blogs)
	}
}

// NewGetBlogHandler returns an HTTP handler that fetches one blog.
func NewGetBlogHandler(svc BlogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := requiredQueryInt64(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		blog, err := svc.GetBlogByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, blog)
	}
}

// NewGetCategoriesHandler returns an HTTP handler that lists categories.
func NewGetCategoriesHandler(svc CategoriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.GetCategories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// NewCreateBlogHandler returns an HTTP handler that publishes a blog on
// behalf of the authenticated user.
func NewCreateBlogHandler(svc BlogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID := middlewares.UserIDFromContext(r.Context())
		if authorID <= 0 {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		req, err := decodeBody[models.CreateBlogRequest](r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := validateCreateBlog(req); err != nil {
			writeError(w, r, err)
			return
		}

		blog, err := svc.CreateBlog(r.Context(), authorID, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, blog)
	}
}

// NewDeleteBlogHandler returns an HTTP handler that removes a blog owned
// by the authenticated user.
func NewDeleteBlogHandler(svc BlogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID := middlewares.UserIDFromContext(r.Context())
		if authorID <= 0 {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		id, err := requiredQueryInt64(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.DeleteBlog(r.Context(), authorID, id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
