package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/blog-ms/internal/logger"
	"github.com/sbilibin2017/blog-ms/internal/mappers"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/sbilibin2017/blog-ms/internal/repositories"
)

//go:generate mockgen -source=blog.go -destination=mock_blog.go -package=services

// BlogReader defines read operations for blogs.
// GetByID returns (nil, nil) when no row matches.
type BlogReader interface {
	List(ctx context.Context, page models.Page) ([]models.BlogDB, error)
	GetByID(ctx context.Context, id int64) (*models.BlogDB, error)
	ListCategories(ctx context.Context) ([]models.BlogCategoryDB, error)
}

// BlogWriter defines write operations for blogs.
type BlogWriter interface {
	Save(ctx context.Context, authorID int64, req *models.CreateBlogRequest) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// BlogService handles blog listing, creation and removal.
type BlogService struct {
	reader BlogReader
	writer BlogWriter
}

// NewBlogService creates a new BlogService.
func NewBlogService(reader BlogReader, writer BlogWriter) *BlogService {
	return &BlogService{reader: reader, writer: writer}
}

// GetBlogs returns one page of blogs, newest first.
func (svc *BlogService) GetBlogs(ctx context.Context, page models.Page) ([]models.BlogDTO, error) {
	blogs, err := svc.reader.List(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list blogs", "page", page.Number, "size", page.Size, "err", err)
		return nil, err
	}
	return mappers.MapBlogs(blogs), nil
}

// GetBlogByID returns a single blog.
func (svc *BlogService) GetBlogByID(ctx context.Context, id int64) (*models.BlogDTO, error) {
	blog, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get blog", "id", id, "err", err)
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("blog %d: %w", id, ErrNotFound)
	}
	return mappers.MapBlog(blog), nil
}

// GetCategories returns every blog category.
func (svc *BlogService) GetCategories(ctx context.Context) ([]models.BlogCategoryDTO, error) {
	categories, err := svc.reader.ListCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list categories", "err", err)
		return nil, err
	}
	return mappers.MapCategories(categories), nil
}

// CreateBlog stores a new blog written by authorID and returns it.
func (svc *BlogService) CreateBlog(ctx context.Context, authorID int64, req *models.CreateBlogRequest) (*models.BlogDTO, error) {
	id, err := svc.writer.Save(ctx, authorID, req)
	if err != nil {
		if errors.Is(err, repositories.ErrAuthorNotFound) {
			logger.FromContext(ctx).Warnw("blog author no longer exists", "author_id", authorID)
			return nil, fmt.Errorf("author %d: %w", authorID, ErrUnauthorized)
		}
		if errors.Is(err, repositories.ErrReferenceNotFound) {
			return nil, fmt.Errorf("category %d: %w", req.CategoryID, ErrNotFound)
		}
		logger.FromContext(ctx).Errorw("failed to save blog", "author_id", authorID, "err", err)
		return nil, err
	}
	return svc.GetBlogByID(ctx, id)
}

// DeleteBlog removes a blog owned by authorID.
func (svc *BlogService) DeleteBlog(ctx context.Context, authorID, id int64) error {
	log := logger.FromContext(ctx)

	blog, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get blog", "id", id, "err", err)
		return err
	}
	if blog == nil {
		return fmt.Errorf("blog %d: %w", id, ErrNotFound)
	}
	if blog.AuthorID != authorID {
		log.Warnw("blog removal by non-author", "id", id, "author_id", blog.AuthorID, "caller_id", authorID)
		return ErrForbidden
	}

	if err := svc.writer.DeleteByID(ctx, id); err != nil {
		log.Errorw("failed to delete blog", "id", id, "err", err)
		return err
	}
	return nil
}
