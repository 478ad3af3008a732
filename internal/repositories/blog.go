package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-ms/internal/models"
)

// blogsAuthorFK names the blogs.author_id foreign key in the migrations.
const blogsAuthorFK = "blogs_author_id_fkey"

const blogSelect = `
	SELECT b.id, b.title, b.content, b.author_id, u.forename AS author_forename,
	       b.category_id, c.category, b.created_at
	FROM blogs b
	JOIN users u ON u.id = b.author_id
	JOIN blog_categories c ON c.id = b.category_id
`

// BlogReadRepository handles blog read operations
type BlogReadRepository struct {
	db *sqlx.DB
}

func NewBlogReadRepository(db *sqlx.DB) *BlogReadRepository {
	return &BlogReadRepository{db: db}
}

// List returns one page of blogs, newest first
func (r *BlogReadRepository) List(ctx context.Context, page models.Page) ([]models.BlogDB, error) {
	const query = blogSelect + ` ORDER BY b.created_at DESC, b.id DESC LIMIT $1 OFFSET $2`
	args := []any{page.Size, page.Offset()}

	var blogs []models.BlogDB
	err := r.db.SelectContext(ctx, &blogs, query, args...)

	logQuery(ctx, query, args, len(blogs), err)

	return blogs, err
}

// GetByID returns the blog with the given id, or nil
func (r *BlogReadRepository) GetByID(ctx context.Context, id int64) (*models.BlogDB, error) {
	const query = blogSelect + ` WHERE b.id = $1`

	var blog models.BlogDB
	err := r.db.GetContext(ctx, &blog, query, id)

	logQuery(ctx, query, []any{id}, blog.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// ListCategories returns every category ordered by name
func (r *BlogReadRepository) ListCategories(ctx context.Context) ([]models.BlogCategoryDB, error) {
	const query = `SELECT id, category FROM blog_categories ORDER BY category`

	var categories []models.BlogCategoryDB
	err := r.db.SelectContext(ctx, &categories, query)

	logQuery(ctx, query, nil, len(categories), err)

	return categories, err
}

// BlogWriteRepository handles blog write operations
type BlogWriteRepository struct {
	db *sqlx.DB
}

func NewBlogWriteRepository(db *sqlx.DB) *BlogWriteRepository {
	return &BlogWriteRepository{db: db}
}

// Save inserts a blog and returns its id
func (r *BlogWriteRepository) Save(ctx context.Context, authorID int64, req *models.CreateBlogRequest) (int64, error) {
	const query = `
		INSERT INTO blogs (author_id, category_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{authorID, req.CategoryID, req.Title, req.Content}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(ctx, query, []any{authorID, req.CategoryID, req.Title}, id, err)

	if violatedConstraint(err) == blogsAuthorFK {
		return 0, errors.Join(ErrAuthorNotFound, err)
	}
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// DeleteByID removes a blog
func (r *BlogWriteRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM blogs WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	return err
}
