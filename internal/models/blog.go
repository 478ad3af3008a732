package models

import "time"

// BlogDB is a blog row joined with its author and category
type BlogDB struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	AuthorID   int64     `db:"author_id"`
	AuthorName string    `db:"author_forename"`
	CategoryID int64     `db:"category_id"`
	Category   string    `db:"category"`
	CreatedAt  time.Time `db:"created_at"`
}

// BlogCategoryDB is a row of blog_categories
type BlogCategoryDB struct {
	ID       int64  `db:"id"`
	Category string `db:"category"`
}

// BlogCategoryDTO is the public view of a blog category
type BlogCategoryDTO struct {
	CategoryID int64  `json:"categoryId"`
	Category   string `json:"category"`
}

// BlogDTO is the public view of a blog post
type BlogDTO struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	AuthorID     int64           `json:"authorId"`
	AuthorName   string          `json:"authorName"`
	Date         time.Time       `json:"date"`
	BlogCategory BlogCategoryDTO `json:"blogCategory"`
}

// CreateBlogRequest is the body of POST /blog
type CreateBlogRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID int64  `json:"categoryId"`
}

// Page is a zero-based page request
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return p.Number * p.Size
}
