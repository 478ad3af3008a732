package mappers

import "github.com/sbilibin2017/blog-ms/internal/models"

// MapBlog converts a joined blog row. A nil row maps to nil.
func MapBlog(blog *models.BlogDB) *models.BlogDTO {
	if blog == nil {
		return nil
	}
	return &models.BlogDTO{
		ID:         blog.ID,
		Title:      blog.Title,
		Content:    blog.Content,
		AuthorID:   blog.AuthorID,
		AuthorName: blog.AuthorName,
		Date:       blog.CreatedAt,
		BlogCategory: models.BlogCategoryDTO{
			CategoryID: blog.CategoryID,
			Category:   blog.Category,
		},
	}
}

// MapBlogs converts every row, preserving order; the result is never nil.
func MapBlogs(blogs []models.BlogDB) []models.BlogDTO {
	dtos := make([]models.BlogDTO, 0, len(blogs))
	for i := range blogs {
		dtos = append(dtos, *MapBlog(&blogs[i]))
	}
	return dtos
}

// MapCategories converts category rows; the result is never nil.
func MapCategories(categories []models.BlogCategoryDB) []models.BlogCategoryDTO {
	dtos := make([]models.BlogCategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, models.BlogCategoryDTO{CategoryID: c.ID, Category: c.Category})
	}
	return dtos
}
