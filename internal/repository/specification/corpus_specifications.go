package specification

import "gorm.io/gorm"

// BySource filters corpus rows by their exact source name.
type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}

// ContentSearch filters corpus rows by a literal substring of their content.
// Uses ILIKE for Postgres (case insensitive).
type ContentSearch struct {
	Query string
}

func (s ContentSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("content ILIKE ?", pattern)
}

// ByArticleNo filters regulations by their article number.
type ByArticleNo struct {
	ArticleNo string
}

func (s ByArticleNo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("article_no = ?", s.ArticleNo)
}
