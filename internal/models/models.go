package models

import "time"

// Post represents one idea in the listing
// swagger:model Post
type Post struct {
	// Stable post identifier
	ID int `json:"id" gorm:"primaryKey;autoIncrement:false"`
	// Post title, plain text
	Title string `json:"title"`
	// Publication instant (ISO-8601)
	PublishedAt time.Time `json:"published_at" gorm:"index"`
	// Thumbnail image URL
	SmallImage string `json:"small_image"`
	// Medium image URL
	MediumImage string `json:"medium_image"`
	// Insertion order in the generated collection
	Position int `json:"-" gorm:"index"`
}

// PageMeta describes where a page sits in the full collection
// swagger:model PageMeta
type PageMeta struct {
	// Size of the full collection
	Total int `json:"total"`
	// Requested 1-based page
	Page int `json:"page"`
	// Requested page size
	PerPage int `json:"per_page"`
	// ceil(total / per_page)
	TotalPages int `json:"total_pages"`
}

// Page is the /api/ideas response body
// swagger:model Page
type Page struct {
	// Posts on the requested page, at most per_page long
	Data []Post `json:"data"`
	// Pagination metadata
	Meta PageMeta `json:"meta"`
}

// HealthStatus is the /api/health response body
// swagger:model HealthStatus
type HealthStatus struct {
	// Always "OK"
	Status string `json:"status"`
	// Server time
	Timestamp time.Time `json:"timestamp"`
}
