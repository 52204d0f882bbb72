package dto

import "skillcycle/internal/domain"

// PageSummary is a page entry of the site navigation
type PageSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// PageListResponse lists every page in navigation order
type PageListResponse struct {
	Pages []PageSummary `json:"pages"`
}

// PageResponse wraps one page's content
type PageResponse struct {
	Page domain.Page `json:"page"`
}

// TextbookListResponse lists the textbook library
type TextbookListResponse struct {
	Textbooks []domain.Textbook `json:"textbooks"`
}

// VideoListResponse lists the video library
type VideoListResponse struct {
	Videos []domain.Video `json:"videos"`
}
