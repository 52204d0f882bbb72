package service

import (
	"skillcycle/internal/content"
	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
)

// PageService serves the site's read-only content
type PageService interface {
	ListPages() *dto.PageListResponse
	GetPage(slug string) (*dto.PageResponse, error)
	ListTextbooks() *dto.TextbookListResponse
	ListVideos() *dto.VideoListResponse
	InquiryTypes() []dto.InquiryTypeResponse
}

type pageService struct {
	catalog *content.Catalog
}

// NewPageService creates a PageService over a loaded catalog
func NewPageService(catalog *content.Catalog) PageService {
	return &pageService{catalog: catalog}
}

func (s *pageService) ListPages() *dto.PageListResponse {
	resp := &dto.PageListResponse{Pages: make([]dto.PageSummary, len(s.catalog.Pages))}
	for i, p := range s.catalog.Pages {
		resp.Pages[i] = dto.PageSummary{Slug: p.Slug, Title: p.Title}
	}
	return resp
}

func (s *pageService) GetPage(slug string) (*dto.PageResponse, error) {
	page, ok := s.catalog.Page(slug)
	if !ok {
		return nil, domain.NewPageNotFoundError(slug)
	}
	return &dto.PageResponse{Page: page}, nil
}

func (s *pageService) ListTextbooks() *dto.TextbookListResponse {
	return &dto.TextbookListResponse{Textbooks: append([]domain.Textbook(nil), s.catalog.Textbooks...)}
}

func (s *pageService) ListVideos() *dto.VideoListResponse {
	return &dto.VideoListResponse{Videos: append([]domain.Video(nil), s.catalog.Videos...)}
}

func (s *pageService) InquiryTypes() []dto.InquiryTypeResponse {
	out := make([]dto.InquiryTypeResponse, len(s.catalog.InquiryTypes))
	for i, t := range s.catalog.InquiryTypes {
		out[i] = dto.InquiryTypeResponse{Value: t.Value, Label: t.Label}
	}
	return out
}
