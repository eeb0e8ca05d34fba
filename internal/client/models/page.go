package models

import "encoding/json"

// Page is one page of a paginated listing. Total counts items across all
// pages, not just Items.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages,omitempty"`
}

// UnmarshalJSON accepts both "total" and the backend's "total_items", and
// both "items" and "data" for the entries.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Items      []T  `json:"items"`
		Data       []T  `json:"data"`
		Page       int  `json:"page"`
		PageSize   int  `json:"page_size"`
		Total      *int `json:"total"`
		TotalItems *int `json:"total_items"`
		TotalPages int  `json:"total_pages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Items = raw.Items
	if p.Items == nil {
		p.Items = raw.Data
	}
	p.Page = raw.Page
	p.PageSize = raw.PageSize
	p.TotalPages = raw.TotalPages
	switch {
	case raw.Total != nil:
		p.Total = *raw.Total
	case raw.TotalItems != nil:
		p.Total = *raw.TotalItems
	default:
		p.Total = 0
	}
	return nil
}

// HasNext reports whether another page follows this one.
func (p *Page[T]) HasNext() bool {
	if p.PageSize <= 0 {
		return false
	}
	return p.Page*p.PageSize < p.Total
}
