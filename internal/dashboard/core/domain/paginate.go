package domain

import "strconv"

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the 1-based page of items. A page past the end is empty.
func Paginate[T any](items []T, page, pageSize int) ([]T, error) {
	if err := checkPage(page, pageSize); err != nil {
		return nil, err
	}
	// checked before multiplying; (page-1)*pageSize may overflow
	if len(items) == 0 || page-1 > (len(items)-1)/pageSize {
		return []T{}, nil
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(items)-start)
	return items[start:end:end], nil
}

// TotalPages is ceil(n/pageSize) but never less than 1.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 || n <= 0 {
		return 1
	}
	return (n-1)/pageSize + 1
}

func NewPage[T any](items []T, page, pageSize int) (Page[T], error) {
	slice, err := Paginate(items, page, pageSize)
	if err != nil {
		return Page[T]{}, err
	}
	return Page[T]{
		Items:      slice,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), pageSize),
	}, nil
}

func checkPage(page, pageSize int) error {
	if page < 1 {
		return newValidationError("page", strconv.Itoa(page), "must be >= 1")
	}
	if pageSize < 1 {
		return newValidationError("pageSize", strconv.Itoa(pageSize), "must be >= 1")
	}
	return nil
}
