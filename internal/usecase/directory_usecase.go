package usecase

import (
	"context"

	"notifyconsole/internal/domain/entity"
)

// DirectoryQuery is one page request against the user directory.
type DirectoryQuery struct {
	Criteria entity.Criteria
	Page     int // 1-based
	PageSize int
}

// DirectoryPage is a single page of users.
type DirectoryPage struct {
	Users    []*entity.User `json:"users"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`

	// HasNext is a guess: a full page implies there may be more
	HasNext bool `json:"has_next"`
}

// DirectoryUsecase defines the user directory listing use case
type DirectoryUsecase interface {
	ListUsers(ctx context.Context, query DirectoryQuery) (*DirectoryPage, error)

	// DefaultPageSize is the page size a fresh directory view starts with
	DefaultPageSize() int
}
