package booking

import (
	"context"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type ListResult struct {
	Items []models.Booking
	Total int64
	Page  int
	Limit int
}

// clampPage normalizes caller-supplied pagination values.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID string,
	page int,
	limit int,
) (*ListResult, error) {

	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	items, total, err := uc.repo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(
	ctx context.Context,
	page int,
	limit int,
) (*ListResult, error) {

	page, limit = clampPage(page, limit)
	offset := (page - 1) * limit

	items, total, err := uc.repo.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}
