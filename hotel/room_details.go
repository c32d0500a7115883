package hotel

import (
	"context"
	"net/http"
	"net/url"
)

// RoomDetailService manages room types, the bookable categories that physical rooms
// belong to.
type RoomDetailService struct {
	r Requester
}

// List pages through room types. The endpoint is public; filter by branch with
// Filters["branchSlug"] or Filters["branchId"].
func (s *RoomDetailService) List(ctx context.Context, q ListQuery) (*Page[RoomDetail], error) {
	return list[RoomDetail](ctx, s.r, PathRoomTypes, q, true)
}

func (s *RoomDetailService) Create(ctx context.Context, req RoomDetailRequest) (*RoomDetail, error) {
	var d RoomDetail
	if err := send(ctx, s.r, http.MethodPost, PathRoomTypes, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RoomDetailService) Update(ctx context.Context, id string, req RoomDetailRequest) (*RoomDetail, error) {
	var d RoomDetail
	if err := send(ctx, s.r, http.MethodPatch, PathRoomTypes+"/"+url.PathEscape(id), req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
