package hotel

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

type RoomService struct {
	r Requester
}

func (s *RoomService) List(ctx context.Context, q ListQuery) (*Page[Room], error) {
	return list[Room](ctx, s.r, PathRooms, q, false)
}

func (s *RoomService) ListByBranch(ctx context.Context, branchID string) ([]Room, error) {
	var out []Room
	if err := get(ctx, s.r, PathRooms+"/in-branch/"+url.PathEscape(branchID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RoomService) Create(ctx context.Context, req RoomRequest) (*Room, error) {
	var room Room
	if err := send(ctx, s.r, http.MethodPost, PathRooms, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, req RoomRequest) (*Room, error) {
	var room Room
	if err := send(ctx, s.r, http.MethodPatch, PathRooms+"/"+url.PathEscape(id), req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) SoftDelete(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodDelete, PathRooms+"/"+url.PathEscape(id), nil, nil)
}

func (s *RoomService) Restore(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodPost, PathRooms+"/"+url.PathEscape(id)+"/restore", nil, nil)
}

func (s *RoomService) ListDeleted(ctx context.Context) ([]Room, error) {
	var out []Room
	if err := get(ctx, s.r, PathRooms+"/deleted", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PermanentDelete removes soft-deleted rooms for good.
func (s *RoomService) PermanentDelete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return errors.Wrapf(errors.ErrInvalidRequest, "no rooms to delete")
	}
	return send(ctx, s.r, http.MethodPost, PathRooms+"/permanent-delete", map[string][]string{"ids": ids}, nil)
}
