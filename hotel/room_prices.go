package hotel

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-hotel-admin/apiclient"
)

type RoomPriceHistoryService struct {
	r Requester
}

func (s *RoomPriceHistoryService) ListByRoomDetail(ctx context.Context, roomDetailID string) ([]RoomPriceHistory, error) {
	var out []RoomPriceHistory
	if err := get(ctx, s.r, PathPrices+"/room-detail/"+url.PathEscape(roomDetailID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a price history. Several creates usually run side by side when a price
// form is saved, so they are not de-duplicated against each other.
func (s *RoomPriceHistoryService) Create(ctx context.Context, req RoomPriceHistoryRequest) (*RoomPriceHistory, error) {
	var out RoomPriceHistory
	opts := &apiclient.RequestOptions{Body: req, SkipDedupe: true}
	if err := s.r.Do(ctx, http.MethodPost, PathPrices, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RoomPriceHistoryService) Update(ctx context.Context, id string, req RoomPriceHistoryRequest) (*RoomPriceHistory, error) {
	var out RoomPriceHistory
	if err := send(ctx, s.r, http.MethodPatch, PathPrices+"/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RoomPriceHistoryService) Delete(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodDelete, PathPrices+"/"+url.PathEscape(id), nil, nil)
}
