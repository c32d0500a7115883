package hotel

import (
	"context"
	"net/http"
	"net/url"
)

type BookingService struct {
	r Requester
}

func (s *BookingService) List(ctx context.Context, q ListQuery) (*Page[Booking], error) {
	return list[Booking](ctx, s.r, PathBookings, q, false)
}

// CreateAtHotel books a room for a walk-in guest.
func (s *BookingService) CreateAtHotel(ctx context.Context, req CreateBookingAtHotelRequest) (*Booking, error) {
	var b Booking
	if err := send(ctx, s.r, http.MethodPost, PathBookings, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, req UpdateBookingStatusRequest) (*Booking, error) {
	var b Booking
	if err := send(ctx, s.r, http.MethodPatch, PathBookings+"/update-status/"+url.PathEscape(id), req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
