package hotel

import (
	"context"
	"net/http"
	"net/url"
)

type AmenityService struct {
	r Requester
}

// List is public so the amenity picker works before login.
func (s *AmenityService) List(ctx context.Context, q ListQuery) (*Page[Amenity], error) {
	return list[Amenity](ctx, s.r, PathAmenities, q, true)
}

func (s *AmenityService) Create(ctx context.Context, req AmenityRequest) (*Amenity, error) {
	var a Amenity
	if err := send(ctx, s.r, http.MethodPost, PathAmenities, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update replaces the amenity (PUT).
func (s *AmenityService) Update(ctx context.Context, id string, req AmenityRequest) (*Amenity, error) {
	var a Amenity
	if err := send(ctx, s.r, http.MethodPut, PathAmenities+"/"+url.PathEscape(id), req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AmenityService) Delete(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodDelete, PathAmenities+"/"+url.PathEscape(id), nil, nil)
}
