package hotel

import (
	"context"
	"net/http"
	"net/url"
)

type ProvinceService struct {
	r Requester
}

func (s *ProvinceService) List(ctx context.Context, q ListQuery) (*Page[Province], error) {
	return list[Province](ctx, s.r, PathProvinces, q, true)
}

func (s *ProvinceService) Create(ctx context.Context, req ProvinceRequest) (*Province, error) {
	var p Province
	if err := send(ctx, s.r, http.MethodPost, PathProvinces, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProvinceService) Update(ctx context.Context, id string, req ProvinceRequest) (*Province, error) {
	var p Province
	if err := send(ctx, s.r, http.MethodPatch, PathProvinces+"/"+url.PathEscape(id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProvinceService) Delete(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodDelete, PathProvinces+"/"+url.PathEscape(id), nil, nil)
}

func (s *ProvinceService) Restore(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodPost, PathProvinces+"/"+url.PathEscape(id)+"/restore", nil, nil)
}

func (s *ProvinceService) ListDeleted(ctx context.Context) ([]Province, error) {
	var out []Province
	if err := get(ctx, s.r, PathProvinces+"/deleted", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
