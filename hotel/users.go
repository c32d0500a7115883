package hotel

import (
	"context"
	"net/http"
	"net/url"
)

type UserService struct {
	r Requester
}

func (s *UserService) List(ctx context.Context, q ListQuery) (*Page[User], error) {
	return list[User](ctx, s.r, PathUsers, q, false)
}

func (s *UserService) Get(ctx context.Context, id string) (*User, error) {
	var u User
	if err := get(ctx, s.r, PathUsers+"/admin/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var u User
	if err := send(ctx, s.r, http.MethodPatch, PathUsers+"/admin/"+url.PathEscape(id), req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) BlockOrUnblock(ctx context.Context, id string, req BlockUserRequest) error {
	return send(ctx, s.r, http.MethodPost, PathUsers+"/block-action/"+url.PathEscape(id), req, nil)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodDelete, PathUsers+"/"+url.PathEscape(id), nil, nil)
}

func (s *UserService) Restore(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodPost, PathUsers+"/"+url.PathEscape(id)+"/restore", nil, nil)
}
