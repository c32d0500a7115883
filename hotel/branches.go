package hotel

import (
	"context"
	"net/http"
	"net/url"
)

type BranchService struct {
	r Requester
}

func (s *BranchService) List(ctx context.Context, q ListQuery) (*Page[Branch], error) {
	return list[Branch](ctx, s.r, PathBranches, q, false)
}

// Get loads a branch by id or slug. The endpoint is public.
func (s *BranchService) Get(ctx context.Context, idOrSlug string) (*BranchDetail, error) {
	var b BranchDetail
	if err := getPublic(ctx, s.r, PathBranches+"/"+url.PathEscape(idOrSlug), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BranchService) Create(ctx context.Context, req CreateBranchRequest) (*Branch, error) {
	var b Branch
	if err := send(ctx, s.r, http.MethodPost, PathBranches, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BranchService) Update(ctx context.Context, id string, req UpdateBranchRequest) (*Branch, error) {
	var b Branch
	if err := send(ctx, s.r, http.MethodPatch, PathBranches+"/"+url.PathEscape(id), req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BranchService) Delete(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodDelete, PathBranches+"/"+url.PathEscape(id), nil, nil)
}

func (s *BranchService) Restore(ctx context.Context, id string) error {
	return send(ctx, s.r, http.MethodPost, PathBranches+"/"+url.PathEscape(id)+"/restore", nil, nil)
}

func (s *BranchService) ListDeleted(ctx context.Context) ([]Branch, error) {
	var out []Branch
	if err := get(ctx, s.r, PathBranches+"/deleted", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
