package hotel

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-hotel-admin/apiclient"
	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

type ImageService struct {
	r Requester
}

// ImageFile is one image to upload.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Upload sends several images in one multipart request.
func (s *ImageService) Upload(ctx context.Context, files ...ImageFile) ([]Image, error) {
	if len(files) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "no images to upload")
	}
	parts := make([]apiclient.File, 0, len(files))
	for _, f := range files {
		parts = append(parts, apiclient.File{Field: "images", Name: f.Name, ContentType: f.ContentType, Data: f.Data})
	}
	var out []Image
	opts := &apiclient.RequestOptions{Files: parts, SkipDedupe: true}
	if err := s.r.Do(ctx, http.MethodPost, PathImages, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadIcon uploads an amenity icon.
func (s *ImageService) UploadIcon(ctx context.Context, f ImageFile) (*Image, error) {
	var out Image
	opts := &apiclient.RequestOptions{
		Files:      []apiclient.File{{Field: "image", Name: f.Name, ContentType: f.ContentType, Data: f.Data}},
		SkipDedupe: true,
	}
	if err := s.r.Do(ctx, http.MethodPost, PathImages+"/icon", opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
