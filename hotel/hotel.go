// Package hotel wraps the admin API resources (branches, rooms, bookings, ...) in typed
// services built on apiclient.
package hotel

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-hotel-admin/apiclient"
	"github.com/jrsteele09/go-hotel-admin/session"
)

// API paths
const (
	PathLogin     = "/auth/login"
	PathRefresh   = "/auth/refresh"
	PathLogout    = "/auth/logout"
	PathProfile   = "/auth/profile"
	PathProvinces = "/provinces"
	PathBranches  = "/branches"
	PathAmenities = "/amenities"
	PathImages    = "/images"
	PathRooms     = "/rooms"
	PathRoomTypes = "/room-details"
	PathPrices    = "/room-price-histories"
	PathBookings  = "/bookings"
	PathUsers     = "/users"
	PathAnalytics = "/analytics"
)

// Requester is the part of apiclient.Client the services use.
type Requester interface {
	Do(ctx context.Context, method, path string, opts *apiclient.RequestOptions, out any) error
	Refresh(ctx context.Context) (*session.Tokens, error)
	Store() session.Store
}

var _ Requester = (*apiclient.Client)(nil)

// Services groups every resource service over one client.
type Services struct {
	Auth      *AuthService
	Branches  *BranchService
	Amenities *AmenityService
	Provinces *ProvinceService
	Rooms     *RoomService
	RoomTypes *RoomDetailService
	Prices    *RoomPriceHistoryService
	Bookings  *BookingService
	Users     *UserService
	Images    *ImageService
	Analytics *AnalyticsService
}

func New(r Requester) *Services {
	return &Services{
		Auth:      &AuthService{r: r},
		Branches:  &BranchService{r: r},
		Amenities: &AmenityService{r: r},
		Provinces: &ProvinceService{r: r},
		Rooms:     &RoomService{r: r},
		RoomTypes: &RoomDetailService{r: r},
		Prices:    &RoomPriceHistoryService{r: r},
		Bookings:  &BookingService{r: r},
		Users:     &UserService{r: r},
		Images:    &ImageService{r: r},
		Analytics: &AnalyticsService{r: r},
	}
}

func get(ctx context.Context, r Requester, path string, query map[string]any, out any) error {
	return r.Do(ctx, http.MethodGet, path, &apiclient.RequestOptions{Query: query}, out)
}

func getPublic(ctx context.Context, r Requester, path string, query map[string]any, out any) error {
	return r.Do(ctx, http.MethodGet, path, &apiclient.RequestOptions{Query: query, Public: true}, out)
}

func send(ctx context.Context, r Requester, method, path string, body, out any) error {
	return r.Do(ctx, method, path, &apiclient.RequestOptions{Body: body}, out)
}
