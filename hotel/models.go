package hotel

import "time"

type Translation struct {
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Province struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ZipCode      string        `json:"zipCode"`
	Slug         string        `json:"slug"`
	Translations []Translation `json:"translations,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

type Amenity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Type         string        `json:"type"`
	Icon         *Image        `json:"icon,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
}

type Branch struct {
	ID           string        `json:"id"`
	ProvinceID   string        `json:"provinceId"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	Rating       float64       `json:"rating"`
	IsActive     bool          `json:"is_active"`
	Thumbnail    *Image        `json:"thumbnail,omitempty"`
	Images       []Image       `json:"images,omitempty"`
	Province     *Province     `json:"province,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// BranchDetail is a branch with its amenities and room types.
type BranchDetail struct {
	Branch
	Amenities []Amenity    `json:"amenities"`
	Rooms     []RoomDetail `json:"rooms"`
}

type CreateBranchRequest struct {
	ProvinceID   string        `json:"provinceId"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	IsActive     bool          `json:"is_active"`
	Thumbnail    Image         `json:"thumbnail"`
	Images       []Image       `json:"images"`
	Translations []Translation `json:"translations,omitempty"`
}

// UpdateBranchRequest only sends the fields that are set.
type UpdateBranchRequest struct {
	ProvinceID   *string       `json:"provinceId,omitempty"`
	Name         *string       `json:"name,omitempty"`
	Slug         *string       `json:"slug,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Address      *string       `json:"address,omitempty"`
	IsActive     *bool         `json:"is_active,omitempty"`
	Thumbnail    *Image        `json:"thumbnail,omitempty"`
	Images       []Image       `json:"images,omitempty"`
	AmenityIDs   []string      `json:"amenityIds,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
}

type AmenityRequest struct {
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Type         string        `json:"type"`
	Icon         *Image        `json:"icon,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
}

type ProvinceRequest struct {
	Name         string        `json:"name"`
	ZipCode      string        `json:"zipCode"`
	Slug         string        `json:"slug"`
	Translations []Translation `json:"translations,omitempty"`
}

// RoomDetail is a room type offered by a branch.
type RoomDetail struct {
	ID              string        `json:"id"`
	BranchID        string        `json:"branchId"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug"`
	RoomType        string        `json:"room_type"`
	BedType         string        `json:"bed_type"`
	Area            float64       `json:"area"`
	MaxAdults       int           `json:"max_adults"`
	MaxChildren     int           `json:"max_children"`
	BasePricePerHr  string        `json:"base_price_per_hour"`
	BasePricePerNt  string        `json:"base_price_per_night"`
	BasePricePerDay string        `json:"base_price_per_day"`
	Thumbnail       *Image        `json:"thumbnail,omitempty"`
	Translations    []Translation `json:"translations,omitempty"`
}

type RoomDetailRequest struct {
	BranchID          string   `json:"branchId,omitempty"`
	Name              string   `json:"name,omitempty"`
	Slug              string   `json:"slug,omitempty"`
	Description       string   `json:"description,omitempty"`
	RoomType          string   `json:"room_type,omitempty"`
	BedType           string   `json:"bed_type,omitempty"`
	Area              float64  `json:"area,omitempty"`
	MaxAdults         *int     `json:"max_adults,omitempty"`
	MaxChildren       *int     `json:"max_children,omitempty"`
	BasePricePerHour  string   `json:"base_price_per_hour,omitempty"`
	BasePricePerNight string   `json:"base_price_per_night,omitempty"`
	BasePricePerDay   string   `json:"base_price_per_day,omitempty"`
	Thumbnail         *Image   `json:"thumbnail,omitempty"`
	Images            []Image  `json:"images,omitempty"`
	AmenityIDs        []string `json:"amenityIds,omitempty"`
}

// RoomPriceHistory is a price override for a room type over a date range.
type RoomPriceHistory struct {
	ID            string `json:"id"`
	RoomDetailID  string `json:"roomDetailId"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	EffectiveFrom string `json:"effective_from"`
	EffectiveTo   string `json:"effective_to,omitempty"`
	PricePerHour  string `json:"price_per_hour,omitempty"`
	PricePerNight string `json:"price_per_night,omitempty"`
	PricePerDay   string `json:"price_per_day,omitempty"`
}

// RoomPriceHistoryRequest creates or updates a price history. Empty prices are left out
// so the room type's base price applies.
type RoomPriceHistoryRequest struct {
	RoomDetailID  string `json:"roomDetailId,omitempty"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	EffectiveFrom string `json:"effective_from,omitempty"`
	EffectiveTo   string `json:"effective_to,omitempty"`
	PricePerHour  string `json:"price_per_hour,omitempty"`
	PricePerNight string `json:"price_per_night,omitempty"`
	PricePerDay   string `json:"price_per_day,omitempty"`
}

// Room is a physical room of a room type.
type Room struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Slug     string      `json:"slug"`
	Status   string      `json:"status"`
	DetailID string      `json:"detailId"`
	Detail   *RoomDetail `json:"detail,omitempty"`
}

type RoomRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Status   string `json:"status,omitempty"`
	DetailID string `json:"detailId"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingWaiting   BookingStatus = "WAITING_FOR_CHECK_IN"
	BookingCheckedIn BookingStatus = "CHECKED_IN"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingRefunded  BookingStatus = "REFUNDED"
	BookingRejected  BookingStatus = "REJECTED"
)

type Booking struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Type          string        `json:"type"`
	RoomID        string        `json:"roomId"`
	UserID        string        `json:"userId"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	StartTime     string        `json:"start_time"`
	EndTime       string        `json:"end_time"`
	TotalAmount   string        `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	PaymentStatus string        `json:"payment_status"`
	Guests        int           `json:"number_of_guests"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type CreateBookingAtHotelRequest struct {
	Type          string `json:"type"`
	DetailID      string `json:"detailId"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Guests        int    `json:"number_of_guests"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	PaymentMethod string `json:"payment_method"`
	GuestName     string `json:"guest_name,omitempty"`
	GuestPhone    string `json:"guest_phone,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status       BookingStatus `json:"status"`
	CancelReason string        `json:"cancel_reason,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Gender    string    `json:"gender"`
	IsBlocked bool      `json:"is_blocked"`
	Birthday  string    `json:"birth_date,omitempty"`
	Avatar    *Image    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Birthday *string `json:"birth_date,omitempty"`
	BranchID *string `json:"branchId,omitempty"`
}

type BlockAction string

const (
	ActionBlock   BlockAction = "BLOCK"
	ActionUnblock BlockAction = "UNBLOCK"
)

type BlockUserRequest struct {
	Action BlockAction `json:"action"`
	Reason string      `json:"reason,omitempty"`
}
