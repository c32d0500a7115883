package hotel

import (
	"context"
	"time"
)

// AnalyticsQuery selects the reporting window and optionally one branch.
type AnalyticsQuery struct {
	StartDate time.Time
	EndDate   time.Time
	BranchID  string
}

func (q AnalyticsQuery) params() map[string]any {
	params := map[string]any{}
	if !q.StartDate.IsZero() {
		params["startDate"] = q.StartDate.Format(time.DateOnly)
	}
	if !q.EndDate.IsZero() {
		params["endDate"] = q.EndDate.Format(time.DateOnly)
	}
	if q.BranchID != "" {
		params["branchId"] = q.BranchID
	}
	return params
}

type AnalyticsSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalBookings    int     `json:"totalBookings"`
	OccupancyRate    float64 `json:"occupancyRate"`
	AverageStayHours float64 `json:"averageStayDuration"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type RevenueTimeline struct {
	Data []RevenuePoint `json:"data"`
}

type OccupancyPoint struct {
	Date          string  `json:"date"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type OccupancyRate struct {
	Data []OccupancyPoint `json:"data"`
}

type RoomPerformance struct {
	RoomID        string  `json:"roomId"`
	RoomName      string  `json:"roomName"`
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type AnalyticsService struct {
	r Requester
}

func (s *AnalyticsService) Summary(ctx context.Context, q AnalyticsQuery) (*AnalyticsSummary, error) {
	var out AnalyticsSummary
	if err := get(ctx, s.r, PathAnalytics+"/summary", q.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnalyticsService) Revenue(ctx context.Context, q AnalyticsQuery) (*RevenueTimeline, error) {
	var out RevenueTimeline
	if err := get(ctx, s.r, PathAnalytics+"/revenue", q.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnalyticsService) Occupancy(ctx context.Context, q AnalyticsQuery) (*OccupancyRate, error) {
	var out OccupancyRate
	if err := get(ctx, s.r, PathAnalytics+"/occupancy", q.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnalyticsService) RoomPerformance(ctx context.Context, q AnalyticsQuery) ([]RoomPerformance, error) {
	var out []RoomPerformance
	if err := get(ctx, s.r, PathAnalytics+"/room-performance", q.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
