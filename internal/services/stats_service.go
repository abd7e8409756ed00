package services

import (
	"context"

	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/repositories"

	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	StatsRepo repositories.StatsRepository
}

type DashboardStats struct {
	TotalBookings       int     `json:"totalBookings"`
	PendingBookings     int     `json:"pendingBookings"`
	ConfirmedBookings   int     `json:"confirmedBookings"`
	ActiveDrivers       int     `json:"activeDrivers"`
	ActiveVehicles      int     `json:"activeVehicles"`
	UnreadMessages      int     `json:"unreadMessages"`
	PendingApplications int     `json:"pendingApplications"`
	TotalRevenue        float64 `json:"totalRevenue"`
}

type DashboardSnapshot struct {
	Stats          DashboardStats             `json:"stats"`
	RecentBookings []models.Booking           `json:"recentBookings"`
	MonthlyStats   []repositories.MonthlyStat `json:"monthlyStats"`
}

// GetDashboard assembles the admin snapshot. The count/sum queries run
// concurrently; any single failure fails the whole call.
func (s StatsService) GetDashboard(ctx context.Context) (DashboardSnapshot, error) {
	var snap DashboardSnapshot

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Stats.TotalBookings, err = s.StatsRepo.CountBookings("")
		return
	})
	g.Go(func() (err error) {
		snap.Stats.PendingBookings, err = s.StatsRepo.CountBookings("pending")
		return
	})
	g.Go(func() (err error) {
		snap.Stats.ConfirmedBookings, err = s.StatsRepo.CountBookings("confirmed")
		return
	})
	g.Go(func() (err error) {
		snap.Stats.ActiveDrivers, err = s.StatsRepo.CountActiveDrivers()
		return
	})
	g.Go(func() (err error) {
		snap.Stats.ActiveVehicles, err = s.StatsRepo.CountActiveVehicles()
		return
	})
	g.Go(func() (err error) {
		snap.Stats.UnreadMessages, err = s.StatsRepo.CountUnreadMessages()
		return
	})
	g.Go(func() (err error) {
		snap.Stats.PendingApplications, err = s.StatsRepo.CountPendingApplications()
		return
	})
	g.Go(func() (err error) {
		snap.Stats.TotalRevenue, err = s.StatsRepo.PaidRevenue()
		return
	})

	if err := g.Wait(); err != nil {
		return DashboardSnapshot{}, err
	}

	recent, err := s.StatsRepo.RecentBookings(5)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	snap.RecentBookings = recent

	monthly, err := s.StatsRepo.MonthlyStats(6)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	snap.MonthlyStats = monthly

	return snap, nil
}
