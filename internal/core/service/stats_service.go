package service

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/ports"
)

// StatsService aggregates the admin dashboard counters.
type StatsService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	websites ports.WebsiteRepository
}

func NewStatsService(users ports.UserRepository, roles ports.RoleRepository, websites ports.WebsiteRepository) *StatsService {
	return &StatsService{users: users, roles: roles, websites: websites}
}

func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRoles, err := s.roles.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalWebsites, err := s.websites.Count(ctx, ports.ListWebsitesFilter{})
	if err != nil {
		return nil, err
	}
	published, err := s.websites.Count(ctx, ports.ListWebsitesFilter{PublishedOnly: true})
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalUsers:        totalUsers,
		TotalWebsites:     totalWebsites,
		PublishedWebsites: published,
		TotalRoles:        totalRoles,
	}, nil
}
