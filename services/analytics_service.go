package services

import (
	"context"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
)

const lowStockThreshold = 40

// ProductRevenue is a mock sales figure for the admin dashboard. Units
// sold are synthetic (150 minus 20 per catalog rank); revenue is units
// times the 100g price. Order and customer counts are real.
type ProductRevenue struct {
	Product   models.Product `json:"product"`
	UnitsSold int            `json:"units_sold"`
	Revenue   int            `json:"revenue"`
}

// DashboardStats is the admin analytics view. It is derived on demand
// and never persisted.
type DashboardStats struct {
	TotalRevenue   int              `json:"total_revenue"`
	TotalOrders    int              `json:"total_orders"`
	TotalCustomers int              `json:"total_customers"`
	TopProducts    []ProductRevenue `json:"top_products"`
	LowStock       []models.Product `json:"low_stock"`
}

type AnalyticsService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
}

func NewAnalyticsService(products repository.ProductRepository, orders repository.OrderRepository, users repository.UserRepository) *AnalyticsService {
	return &AnalyticsService{products: products, orders: orders, users: users}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalOrders: len(orders)}

	for _, u := range users {
		if u.Role == models.RoleCustomer {
			stats.TotalCustomers++
		}
	}

	for rank, p := range products {
		units := 150 - rank*20
		if units <= 0 {
			break
		}
		rev := ProductRevenue{Product: p, UnitsSold: units, Revenue: p.Price100g * units}
		stats.TopProducts = append(stats.TopProducts, rev)
		stats.TotalRevenue += rev.Revenue
	}

	for _, p := range products {
		if p.Stock < lowStockThreshold {
			stats.LowStock = append(stats.LowStock, p)
		}
	}

	return stats, nil
}
