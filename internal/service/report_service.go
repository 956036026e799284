package service

import (
	"context"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dashboard counts products at or below this quantity as low stock.
const lowStockThreshold = 3

type ReportService interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error)
	SalesByDay(ctx context.Context, r dto.ReportRange) (*dto.SalesReportResponse, error)
	StockLevels(ctx context.Context) (*dto.StockReportResponse, error)
}

type reportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	activity    ActivityRecorder
	now         func() time.Time
}

func NewReportService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	activity ActivityRecorder,
) ReportService {
	return &reportService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		activity:    activity,
		now:         time.Now,
	}
}

func (s *reportService) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	today := s.now().Format("2006-01-02")
	revenueToday, err := s.saleRepo.RevenueOnDay(ctx, today)
	if err != nil {
		return nil, err
	}
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	trend, err := s.revenueTrend(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.activity.Recent(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		RevenueToday:     revenueToday,
		ProductCount:     productCount,
		OrderCount:       orderCount,
		LowStockCount:    lowStock,
		RevenueTrend:     trend,
		RecentActivities: activities,
	}, nil
}

// revenueTrend covers the last 7 days including today, oldest first. Days
// without sales appear with a zero revenue.
func (s *reportService) revenueTrend(ctx context.Context) ([]dto.TrendPoint, error) {
	end := s.now()
	start := end.AddDate(0, 0, -6)
	rows, err := s.saleRepo.RevenueByDay(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Revenue
	}

	points := make([]dto.TrendPoint, 0, 7)
	for d := 0; d < 7; d++ {
		day := start.AddDate(0, 0, d)
		revenue, ok := byDay[day.Format("2006-01-02")]
		if !ok {
			revenue = decimal.Zero
		}
		points = append(points, dto.TrendPoint{
			Date:    day.Format("02/01"),
			Revenue: revenue,
		})
	}
	return points, nil
}

func (s *reportService) SalesByDay(ctx context.Context, r dto.ReportRange) (*dto.SalesReportResponse, error) {
	rows, err := s.saleRepo.RevenueByDay(ctx, r.DateFrom, r.DateTo)
	if err != nil {
		return nil, err
	}

	days := make([]dto.DailySales, len(rows))
	totalRevenue := decimal.Zero
	var totalSales int64
	for i, row := range rows {
		days[i] = dto.DailySales{
			Date:         row.Day,
			Revenue:      row.Revenue,
			Transactions: row.Transactions,
		}
		totalRevenue = totalRevenue.Add(row.Revenue)
		totalSales += row.Transactions
	}
	return &dto.SalesReportResponse{
		Days:         days,
		TotalRevenue: totalRevenue,
		TotalSales:   totalSales,
	}, nil
}

func (s *reportService) StockLevels(ctx context.Context) (*dto.StockReportResponse, error) {
	products, err := s.productRepo.StockReport(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevel, len(products))
	for i := range products {
		p := &products[i]
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		items[i] = dto.StockLevel{
			Product:       p.Name,
			Category:      category,
			Price:         p.Price,
			StockQuantity: p.StockQuantity,
			Status:        p.Status,
		}
	}
	return &dto.StockReportResponse{Items: items}, nil
}
