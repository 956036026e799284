package dto

import "github.com/shopspring/decimal"

// ─── Filters ─────────────────────────────────────────────────────────────────

// ReportRange defaults to all time when both bounds are empty.
type ReportRange struct {
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to"   validate:"omitempty,datetime=2006-01-02"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

// DailySales is one row of the sales-by-day report.
type DailySales struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	Revenue      decimal.Decimal `json:"revenue"`
	Transactions int64           `json:"transactions"`
}

type SalesReportResponse struct {
	Days         []DailySales    `json:"days"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSales   int64           `json:"total_sales"`
}

// StockLevel is one row of the stock report.
type StockLevel struct {
	Product       string          `json:"product"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Status        string          `json:"status"`
}

type StockReportResponse struct {
	Items []StockLevel `json:"items"`
}

// TrendPoint is one day of the dashboard 7-day revenue series, oldest first.
type TrendPoint struct {
	Date    string          `json:"date"` // DD/MM
	Revenue decimal.Decimal `json:"revenue"`
}

type ActivityResponse struct {
	Verb      string `json:"verb"`
	Level     string `json:"level"`
	Icon      string `json:"icon"`
	Timestamp string `json:"timestamp"`
}

type DashboardResponse struct {
	RevenueToday     decimal.Decimal    `json:"revenue_today"`
	ProductCount     int64              `json:"product_count"`
	OrderCount       int64              `json:"order_count"`
	LowStockCount    int64              `json:"low_stock_count"`
	RevenueTrend     []TrendPoint       `json:"revenue_trend"`
	RecentActivities []ActivityResponse `json:"recent_activities"`
}
