package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/infra"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
)

// ErrBadFormat rejects export formats outside pdf/excel/word/csv.
var ErrBadFormat = errors.New("format d'export inconnu")

// ExportDocument is a rendered attachment ready to serve.
type ExportDocument struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ExportService renders one logical table per entity into any of the four
// supported containers. The table rows mirror the corresponding list screen
// under the same filter, so a download always matches what was on screen.
type ExportService interface {
	Sales(ctx context.Context, format string, filter dto.SaleFilter) (*ExportDocument, error)
	Employees(ctx context.Context, format string, actorID uuid.UUID, filter dto.EmployeeFilter) (*ExportDocument, error)
	Products(ctx context.Context, format string, filter dto.ProductFilter) (*ExportDocument, error)
	Suppliers(ctx context.Context, format string, filter dto.SupplierFilter) (*ExportDocument, error)
	Categories(ctx context.Context, format string) (*ExportDocument, error)
	SalesReport(ctx context.Context, format string, r dto.ReportRange) (*ExportDocument, error)
	StockReport(ctx context.Context, format string) (*ExportDocument, error)
}

type exportService struct {
	userRepo     repository.UserRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
}

func NewExportService(
	userRepo repository.UserRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) ExportService {
	return &exportService{
		userRepo:     userRepo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
	}
}

func (s *exportService) Sales(ctx context.Context, format string, filter dto.SaleFilter) (*ExportDocument, error) {
	sales, err := s.saleRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Liste des ventes",
		Columns: []string{"Facture", "Date", "Caissier", "Client", "Statut", "Montant", "Articles"},
	}
	for i := range sales {
		sale := &sales[i]
		cashier := ""
		if sale.Cashier != nil {
			cashier = sale.Cashier.FullName()
		}
		table.Rows = append(table.Rows, []string{
			sale.InvoiceNumber,
			sale.CreatedAt.Format("02/01/2006 15:04"),
			cashier,
			sale.CustomerName,
			sale.Status,
			sale.TotalAmount.StringFixed(2),
			strconv.Itoa(len(sale.Items)),
		})
	}
	return render(table, "ventes", format)
}

func (s *exportService) Employees(ctx context.Context, format string, actorID uuid.UUID, filter dto.EmployeeFilter) (*ExportDocument, error) {
	filter.Page = 1
	filter.Limit = 10000
	users, _, err := s.userRepo.List(ctx, filter, actorID)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Liste des employés",
		Columns: []string{"Nom d'utilisateur", "Nom complet", "Email", "Rôle", "Téléphone", "Embauche", "Statut"},
	}
	for i := range users {
		u := &users[i]
		hireDate := ""
		if u.HireDate != nil {
			hireDate = u.HireDate.Format("02/01/2006")
		}
		status := "Inactif"
		if u.Active {
			status = "Actif"
		}
		table.Rows = append(table.Rows, []string{
			u.Username, u.FullName(), u.Email, u.Role, u.Phone, hireDate, status,
		})
	}
	return render(table, "employes", format)
}

func (s *exportService) Products(ctx context.Context, format string, filter dto.ProductFilter) (*ExportDocument, error) {
	products, err := s.productRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Liste des produits",
		Columns: []string{"Nom", "Catégorie", "Prix", "Stock", "Statut"},
	}
	for i := range products {
		p := &products[i]
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		table.Rows = append(table.Rows, []string{
			p.Name, category, p.Price.StringFixed(2), strconv.Itoa(p.StockQuantity), p.Status,
		})
	}
	return render(table, "produits", format)
}

func (s *exportService) Suppliers(ctx context.Context, format string, filter dto.SupplierFilter) (*ExportDocument, error) {
	suppliers, err := s.supplierRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Liste des fournisseurs",
		Columns: []string{"Nom", "Contact", "Email", "Téléphone", "Ville", "Conditions", "Statut"},
	}
	for i := range suppliers {
		sup := &suppliers[i]
		table.Rows = append(table.Rows, []string{
			sup.Name, sup.ContactPerson, sup.Email, sup.Phone, sup.City, sup.PaymentTerms, sup.Status,
		})
	}
	return render(table, "fournisseurs", format)
}

func (s *exportService) Categories(ctx context.Context, format string) (*ExportDocument, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Liste des catégories",
		Columns: []string{"Nom", "Description", "Produits"},
	}
	for i := range categories {
		c := &categories[i]
		count, err := s.categoryRepo.CountProducts(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, []string{c.Name, c.Description, strconv.FormatInt(count, 10)})
	}
	return render(table, "categories", format)
}

func (s *exportService) SalesReport(ctx context.Context, format string, r dto.ReportRange) (*ExportDocument, error) {
	rows, err := s.saleRepo.RevenueByDay(ctx, r.DateFrom, r.DateTo)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Rapport des ventes par jour",
		Columns: []string{"Date", "Chiffre d'affaires", "Transactions"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Day,
			row.Revenue.StringFixed(2),
			strconv.FormatInt(row.Transactions, 10),
		})
	}
	return render(table, "rapport_ventes", format)
}

func (s *exportService) StockReport(ctx context.Context, format string) (*ExportDocument, error) {
	products, err := s.productRepo.StockReport(ctx)
	if err != nil {
		return nil, err
	}
	table := infra.Table{
		Title:   "Rapport de stock",
		Columns: []string{"Produit", "Catégorie", "Prix", "Stock", "Statut"},
	}
	for i := range products {
		p := &products[i]
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		table.Rows = append(table.Rows, []string{
			p.Name, category, p.Price.StringFixed(2), strconv.Itoa(p.StockQuantity), p.Status,
		})
	}
	return render(table, "rapport_stock", format)
}

func render(table infra.Table, basename, format string) (*ExportDocument, error) {
	switch format {
	case "pdf":
		data, err := infra.RenderTablePDF(table)
		if err != nil {
			return nil, err
		}
		return &ExportDocument{Data: data, Filename: basename + ".pdf", ContentType: "application/pdf"}, nil
	case "excel":
		data, err := infra.RenderTableXLSX(table)
		if err != nil {
			return nil, err
		}
		return &ExportDocument{
			Data:        data,
			Filename:    basename + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	case "word":
		data, err := infra.RenderTableDOCX(table)
		if err != nil {
			return nil, err
		}
		return &ExportDocument{
			Data:        data,
			Filename:    basename + ".docx",
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}, nil
	case "csv":
		data, err := infra.RenderTableCSV(table)
		if err != nil {
			return nil, err
		}
		return &ExportDocument{Data: data, Filename: basename + ".csv", ContentType: "text/csv; charset=utf-8"}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadFormat, format)
	}
}
