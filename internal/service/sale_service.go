package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// A lost race on the invoice unique index is retried with a fresh number.
const invoiceRetryLimit = 3

type SaleService interface {
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	Detail(ctx context.Context, id uuid.UUID) (*dto.SaleDetailResponse, error)
	// Create records a sale from the admin form; the actor becomes the cashier.
	Create(ctx context.Context, actorID uuid.UUID, req dto.SaleRequest) (*dto.SaleDetailResponse, error)
	// Update replaces the header fields and the full item set, then re-derives
	// the stored total from the items as persisted.
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.SaleRequest) (*dto.SaleDetailResponse, error)
	BulkDelete(ctx context.Context, actorID uuid.UUID, req dto.BulkDeleteRequest) (int64, error)
	// Checkout is the caisse flow: one transaction creating the sale, its
	// items and the derived total under a freshly allocated invoice number.
	Checkout(ctx context.Context, cashierID uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	ListAll(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
}

type saleService struct {
	repo     repository.SaleRepository
	activity ActivityRecorder
	now      func() time.Time
}

func NewSaleService(repo repository.SaleRepository, activity ActivityRecorder) SaleService {
	return &saleService{repo: repo, activity: activity, now: time.Now}
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}
	sales, total, revenue, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleListItem, len(sales))
	for i := range sales {
		data[i] = saleToListItem(&sales[i])
	}
	return &dto.SaleListResponse{
		Data:    data,
		Total:   total,
		Revenue: revenue,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func (s *saleService) Detail(ctx context.Context, id uuid.UUID) (*dto.SaleDetailResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: vente", ErrNotFound)
	}
	return saleToDetail(sale), nil
}

func (s *saleService) Create(ctx context.Context, actorID uuid.UUID, req dto.SaleRequest) (*dto.SaleDetailResponse, error) {
	items, err := itemsFromInputs(req.Items)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.SalePaid
	}

	sale, err := s.createWithInvoice(ctx, actorID, req.CustomerName, status, items)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Vente %s enregistrée", sale.InvoiceNumber), model.LevelSuccess, "cash-register")
	return s.Detail(ctx, sale.ID)
}

func (s *saleService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.SaleRequest) (*dto.SaleDetailResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: vente", ErrNotFound)
	}
	items, err := itemsFromInputs(req.Items)
	if err != nil {
		return nil, err
	}

	sale.CustomerName = req.CustomerName
	if req.Status != "" {
		sale.Status = req.Status
	}

	err = runTx(s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateHeaderTx(ctx, tx, sale); err != nil {
			return err
		}
		if err := s.repo.ReplaceItemsTx(ctx, tx, sale.ID, items); err != nil {
			return err
		}
		total, err := s.repo.SumItemsTx(ctx, tx, sale.ID)
		if err != nil {
			return err
		}
		return s.repo.SetTotalTx(ctx, tx, sale.ID, total)
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Vente %s modifiée", sale.InvoiceNumber), model.LevelPrimary, "edit")
	return s.Detail(ctx, id)
}

func (s *saleService) BulkDelete(ctx context.Context, actorID uuid.UUID, req dto.BulkDeleteRequest) (int64, error) {
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: vente", ErrNotFound)
		}
		ids = append(ids, id)
	}
	deleted, err := s.repo.BulkDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("%d vente(s) supprimée(s)", deleted), model.LevelDanger, "trash")
	return deleted, nil
}

func (s *saleService) Checkout(ctx context.Context, cashierID uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	items := make([]model.SaleItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return &dto.CheckoutResponse{Success: false, Error: "produit invalide dans le panier"}, nil
		}
		items = append(items, model.SaleItem{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	customer := req.CustomerName
	if customer == "" {
		customer = "Client"
	}

	sale, err := s.createWithInvoice(ctx, cashierID, customer, model.SalePaid, items)
	if err != nil {
		log.Error().Err(err).Msg("checkout failed")
		return &dto.CheckoutResponse{Success: false, Error: "la vente n'a pas pu être enregistrée"}, err
	}

	s.activity.Record(ctx, cashierID, fmt.Sprintf("Vente %s encaissée", sale.InvoiceNumber), model.LevelSuccess, "cash-register")
	return &dto.CheckoutResponse{
		Success:       true,
		SaleID:        sale.ID.String(),
		InvoiceNumber: sale.InvoiceNumber,
		Message:       fmt.Sprintf("Vente %s enregistrée avec succès.", sale.InvoiceNumber),
	}, nil
}

func (s *saleService) ListAll(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	return s.repo.ListAll(ctx, filter)
}

// createWithInvoice allocates the next invoice number and persists the sale,
// its items and the derived total in one transaction. The sale is first
// written with a zero total, then the total is re-derived from the items as
// persisted. A duplicate-key failure means another transaction won the same
// number; the whole allocation is retried.
func (s *saleService) createWithInvoice(ctx context.Context, cashierID uuid.UUID, customer, status string, items []model.SaleItem) (*model.Sale, error) {
	var sale *model.Sale
	var lastErr error
	for attempt := 0; attempt < invoiceRetryLimit; attempt++ {
		sale = &model.Sale{
			ID:           uuid.New(),
			CashierID:    cashierID,
			CustomerName: customer,
			Status:       status,
			TotalAmount:  decimal.Zero,
			Items:        items,
		}
		lastErr = runTx(s.repo.DB(), func(tx *gorm.DB) error {
			number, err := s.nextInvoiceNumber(ctx, tx)
			if err != nil {
				return err
			}
			sale.InvoiceNumber = number
			if err := s.repo.CreateTx(ctx, tx, sale); err != nil {
				return err
			}
			total, err := s.repo.SumItemsTx(ctx, tx, sale.ID)
			if err != nil {
				return err
			}
			sale.TotalAmount = total
			return s.repo.SetTotalTx(ctx, tx, sale.ID, total)
		})
		if lastErr == nil {
			return sale, nil
		}
		if !isDuplicate(lastErr) {
			return nil, lastErr
		}
		log.Warn().Str("invoice", sale.InvoiceNumber).Msg("invoice number collision, retrying")
	}
	return nil, fmt.Errorf("allocation du numéro de facture: %w", lastErr)
}

// nextInvoiceNumber returns F{YYYYMMDD}{NNNN}. The 4-digit suffix restarts at
// 0001 each day and continues past 9999 without padding loss of ordering
// within the same width.
func (s *saleService) nextInvoiceNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	prefix := "F" + s.now().Format("20060102")
	last, err := s.repo.LastInvoiceNumber(ctx, tx, prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func itemsFromInputs(inputs []dto.SaleItemInput) ([]model.SaleItem, error) {
	items := make([]model.SaleItem, 0, len(inputs))
	for _, in := range inputs {
		productID, err := uuid.Parse(in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: produit", ErrNotFound)
		}
		items = append(items, model.SaleItem{
			ProductID: productID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		})
	}
	return items, nil
}

func saleToListItem(sale *model.Sale) dto.SaleListItem {
	cashierName := ""
	if sale.Cashier != nil {
		cashierName = sale.Cashier.FullName()
	}
	return dto.SaleListItem{
		ID:            sale.ID.String(),
		InvoiceNumber: sale.InvoiceNumber,
		Date:          sale.CreatedAt.Format("02/01/2006 15:04"),
		CashierID:     sale.CashierID.String(),
		CashierName:   cashierName,
		Customer:      sale.CustomerName,
		Status:        sale.Status,
		TotalAmount:   sale.TotalAmount,
		ItemCount:     len(sale.Items),
	}
}

func saleToDetail(sale *model.Sale) *dto.SaleDetailResponse {
	cashierName := ""
	if sale.Cashier != nil {
		cashierName = sale.Cashier.FullName()
	}
	items := make([]dto.SaleItemDetail, len(sale.Items))
	for i := range sale.Items {
		item := &sale.Items[i]
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items[i] = dto.SaleItemDetail{
			Product:   name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
		}
	}
	return &dto.SaleDetailResponse{
		ID:            sale.ID.String(),
		InvoiceNumber: sale.InvoiceNumber,
		Date:          sale.CreatedAt.Format("02/01/2006 15:04"),
		Cashier:       cashierName,
		Customer:      sale.CustomerName,
		Status:        sale.Status,
		TotalAmount:   sale.TotalAmount.StringFixed(2),
		Items:         items,
	}
}
