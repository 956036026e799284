package service

import (
	"context"
	"fmt"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, actorID uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context, filter dto.SupplierFilter) (*dto.SupplierListResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	ListAll(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error)
}

type supplierService struct {
	repo     repository.SupplierRepository
	activity ActivityRecorder
}

func NewSupplierService(repo repository.SupplierRepository, activity ActivityRecorder) SupplierService {
	return &supplierService{repo: repo, activity: activity}
}

func (s *supplierService) Create(ctx context.Context, actorID uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := supplierFromRequest(req)
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Fournisseur '%s' créé", supplier.Name), model.LevelSuccess, "truck")
	resp := supplierToResponse(supplier)
	return &resp, nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: fournisseur", ErrNotFound)
	}
	resp := supplierToResponse(supplier)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context, filter dto.SupplierFilter) (*dto.SupplierListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 15
	}
	suppliers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.Counts(ctx, filter.Search)
	if err != nil {
		return nil, err
	}

	data := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		data[i] = supplierToResponse(&suppliers[i])
	}
	return &dto.SupplierListResponse{
		Data:   data,
		Counts: counts,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, nil
}

func (s *supplierService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: fournisseur", ErrNotFound)
	}

	updated := supplierFromRequest(req)
	updated.ID = supplier.ID
	updated.CreatedAt = supplier.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Fournisseur '%s' modifié", updated.Name), model.LevelPrimary, "truck")
	resp := supplierToResponse(updated)
	return &resp, nil
}

func (s *supplierService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: fournisseur", ErrNotFound)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Fournisseur '%s' supprimé", supplier.Name), model.LevelDanger, "trash")
	return nil
}

func (s *supplierService) ListAll(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error) {
	return s.repo.ListAll(ctx, filter)
}

func supplierFromRequest(req dto.SupplierRequest) *model.Supplier {
	country := req.Country
	if country == "" {
		country = "France"
	}
	terms := req.PaymentTerms
	if terms == "" {
		terms = "30 jours"
	}
	status := req.Status
	if status == "" {
		status = model.SupplierActive
	}
	return &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Country:       country,
		TaxNumber:     req.TaxNumber,
		PaymentTerms:  terms,
		CreditLimit:   req.CreditLimit,
		Status:        status,
		Notes:         req.Notes,
	}
}

func supplierToResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		PostalCode:    s.PostalCode,
		Country:       s.Country,
		TaxNumber:     s.TaxNumber,
		PaymentTerms:  s.PaymentTerms,
		CreditLimit:   s.CreditLimit,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format("02/01/2006 15:04"),
		UpdatedAt:     s.UpdatedAt.Format("02/01/2006 15:04"),
	}
}
