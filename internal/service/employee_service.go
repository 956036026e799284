package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService carries the admin-only employee screens. actorID is the
// signed-in admin; every mutation aimed at the actor's own account is
// rejected with ErrSelfAction before touching state.
type EmployeeService interface {
	List(ctx context.Context, actorID uuid.UUID, filter dto.EmployeeFilter) (*dto.EmployeeListResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req dto.CreateEmployeeRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.UserResponse, error)
	ToggleActive(ctx context.Context, actorID, id uuid.UUID) (*dto.ToggleStatusResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	// ListAll feeds the employee exports with the full filtered set.
	ListAll(ctx context.Context, actorID uuid.UUID, filter dto.EmployeeFilter) ([]model.User, error)
}

type employeeService struct {
	repo     repository.UserRepository
	saleRepo repository.SaleRepository
	activity ActivityRecorder
}

func NewEmployeeService(repo repository.UserRepository, saleRepo repository.SaleRepository, activity ActivityRecorder) EmployeeService {
	return &employeeService{repo: repo, saleRepo: saleRepo, activity: activity}
}

func (s *employeeService) List(ctx context.Context, actorID uuid.UUID, filter dto.EmployeeFilter) (*dto.EmployeeListResponse, error) {
	users, total, err := s.repo.List(ctx, filter, actorID)
	if err != nil {
		return nil, err
	}

	// Header figures are computed over the filtered set with the
	// active/inactive axis removed, so both buckets stay populated.
	countFilter := filter
	countFilter.Status = ""
	active, err := s.repo.CountActive(ctx, countFilter, actorID, true)
	if err != nil {
		return nil, err
	}
	inactive, err := s.repo.CountActive(ctx, countFilter, actorID, false)
	if err != nil {
		return nil, err
	}

	data := make([]dto.UserResponse, len(users))
	for i := range users {
		data[i] = userToResponse(&users[i])
	}
	return &dto.EmployeeListResponse{
		Data:     data,
		Total:    total,
		Active:   active,
		Inactive: inactive,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *employeeService) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.UserResponse, error) {
	if id == actorID {
		return nil, ErrSelfAction
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: employé", ErrNotFound)
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *employeeService) Create(ctx context.Context, actorID uuid.UUID, req dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("les deux mots de passe ne correspondent pas")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
		HireDate:     parseDate(req.HireDate),
		Active:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: nom d'utilisateur ou email déjà utilisé", ErrConflict)
		}
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Employé %s créé", user.FullName()), model.LevelSuccess, "user-plus")
	resp := userToResponse(user)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, actorID, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.UserResponse, error) {
	if id == actorID {
		return nil, ErrSelfAction
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: employé", ErrNotFound)
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	user.Role = req.Role
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if d := parseDate(req.HireDate); d != nil {
		user.HireDate = d
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: email déjà utilisé", ErrConflict)
		}
		return nil, err
	}

	s.activity.Record(ctx, actorID, fmt.Sprintf("Employé %s mis à jour", user.FullName()), model.LevelPrimary, "user-edit")
	resp := userToResponse(user)
	return &resp, nil
}

// ToggleActive flips the active flag. Self-toggle is rejected with the flag
// unchanged: an admin can never lock themselves out this way.
func (s *employeeService) ToggleActive(ctx context.Context, actorID, id uuid.UUID) (*dto.ToggleStatusResponse, error) {
	if id == actorID {
		return &dto.ToggleStatusResponse{
			Success: false,
			Message: "Vous ne pouvez pas vous désactiver vous-même.",
		}, ErrSelfAction
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: employé", ErrNotFound)
	}
	user.Active = !user.Active
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	state := "désactivé"
	level := model.LevelWarning
	if user.Active {
		state = "activé"
		level = model.LevelSuccess
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Employé %s %s", user.FullName(), state), level, "user-check")
	return &dto.ToggleStatusResponse{
		Success: true,
		Active:  user.Active,
		Message: fmt.Sprintf("Employé %s.", state),
	}, nil
}

// Delete hard-deletes an employee. An employee referenced as cashier on any
// sale cannot be deleted; that surfaces as ErrConflict, not a silent failure.
func (s *employeeService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if id == actorID {
		return ErrSelfAction
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: employé", ErrNotFound)
	}

	sales, err := s.saleRepo.CountByCashier(ctx, id)
	if err != nil {
		return err
	}
	if sales > 0 {
		return fmt.Errorf("%w: cet employé est caissier sur %d vente(s) et ne peut pas être supprimé", ErrConflict, sales)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, actorID, fmt.Sprintf("Employé %s supprimé", user.FullName()), model.LevelDanger, "user-times")
	return nil
}

func (s *employeeService) ListAll(ctx context.Context, actorID uuid.UUID, filter dto.EmployeeFilter) ([]model.User, error) {
	filter.Page = 1
	filter.Limit = 10000
	users, _, err := s.repo.List(ctx, filter, actorID)
	return users, err
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
