package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEmployeeSvc(t *testing.T) (EmployeeService, *stubUserRepo, *stubSaleRepo) {
	t.Helper()
	userRepo := newStubUserRepo()
	saleRepo := newStubSaleRepo()
	return NewEmployeeService(userRepo, saleRepo, &stubActivity{}), userRepo, saleRepo
}

func TestSelfGuardBlocksEveryMutation(t *testing.T) {
	svc, repo, _ := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)

	_, err := svc.Get(context.Background(), admin.ID, admin.ID)
	assert.True(t, errors.Is(err, ErrSelfAction))

	_, err = svc.Update(context.Background(), admin.ID, admin.ID, dto.UpdateEmployeeRequest{Role: model.RoleAdmin})
	assert.True(t, errors.Is(err, ErrSelfAction))

	err = svc.Delete(context.Background(), admin.ID, admin.ID)
	assert.True(t, errors.Is(err, ErrSelfAction))

	assert.Contains(t, repo.users, admin.ID)
}

func TestSelfToggleRefusedWithStateUnchanged(t *testing.T) {
	svc, repo, _ := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)

	resp, err := svc.ToggleActive(context.Background(), admin.ID, admin.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelfAction))
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Vous ne pouvez pas vous désactiver vous-même.", resp.Message)
	assert.True(t, repo.users[admin.ID].Active)
}

func TestToggleFlipsOtherAccount(t *testing.T) {
	svc, repo, _ := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)
	other := repo.seed(t, "paul", "paul@example.com", "paulpass", true)

	resp, err := svc.ToggleActive(context.Background(), admin.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Active)
	assert.False(t, repo.users[other.ID].Active)

	resp, err = svc.ToggleActive(context.Background(), admin.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, resp.Active)
}

func TestDeleteCashierWithSalesIsConflict(t *testing.T) {
	svc, repo, saleRepo := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)
	cashier := repo.seed(t, "paul", "paul@example.com", "paulpass", true)

	saleRepo.sales[uuid.New()] = &model.Sale{
		ID:            uuid.New(),
		InvoiceNumber: "F202603150001",
		CashierID:     cashier.ID,
		TotalAmount:   decimal.RequireFromString("10.00"),
		CreatedAt:     time.Now(),
	}

	err := svc.Delete(context.Background(), admin.ID, cashier.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Contains(t, repo.users, cashier.ID)
}

func TestDeleteEmployeeWithoutSales(t *testing.T) {
	svc, repo, _ := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)
	other := repo.seed(t, "paul", "paul@example.com", "paulpass", true)

	require.NoError(t, svc.Delete(context.Background(), admin.ID, other.ID))
	assert.NotContains(t, repo.users, other.ID)
}

func TestCreateEmployeeHashesPassword(t *testing.T) {
	svc, repo, _ := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)

	resp, err := svc.Create(context.Background(), admin.ID, dto.CreateEmployeeRequest{
		Username:        "nadia",
		Email:           "nadia@example.com",
		FirstName:       "Nadia",
		LastName:        "B",
		Role:            model.RoleCashier,
		Password:        "longenough",
		PasswordConfirm: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nadia B", resp.FullName)

	stored, err := repo.FindByUsername(context.Background(), "nadia")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", stored.PasswordHash)
	assert.True(t, stored.Active)
}

func TestListCountsIgnoreStatusFilter(t *testing.T) {
	svc, repo, _ := buildEmployeeSvc(t)
	admin := repo.seed(t, "admin", "admin@example.com", "adminpass", true)
	repo.seed(t, "a", "a@example.com", "password1", true)
	repo.seed(t, "b", "b@example.com", "password2", false)

	resp, err := svc.List(context.Background(), admin.ID, dto.EmployeeFilter{
		Status: "active", Page: 1, Limit: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Active)
	assert.Equal(t, int64(1), resp.Inactive)
}
