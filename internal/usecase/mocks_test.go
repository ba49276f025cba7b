package usecase_test

import (
	"context"

	"pharmacy/internal/domain/model"
	repo "pharmacy/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	carts      repo.CartRepository
	medicines  repo.MedicineRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

var _ repo.TransactionManager = (*TxManagerMock)(nil)

func (r *TxReposMock) Carts() repo.CartRepository           { return r.carts }
func (r *TxReposMock) Medicines() repo.MedicineRepository   { return r.medicines }
func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }

var _ repo.TxRepos = (*TxReposMock)(nil)

// =====================
// Repository mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) UpdateAddress(ctx context.Context, cartID int64, addr model.Address) error {
	args := m.Called(ctx, cartID, addr)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByID(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *CartRepoMock) ListItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) UpsertItem(ctx context.Context, cartID int64, medicineID int64, delta int64) error {
	args := m.Called(ctx, cartID, medicineID, delta)
	return args.Error(0)
}

func (m *CartRepoMock) RemoveItemByMedicine(ctx context.Context, cartID int64, medicineID int64) error {
	args := m.Called(ctx, cartID, medicineID)
	return args.Error(0)
}

var _ repo.CartRepository = (*CartRepoMock)(nil)

type MedicineRepoMock struct{ mock.Mock }

func (m *MedicineRepoMock) ListAll(ctx context.Context) ([]model.Medicine, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Medicine)
	return items, args.Error(1)
}

func (m *MedicineRepoMock) FindByID(ctx context.Context, id int64) (model.Medicine, error) {
	args := m.Called(ctx, id)
	med, _ := args.Get(0).(model.Medicine)
	return med, args.Error(1)
}

func (m *MedicineRepoMock) Create(ctx context.Context, in model.Medicine) (model.Medicine, error) {
	args := m.Called(ctx, in)
	med, _ := args.Get(0).(model.Medicine)
	return med, args.Error(1)
}

func (m *MedicineRepoMock) Update(ctx context.Context, in model.Medicine) (model.Medicine, error) {
	args := m.Called(ctx, in)
	med, _ := args.Get(0).(model.Medicine)
	return med, args.Error(1)
}

func (m *MedicineRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.MedicineRepository = (*MedicineRepoMock)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

var _ repo.OrderItemRepository = (*OrderItemRepoMock)(nil)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

var _ repo.AuditLogRepository = (*AuditRepoMock)(nil)
