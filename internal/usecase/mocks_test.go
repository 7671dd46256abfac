package usecase

import (
	"context"

	"apparelstore/internal/domain/model"
	repo "apparelstore/internal/repository"

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
	apparels   repo.ApparelRepository
	customers  repo.CustomerRepository
	orders     repo.ApparelOrderRepository
	orderLines repo.ApparelOrderLineRepository
	shipments  repo.ApparelOrderShipmentRepository
}

func (r *TxReposMock) Apparels() repo.ApparelRepository                   { return r.apparels }
func (r *TxReposMock) Customers() repo.CustomerRepository                 { return r.customers }
func (r *TxReposMock) ApparelOrders() repo.ApparelOrderRepository         { return r.orders }
func (r *TxReposMock) ApparelOrderLines() repo.ApparelOrderLineRepository { return r.orderLines }
func (r *TxReposMock) Shipments() repo.ApparelOrderShipmentRepository     { return r.shipments }

// =====================
// Repository mocks
// =====================

type ApparelRepoMock struct{ mock.Mock }

func (m *ApparelRepoMock) FindByID(ctx context.Context, id int64) (model.Apparel, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(model.Apparel)
	return a, args.Error(1)
}

func (m *ApparelRepoMock) FindAll(ctx context.Context) ([]model.Apparel, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Apparel)
	return items, args.Error(1)
}

func (m *ApparelRepoMock) ListByNameContaining(ctx context.Context, name string, page repo.PageRequest) (repo.Page[model.Apparel], error) {
	args := m.Called(ctx, name, page)
	p, _ := args.Get(0).(repo.Page[model.Apparel])
	return p, args.Error(1)
}

func (m *ApparelRepoMock) ListByNameAndStyleContaining(ctx context.Context, name string, style string, page repo.PageRequest) (repo.Page[model.Apparel], error) {
	args := m.Called(ctx, name, style, page)
	p, _ := args.Get(0).(repo.Page[model.Apparel])
	return p, args.Error(1)
}

func (m *ApparelRepoMock) Insert(ctx context.Context, a model.Apparel) (model.Apparel, error) {
	args := m.Called(ctx, a)
	out, _ := args.Get(0).(model.Apparel)
	return out, args.Error(1)
}

func (m *ApparelRepoMock) Update(ctx context.Context, a model.Apparel) (model.Apparel, error) {
	args := m.Called(ctx, a)
	out, _ := args.Get(0).(model.Apparel)
	return out, args.Error(1)
}

func (m *ApparelRepoMock) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ApparelRepoMock) DeleteAll(ctx context.Context) error {
	panic("not used in usecase tests")
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) Insert(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Customer)
	return out, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(model.Customer)
	return out, args.Error(1)
}

func (m *CustomerRepoMock) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CustomerRepoMock) DeleteAll(ctx context.Context) error {
	panic("not used in usecase tests")
}

type ApparelOrderRepoMock struct{ mock.Mock }

func (m *ApparelOrderRepoMock) FindByID(ctx context.Context, id int64) (model.ApparelOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.ApparelOrder)
	return o, args.Error(1)
}

func (m *ApparelOrderRepoMock) FindAll(ctx context.Context) ([]model.ApparelOrder, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ApparelOrder)
	return items, args.Error(1)
}

func (m *ApparelOrderRepoMock) Insert(ctx context.Context, o model.ApparelOrder) (model.ApparelOrder, error) {
	args := m.Called(ctx, o)
	out, _ := args.Get(0).(model.ApparelOrder)
	return out, args.Error(1)
}

func (m *ApparelOrderRepoMock) Update(ctx context.Context, o model.ApparelOrder) (model.ApparelOrder, error) {
	args := m.Called(ctx, o)
	out, _ := args.Get(0).(model.ApparelOrder)
	return out, args.Error(1)
}

func (m *ApparelOrderRepoMock) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ApparelOrderRepoMock) DeleteAll(ctx context.Context) error {
	panic("not used in usecase tests")
}

type ApparelOrderLineRepoMock struct{ mock.Mock }

func (m *ApparelOrderLineRepoMock) FindByID(ctx context.Context, id int64) (model.ApparelOrderLine, error) {
	panic("not used in usecase tests")
}

func (m *ApparelOrderLineRepoMock) FindAll(ctx context.Context) ([]model.ApparelOrderLine, error) {
	panic("not used in usecase tests")
}

func (m *ApparelOrderLineRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.ApparelOrderLine, error) {
	panic("not used in usecase tests")
}

func (m *ApparelOrderLineRepoMock) Insert(ctx context.Context, l model.ApparelOrderLine) (model.ApparelOrderLine, error) {
	panic("not used in usecase tests")
}

func (m *ApparelOrderLineRepoMock) CreateBulk(ctx context.Context, orderID int64, lines []model.ApparelOrderLine) ([]model.ApparelOrderLine, error) {
	args := m.Called(ctx, orderID, lines)
	out, _ := args.Get(0).([]model.ApparelOrderLine)
	return out, args.Error(1)
}

func (m *ApparelOrderLineRepoMock) Update(ctx context.Context, l model.ApparelOrderLine) (model.ApparelOrderLine, error) {
	panic("not used in usecase tests")
}

func (m *ApparelOrderLineRepoMock) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ApparelOrderLineRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *ApparelOrderLineRepoMock) DeleteAll(ctx context.Context) error {
	panic("not used in usecase tests")
}

type ShipmentRepoMock struct{ mock.Mock }

func (m *ShipmentRepoMock) FindByID(ctx context.Context, id int64) (model.ApparelOrderShipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.ApparelOrderShipment)
	return s, args.Error(1)
}

func (m *ShipmentRepoMock) FindAll(ctx context.Context) ([]model.ApparelOrderShipment, error) {
	panic("not used in usecase tests")
}

func (m *ShipmentRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.ApparelOrderShipment, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.ApparelOrderShipment)
	return items, args.Error(1)
}

func (m *ShipmentRepoMock) Insert(ctx context.Context, s model.ApparelOrderShipment) (model.ApparelOrderShipment, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(model.ApparelOrderShipment)
	return out, args.Error(1)
}

func (m *ShipmentRepoMock) Update(ctx context.Context, s model.ApparelOrderShipment) (model.ApparelOrderShipment, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(model.ApparelOrderShipment)
	return out, args.Error(1)
}

func (m *ShipmentRepoMock) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ShipmentRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *ShipmentRepoMock) DeleteAll(ctx context.Context) error {
	panic("not used in usecase tests")
}

// 全部のrepo mockをまとめて作る
type fixture struct {
	tx         *TxManagerMock
	apparels   *ApparelRepoMock
	customers  *CustomerRepoMock
	orders     *ApparelOrderRepoMock
	orderLines *ApparelOrderLineRepoMock
	shipments  *ShipmentRepoMock
}

func newFixture() *fixture {
	f := &fixture{
		apparels:   new(ApparelRepoMock),
		customers:  new(CustomerRepoMock),
		orders:     new(ApparelOrderRepoMock),
		orderLines: new(ApparelOrderLineRepoMock),
		shipments:  new(ShipmentRepoMock),
	}
	f.tx = &TxManagerMock{Repos: &TxReposMock{
		apparels:   f.apparels,
		customers:  f.customers,
		orders:     f.orders,
		orderLines: f.orderLines,
		shipments:  f.shipments,
	}}
	f.tx.On("WithinTx", mock.Anything).Return()
	return f
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.apparels.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.orderLines.AssertExpectations(t)
	f.shipments.AssertExpectations(t)
}

func assertHTTPError(t assertT, err error, status int, code, msg string) {
	t.Helper()
	he, ok := AsHTTPError(err)
	if !ok {
		t.Fatalf("expected *HTTPError, got %T: %v", err, err)
		return
	}
	if he.Status != status || he.Code != code || (msg != "" && he.Message != msg) {
		t.Fatalf("unexpected error: status=%d code=%s msg=%q", he.Status, he.Code, he.Message)
	}
}

type assertT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
