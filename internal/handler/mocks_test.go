package handler

import (
	"context"

	"backoffice/internal/access"
	"backoffice/internal/order"
	"backoffice/internal/payment"
	"backoffice/internal/payout"
	"backoffice/internal/persona"
	"backoffice/internal/project"
	"backoffice/internal/task"
	"backoffice/internal/user"

	"github.com/stretchr/testify/mock"
)

type MockAccess struct{ mock.Mock }

func (m *MockAccess) HasPermission(ctx context.Context, userID uint, name string) bool {
	return m.Called(ctx, userID, name).Bool(0)
}

func (m *MockAccess) HasMenuAccess(ctx context.Context, userID uint, name string) bool {
	return m.Called(ctx, userID, name).Bool(0)
}

func (m *MockAccess) GetUserMenus(ctx context.Context, userID uint) []access.Menu {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return []access.Menu{}
	}
	return args.Get(0).([]access.Menu)
}

type MockOrders struct{ mock.Mock }

func (m *MockOrders) ListOrders(ctx context.Context, f order.Filter) (*order.Page, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Page), args.Error(1)
}

func (m *MockOrders) GetOrderDetail(ctx context.Context, id uint) (*order.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Detail), args.Error(1)
}

type MockPayments struct{ mock.Mock }

func (m *MockPayments) ListPayments(ctx context.Context, status payment.Status) ([]payment.Payment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPayments) ListByOrder(ctx context.Context, orderID uint) ([]payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPayments) MarkPaid(ctx context.Context, input payment.MarkPaidInput) error {
	return m.Called(ctx, input).Error(0)
}

type MockPayouts struct{ mock.Mock }

func (m *MockPayouts) ListPayouts(ctx context.Context, status payout.Status) ([]payout.Payout, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payout.Payout), args.Error(1)
}

func (m *MockPayouts) GetPayout(ctx context.Context, id uint) (*payout.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payout.Payout), args.Error(1)
}

func (m *MockPayouts) MarkPaid(ctx context.Context, input payout.MarkPaidInput) error {
	return m.Called(ctx, input).Error(0)
}

type MockUsers struct{ mock.Mock }

func (m *MockUsers) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUsers) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUsers) Get(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUsers) Create(ctx context.Context, input user.CreateInput) (*user.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUsers) Update(ctx context.Context, input user.UpdateInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockUsers) Delete(ctx context.Context, id, actorID uint) error {
	return m.Called(ctx, id, actorID).Error(0)
}

func (m *MockUsers) ListRoles(ctx context.Context) ([]user.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.Role), args.Error(1)
}

type MockProjects struct{ mock.Mock }

func (m *MockProjects) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjects) Get(ctx context.Context, id uint) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjects) Create(ctx context.Context, input project.Input) (*project.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjects) Update(ctx context.Context, input project.Input) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockProjects) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockTasks struct{ mock.Mock }

func (m *MockTasks) List(ctx context.Context, projectID uint) ([]task.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Task), args.Error(1)
}

func (m *MockTasks) Get(ctx context.Context, id uint) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTasks) Create(ctx context.Context, input task.Input) (*task.Task, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTasks) Update(ctx context.Context, input task.Input) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockTasks) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTasks) Summary(ctx context.Context) (map[task.Status]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[task.Status]int), args.Error(1)
}

type MockPersonas struct{ mock.Mock }

func (m *MockPersonas) List(ctx context.Context) ([]persona.Persona, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persona.Persona), args.Error(1)
}

func (m *MockPersonas) Get(ctx context.Context, id uint) (*persona.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persona.Persona), args.Error(1)
}

func (m *MockPersonas) Create(ctx context.Context, input persona.Input) (*persona.Persona, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persona.Persona), args.Error(1)
}

func (m *MockPersonas) Update(ctx context.Context, input persona.Input) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockPersonas) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
