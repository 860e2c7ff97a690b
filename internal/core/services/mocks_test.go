package services_test

import (
	"context"
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkspaceRepository ---

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	var ws *domain.Workspace
	if args.Get(0) != nil {
		ws = args.Get(0).(*domain.Workspace)
	}
	return ws, args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	var ws []domain.Workspace
	if args.Get(0) != nil {
		ws = args.Get(0).([]domain.Workspace)
	}
	return ws, args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspaceActivation(ctx context.Context, workspaceID string, isActive bool, updatedByUserID string) error {
	args := m.Called(ctx, workspaceID, isActive, updatedByUserID)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error) {
	args := m.Called(ctx, userID, workspaceID)
	var uw *domain.UserWorkspace
	if args.Get(0) != nil {
		uw = args.Get(0).(*domain.UserWorkspace)
	}
	return uw, args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspaceUsers(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error) {
	args := m.Called(ctx, workspaceID)
	var members []domain.UserWorkspace
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.UserWorkspace)
	}
	return members, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, workspaceID, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Account, error) {
	args := m.Called(ctx, workspaceID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, workspaceID, accountID, updatedByUserID string) error {
	args := m.Called(ctx, workspaceID, accountID, updatedByUserID)
	return args.Error(0)
}

// --- Mock BudgetGroupRepository ---

type MockBudgetGroupRepository struct {
	mock.Mock
}

func (m *MockBudgetGroupRepository) FindGroupByID(ctx context.Context, workspaceID, groupID string) (*domain.BudgetGroup, error) {
	args := m.Called(ctx, workspaceID, groupID)
	var group *domain.BudgetGroup
	if args.Get(0) != nil {
		group = args.Get(0).(*domain.BudgetGroup)
	}
	return group, args.Error(1)
}

func (m *MockBudgetGroupRepository) ListGroupsByWorkspace(ctx context.Context, workspaceID string, activeOnly bool) ([]domain.BudgetGroup, error) {
	args := m.Called(ctx, workspaceID, activeOnly)
	var groups []domain.BudgetGroup
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.BudgetGroup)
	}
	return groups, args.Error(1)
}

func (m *MockBudgetGroupRepository) SaveGroup(ctx context.Context, group domain.BudgetGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockBudgetGroupRepository) UpdateGroup(ctx context.Context, group domain.BudgetGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockBudgetGroupRepository) DeactivateGroup(ctx context.Context, workspaceID, groupID, updatedByUserID string) error {
	args := m.Called(ctx, workspaceID, groupID, updatedByUserID)
	return args.Error(0)
}

// --- Mock BudgetCategoryRepository ---

type MockBudgetCategoryRepository struct {
	mock.Mock
}

func (m *MockBudgetCategoryRepository) FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.BudgetCategory, error) {
	args := m.Called(ctx, workspaceID, categoryID)
	var category *domain.BudgetCategory
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.BudgetCategory)
	}
	return category, args.Error(1)
}

func (m *MockBudgetCategoryRepository) ListCategoriesByWorkspace(ctx context.Context, workspaceID string, activeOnly bool) ([]domain.BudgetCategory, error) {
	args := m.Called(ctx, workspaceID, activeOnly)
	var categories []domain.BudgetCategory
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.BudgetCategory)
	}
	return categories, args.Error(1)
}

func (m *MockBudgetCategoryRepository) SaveCategory(ctx context.Context, category domain.BudgetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockBudgetCategoryRepository) UpdateCategory(ctx context.Context, category domain.BudgetCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockBudgetCategoryRepository) DeactivateCategory(ctx context.Context, workspaceID, categoryID, updatedByUserID string) error {
	args := m.Called(ctx, workspaceID, categoryID, updatedByUserID)
	return args.Error(0)
}

// --- Mock PlanRepository ---

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindPlan(ctx context.Context, workspaceID, yearMonth string) (*domain.MonthlyBudgetPlan, error) {
	args := m.Called(ctx, workspaceID, yearMonth)
	var plan *domain.MonthlyBudgetPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.MonthlyBudgetPlan)
	}
	return plan, args.Error(1)
}

func (m *MockPlanRepository) FindAllocationsByPlanID(ctx context.Context, planID string) ([]domain.MonthlyGroupAllocation, error) {
	args := m.Called(ctx, planID)
	var allocations []domain.MonthlyGroupAllocation
	if args.Get(0) != nil {
		allocations = args.Get(0).([]domain.MonthlyGroupAllocation)
	}
	return allocations, args.Error(1)
}

func (m *MockPlanRepository) CreatePlanWithAllocations(ctx context.Context, plan domain.MonthlyBudgetPlan, allocations []domain.MonthlyGroupAllocation) error {
	args := m.Called(ctx, plan, allocations)
	return args.Error(0)
}

func (m *MockPlanRepository) UpsertAllocation(ctx context.Context, allocation domain.MonthlyGroupAllocation) error {
	args := m.Called(ctx, allocation)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, workspaceID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByWorkspace(ctx context.Context, workspaceID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, workspaceID, accountID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsByMonth(ctx context.Context, workspaceID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, workspaceID, transactionID string, status domain.TransactionStatus, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, workspaceID, transactionID, status, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock InstallmentRepository ---

type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) FindInstallmentPlanByID(ctx context.Context, workspaceID, installmentPlanID string) (*domain.InstallmentPlan, error) {
	args := m.Called(ctx, workspaceID, installmentPlanID)
	var plan *domain.InstallmentPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.InstallmentPlan)
	}
	return plan, args.Error(1)
}

func (m *MockInstallmentRepository) ListInstallmentPlansByWorkspace(ctx context.Context, workspaceID string) ([]domain.InstallmentPlan, error) {
	args := m.Called(ctx, workspaceID)
	var plans []domain.InstallmentPlan
	if args.Get(0) != nil {
		plans = args.Get(0).([]domain.InstallmentPlan)
	}
	return plans, args.Error(1)
}

func (m *MockInstallmentRepository) ListTransactionsByPlan(ctx context.Context, installmentPlanID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, installmentPlanID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockInstallmentRepository) CountPostedTransactions(ctx context.Context, installmentPlanID string) (int, error) {
	args := m.Called(ctx, installmentPlanID)
	return args.Int(0), args.Error(1)
}

func (m *MockInstallmentRepository) SaveInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan, transactions []domain.Transaction) error {
	args := m.Called(ctx, plan, transactions)
	return args.Error(0)
}

func (m *MockInstallmentRepository) DeleteInstallmentPlan(ctx context.Context, workspaceID, installmentPlanID string) error {
	args := m.Called(ctx, workspaceID, installmentPlanID)
	return args.Error(0)
}

// --- Mock GoalRepository ---

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, workspaceID, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, workspaceID, goalID)
	var goal *domain.Goal
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.Goal)
	}
	return goal, args.Error(1)
}

func (m *MockGoalRepository) ListGoalsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Goal, error) {
	args := m.Called(ctx, workspaceID)
	var goals []domain.Goal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) ListContributionsByGoal(ctx context.Context, goalID string) ([]domain.GoalContribution, error) {
	args := m.Called(ctx, goalID)
	var contributions []domain.GoalContribution
	if args.Get(0) != nil {
		contributions = args.Get(0).([]domain.GoalContribution)
	}
	return contributions, args.Error(1)
}

func (m *MockGoalRepository) SumContributionsByGoal(ctx context.Context, workspaceID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, workspaceID)
	var sums map[string]decimal.Decimal
	if args.Get(0) != nil {
		sums = args.Get(0).(map[string]decimal.Decimal)
	}
	return sums, args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoalWithContributions(ctx context.Context, workspaceID, goalID string) error {
	args := m.Called(ctx, workspaceID, goalID)
	return args.Error(0)
}

func (m *MockGoalRepository) SaveContribution(ctx context.Context, contribution domain.GoalContribution) error {
	args := m.Called(ctx, contribution)
	return args.Error(0)
}

// --- Mock SummaryRepository ---

type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) SumPostedAmount(ctx context.Context, workspaceID string, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, workspaceID, txnType, from, to)
	var sum decimal.Decimal
	if args.Get(0) != nil {
		sum = args.Get(0).(decimal.Decimal)
	}
	return sum, args.Error(1)
}

func (m *MockSummaryRepository) SpendingByGroup(ctx context.Context, workspaceID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, workspaceID, from, to)
	var spending map[string]decimal.Decimal
	if args.Get(0) != nil {
		spending = args.Get(0).(map[string]decimal.Decimal)
	}
	return spending, args.Error(1)
}

// --- Mock PlanningService ---

type MockPlanningService struct {
	mock.Mock
}

func (m *MockPlanningService) EnsurePlan(ctx context.Context, workspaceID string, yearMonth string, userID string) (*domain.MonthlyBudgetPlan, []domain.MonthlyGroupAllocation, error) {
	args := m.Called(ctx, workspaceID, yearMonth, userID)
	var plan *domain.MonthlyBudgetPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.MonthlyBudgetPlan)
	}
	var allocations []domain.MonthlyGroupAllocation
	if args.Get(1) != nil {
		allocations = args.Get(1).([]domain.MonthlyGroupAllocation)
	}
	return plan, allocations, args.Error(2)
}

func (m *MockPlanningService) UpdateMonthlyAllocation(ctx context.Context, workspaceID string, yearMonth string, groupID string, req dto.UpdateAllocationRequest, userID string) (*domain.MonthlyGroupAllocation, error) {
	args := m.Called(ctx, workspaceID, yearMonth, groupID, req, userID)
	var allocation *domain.MonthlyGroupAllocation
	if args.Get(0) != nil {
		allocation = args.Get(0).(*domain.MonthlyGroupAllocation)
	}
	return allocation, args.Error(1)
}
