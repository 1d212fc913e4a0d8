package repositories

import (
	"testing"

	"expensetracker/internal/database"
	"expensetracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreateAndGet() {
	name := gofakeit.ProductCategory()
	category := &models.Category{
		Name:  name,
		Icon:  "🍔",
		Color: "#6366f1",
		Kind:  models.CategoryKindExpense,
	}

	s.NoError(s.repo.Create(category))
	s.NotEqual(uuid.Nil, category.ID)

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal(name, found.Name)
	s.Equal(models.CategoryKindExpense, found.Kind)
}

func (s *CategoryRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestDelete_DoesNotCascade() {
	category := database.CreateTestCategory(s.T(), s.db, "Dining", models.CategoryKindExpense)
	transaction := database.CreateTestTransaction(s.T(), s.db, "Lunch", models.TransactionTypeExpense, "2026-05-10", 500, &category.ID)

	s.NoError(s.repo.Delete(category.ID))

	// The transaction survives with its now-dangling category reference.
	var survivor models.Transaction
	s.NoError(s.db.First(&survivor, "id = ?", transaction.ID).Error)
	s.Require().NotNil(survivor.CategoryID)
	s.Equal(category.ID, *survivor.CategoryID)
	s.True(survivor.Amount.Equal(decimal.NewFromInt(500)))
}

func (s *CategoryRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestList_InsertionOrder() {
	database.CreateTestCategory(s.T(), s.db, "Food", models.CategoryKindExpense)
	database.CreateTestCategory(s.T(), s.db, "Salary", models.CategoryKindIncome)
	database.CreateTestCategory(s.T(), s.db, "Investment", models.CategoryKindInvestment)

	categories, err := s.repo.List()
	s.NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Food", categories[0].Name)
	s.Equal("Investment", categories[2].Name)
}
