package services

import (
	"testing"

	"expensetracker/internal/models"
	"expensetracker/internal/repositories"
	"expensetracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryServiceTestSuite defines the test suite for CategoryService
type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service          CategoryServiceInterface
}

// SetupTest runs before each test
func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.mockCategoryRepo)
}

// TearDownTest runs after each test
func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCategoryServiceSuite runs the test suite
func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreateCategory() {
	category := &models.Category{Name: "Dining", Icon: "🍔", Kind: models.CategoryKindExpense}
	s.mockCategoryRepo.EXPECT().Create(category).Return(nil)

	s.NoError(s.service.CreateCategory(category))
}

func (s *CategoryServiceTestSuite) TestCreateCategory_EmptyName() {
	category := &models.Category{Kind: models.CategoryKindExpense}

	s.ErrorIs(s.service.CreateCategory(category), models.ErrEmptyCategoryName)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_InvalidKind() {
	testCases := []struct {
		kind        string
		description string
	}{
		{"", "empty kind"},
		{"transfer", "unknown kind"},
		{"Income", "kinds are case sensitive"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			category := &models.Category{Name: "Broken", Kind: tc.kind}
			s.ErrorIs(s.service.CreateCategory(category), models.ErrInvalidCategoryKind)
		})
	}
}

func (s *CategoryServiceTestSuite) TestDeleteCategory() {
	id := uuid.New()
	s.mockCategoryRepo.EXPECT().Delete(id).Return(nil)

	s.NoError(s.service.DeleteCategory(id))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_NilID() {
	s.ErrorIs(s.service.DeleteCategory(uuid.Nil), ErrInvalidCategoryID)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	id := uuid.New()
	s.mockCategoryRepo.EXPECT().Delete(id).Return(repositories.ErrCategoryNotFound)

	s.ErrorIs(s.service.DeleteCategory(id), repositories.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestListCategories() {
	expected := []models.Category{
		{Name: "Food", Kind: models.CategoryKindExpense},
		{Name: "Salary", Kind: models.CategoryKindIncome},
	}
	s.mockCategoryRepo.EXPECT().List().Return(expected, nil)

	categories, err := s.service.ListCategories()

	s.NoError(err)
	s.Len(categories, 2)
}
