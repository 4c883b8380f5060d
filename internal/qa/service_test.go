package qa

import (
	"errors"
	"testing"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockQARepository struct {
	mock.Mock
}

func (m *MockQARepository) PersistQADetail(draft models.QADraft) (*models.QADetail, error) {
	args := m.Called(draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QADetail), args.Error(1)
}

func (m *MockQARepository) GetQADetail(id int) (*models.QADetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QADetail), args.Error(1)
}

func (m *MockQARepository) ListQADetails(programNumber string) ([]models.QADetail, error) {
	args := m.Called(programNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QADetail), args.Error(1)
}

func (m *MockQARepository) GetBillingForProgram(programNumber string) (*BillingInfo, error) {
	args := m.Called(programNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BillingInfo), args.Error(1)
}

func TestGetOverview(t *testing.T) {
	mockRepo := new(MockQARepository)
	service := NewService(mockRepo)

	mockRepo.On("ListQADetails", "2511AD-008").Return([]models.QADetail{
		{ID: 1, ProgramNumber: "2511AD-008"},
	}, nil)
	mockRepo.On("GetBillingForProgram", "2511AD-008").Return(&BillingInfo{
		IntakeID:      3,
		SerialNumber:  "0042",
		BillingStatus: "pending",
	}, nil)

	overview, err := service.GetOverview("2511AD-008")
	assert.NoError(t, err)
	assert.Len(t, overview.Details, 1)
	assert.NotNil(t, overview.Billing)
	assert.Equal(t, "0042", overview.Billing.SerialNumber)

	mockRepo.AssertExpectations(t)
}

func TestGetOverviewMissingBillingIsNotFatal(t *testing.T) {
	mockRepo := new(MockQARepository)
	service := NewService(mockRepo)

	mockRepo.On("ListQADetails", "2511AD-009").Return([]models.QADetail{
		{ID: 2, ProgramNumber: "2511AD-009"},
	}, nil)
	mockRepo.On("GetBillingForProgram", "2511AD-009").Return(nil, errors.New("no intake found for program 2511AD-009"))

	overview, err := service.GetOverview("2511AD-009")
	assert.NoError(t, err)
	assert.Len(t, overview.Details, 1)
	assert.Nil(t, overview.Billing)
}

func TestGetOverviewDetailErrorIsFatal(t *testing.T) {
	mockRepo := new(MockQARepository)
	service := NewService(mockRepo)

	mockRepo.On("ListQADetails", "2511AD-010").Return(nil, errors.New("connection refused"))
	mockRepo.On("GetBillingForProgram", "2511AD-010").Return(&BillingInfo{}, nil)

	_, err := service.GetOverview("2511AD-010")
	assert.Error(t, err)
}
