package qa

import "github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/models"

// Overview bundles the QA records for a program with the accounts view of
// the same job.
type Overview struct {
	Details []models.QADetail `json:"details"`
	Billing *BillingInfo      `json:"billing"`
}

type QAService struct {
	repo QARepository
}

func NewService(repo QARepository) *QAService {
	return &QAService{repo: repo}
}

// GetOverview fetches the QA details and the billing info as an independent
// parallel pair and waits for both before assembling the view. A missing
// billing link is not fatal, the QA side still renders.
func (s *QAService) GetOverview(programNumber string) (*Overview, error) {
	detailsChannel := make(chan []models.QADetail, 1)
	billingChannel := make(chan *BillingInfo, 1)
	errChannel := make(chan error, 1)

	go func() {
		details, err := s.repo.ListQADetails(programNumber)
		if err != nil {
			errChannel <- err
			return
		}
		detailsChannel <- details
	}()

	go func() {
		billing, err := s.repo.GetBillingForProgram(programNumber)
		if err != nil {
			billingChannel <- nil
			return
		}
		billingChannel <- billing
	}()

	overview := &Overview{}
	for i := 0; i < 2; i++ {
		select {
		case details := <-detailsChannel:
			overview.Details = details
		case billing := <-billingChannel:
			overview.Billing = billing
		case err := <-errChannel:
			return nil, err
		}
	}

	return overview, nil
}
