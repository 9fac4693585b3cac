package services

import (
	"fmt"

	"github.com/sawai-h/saas-rbac-api/internal/constants"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

// BillingLine is one priced item of an organization's bill.
type BillingLine struct {
	Amount int64 `json:"amount"`
	Unit   int64 `json:"unit"`
	Price  int64 `json:"price"`
}

// Billing summarizes what an organization currently pays for: seats
// (members other than BILLING ones) and projects.
type Billing struct {
	Seats    BillingLine `json:"seats"`
	Projects BillingLine `json:"projects"`
	Total    int64       `json:"total"`
}

// BillingService computes billing information for organizations.
type BillingService struct {
	orgRepo     repository.OrganizationRepository
	projectRepo repository.ProjectRepository
}

// NewBillingService creates a new BillingService.
func NewBillingService(orgRepo repository.OrganizationRepository, projectRepo repository.ProjectRepository) *BillingService {
	return &BillingService{
		orgRepo:     orgRepo,
		projectRepo: projectRepo,
	}
}

// GetBilling computes the organization's current bill.
func (s *BillingService) GetBilling(organizationID string) (*Billing, error) {
	seats, err := s.orgRepo.CountBillableMembers(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	projects, err := s.projectRepo.CountByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	seatLine := BillingLine{
		Amount: seats,
		Unit:   constants.SeatUnitPrice,
		Price:  seats * constants.SeatUnitPrice,
	}
	projectLine := BillingLine{
		Amount: projects,
		Unit:   constants.ProjectUnitPrice,
		Price:  projects * constants.ProjectUnitPrice,
	}

	return &Billing{
		Seats:    seatLine,
		Projects: projectLine,
		Total:    seatLine.Price + projectLine.Price,
	}, nil
}
