package complaint

import (
	"context"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("servicehub.complaint")

type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id int64) (*Complaint, error)
	List(ctx context.Context) ([]Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status Status, response *string) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateComplaintRequest) (*Complaint, error) {
	if req.UserID <= 0 {
		return nil, errors.NewNotValid(nil, "User ID is required")
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, errors.NewNotValid(nil, "Message is required")
	}

	c := &Complaint{
		UserID:  req.UserID,
		Message: msg,
		Status:  StatusOpen,
	}
	if req.ProviderID != nil && *req.ProviderID > 0 {
		c.ProviderID = req.ProviderID
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.Infof("complaint %d opened by user %d", c.ID, c.UserID)
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Complaint, error) {
	return s.repo.List(ctx)
}

// Respond moves a complaint to a new status and records the admin response.
func (s *Service) Respond(ctx context.Context, id int64, req RespondRequest) (*Complaint, error) {
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var response *string
	if req.Response != nil {
		if r := strings.TrimSpace(*req.Response); r != "" {
			response = &r
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, status, response); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CountOpen(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, StatusOpen)
}

func ParseStatus(raw string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(raw))); st {
	case StatusOpen, StatusInProgress, StatusResolved:
		return st, nil
	default:
		return "", errors.NewNotValid(nil, "Invalid complaint status: "+raw)
	}
}
