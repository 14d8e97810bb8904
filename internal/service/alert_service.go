package service

import (
	"errors"
	"fmt"

	"pricex-backend/internal/model"
	"pricex-backend/internal/ws"
	"pricex-backend/pkg/validator"
)

var ErrInvalidAlert = errors.New("invalid alert payload")

type AlertService interface {
	CreateAlert(req *model.AlertRequest) (string, error)
}

type alertService struct {
	wsHub *ws.Hub
}

func NewAlertService(hub *ws.Hub) AlertService {
	return &alertService{wsHub: hub}
}

// CreateAlert accepts a fully-formed alert record and acknowledges it by
// echoing its id.
// TODO: persist alerts and validate product/user existence once that
// product decision lands.
func (s *alertService) CreateAlert(req *model.AlertRequest) (string, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return "", fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidAlert, firstErr.FailedField, firstErr.Tag)
	}

	if s.wsHub != nil {
		s.wsHub.Publish("alert_created", req)
	}

	return req.ID, nil
}
