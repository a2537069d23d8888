package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	PetID           int64
	VetID           int64
	AppointmentDate string
	AppointmentTime string
	Reason          string
	Status          string
}

func normalize(id int64, in Input) (Appointment, error) {
	a := Appointment{
		AppointmentID:   id,
		PetID:           in.PetID,
		VetID:           in.VetID,
		AppointmentDate: strings.TrimSpace(in.AppointmentDate),
		AppointmentTime: strings.TrimSpace(in.AppointmentTime),
		Reason:          strings.TrimSpace(in.Reason),
		Status:          strings.TrimSpace(in.Status),
	}

	if a.AppointmentDate == "" {
		return Appointment{}, invalid("appointment_date is required")
	}
	if a.AppointmentTime == "" {
		return Appointment{}, invalid("appointment_time is required")
	}
	if a.Status == "" {
		a.Status = "scheduled"
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, id int64, in Input) (Appointment, error) {
	a, err := normalize(id, in)
	if err != nil {
		return Appointment{}, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Appointment, error) {
	a, err := normalize(id, in)
	if err != nil {
		return Appointment{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
