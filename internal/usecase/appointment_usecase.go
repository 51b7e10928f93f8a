package usecase

import (
	"context"
	"errors"
	"time"

	"medicit-backend/internal/converter"
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorRoleRequired  = errors.New("the assigned doctor does not hold the Medico role")
	ErrInvalidDateTime     = errors.New("invalid date time, use YYYY-MM-DDTHH:MM:SS")
)

const appointmentTimeLayout = "2006-01-02T15:04:05"

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	stateRepo       repository.StateRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	stateRepo repository.StateRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		stateRepo:       stateRepo,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	dateTime, err := time.Parse(appointmentTimeLayout, req.DateTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	patient, err := u.userRepo.FindByID(u.db, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindByID(u.db, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.Role.Name != entity.RoleDoctor {
		return nil, ErrDoctorRoleRequired
	}

	state, err := u.stateRepo.FindByID(u.db, req.StateID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		DateTime:  dateTime,
		Reason:    req.Reason,
		StateID:   req.StateID,
	}
	if err := u.appointmentRepo.Create(u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	appointment.State = *state
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.DateTime != nil {
		dateTime, err := time.Parse(appointmentTimeLayout, *req.DateTime)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		appointment.DateTime = dateTime
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.PatientID != nil {
		patient, err := u.userRepo.FindByID(u.db, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		appointment.PatientID = *req.PatientID
		appointment.Patient = *patient
	}
	if req.DoctorID != nil {
		doctor, err := u.userRepo.FindByID(u.db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		if doctor.Role.Name != entity.RoleDoctor {
			return nil, ErrDoctorRoleRequired
		}
		appointment.DoctorID = *req.DoctorID
		appointment.Doctor = *doctor
	}
	if req.StateID != nil {
		state, err := u.stateRepo.FindByID(u.db, *req.StateID)
		if err != nil {
			return nil, err
		}
		if state == nil {
			return nil, ErrStateNotFound
		}
		appointment.StateID = *req.StateID
		appointment.State = *state
	}

	if err := u.appointmentRepo.Update(u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	return u.appointmentRepo.Delete(u.db, id)
}
