package guests

import (
	"context"
	"errors"
	"fmt"

	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

// Service сервис для работы с карточками постояльцев
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса постояльцев
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// Create регистрирует нового постояльца
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Create: registering guest document=%s", req.Document)

	if !req.Validate() {
		s.logger.Warn("Create: invalid guest payload document=%s", req.Document)
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}

	guest, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid dates for guest document=%s: %v", req.Document, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.guestRepo.Create(ctx, guest)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered guest id=%d", created.ID)
	return models.FromDomainGuest(created), nil
}

// GetByID получает постояльца по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuestResponse, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest id=%d not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetByID: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}

// List получает список всех постояльцев
func (s *Service) List(ctx context.Context) (*models.GuestListResponse, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d guests", len(guests))
	return models.FromDomainGuestList(guests), nil
}

// Update частично обновляет карточку постояльца
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Update: updating guest id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update payload for guest id=%d", id)
		return nil, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}

	upd, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid dates for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	guest, err := s.guestRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Update: guest id=%d not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("Update: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated guest id=%d", id)
	return models.FromDomainGuest(guest), nil
}

// Delete удаляет карточку постояльца
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting guest id=%d", id)

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Delete: guest id=%d not found", id)
			return ErrGuestNotFound
		}
		s.logger.Error("Delete: repository error for guest id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted guest id=%d", id)
	return nil
}
