package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"robot-rental-admin/internal/customer/model"
	"robot-rental-admin/internal/customer/repository"
	"robot-rental-admin/internal/customer/validator"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/validation"
	"robot-rental-admin/pkg/utils"
)

type CustomerService interface {
	Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCustomerRequest) (*model.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter *model.CustomerFilterRequest) (*model.CustomerListResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.CustomerResponse, error) {
	if err := validation.FailIfInvalid("customer", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	customerType, err := enums.CustomerTypeFromCode(req.Type)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &model.Customer{
		ID:           uuid.New(),
		Name:         utils.SanitizeString(req.Name),
		Type:         customerType,
		ContactPhone: utils.SanitizeString(req.ContactPhone),
		ContactEmail: utils.SanitizeString(req.ContactEmail),
		Address:      utils.SanitizeString(req.Address),
		Notes:        utils.SanitizeText(req.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		logger.Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	logger.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("type", string(customer.Type)))

	return customer.ToResponse(), nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*model.CustomerResponse, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customer.ToResponse(), nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCustomerRequest) (*model.CustomerResponse, error) {
	if err := validation.FailIfInvalid("customer", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateUpdate(req); err != nil {
		return nil, err
	}

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = utils.SanitizeString(*req.Name)
	}
	if req.Type != nil {
		customerType, err := enums.CustomerTypeFromCode(*req.Type)
		if err != nil {
			return nil, err
		}
		customer.Type = customerType
	}
	if req.ContactPhone != nil {
		customer.ContactPhone = utils.SanitizeString(*req.ContactPhone)
	}
	if req.ContactEmail != nil {
		customer.ContactEmail = utils.SanitizeString(*req.ContactEmail)
	}
	if req.Address != nil {
		customer.Address = utils.SanitizeString(*req.Address)
	}
	if req.Notes != nil {
		customer.Notes = utils.SanitizeText(*req.Notes)
	}
	customer.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, customer); err != nil {
		logger.Error("failed to update customer",
			zap.String("customer_id", id.String()), zap.Error(err))
		return nil, err
	}

	return customer.ToResponse(), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}

func (s *customerService) Search(ctx context.Context, filter *model.CustomerFilterRequest) (*model.CustomerListResponse, error) {
	if err := validator.ValidateFilter(filter); err != nil {
		return nil, err
	}

	customers, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	responses := make([]model.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *customers[i].ToResponse())
	}

	return &model.CustomerListResponse{
		Customers:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}
