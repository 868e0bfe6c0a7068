package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/lifecycle"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/order/model"
	"robot-rental-admin/internal/order/repository"
	"robot-rental-admin/internal/order/validator"
	"robot-rental-admin/internal/validation"
	"robot-rental-admin/pkg/utils"
)

type OrderService interface {
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)
	Search(ctx context.Context, filter *model.OrderFilterRequest) (*model.OrderListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdateOrderStatusRequest) (*model.OrderResponse, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req *model.UpdatePaymentStatusRequest) (*model.OrderResponse, error)
	BatchUpdateStatus(ctx context.Context, req *model.BatchUpdateStatusRequest) (*model.BatchStatusResult, error)
	ListLogs(ctx context.Context, orderID uuid.UUID) ([]model.OrderLog, error)
	PruneLogs(ctx context.Context, retention time.Duration) (int64, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderResponse, error) {
	if err := validation.FailIfInvalid("order", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, validation.FailIfInvalid("order", validation.Errors{"customer ID is not a valid UUID"})
	}

	var rentalStart, rentalEnd *time.Time
	if req.RentalStartDate != "" {
		t, err := validation.ParseDate(req.RentalStartDate)
		if err != nil {
			return nil, err
		}
		rentalStart = &t
	}
	if req.RentalEndDate != "" {
		t, err := validation.ParseDate(req.RentalEndDate)
		if err != nil {
			return nil, err
		}
		rentalEnd = &t
	}

	now := time.Now()
	orderID := uuid.New()

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductName: utils.SanitizeString(item.ProductName),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	order := &model.Order{
		ID:              orderID,
		OrderNumber:     req.OrderNumber,
		Type:            req.Type,
		CustomerID:      customerID,
		Status:          enums.OrderPending,
		PaymentStatus:   enums.PaymentUnpaid,
		Subtotal:        req.Subtotal,
		ShippingFee:     req.ShippingFee,
		Discount:        req.Discount,
		TotalAmount:     req.TotalAmount,
		RentalStartDate: rentalStart,
		RentalEndDate:   rentalEnd,
		DeliveryAddress: utils.SanitizeString(req.DeliveryAddress),
		ContactPhone:    utils.SanitizeString(req.ContactPhone),
		ContactEmail:    utils.SanitizeString(req.ContactEmail),
		Notes:           utils.SanitizeText(req.Notes),
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		logger.Error("failed to create order",
			zap.String("order_number", req.OrderNumber), zap.Error(err))
		return nil, err
	}

	logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("type", order.Type),
		zap.Int64("total_amount", order.TotalAmount))

	return order.ToResponse(), nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return order.ToResponse(), nil
}

func (s *orderService) Search(ctx context.Context, filter *model.OrderFilterRequest) (*model.OrderListResponse, error) {
	if err := validator.ValidateFilter(filter); err != nil {
		return nil, err
	}

	orders, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	responses := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *orders[i].ToResponse())
	}

	return &model.OrderListResponse{
		Orders:     responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// UpdateStatus moves an order through its lifecycle and writes an audit
// log entry. A same-status request succeeds without writing anything.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdateOrderStatusRequest) (*model.OrderResponse, error) {
	if err := validation.FailIfInvalid("order status", validation.TagErrors(req)); err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := lifecycle.Orders.ValidateStatusChange(string(order.Status), req.Status)
	if !result.Valid {
		return nil, validation.FailIfInvalid("order status", result.Errors)
	}

	newStatus, err := enums.OrderStatusFromCode(req.Status)
	if err != nil {
		return nil, err
	}

	if order.Status == newStatus {
		return order.ToResponse(), nil
	}

	previous := order.Status
	order.Status = newStatus
	order.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	log := &model.OrderLog{
		ID:         uuid.New(),
		OrderID:    order.ID,
		FromStatus: string(previous),
		ToStatus:   string(newStatus),
		Operator:   utils.SanitizeString(req.Operator),
		Remark:     utils.SanitizeString(req.Remark),
		CreatedAt:  time.Now(),
	}
	if err := s.repo.CreateLog(ctx, log); err != nil {
		logger.Error("failed to write order log",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}

	logger.Info("order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(newStatus)))

	return order.ToResponse(), nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req *model.UpdatePaymentStatusRequest) (*model.OrderResponse, error) {
	if err := validation.FailIfInvalid("payment status", validation.TagErrors(req)); err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := lifecycle.Payments.ValidateStatusChange(string(order.PaymentStatus), req.PaymentStatus)
	if !result.Valid {
		return nil, validation.FailIfInvalid("payment status", result.Errors)
	}

	newStatus, err := enums.PaymentStatusFromCode(req.PaymentStatus)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus == newStatus {
		return order.ToResponse(), nil
	}

	order.PaymentStatus = newStatus
	order.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order.ToResponse(), nil
}

// BatchUpdateStatus applies one status to many orders, recording per-ID
// outcomes. The batch is validated as a whole before any order is touched.
func (s *orderService) BatchUpdateStatus(ctx context.Context, req *model.BatchUpdateStatusRequest) (*model.BatchStatusResult, error) {
	if err := validation.FailIfInvalid("order batch", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validation.FailIfInvalid("order batch", validation.ValidateBatchOperation(req.IDs, "updateStatus")); err != nil {
		return nil, err
	}

	result := &model.BatchStatusResult{
		Succeeded: []string{},
		Failed:    map[string]string{},
	}

	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			result.Failed[raw] = "invalid order ID"
			continue
		}

		_, err = s.UpdateStatus(ctx, id, &model.UpdateOrderStatusRequest{
			Status:   req.Status,
			Operator: req.Operator,
		})
		if err != nil {
			result.Failed[raw] = err.Error()
			continue
		}

		result.Succeeded = append(result.Succeeded, raw)
	}

	logger.Info("order batch status update finished",
		zap.String("status", req.Status),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}

func (s *orderService) ListLogs(ctx context.Context, orderID uuid.UUID) ([]model.OrderLog, error) {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListLogs(ctx, orderID)
}

// PruneLogs deletes audit entries older than the retention window. It is
// called by the housekeeping job.
func (s *orderService) PruneLogs(ctx context.Context, retention time.Duration) (int64, error) {
	before := time.Now().Add(-retention)
	pruned, err := s.repo.PruneLogs(ctx, before)
	if err != nil {
		return 0, err
	}

	if pruned > 0 {
		logger.Info("order logs pruned",
			zap.Int64("count", pruned),
			zap.Time("before", before))
	}
	return pruned, nil
}
