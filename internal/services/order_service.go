package services

import (
	"errors"
	"fmt"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/redis"
	"restaurant_panel/internal/repository"
	"restaurant_panel/pkg/notify"

	"go.uber.org/zap"
)

// ErrEmptyOrder blocks order submission with no items. No backend call is
// made in that case.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// transactionsCacheKey holds the cached finance view derived from orders.
// Order mutations invalidate it.
const transactionsCacheKey = "financas:transacoes"

type OrderService interface {
	ListOrders() ([]models.Order, error)
	Board() (*models.OrderBoard, error)
	CreateOrder(order *models.Order) error
	AdvanceOrder(id uint) (*models.Order, error)
	DeclineOrder(id uint) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	cache        *redis.Client
	notifier     *notify.Client
	logger       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, settingsRepo repository.SettingsRepository, cache *redis.Client, notifier *notify.Client, logger *zap.Logger) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *orderService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// Board partitions the active orders into the three kanban columns.
// Finished orders never appear on the board.
func (s *orderService) Board() (*models.OrderBoard, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	board := &models.OrderBoard{
		New:        []models.Order{},
		Preparing:  []models.Order{},
		Delivering: []models.Order{},
	}
	for _, order := range orders {
		switch order.Status {
		case models.OrderNew:
			board.New = append(board.New, order)
		case models.OrderPreparing:
			board.Preparing = append(board.Preparing, order)
		case models.OrderDelivering:
			board.Delivering = append(board.Delivering, order)
		}
	}
	return board, nil
}

func (s *orderService) CreateOrder(order *models.Order) error {
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}

	// The total is always recomputed from the item snapshot.
	order.Total = order.Items.Total()
	if order.Status == "" {
		order.Status = models.OrderNew
	}

	if err := s.orderRepo.Create(order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	s.invalidateTransactions()
	s.notifyNewOrder(order)
	return nil
}

// AdvanceOrder moves an order one column forward in the fixed progression.
// Advancing a finished order is a no-op.
func (s *orderService) AdvanceOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	next := order.Status.Next()
	if next == order.Status {
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(id, next); err != nil {
		return nil, fmt.Errorf("failed to advance order: %w", err)
	}

	order.Status = next
	s.invalidateTransactions()
	return order, nil
}

func (s *orderService) DeclineOrder(id uint) error {
	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateTransactions()
	return nil
}

func (s *orderService) invalidateTransactions() {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteCached(transactionsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate transaction cache", zap.Error(err))
	}
}

// notifyNewOrder sends the store a WhatsApp alert when the messaging
// integration is enabled in the settings. Delivery failures are logged,
// never surfaced: the order has already been persisted.
func (s *orderService) notifyNewOrder(order *models.Order) {
	if s.notifier == nil || s.settingsRepo == nil {
		return
	}

	settings, err := s.settingsRepo.Get()
	if err != nil || !settings.MessagingEnabled || settings.StorePhone == "" {
		return
	}

	message := fmt.Sprintf("Novo pedido #%d - %s - Total R$ %.2f (%s)",
		order.ID, order.CustomerName, order.Total, order.PaymentMethod)
	if _, err := s.notifier.SendMessage(settings.StorePhone, message); err != nil {
		s.logger.Warn("failed to send new order notification",
			zap.Uint("order_id", order.ID),
			zap.Error(err))
	}
}
