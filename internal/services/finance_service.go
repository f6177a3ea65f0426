package services

import (
	"fmt"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/redis"
	"restaurant_panel/internal/repository"
	"strings"
	"time"

	"go.uber.org/zap"
)

// reportHeader is the fixed two-line header of the exported report.
const reportHeader = "Relatório de Transações\n\nData,Valor,Pagamento,Status\n"

type FinanceService interface {
	Transactions() ([]models.Transaction, error)
	Filter(transactions []models.Transaction, date, payment string) []models.Transaction
	Summarize(transactions []models.Transaction) models.TransactionSummary
	Report(transactions []models.Transaction) []byte
}

type financeService struct {
	orderRepo repository.OrderRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewFinanceService(orderRepo repository.OrderRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) FinanceService {
	return &financeService{
		orderRepo: orderRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Transactions flattens all orders into the finance view, newest-first.
// The unfiltered set is cached; order mutations invalidate it.
func (s *financeService) Transactions() ([]models.Transaction, error) {
	if s.cache != nil {
		var cached []models.Transaction
		if err := s.cache.GetCached(transactionsCacheKey, &cached); err == nil {
			return cached, nil
		} else if err != redis.ErrNotFound {
			s.logger.Warn("failed to read transaction cache", zap.Error(err))
		}
	}

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(orders))
	for _, order := range orders {
		transactions = append(transactions, models.Transaction{
			ID:      order.ID,
			Value:   order.Total,
			Payment: order.PaymentMethod,
			Status:  order.Status,
			Date:    order.CreatedAt.Format("2006-01-02"),
		})
	}

	if s.cache != nil {
		if err := s.cache.SetCached(transactionsCacheKey, transactions, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache transactions", zap.Error(err))
		}
	}
	return transactions, nil
}

// Filter returns the subset matching the exact-match date and payment
// filters. An empty filter passes all rows. The input slice is never
// mutated, so filtering stays idempotent over the original set.
func (s *financeService) Filter(transactions []models.Transaction, date, payment string) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if date != "" && tx.Date != date {
			continue
		}
		if payment != "" && tx.Payment != payment {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func (s *financeService) Summarize(transactions []models.Transaction) models.TransactionSummary {
	summary := models.TransactionSummary{OrderCount: len(transactions)}
	for _, tx := range transactions {
		summary.TotalSales += tx.Value
	}
	if summary.OrderCount > 0 {
		summary.AverageTicket = summary.TotalSales / float64(summary.OrderCount)
	}
	return summary
}

// Report serializes the given set as the delimited text export, one
// DD/MM/YYYY,R$ X.XX,payment,status line per transaction.
func (s *financeService) Report(transactions []models.Transaction) []byte {
	var b strings.Builder
	b.WriteString(reportHeader)
	lines := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		lines = append(lines, fmt.Sprintf("%s,R$ %.2f,%s,%s",
			formatReportDate(tx.Date), tx.Value, tx.Payment, tx.Status))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return []byte(b.String())
}

// formatReportDate rewrites YYYY-MM-DD as DD/MM/YYYY.
func formatReportDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "N/A"
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
