package handlers

import (
	"net/http"
	"restaurant_panel/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FinanceHandler struct {
	financeService services.FinanceService
	logger         *zap.Logger
}

func NewFinanceHandler(financeService services.FinanceService, logger *zap.Logger) *FinanceHandler {
	return &FinanceHandler{financeService: financeService, logger: logger}
}

// GET /api/financas/transacoes?data=YYYY-MM-DD&pagamento=PIX
// Filters always apply to the full unfiltered set, so changing them is
// idempotent and non-destructive.
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.financeService.Transactions()
	if err != nil {
		h.logger.Error("failed to load transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}

	filtered := h.financeService.Filter(transactions, c.Query("data"), c.Query("pagamento"))
	c.JSON(http.StatusOK, gin.H{
		"transacoes": filtered,
		"resumo":     h.financeService.Summarize(filtered),
	})
}

// GET /api/financas/relatorio?data=YYYY-MM-DD&pagamento=PIX
// Serves the delimited text export as a file download.
func (h *FinanceHandler) ExportReport(c *gin.Context) {
	transactions, err := h.financeService.Transactions()
	if err != nil {
		h.logger.Error("failed to load transactions for report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export report"})
		return
	}

	filtered := h.financeService.Filter(transactions, c.Query("data"), c.Query("pagamento"))
	report := h.financeService.Report(filtered)

	c.Header("Content-Disposition", `attachment; filename="relatorio-financas.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", report)
}
