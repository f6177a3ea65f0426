package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"restaurant_panel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactionsHandler(t *testing.T) {
	router, _ := setupTestRouter(t)
	cookies := login(t, router)

	recorder := authedRequest(t, router, cookies, http.MethodPost, "/api/pedidos", createOrderPayload())
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = authedRequest(t, router, cookies, http.MethodGet, "/api/financas/transacoes", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Transactions []models.Transaction      `json:"transacoes"`
		Summary      models.TransactionSummary `json:"resumo"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, 25.0, body.Transactions[0].Value)
	assert.Equal(t, "PIX", body.Transactions[0].Payment)
	assert.Equal(t, 25.0, body.Summary.TotalSales)
	assert.Equal(t, 1, body.Summary.OrderCount)
}

func TestListTransactionsPaymentFilter(t *testing.T) {
	router, _ := setupTestRouter(t)
	cookies := login(t, router)

	recorder := authedRequest(t, router, cookies, http.MethodPost, "/api/pedidos", createOrderPayload())
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = authedRequest(t, router, cookies, http.MethodGet, "/api/financas/transacoes?pagamento=Cartao", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Transactions []models.Transaction      `json:"transacoes"`
		Summary      models.TransactionSummary `json:"resumo"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body.Transactions)
	assert.Zero(t, body.Summary.AverageTicket)
}

func TestExportReportHandler(t *testing.T) {
	router, _ := setupTestRouter(t)
	cookies := login(t, router)

	recorder := authedRequest(t, router, cookies, http.MethodPost, "/api/pedidos", createOrderPayload())
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = authedRequest(t, router, cookies, http.MethodGet, "/api/financas/relatorio", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, `attachment; filename="relatorio-financas.txt"`, recorder.Header().Get("Content-Disposition"))
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/plain")

	report := recorder.Body.String()
	assert.True(t, strings.HasPrefix(report, "Relatório de Transações\n"))
	assert.Contains(t, report, "Data,Valor,Pagamento,Status")
	assert.Contains(t, report, "R$ 25.00,PIX,Novo")
}
