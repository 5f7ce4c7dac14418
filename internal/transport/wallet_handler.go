// Package transport exposes the wallet HTTP API.
package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/adawallet/walletcore-backend/internal/wallet/assembly"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
	"github.com/adawallet/walletcore-backend/internal/wallet/selection"
)

// TransactionsService is the façade the handlers delegate to.
type TransactionsService interface {
	GetTransactionFee(ctx context.Context, req assembly.GetTransactionFeeRequest) (*assembly.GetTransactionFeeResponse, error)
	CreateTransaction(ctx context.Context, req assembly.CreateTransactionRequest) (*model.Transaction, error)
	CreateExternalTransaction(ctx context.Context, req assembly.CreateExternalTransactionRequest) (*assembly.CreateExternalTransactionResponse, error)
	GetTransactions(ctx context.Context, req assembly.GetTransactionsRequest) (*assembly.GetTransactionsResponse, error)
	GetWithdrawals(ctx context.Context, req assembly.GetWithdrawalsRequest) (*assembly.GetWithdrawalsResponse, error)
	DeleteTransaction(ctx context.Context, req assembly.DeleteTransactionRequest) error
	CoinSelections(ctx context.Context, req assembly.CoinSelectionsRequest) (*assembly.CoinSelectionsResponse, error)
}

// WalletHandler serves the wallet transaction routes.
type WalletHandler struct {
	svc    TransactionsService
	logger *zap.Logger
}

// NewRouter builds the gin engine with all wallet routes registered.
func NewRouter(svc TransactionsService, logger *zap.Logger) (*gin.Engine, error) {
	if svc == nil {
		return nil, errors.New("transactions service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &WalletHandler{svc: svc, logger: logger.Named("transport")}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/v1")
	api.POST("/wallets/:walletId/transactions", h.CreateTransaction)
	api.GET("/wallets/:walletId/transactions", h.GetTransactions)
	api.DELETE("/wallets/:walletId/transactions/:id", h.DeleteTransaction)
	api.POST("/wallets/:walletId/payment-fees", h.GetTransactionFee)
	api.POST("/wallets/:walletId/coin-selections", h.CoinSelections)
	api.GET("/wallets/:walletId/withdrawals", h.GetWithdrawals)
	api.POST("/external-transactions", h.CreateExternalTransaction)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}

// CreateTransaction handles POST /v1/wallets/:walletId/transactions.
func (h *WalletHandler) CreateTransaction(c *gin.Context) {
	var req assembly.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.WalletID = c.Param("walletId")

	tx, err := h.svc.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// GetTransactions handles GET /v1/wallets/:walletId/transactions.
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	req := assembly.GetTransactionsRequest{
		WalletID: c.Param("walletId"),
		Order:    assembly.SortOrder(c.Query("order")),
	}

	fromDate, ok := h.queryTime(c, "fromDate")
	if !ok {
		return
	}
	toDate, ok := h.queryTime(c, "toDate")
	if !ok {
		return
	}
	req.FromDate = fromDate
	req.ToDate = toDate

	resp, err := h.svc.GetTransactions(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteTransaction handles DELETE /v1/wallets/:walletId/transactions/:id.
func (h *WalletHandler) DeleteTransaction(c *gin.Context) {
	err := h.svc.DeleteTransaction(c.Request.Context(), assembly.DeleteTransactionRequest{
		WalletID:      c.Param("walletId"),
		TransactionID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTransactionFee handles POST /v1/wallets/:walletId/payment-fees.
func (h *WalletHandler) GetTransactionFee(c *gin.Context) {
	var req assembly.GetTransactionFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.WalletID = c.Param("walletId")

	resp, err := h.svc.GetTransactionFee(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CoinSelections handles POST /v1/wallets/:walletId/coin-selections.
func (h *WalletHandler) CoinSelections(c *gin.Context) {
	var req assembly.CoinSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.WalletID = c.Param("walletId")

	resp, err := h.svc.CoinSelections(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetWithdrawals handles GET /v1/wallets/:walletId/withdrawals.
func (h *WalletHandler) GetWithdrawals(c *gin.Context) {
	resp, err := h.svc.GetWithdrawals(c.Request.Context(), assembly.GetWithdrawalsRequest{
		WalletID: c.Param("walletId"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateExternalTransaction handles POST /v1/external-transactions.
func (h *WalletHandler) CreateExternalTransaction(c *gin.Context) {
	var req assembly.CreateExternalTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.svc.CreateExternalTransaction(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

func (h *WalletHandler) queryTime(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be RFC3339"})
		return nil, false
	}
	return &parsed, true
}

// respondError maps domain errors onto HTTP statuses: invalid requests to
// 400, unknown transactions to 404, unaffordable requests to 403 and
// anything else, including balance invariant violations, to 500.
func (h *WalletHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, selection.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, selection.ErrInputsExhausted), errors.Is(err, model.ErrInsufficientAssets):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient balance"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
