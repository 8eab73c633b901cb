package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/store"
)

const dateLayout = "2006-01-02"

type TransactionHandler struct {
	txs *store.TransactionStore
}

func NewTransactionHandler(txs *store.TransactionStore) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// List godoc
// @Summary List the user's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "income, expense or investment"
// @Param from_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {array} model.Transaction
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	txType := c.Query("type")
	if txType != "" && !model.ValidTransactionType(txType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction type"})
		return
	}

	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}

	items := h.txs.List(GetIdentity(c).ID, store.Filter{Type: txType, From: from, To: to})
	c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TransactionCreateRequest true "Transaction fields"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req model.TransactionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	txDate, err := time.Parse(dateLayout, req.TxDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tx_date"})
		return
	}

	tx := h.txs.Add(GetIdentity(c).ID, req.Type, req.Amount, req.Category, txDate, req.Note)
	c.JSON(http.StatusOK, tx)
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction id"
// @Success 200 {object} model.OKResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	if !h.txs.Delete(GetIdentity(c).ID, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	c.JSON(http.StatusOK, model.OKResponse{OK: true, Message: "Transaction deleted"})
}

func dateQuery(c *gin.Context, name string) (*time.Time, bool) {
	val := c.Query(name)
	if val == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, val)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &parsed, true
}
