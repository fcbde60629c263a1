package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/server/http/dto"
)

// BalanceHandler manages balance and withdrawal endpoints.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/user/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	userID := CurrentUserID(c)
	balance, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance, CashValue: model.CashValue(balance)})
}

// Stream handles GET /api/user/balance/stream as server-sent events. Each
// observed balance change is sent as a "balance" event; when the change
// carries an earning delta an additional "credited" event follows.
func (h *BalanceHandler) Stream(c *gin.Context) {
	userID := CurrentUserID(c)
	updates := h.facade.WatchBalance(c.Request.Context(), userID)

	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		update, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("balance", dto.BalanceEvent{
			Balance:   update.Balance,
			CashValue: model.CashValue(update.Balance),
			Delta:     update.Delta,
		})
		if update.Delta > 0 {
			c.SSEvent("credited", dto.BalanceEvent{
				Balance:   update.Balance,
				CashValue: model.CashValue(update.Balance),
				Delta:     update.Delta,
			})
		}
		return true
	})
}

// Withdraw handles POST /api/user/balance/withdraw.
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.Withdraw(c.Request.Context(), userID, req.Method, req.AccountDetails, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownPaymentMethod),
			errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrAmountBelowMinimum),
			errors.Is(err, domainErrors.ErrAmountAboveMaximum),
			errors.Is(err, domainErrors.ErrAccountDetailsTooShort):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, withdrawalResponse(*created))
}

// Withdrawals handles GET /api/user/withdrawals.
func (h *BalanceHandler) Withdrawals(c *gin.Context) {
	userID := CurrentUserID(c)
	withdrawals, err := h.facade.Withdrawals(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(withdrawals) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		resp = append(resp, withdrawalResponse(w))
	}
	c.JSON(http.StatusOK, resp)
}

func withdrawalResponse(w model.WithdrawalRequest) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		ID:             w.ID,
		Method:         w.PaymentMethod,
		AccountDetails: w.AccountDetails,
		Amount:         w.Amount,
		CashValue:      model.CashValue(w.Amount),
		Status:         string(w.Status),
		CreatedAt:      w.CreatedAt,
	}
}
