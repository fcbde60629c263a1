package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrcash/rewards/internal/adapter/offerwall"
	domainErrors "github.com/mrcash/rewards/internal/domain/errors"
)

// PostbackHandler receives server-to-server crediting callbacks from offer
// wall partners. The endpoint is unauthenticated; the request is trusted only
// when its signature verifies.
type PostbackHandler struct {
	facade OfferWallFacade
}

// NewPostbackHandler constructs PostbackHandler.
func NewPostbackHandler(facade OfferWallFacade) *PostbackHandler {
	return &PostbackHandler{facade: facade}
}

// Credit handles GET /api/postback/:wall.
func (h *PostbackHandler) Credit(c *gin.Context) {
	wallID := c.Param("wall")
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	txID := c.Query("tx_id")
	signature := c.Query("sig")

	if err := h.facade.CreditFromWall(c.Request.Context(), wallID, userID, amount, txID, signature); err != nil {
		switch {
		case errors.Is(err, offerwall.ErrUnknownWall), errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, offerwall.ErrBadSignature):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.String(http.StatusOK, "OK")
}
