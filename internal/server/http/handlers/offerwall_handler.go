package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrcash/rewards/internal/domain/model"
	"github.com/mrcash/rewards/internal/server/http/dto"
)

// OfferWallHandler exposes the earning catalogs.
type OfferWallHandler struct {
	facade OfferWallFacade
}

// NewOfferWallHandler constructs OfferWallHandler.
func NewOfferWallHandler(facade OfferWallFacade) *OfferWallHandler {
	return &OfferWallHandler{facade: facade}
}

// Walls handles GET /api/user/offerwalls.
func (h *OfferWallHandler) Walls(c *gin.Context) {
	userID := CurrentUserID(c)
	walls := h.facade.OfferWalls(userID)

	resp := make([]dto.OfferWallResponse, 0, len(walls))
	for _, w := range walls {
		resp = append(resp, dto.OfferWallResponse{ID: w.ID, Name: w.Name, URL: w.URL})
	}
	c.JSON(http.StatusOK, resp)
}

// PaymentMethods handles GET /api/user/payment-methods.
func (h *OfferWallHandler) PaymentMethods(c *gin.Context) {
	methods := model.PaymentMethods()
	resp := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		resp = append(resp, dto.PaymentMethodResponse{
			ID:    m.ID,
			Label: m.Label,
			Kind:  string(m.Kind),
			Min:   m.Min,
			Max:   m.Max,
		})
	}
	c.JSON(http.StatusOK, resp)
}
