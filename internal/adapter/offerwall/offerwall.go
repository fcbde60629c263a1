package offerwall

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ErrUnknownWall indicates the partner identifier is not in the catalog.
var ErrUnknownWall = errors.New("unknown offer wall")

// ErrBadSignature indicates a postback signature mismatch.
var ErrBadSignature = errors.New("invalid postback signature")

const userPlaceholder = "{uid}"

// Wall describes one offer-wall partner; the URL template embeds the user
// identifier where the partner expects it.
type Wall struct {
	ID          string
	Name        string
	Description string
	Tag         string
	Template    string
}

// UserWall is a catalog entry resolved for a specific user.
type UserWall struct {
	ID          string
	Name        string
	Description string
	Tag         string
	URL         string
}

var walls = []Wall{
	{
		ID:          "adlexy",
		Name:        "Adlexy",
		Description: "Complete surveys, watch videos, and install apps to earn points.",
		Tag:         "Popular",
		Template:    "https://adlexy.com/offerwall/h7mx23bis2zaib6apwwe73uv3gr92i/" + userPlaceholder,
	},
	{
		ID:          "taskwall",
		Name:        "TaskWall",
		Description: "High-paying tasks and offers from top advertisers.",
		Tag:         "High Pay",
		Template:    "https://wall.taskwall.io/?app_id=e723adebdbab293255deefe5fe401b43&userid=" + userPlaceholder,
	},
	{
		ID:          "bagirawall",
		Name:        "BagiraWall",
		Description: "Wide variety of offers with fast crediting system.",
		Tag:         "Fast Credit",
		Template:    "https://bagirawall.com/offerwall/7/" + userPlaceholder,
	},
	{
		ID:          "offery",
		Name:        "Offery",
		Description: "Premium offers with high conversion rates and bonuses.",
		Tag:         "Bonus",
		Template:    "https://offery.xyz/offerwall/?app_key=YOUR_APP_KEY&subId=" + userPlaceholder,
	},
	{
		ID:          "gemiad",
		Name:        "Gemiad",
		Description: "Global offers available in multiple regions and languages.",
		Tag:         "Global",
		Template:    "https://wall.gemiad.com/view/6977536ec6ceefce12a28330?userid=" + userPlaceholder,
	},
}

// Service resolves partner catalog entries and authenticates crediting
// postbacks with a shared secret.
type Service struct {
	secret []byte
	logger *slog.Logger
}

// NewService constructs the offer-wall service.
func NewService(secret string, logger *slog.Logger) *Service {
	return &Service{secret: []byte(secret), logger: logger}
}

// Walls returns the catalog resolved for one user.
func (s *Service) Walls(userID int64) []UserWall {
	uid := strconv.FormatInt(userID, 10)
	out := make([]UserWall, 0, len(walls))
	for _, w := range walls {
		out = append(out, UserWall{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
			Tag:         w.Tag,
			URL:         strings.ReplaceAll(w.Template, userPlaceholder, uid),
		})
	}
	return out
}

// WallURL resolves one partner URL for the user.
func (s *Service) WallURL(wallID string, userID int64) (string, error) {
	for _, w := range walls {
		if w.ID == wallID {
			return strings.ReplaceAll(w.Template, userPlaceholder, strconv.FormatInt(userID, 10)), nil
		}
	}
	return "", ErrUnknownWall
}

// VerifyPostback checks the HMAC-SHA256 signature a partner attaches to its
// server-to-server crediting callback.
func (s *Service) VerifyPostback(wallID string, userID int64, amount int64, txID, signature string) error {
	known := false
	for _, w := range walls {
		if w.ID == wallID {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownWall
	}

	expected := s.Sign(wallID, userID, amount, txID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		if s.logger != nil {
			s.logger.Warn("rejected offer wall postback",
				slog.String("wall", wallID),
				slog.Int64("user_id", userID),
			)
		}
		return ErrBadSignature
	}
	return nil
}

// Sign computes the signature a valid postback must carry.
func (s *Service) Sign(wallID string, userID int64, amount int64, txID string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d:%d:%s", wallID, userID, amount, txID)
	return hex.EncodeToString(mac.Sum(nil))
}
