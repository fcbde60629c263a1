package model

// PaymentKind distinguishes direct cash-out wallets from gift-card redemptions.
type PaymentKind string

const (
	PaymentKindWallet PaymentKind = "wallet"
	PaymentKindGift   PaymentKind = "gift"
)

// PaymentMethod is a static catalog entry describing a payout destination and
// its per-request amount bounds in points.
type PaymentMethod struct {
	ID    string
	Label string
	Min   int64
	Max   int64
	Kind  PaymentKind
}

var paymentMethods = []PaymentMethod{
	{ID: "paypal", Label: "PayPal", Min: 5000, Max: 50000, Kind: PaymentKindWallet},
	{ID: "binance", Label: "Binance (USDT)", Min: 100, Max: 10000, Kind: PaymentKindWallet},
	{ID: "faucetpay", Label: "FaucetPay", Min: 50, Max: 5000, Kind: PaymentKindWallet},
	{ID: "cwallet", Label: "C-Wallet", Min: 50, Max: 5000, Kind: PaymentKindWallet},
	{ID: "google_play", Label: "Google Play", Min: 1000, Max: 10000, Kind: PaymentKindGift},
	{ID: "itunes", Label: "iTunes Card", Min: 1000, Max: 10000, Kind: PaymentKindGift},
	{ID: "amazon", Label: "Amazon Gift", Min: 1000, Max: 10000, Kind: PaymentKindGift},
	{ID: "freefire", Label: "Free Fire Gems", Min: 1000, Max: 10000, Kind: PaymentKindGift},
	{ID: "pubg", Label: "PUBG UC", Min: 1000, Max: 10000, Kind: PaymentKindGift},
}

// PaymentMethods returns the catalog in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// PaymentMethodByID looks up a catalog entry by identifier.
func PaymentMethodByID(id string) (PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
