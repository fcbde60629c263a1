package model

import "time"

// Account represents a registered rewards user together with the points balance.
// Balance is a non-negative integer number of points; 100 points equal one
// currency unit for display purposes.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	DisplayName  string
	PhotoURL     string
	Balance      int64
	CreatedAt    time.Time
}
