package service

import "github.com/Skotchmaster/phone_shop/internal/models"

// Caller is the authenticated identity a request runs as.
type Caller struct {
	UserID uint
	Role   models.Role
}

func (c Caller) Authenticated() bool {
	return c.UserID != 0 && c.Role != ""
}
