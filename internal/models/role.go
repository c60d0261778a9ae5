package models

import (
	"slices"
	"strings"
)

type Role string

const (
	RoleUser        Role = "USER"
	RoleAdmin       Role = "ADMIN"
	RoleNormalAdmin Role = "NORMAL_ADMIN"
)

// AdminRoles may run every back-office operation. Only RoleAdmin manages other admins.
var AdminRoles = []Role{RoleAdmin, RoleNormalAdmin}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleUser, RoleAdmin, RoleNormalAdmin:
		return r, true
	}
	return "", false
}

func (r Role) In(allowed ...Role) bool {
	return slices.Contains(allowed, r)
}

func (r Role) IsAdmin() bool {
	return r.In(AdminRoles...)
}

func (r Role) String() string { return string(r) }
