package service

import (
	"context"
	"strings"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	pkg_hash "github.com/Skotchmaster/phone_shop/pkg/hash"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/Skotchmaster/phone_shop/pkg/tokens"
)

const (
	passwordSpecials     = "@$!%*?&"
	PasswordRequirements = "Password must be at least 8 characters long and contain an uppercase letter, a lowercase letter, a digit and one of " + passwordSpecials
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

// ValidPassword accepts at least 8 characters drawn from letters, digits and
// @$!%*?&, with at least one of each class.
func ValidPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.Response, error) {
	u, err := s.createUser(ctx, req, models.RoleUser)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).With("svc", "auth.register").Info("user_registered", "user_id", u.ID)

	resp := transport.OK("User Successfully Added")
	resp.User = transport.ToUserDTO(u)
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.Response, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	u, err := s.Repo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Email not found")
		}
		return nil, err
	}
	if !pkg_hash.CheckPassword(u.PasswordHash, req.Password) {
		l.Warn("login_error", "status", 400, "reason", "password mismatch", "user_id", u.ID)
		return nil, invalidCredentials("Password does not match")
	}

	exp := time.Now().Add(s.TokenTTL)
	token, err := tokens.NewAccessToken(u.ID, u.Role.String(), u.Email, exp, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	resp := transport.OK("User Successfully Logged In")
	resp.Token = token
	resp.Role = u.Role.String()
	resp.ExpirationTime = exp.UTC().Format(time.RFC3339)
	return resp, nil
}

// EnsureAdmin creates the ADMIN account on first start. It does nothing when an
// admin or a user with that email already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	admins, err := s.Repo.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	taken, err := s.Repo.EmailTaken(ctx, email)
	if err != nil {
		return err
	}
	if admins > 0 || taken {
		return nil
	}

	hash, err := pkg_hash.HashPassword(password)
	if err != nil {
		return err
	}
	u := &models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  "1234567890",
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.CreateUser(ctx, u); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("admin_created", "user_id", u.ID)
	return nil
}

func (s *AuthService) CreateNormalAdmin(ctx context.Context, caller Caller, req transport.RegisterRequest) (*transport.Response, error) {
	if caller.Role != models.RoleAdmin {
		return nil, invalidCredentials("Only ADMIN can create NORMAL_ADMIN accounts")
	}
	u, err := s.createUser(ctx, req, models.RoleNormalAdmin)
	if err != nil {
		return nil, err
	}

	resp := transport.OK("Normal admin created successfully")
	resp.User = transport.ToUserDTO(u)
	return resp, nil
}

func (s *AuthService) GetAllUsers(ctx context.Context) (*transport.Response, error) {
	users, err := s.Repo.ListUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("success")
	resp.UserList = transport.ToUserDTOs(users)
	return resp, nil
}

func (s *AuthService) GetAllAdmins(ctx context.Context) (*transport.Response, error) {
	users, err := s.Repo.ListUsersByRole(ctx, models.AdminRoles...)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("success")
	resp.UserList = transport.ToUserDTOs(users)
	return resp, nil
}

// GetMyInfo returns the caller with its address and order history.
func (s *AuthService) GetMyInfo(ctx context.Context, caller Caller) (*transport.Response, error) {
	u, err := s.Repo.GetUserWithAddress(ctx, caller.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	items, err := s.Repo.ListUserOrderItems(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	dto := transport.ToUserDTO(u)
	dto.Address = transport.ToAddressDTO(u.Address)
	dto.OrderItemList = transport.ToOrderItemDTOs(items, nil)

	resp := transport.OK("success")
	resp.User = dto
	return resp, nil
}

func (s *AuthService) UpdateNormalAdmin(ctx context.Context, caller Caller, id uint, req transport.UpdateAdminRequest) (*transport.Response, error) {
	if caller.Role != models.RoleAdmin {
		return nil, invalidCredentials("Only ADMIN can update NORMAL_ADMIN accounts")
	}
	u, err := s.normalAdmin(ctx, id, "Cannot update ADMIN account")
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email != u.Email {
		taken, err := s.Repo.EmailTaken(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalidCredentials("Email already exists")
		}
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Email = email
	u.PhoneNumber = req.PhoneNumber
	if err := s.Repo.UpdateUserProfile(ctx, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, invalidCredentials("Email already exists")
		}
		return nil, err
	}

	resp := transport.OK("Normal admin updated successfully")
	resp.User = transport.ToUserDTO(u)
	return resp, nil
}

func (s *AuthService) DeleteNormalAdmin(ctx context.Context, caller Caller, id uint) (*transport.Response, error) {
	if caller.Role != models.RoleAdmin {
		return nil, invalidCredentials("Only ADMIN can delete NORMAL_ADMIN accounts")
	}
	if _, err := s.normalAdmin(ctx, id, "Cannot delete ADMIN account"); err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Admin not found")
		}
		return nil, err
	}

	logging.FromContext(ctx).With("svc", "auth.delete_normal_admin").Info("normal_admin_deleted", "user_id", id, "by", caller.UserID)
	return transport.OK("Normal admin deleted successfully"), nil
}

func (s *AuthService) ChangeNormalAdminPassword(ctx context.Context, caller Caller, id uint, oldPassword, newPassword string) (*transport.Response, error) {
	if caller.Role != models.RoleAdmin {
		return nil, invalidCredentials("Only ADMIN can change NORMAL_ADMIN passwords")
	}
	u, err := s.normalAdmin(ctx, id, "Cannot change ADMIN password")
	if err != nil {
		return nil, err
	}
	if !pkg_hash.CheckPassword(u.PasswordHash, oldPassword) {
		return nil, invalidCredentials("Old password does not match")
	}
	if !ValidPassword(newPassword) {
		return nil, invalidCredentials(PasswordRequirements)
	}

	hash, err := pkg_hash.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateUserPassword(ctx, u.ID, hash); err != nil {
		return nil, err
	}
	return transport.OK("Password changed successfully"), nil
}

// SaveAddress creates the caller's address or updates the fields present in req.
func (s *AuthService) SaveAddress(ctx context.Context, caller Caller, req transport.AddressRequest) (*transport.Response, error) {
	u, err := s.Repo.GetUserWithAddress(ctx, caller.UserID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, unauthenticated("User not found")
		}
		return nil, err
	}

	created := u.Address == nil
	addr := u.Address
	if created {
		addr = &models.Address{UserID: u.ID}
	}
	if req.Street != nil {
		addr.Street = *req.Street
	}
	if req.City != nil {
		addr.City = *req.City
	}
	if req.State != nil {
		addr.State = *req.State
	}
	if req.ZipCode != nil {
		addr.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		addr.Country = *req.Country
	}

	if err := s.Repo.SaveAddress(ctx, addr); err != nil {
		return nil, err
	}

	msg := "Address successfully updated"
	if created {
		msg = "Address successfully created"
	}
	resp := transport.OK(msg)
	resp.User = transport.ToUserDTO(u)
	resp.User.Address = transport.ToAddressDTO(addr)
	return resp, nil
}

// normalAdmin loads the NORMAL_ADMIN account id; any other role is refused with guard.
func (s *AuthService) normalAdmin(ctx context.Context, id uint, guard string) (*models.User, error) {
	u, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Admin not found")
		}
		return nil, err
	}
	if u.Role != models.RoleNormalAdmin {
		return nil, invalidCredentials(guard)
	}
	return u, nil
}

func (s *AuthService) createUser(ctx context.Context, req transport.RegisterRequest, role models.Role) (*models.User, error) {
	email := strings.TrimSpace(req.Email)
	taken, err := s.Repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalidCredentials("Email already exists")
	}
	if !ValidPassword(req.Password) {
		return nil, invalidCredentials(PasswordRequirements)
	}

	hash, err := pkg_hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, invalidCredentials("Email already exists")
		}
		return nil, err
	}
	return u, nil
}
