package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Str0ng!Pass"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{Repo: newTestRepo(t), JWTSecret: []byte("test-jwt-secret"), TokenTTL: time.Hour}
}

func TestValidPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		want     bool
	}{
		{"Str0ng!Pass", true},
		{"Aa1@aaaa", true},
		{"Aa1@aaa", false},
		{"alllower1!", false},
		{"ALLUPPER1!", false},
		{"NoDigits!!", false},
		{"NoSpecial11", false},
		{"Has Space1!", false},
		{"Ünïcode1!a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)

	resp, err := svc.Register(ctx, transport.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: strongPassword, PhoneNumber: "555"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	require.NotNil(t, resp.User)
	assert.Equal(t, "USER", resp.User.Role)

	_, err = svc.Register(ctx, transport.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: strongPassword})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Email already exists")

	_, err = svc.Register(ctx, transport.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "weak"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, PasswordRequirements)

	login, err := svc.Login(ctx, transport.LoginRequest{Email: "ann@example.com", Password: strongPassword})
	require.NoError(t, err)
	assert.Equal(t, "USER", login.Role)
	assert.NotEmpty(t, login.ExpirationTime)

	claims, err := tokens.AccessClaimsFromToken(login.Token, svc.JWTSecret)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id)
	assert.Equal(t, "USER", claims.Role)

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "ann@example.com", Password: "Wr0ng!Pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Password does not match")

	_, err = svc.Login(ctx, transport.LoginRequest{Email: "nobody@example.com", Password: strongPassword})
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Email not found")
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.EnsureAdmin(ctx, "root@example.com", strongPassword))
	require.NoError(t, svc.EnsureAdmin(ctx, "root@example.com", strongPassword))
	require.NoError(t, svc.EnsureAdmin(ctx, "other@example.com", strongPassword))

	n, err := svc.Repo.CountUsersByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	login, err := svc.Login(ctx, transport.LoginRequest{Email: "root@example.com", Password: strongPassword})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", login.Role)
}

func TestCreateNormalAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)
	admin := seedUser(t, svc.Repo, models.RoleAdmin)
	normal := seedUser(t, svc.Repo, models.RoleNormalAdmin)

	req := transport.RegisterRequest{Name: "Ops", Email: "ops@example.com", Password: strongPassword}

	_, err := svc.CreateNormalAdmin(ctx, callerOf(normal), req)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Only ADMIN can create NORMAL_ADMIN accounts")

	resp, err := svc.CreateNormalAdmin(ctx, callerOf(admin), req)
	require.NoError(t, err)
	assert.Equal(t, "NORMAL_ADMIN", resp.User.Role)

	_, err = svc.CreateNormalAdmin(ctx, callerOf(admin), req)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserListings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)
	u1 := seedUser(t, svc.Repo, models.RoleUser)
	u2 := seedUser(t, svc.Repo, models.RoleUser)
	admin := seedUser(t, svc.Repo, models.RoleAdmin)
	normal := seedUser(t, svc.Repo, models.RoleNormalAdmin)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{u1.ID, u2.ID}, userIDs(users.UserList))

	admins, err := svc.GetAllAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{admin.ID, normal.ID}, userIDs(admins.UserList))

	me, err := svc.GetMyInfo(ctx, callerOf(u2))
	require.NoError(t, err)
	assert.Equal(t, u2.Email, me.User.Email)

	_, err = svc.GetMyInfo(ctx, Caller{UserID: 4242, Role: models.RoleUser})
	require.ErrorIs(t, err, ErrNotFound)
}

func userIDs(us []transport.UserDTO) []uint {
	out := make([]uint, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}

func TestManageNormalAdmins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)
	admin := seedUser(t, svc.Repo, models.RoleAdmin)
	taken := seedUser(t, svc.Repo, models.RoleUser)

	created, err := svc.CreateNormalAdmin(ctx, callerOf(admin), transport.RegisterRequest{Name: "Ops", Email: "ops@example.com", Password: strongPassword})
	require.NoError(t, err)
	opsID := created.User.ID
	ops := Caller{UserID: opsID, Role: models.RoleNormalAdmin}

	update := transport.UpdateAdminRequest{Name: "Ops Lead", Email: "lead@example.com", PhoneNumber: "555"}

	_, err = svc.UpdateNormalAdmin(ctx, ops, opsID, update)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Only ADMIN can update NORMAL_ADMIN accounts")

	_, err = svc.UpdateNormalAdmin(ctx, callerOf(admin), admin.ID, update)
	assert.EqualError(t, err, "Cannot update ADMIN account")

	_, err = svc.UpdateNormalAdmin(ctx, callerOf(admin), 4242, update)
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Admin not found")

	_, err = svc.UpdateNormalAdmin(ctx, callerOf(admin), opsID, transport.UpdateAdminRequest{Name: "x", Email: taken.Email})
	assert.EqualError(t, err, "Email already exists")

	resp, err := svc.UpdateNormalAdmin(ctx, callerOf(admin), opsID, update)
	require.NoError(t, err)
	assert.Equal(t, "Normal admin updated successfully", resp.Message)
	stored, err := svc.Repo.GetUserByID(ctx, opsID)
	require.NoError(t, err)
	assert.Equal(t, "Ops Lead", stored.Name)
	assert.Equal(t, "lead@example.com", stored.Email)
	assert.Equal(t, "555", stored.PhoneNumber)

	_, err = svc.ChangeNormalAdminPassword(ctx, callerOf(admin), opsID, "Wr0ng!Pass", "N3w!Passw0rd")
	assert.EqualError(t, err, "Old password does not match")
	_, err = svc.ChangeNormalAdminPassword(ctx, callerOf(admin), opsID, strongPassword, "weak")
	assert.EqualError(t, err, PasswordRequirements)
	_, err = svc.ChangeNormalAdminPassword(ctx, callerOf(admin), admin.ID, strongPassword, "N3w!Passw0rd")
	assert.EqualError(t, err, "Cannot change ADMIN password")

	resp, err = svc.ChangeNormalAdminPassword(ctx, callerOf(admin), opsID, strongPassword, "N3w!Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "Password changed successfully", resp.Message)
	_, err = svc.Login(ctx, transport.LoginRequest{Email: "lead@example.com", Password: "N3w!Passw0rd"})
	require.NoError(t, err)

	_, err = svc.DeleteNormalAdmin(ctx, ops, opsID)
	assert.EqualError(t, err, "Only ADMIN can delete NORMAL_ADMIN accounts")
	_, err = svc.DeleteNormalAdmin(ctx, callerOf(admin), admin.ID)
	assert.EqualError(t, err, "Cannot delete ADMIN account")

	resp, err = svc.DeleteNormalAdmin(ctx, callerOf(admin), opsID)
	require.NoError(t, err)
	assert.Equal(t, "Normal admin deleted successfully", resp.Message)
	_, err = svc.DeleteNormalAdmin(ctx, callerOf(admin), opsID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAddress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)
	u := seedUser(t, svc.Repo, models.RoleUser)

	resp, err := svc.SaveAddress(ctx, callerOf(u), transport.AddressRequest{
		Street:  ptr("1 Main St"),
		City:    ptr("Springfield"),
		Country: ptr("US"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Address successfully created", resp.Message)

	resp, err = svc.SaveAddress(ctx, callerOf(u), transport.AddressRequest{ZipCode: ptr("12345")})
	require.NoError(t, err)
	assert.Equal(t, "Address successfully updated", resp.Message)

	var n int64
	require.NoError(t, svc.Repo.DB.Model(&models.Address{}).Where("user_id = ?", u.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	me, err := svc.GetMyInfo(ctx, callerOf(u))
	require.NoError(t, err)
	require.NotNil(t, me.User.Address)
	assert.Equal(t, "1 Main St", me.User.Address.Street)
	assert.Equal(t, "Springfield", me.User.Address.City)
	assert.Equal(t, "12345", me.User.Address.ZipCode)
	assert.Equal(t, "US", me.User.Address.Country)

	_, err = svc.SaveAddress(ctx, Caller{UserID: 4242, Role: models.RoleUser}, transport.AddressRequest{City: ptr("x")})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGetMyInfo_IncludesOrderHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)
	u := seedUser(t, svc.Repo, models.RoleUser)
	other := seedUser(t, svc.Repo, models.RoleUser)
	phone := seedProduct(t, svc.Repo, "Pixel", "150")

	mine := seedOrder(t, svc.Repo, u, models.OrderStatusPending, baseTime, itemSeed{phone, 1}, itemSeed{phone, 2})
	seedOrder(t, svc.Repo, other, models.OrderStatusPending, baseTime, itemSeed{phone, 1})

	me, err := svc.GetMyInfo(ctx, callerOf(u))
	require.NoError(t, err)
	assert.Nil(t, me.User.Address)
	require.Len(t, me.User.OrderItemList, 2)
	for _, it := range me.User.OrderItemList {
		require.NotNil(t, it.Order)
		assert.Equal(t, mine.ID, it.Order.ID)
	}
}
