package repo

import (
	"context"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepo) ListUsersByRole(ctx context.Context, roles ...models.Role) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Where("role IN ?", roles).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) CountUsersByRole(ctx context.Context, role models.Role) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// GetUserWithAddress loads a user and its address, if any.
func (r *GormRepo) GetUserWithAddress(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Preload("Address").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUserProfile writes name, email and phone number of u.
func (r *GormRepo) UpdateUserProfile(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).
		Model(&models.User{ID: u.ID}).
		Select("name", "email", "phone_number").
		Updates(u).Error
}

func (r *GormRepo) UpdateUserPassword(ctx context.Context, id uint, hash string) error {
	return r.DB.WithContext(ctx).
		Model(&models.User{ID: id}).
		Update("password_hash", hash).Error
}

// DeleteUser removes the user together with its address.
func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		if err := tx.DB.Where("user_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		res := tx.DB.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) SaveAddress(ctx context.Context, a *models.Address) error {
	return r.DB.WithContext(ctx).Save(a).Error
}
