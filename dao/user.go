package dao

import (
	"Foodgram/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// Insert 唯一键冲突返回 bizerr.ErrDuplicateRelation
func (u *Users) Insert(ctx context.Context, user *models.Users) error {
	err := u.Conn(ctx).Create(user).Error
	if isDupKeyErr(err) {
		return duplicateErr(err)
	}
	return err
}

// List 按用户名排序分页
func (u *Users) List(ctx context.Context, limit, offset int) ([]*models.Users, int64, error) {
	var total int64
	if err := u.Conn(ctx).Model(&models.Users{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	users := make([]*models.Users, 0)
	err := u.Conn(ctx).Order("username ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// ListByIds 按 ids 顺序返回，不存在的跳过
func (u *Users) ListByIds(ctx context.Context, ids []uint64) ([]*models.Users, error) {
	users, err := u.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*models.Users, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	ordered := make([]*models.Users, 0, len(users))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			ordered = append(ordered, user)
		}
	}
	return ordered, nil
}

func (u *Users) UpdatePassword(ctx context.Context, userID uint64, hashed string) error {
	err := u.Conn(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
	if err != nil {
		return fmt.Errorf("dao.User.UpdatePassword error: %w", err)
	}
	return nil
}
