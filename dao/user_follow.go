package dao

import (
	"Foodgram/models"

	"gorm.io/gorm"
)

// UserFollowDAO subject=关注人 object=作者
type UserFollowDAO struct {
	*RelationStore[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		RelationStore: NewRelationStore(db, "user_id", "author_id", func(userID, authorID uint64) *models.UserFollow {
			return &models.UserFollow{UserID: userID, AuthorID: authorID}
		}),
	}
}
