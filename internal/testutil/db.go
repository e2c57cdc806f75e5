// Package testutil 测试用的数据库与数据构造工具
package testutil

import (
	"Foodgram/models"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试独立的 sqlite 文件库，已完成建表，测试结束自动关闭
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "foodgram.db") + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Fixture 直接写库构造测试数据
type Fixture struct {
	t  *testing.T
	db *gorm.DB
	n  int
}

func NewFixture(t *testing.T, db *gorm.DB) *Fixture {
	return &Fixture{t: t, db: db}
}

func (f *Fixture) create(v any) {
	f.t.Helper()
	if err := f.db.Create(v).Error; err != nil {
		f.t.Fatalf("create %T: %v", v, err)
	}
}

func (f *Fixture) User(username string) *models.Users {
	f.t.Helper()
	u := &models.Users{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Password:  "x",
	}
	f.create(u)
	return u
}

func (f *Fixture) Tag(name, slug string) *models.Tag {
	f.t.Helper()
	f.n++
	tag := &models.Tag{Name: name, Slug: slug, Color: fmt.Sprintf("#%06X", f.n)}
	f.create(tag)
	return tag
}

func (f *Fixture) Ingredient(name, unit string) *models.Ingredient {
	f.t.Helper()
	ing := &models.Ingredient{Name: name, MeasurementUnit: unit}
	f.create(ing)
	return ing
}

// Recipe 写入食谱及其食材行、标签，amounts 以食材 id 为键
func (f *Fixture) Recipe(id, authorID uint64, name string, amounts map[uint64]int, tagIDs ...uint64) *models.Recipe {
	f.t.Helper()
	r := &models.Recipe{ID: id, AuthorID: authorID, Name: name, Text: name, Image: "recipes/" + name + ".png", CookingTime: 10}
	f.create(r)
	for ingID, amount := range amounts {
		f.create(&models.RecipeIngredient{RecipeID: id, IngredientID: ingID, Amount: amount})
	}
	for _, tagID := range tagIDs {
		f.create(&models.RecipeTag{RecipeID: id, TagID: tagID})
	}
	return r
}

func (f *Fixture) AddToCart(userID, recipeID uint64) {
	f.t.Helper()
	f.create(&models.ShoppingCart{UserID: userID, RecipeID: recipeID})
}

func (f *Fixture) Favorite(userID, recipeID uint64) {
	f.t.Helper()
	f.create(&models.Favorite{UserID: userID, RecipeID: recipeID})
}

func (f *Fixture) Follow(userID, authorID uint64) {
	f.t.Helper()
	f.create(&models.UserFollow{UserID: userID, AuthorID: authorID})
}
