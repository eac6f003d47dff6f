package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库限制单连接，避免连接池各自拿到独立的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Tag{},
		&model.Post{},
		&model.PostTag{},
		&model.PostLike{},
		&model.Comment{},
		&model.Newsletter{},
	))
	return db
}

// 索引名在 SQLite 中是库级命名空间，建表失败会让所有用库的用例跪在起跑线
func TestSchemaMigrates(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"users", "categories", "tags", "posts", "post_tags", "post_likes", "comments", "newsletters"} {
		assert.True(t, db.Migrator().HasTable(table), "table: %s", table)
	}
}

type testRepos struct {
	post       repository.PostRepo
	category   repository.CategoryRepo
	tag        repository.TagRepo
	user       repository.UserRepo
	action     repository.PostActionRepo
	newsletter repository.NewsletterRepo
}

func newTestRepos(db *gorm.DB) *testRepos {
	return &testRepos{
		post:       repository.NewPostRepository(db),
		category:   repository.NewCategoryRepository(db),
		tag:        repository.NewTagRepository(db),
		user:       repository.NewUserRepo(db),
		action:     repository.NewPostActionRepo(db),
		newsletter: repository.NewNewsletterRepository(db),
	}
}

func newTestPostService(r *testRepos) PostService {
	return NewPostService(r.post, r.category, r.tag, r.user, r.action)
}

func newTestAdminService(r *testRepos) AdminService {
	return NewAdminService(r.post, r.category, r.tag, r.action, r.newsletter)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint64, slug, status string, publishedAt *time.Time) *model.Post {
	t.Helper()
	post := &model.Post{
		Title:       slug,
		Slug:        slug,
		AuthorID:    authorID,
		ContentType: model.ContentTypeHTML,
		ContentHTML: "<p>" + slug + "</p>",
		Status:      status,
		PublishedAt: publishedAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func timePtr(tm time.Time) *time.Time {
	return &tm
}
