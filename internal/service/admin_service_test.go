package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Engineering"}))

	var stored model.Category
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "engineering", stored.Slug)
	assert.Equal(t, "blue", stored.Color)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Engineering"}))

	// 同名推导出同一个 slug，冲突直接报错而不是静默加后缀
	err := svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Platform", Slug: "engineering"})
	assert.ErrorIs(t, err, ErrSlugExists)

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Engineering"}))

	// 同名不同 slug 撞的是 name 约束，报名称冲突而不是 slug 冲突
	err := svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Engineering", Slug: "eng"})
	assert.ErrorIs(t, err, ErrNameExists)
}

func TestCreateTagDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	require.NoError(t, svc.CreateTag(ctx, &dto.TagBaseDTO{Name: "Go"}))

	err := svc.CreateTag(ctx, &dto.TagBaseDTO{Name: "Go", Slug: "golang"})
	assert.ErrorIs(t, err, ErrNameExists)

	err = svc.CreateTag(ctx, &dto.TagBaseDTO{Name: "Golang", Slug: "go"})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestUpdateCategoryKeepsOwnName(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Engineering"}))
	require.NoError(t, svc.CreateCategory(ctx, &dto.CategoryBaseDTO{Name: "Design"}))

	var design model.Category
	require.NoError(t, db.Where("name = ?", "Design").First(&design).Error)

	// 改名撞上别的分类报名称冲突；保留自己的名字只改 slug 撞车时不误报
	err := svc.UpdateCategory(ctx, design.ID, &dto.CategoryBaseDTO{Name: "Engineering"})
	assert.ErrorIs(t, err, ErrNameExists)

	err = svc.UpdateCategory(ctx, design.ID, &dto.CategoryBaseDTO{Name: "Design", Slug: "engineering"})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestUpdateCategoryMissing(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)

	err := svc.UpdateCategory(context.Background(), 42, &dto.CategoryBaseDTO{Name: "Engineering"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	category := &model.Category{Name: "Engineering", Slug: "engineering"}
	require.NoError(t, db.Create(category).Error)
	post := seedPost(t, db, author.ID, "attached", model.PostStatusPublished, timePtr(time.Now()))
	require.NoError(t, db.Model(post).Update("category_id", category.ID).Error)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	var stored model.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Nil(t, stored.CategoryID)
}

func TestCreateTagDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)

	require.NoError(t, svc.CreateTag(context.Background(), &dto.TagBaseDTO{Name: "Web Dev"}))

	var stored model.Tag
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "web-dev", stored.Slug)
}

func TestCreatePostStampsPublishedAt(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	before := time.Now().Add(-time.Second)

	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:  "Going Live",
		Status: model.PostStatusPublished,
	}))

	var stored model.Post
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "going-live", stored.Slug)
	require.NotNil(t, stored.PublishedAt)
	assert.True(t, stored.PublishedAt.After(before))
	assert.False(t, stored.PublishedAt.Before(stored.CreatedAt.Add(-time.Second)))
}

func TestCreatePostDraftDefaults(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "Work in Progress"}))

	var stored model.Post
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, model.PostStatusDraft, stored.Status)
	assert.Equal(t, model.ContentTypeHTML, stored.ContentType)
	assert.Nil(t, stored.PublishedAt)
}

func TestUpdatePostStampsOnce(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:  "Going Live",
		Status: model.PostStatusPublished,
	}))

	var created model.Post
	require.NoError(t, db.First(&created).Error)
	require.NotNil(t, created.PublishedAt)
	firstStamp := *created.PublishedAt

	// 已发布状态下再次保存不应刷新发布时间
	require.NoError(t, svc.UpdatePost(ctx, created.ID, &dto.PostBaseDTO{
		Title:  "Going Live",
		Status: model.PostStatusPublished,
	}))
	var republished model.Post
	require.NoError(t, db.First(&republished, created.ID).Error)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstStamp.Unix(), republished.PublishedAt.Unix())

	// 退回草稿清空发布时间；每次回查都用新变量，避免残留字段干扰断言
	require.NoError(t, svc.UpdatePost(ctx, created.ID, &dto.PostBaseDTO{
		Title:  "Going Live",
		Status: model.PostStatusDraft,
	}))
	var drafted model.Post
	require.NoError(t, db.First(&drafted, created.ID).Error)
	assert.Nil(t, drafted.PublishedAt)

	// 重新发布打上新的时间戳
	require.NoError(t, svc.UpdatePost(ctx, created.ID, &dto.PostBaseDTO{
		Title:  "Going Live",
		Status: model.PostStatusPublished,
	}))
	var restamped model.Post
	require.NoError(t, db.First(&restamped, created.ID).Error)
	assert.NotNil(t, restamped.PublishedAt)
}

func TestUpdatePostKeepsStatusWhenOmitted(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:  "Stable",
		Status: model.PostStatusPublished,
	}))

	var created model.Post
	require.NoError(t, db.First(&created).Error)

	require.NoError(t, svc.UpdatePost(ctx, created.ID, &dto.PostBaseDTO{Title: "Stable, Revised"}))

	var updated model.Post
	require.NoError(t, db.First(&updated, created.ID).Error)
	assert.Equal(t, model.PostStatusPublished, updated.Status)
	assert.NotNil(t, updated.PublishedAt)
}

func TestCreatePostReusesTags(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:    "First",
		TagNames: []string{"Go", "API"},
	}))
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:    "Second",
		TagNames: []string{"Go"},
	}))

	var tagCount int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 2, tagCount)

	var linkCount int64
	require.NoError(t, db.Model(&model.PostTag{}).Count(&linkCount).Error)
	assert.EqualValues(t, 3, linkCount)
}

func TestCreatePostTagSlugCollision(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Tag{Name: "Web Dev", Slug: "web-dev"}).Error)

	// 不同名的标签推导出同一个 slug，冲突要上抛，不能静默丢标签
	author := seedUser(t, db, "alice")
	err := svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:    "Routing",
		TagNames: []string{"Web-Dev"},
	})
	assert.ErrorIs(t, err, ErrSlugExists)

	var tagCount int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "Going Live"}))

	err := svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{Title: "Going Live"})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestCreatePostUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)

	author := seedUser(t, db, "alice")
	err := svc.CreatePost(context.Background(), author.ID, &dto.PostBaseDTO{
		Title:      "Orphan",
		CategoryID: util.PtrUint64(99),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeletePostCascades(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	require.NoError(t, svc.CreatePost(ctx, author.ID, &dto.PostBaseDTO{
		Title:    "Doomed",
		TagNames: []string{"Go"},
	}))
	var post model.Post
	require.NoError(t, db.First(&post).Error)
	require.NoError(t, db.Create(&model.Comment{PostID: post.ID, AuthorID: author.ID, Content: "bye", IsApproved: true}).Error)
	require.NoError(t, db.Create(&model.PostLike{UserID: author.ID, PostID: post.ID}).Error)

	require.NoError(t, svc.DeletePost(ctx, post.ID))

	for _, counter := range []interface{}{&model.Post{}, &model.Comment{}, &model.PostLike{}, &model.PostTag{}} {
		var count int64
		require.NoError(t, db.Model(counter).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}
}

func TestUpdatePostStatusBulk(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	first := seedPost(t, db, author.ID, "bulk-one", model.PostStatusDraft, nil)
	second := seedPost(t, db, author.ID, "bulk-two", model.PostStatusDraft, nil)
	ids := []uint64{first.ID, second.ID}

	require.NoError(t, svc.UpdatePostStatus(ctx, ids, model.PostStatusPublished))

	var published model.Post
	require.NoError(t, db.First(&published, first.ID).Error)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// 重复发布不改写已有时间戳；主键已填充的结构体不能复用于其他 id 的回查
	require.NoError(t, svc.UpdatePostStatus(ctx, ids, model.PostStatusPublished))
	var stamped model.Post
	require.NoError(t, db.First(&stamped, first.ID).Error)
	require.NotNil(t, stamped.PublishedAt)
	assert.Equal(t, firstStamp.Unix(), stamped.PublishedAt.Unix())

	require.NoError(t, svc.UpdatePostStatus(ctx, ids, model.PostStatusDraft))
	var drafted model.Post
	require.NoError(t, db.First(&drafted, second.ID).Error)
	assert.Equal(t, model.PostStatusDraft, drafted.Status)
	assert.Nil(t, drafted.PublishedAt)

	var clearedCount int64
	require.NoError(t, db.Model(&model.Post{}).
		Where("id IN ? AND published_at IS NULL", ids).
		Count(&clearedCount).Error)
	assert.EqualValues(t, 2, clearedCount)
}

func TestUpdatePostStatusRejectsUnknown(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)

	err := svc.UpdatePostStatus(context.Background(), []uint64{1}, "archived")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestSetPostsFeatured(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author.ID, "highlight", model.PostStatusPublished, timePtr(time.Now()))

	require.NoError(t, svc.SetPostsFeatured(ctx, []uint64{post.ID}, true))
	var featured model.Post
	require.NoError(t, db.First(&featured, post.ID).Error)
	assert.True(t, featured.IsFeatured)

	require.NoError(t, svc.SetPostsFeatured(ctx, []uint64{post.ID}, false))
	var unfeatured model.Post
	require.NoError(t, db.First(&unfeatured, post.ID).Error)
	assert.False(t, unfeatured.IsFeatured)
}

func TestCommentModeration(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author.ID, "moderated", model.PostStatusPublished, timePtr(time.Now()))
	comment := &model.Comment{PostID: post.ID, AuthorID: author.ID, Content: "pending", IsApproved: true}
	require.NoError(t, db.Create(comment).Error)

	require.NoError(t, svc.SetCommentsApproved(ctx, []uint64{comment.ID}, false))
	var stored model.Comment
	require.NoError(t, db.First(&stored, comment.ID).Error)
	assert.False(t, stored.IsApproved)
}

func TestDeleteCommentRemovesReplies(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	post := seedPost(t, db, author.ID, "threaded", model.PostStatusPublished, timePtr(time.Now()))

	root := &model.Comment{PostID: post.ID, AuthorID: author.ID, Content: "root", IsApproved: true}
	require.NoError(t, db.Create(root).Error)
	reply := &model.Comment{PostID: post.ID, AuthorID: author.ID, Content: "reply", ParentID: &root.ID, IsApproved: true}
	require.NoError(t, db.Create(reply).Error)
	nested := &model.Comment{PostID: post.ID, AuthorID: author.ID, Content: "nested", ParentID: &reply.ID, IsApproved: true}
	require.NoError(t, db.Create(nested).Error)
	unrelated := &model.Comment{PostID: post.ID, AuthorID: author.ID, Content: "unrelated", IsApproved: true}
	require.NoError(t, db.Create(unrelated).Error)

	require.NoError(t, svc.DeleteComment(ctx, root.ID))

	var remaining []*model.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "unrelated", remaining[0].Content)
}

func TestSubscriberManagement(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newTestAdminService(repos)
	ctx := context.Background()

	sub := &model.Newsletter{Email: "reader@example.com", IsActive: true}
	require.NoError(t, db.Create(sub).Error)

	require.NoError(t, svc.SetSubscribersActive(ctx, []uint64{sub.ID}, false))
	var stored model.Newsletter
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.False(t, stored.IsActive)

	page, err := svc.ListSubscribers(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "reader@example.com", page.Items[0].Email)
}
