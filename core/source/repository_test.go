package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stash-bridge/core/source"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupRepository connects an in-memory database and seeds it with one
// account carrying a post, a message and a mix of media rows.
func setupRepository(t *testing.T) *source.Repository {
	t.Helper()

	db, err := source.Connect(source.Config{
		Driver: "sqlite",
		Path:   ":memory:",
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&source.Account{},
		&source.PreviousUsername{},
		&source.Post{},
		&source.Message{},
		&source.Media{},
		&source.Hashtag{},
	)
	assert.NoError(t, err)

	now := time.Now()

	// Accounts
	assert.NoError(t, db.Create(&source.Account{ID: 1, Username: "janedoe", DisplayName: "Jane Doe"}).Error)
	assert.NoError(t, db.Create(&source.Account{ID: 2, Username: "abby", DisplayName: "Abby"}).Error)
	assert.NoError(t, db.Create(&source.PreviousUsername{ID: 1, AccountID: 1, Username: "jane_old"}).Error)
	assert.NoError(t, db.Create(&source.PreviousUsername{ID: 2, AccountID: 1, Username: "jdoe"}).Error)

	// Post with hashtags and media
	post := source.Post{
		ID:        10,
		AccountID: 1,
		Content:   "Beach day\nFull set below",
		CreatedAt: now,
		Hashtags:  []source.Hashtag{{ID: 1, Value: "#beach"}, {ID: 2, Value: "#summer"}},
	}
	assert.NoError(t, db.Create(&post).Error)

	// Message with media
	assert.NoError(t, db.Create(&source.Message{ID: 20, SenderID: 1, Content: "For you", CreatedAt: now}).Error)

	postID := int64(10)
	messageID := int64(20)
	media := []source.Media{
		{ID: 100, AccountID: 1, PostID: &postID, Kind: source.MediaKindVideo, LocalPath: "janedoe/video/100.mp4", Size: 1024, CreatedAt: now, Downloaded: &now},
		{ID: 101, AccountID: 1, PostID: &postID, Kind: source.MediaKindVideo, LocalPath: "", CreatedAt: now},
		{ID: 102, AccountID: 1, PostID: &postID, Kind: source.MediaKindImage, LocalPath: "janedoe/image/102.jpg", Size: 256, CreatedAt: now, Downloaded: &now},
		{ID: 103, AccountID: 1, MessageID: &messageID, Kind: source.MediaKindVideo, LocalPath: "janedoe/video/103.mp4", Size: 512, CreatedAt: now, Downloaded: &now},
		{ID: 104, AccountID: 2, Kind: source.MediaKindVideo, LocalPath: "abby/video/104.mp4", Size: 2048, CreatedAt: now, Downloaded: &now},
	}
	for i := range media {
		assert.NoError(t, db.Create(&media[i]).Error)
	}

	return source.NewRepository(db)
}

func TestAccountLookups(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	account, err := repo.Account(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "janedoe", account.Username)

	account, err = repo.AccountByUsername(ctx, "abby")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), account.ID)

	_, err = repo.Account(ctx, 999)
	assert.ErrorIs(t, err, source.ErrNotFound)

	_, err = repo.AccountByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestAccountsOrderedByUsername(t *testing.T) {
	repo := setupRepository(t)

	accounts, err := repo.Accounts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "abby", accounts[0].Username)
	assert.Equal(t, "janedoe", accounts[1].Username)
}

func TestPreviousUsernames(t *testing.T) {
	repo := setupRepository(t)

	names, err := repo.PreviousUsernames(context.Background(), 1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"jane_old", "jdoe"}, names)

	names, err = repo.PreviousUsernames(context.Background(), 2)
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestMediaForAccount(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	// Only downloaded videos of account 1: post media 100 and message media 103
	videos, err := repo.MediaForAccount(ctx, 1, source.MediaKindVideo)
	assert.NoError(t, err)
	assert.Len(t, videos, 2)
	for _, m := range videos {
		assert.Equal(t, source.MediaKindVideo, m.Kind)
		assert.True(t, m.IsDownloaded())
	}

	images, err := repo.MediaForAccount(ctx, 1, source.MediaKindImage)
	assert.NoError(t, err)
	assert.Len(t, images, 1)
	assert.Equal(t, int64(102), images[0].ID)

	// Empty kind returns every downloaded media row
	all, err := repo.MediaForAccount(ctx, 1, "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPostForMedia(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	postID := int64(10)
	post, err := repo.PostForMedia(ctx, &source.Media{ID: 100, PostID: &postID})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), post.ID)
	assert.Len(t, post.Hashtags, 2)

	// Message media has no post
	_, err = repo.PostForMedia(ctx, &source.Media{ID: 103})
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestMessageForMedia(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	messageID := int64(20)
	message, err := repo.MessageForMedia(ctx, &source.Media{ID: 103, MessageID: &messageID})
	assert.NoError(t, err)
	assert.Equal(t, "For you", message.Content)

	_, err = repo.MessageForMedia(ctx, &source.Media{ID: 100})
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestImagePostsForAccount(t *testing.T) {
	repo := setupRepository(t)

	posts, err := repo.ImagePostsForAccount(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(10), posts[0].ID)
	assert.Len(t, posts[0].Hashtags, 2)

	// Only the downloaded image media is preloaded
	assert.Len(t, posts[0].Media, 1)
	assert.Equal(t, int64(102), posts[0].Media[0].ID)

	posts, err = repo.ImagePostsForAccount(context.Background(), 2)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPing(t *testing.T) {
	repo := setupRepository(t)
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestAccountQueryErrorIsWrapped(t *testing.T) {
	sqlDB, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	dbMock.ExpectQuery("SELECT(.+)FROM `accounts`").WillReturnError(errors.New("server has gone away"))

	repo := source.NewRepository(db)
	_, err = repo.Account(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, source.ErrNotFound)
	assert.Contains(t, err.Error(), "server has gone away")
}
