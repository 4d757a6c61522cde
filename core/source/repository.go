package source

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("source: record not found")

// Repository bundles the metadata lookups the processing features need.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over an established connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Account returns the account with the given ID.
func (r *Repository) Account(ctx context.Context, id int64) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading account %d: %w", id, err)
	}
	return &account, nil
}

// AccountByUsername returns the account with the given username.
func (r *Repository) AccountByUsername(ctx context.Context, username string) (*Account, error) {
	var account Account
	err := r.db.WithContext(ctx).First(&account, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading account %q: %w", username, err)
	}
	return &account, nil
}

// Accounts returns all accounts, ordered by username for deterministic runs.
func (r *Repository) Accounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := r.db.WithContext(ctx).Order("username").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	return accounts, nil
}

// PreviousUsernames returns the historical usernames for an account.
func (r *Repository) PreviousUsernames(ctx context.Context, accountID int64) ([]string, error) {
	var rows []PreviousUsername
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading previous usernames for account %d: %w", accountID, err)
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Username)
	}
	return names, nil
}

// MediaForAccount returns downloaded media of the given kind for an account.
func (r *Repository) MediaForAccount(ctx context.Context, accountID int64, kind string) ([]Media, error) {
	var media []Media
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("downloaded_at IS NOT NULL").
		Order("created_at")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Find(&media).Error; err != nil {
		return nil, fmt.Errorf("loading media for account %d: %w", accountID, err)
	}
	return media, nil
}

// PostForMedia returns the post a media item belongs to, with hashtags
// preloaded, or ErrNotFound when the media came from a message instead.
func (r *Repository) PostForMedia(ctx context.Context, media *Media) (*Post, error) {
	if media.PostID == nil {
		return nil, ErrNotFound
	}
	var post Post
	err := r.db.WithContext(ctx).Preload("Hashtags").First(&post, "id = ?", *media.PostID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading post %d: %w", *media.PostID, err)
	}
	return &post, nil
}

// MessageForMedia returns the message a media item belongs to, or
// ErrNotFound when the media came from a post instead.
func (r *Repository) MessageForMedia(ctx context.Context, media *Media) (*Message, error) {
	if media.MessageID == nil {
		return nil, ErrNotFound
	}
	var message Message
	err := r.db.WithContext(ctx).First(&message, "id = ?", *media.MessageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading message %d: %w", *media.MessageID, err)
	}
	return &message, nil
}

// ImagePostsForAccount returns posts that carry downloaded image media,
// with media and hashtags preloaded. These become galleries.
func (r *Repository) ImagePostsForAccount(ctx context.Context, accountID int64) ([]Post, error) {
	var posts []Post
	err := r.db.WithContext(ctx).
		Preload("Hashtags").
		Preload("Media", "kind = ? AND downloaded_at IS NOT NULL", MediaKindImage).
		Joins("JOIN media ON media.post_id = posts.id").
		Where("posts.account_id = ?", accountID).
		Where("media.kind = ?", MediaKindImage).
		Where("media.downloaded_at IS NOT NULL").
		Group("posts.id").
		Order("posts.created_at").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("loading image posts for account %d: %w", accountID, err)
	}
	return posts, nil
}

// Ping verifies the underlying connection is alive.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
