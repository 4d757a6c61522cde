package source

import "time"

// Media kind values stored in the media table.
const (
	MediaKindVideo = "video"
	MediaKindImage = "image"
	MediaKindAudio = "audio"
)

// Account is a creator account on the content platform.
type Account struct {
	ID          int64      `gorm:"primaryKey;column:id"`
	Username    string     `gorm:"column:username;type:varchar(255)"`
	DisplayName string     `gorm:"column:display_name;type:varchar(255)"`
	About       string     `gorm:"column:about;type:text"`
	Location    string     `gorm:"column:location;type:varchar(255)"`
	AvatarURL   string     `gorm:"column:avatar_url;type:varchar(1024)"`
	BannerURL   string     `gorm:"column:banner_url;type:varchar(1024)"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	FetchedAt   *time.Time `gorm:"column:fetched_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// PreviousUsername records a historical username for an account. The matcher
// treats these as aliases.
type PreviousUsername struct {
	ID        int64  `gorm:"primaryKey;column:id"`
	AccountID int64  `gorm:"column:account_id;index"`
	Username  string `gorm:"column:username;type:varchar(255)"`
}

func (PreviousUsername) TableName() string {
	return "account_usernames"
}

// Post is a timeline post by an account.
type Post struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	AccountID int64     `gorm:"column:account_id;index"`
	Content   string    `gorm:"column:content;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Media     []Media   `gorm:"foreignKey:PostID"`
	Hashtags  []Hashtag `gorm:"many2many:post_hashtags;"`
}

func (Post) TableName() string {
	return "posts"
}

// Message is a direct message carrying media.
type Message struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	SenderID  int64     `gorm:"column:sender_id;index"`
	Content   string    `gorm:"column:content;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Media     []Media   `gorm:"foreignKey:MessageID"`
}

func (Message) TableName() string {
	return "messages"
}

// Media is a downloaded media item belonging to a post or message.
type Media struct {
	ID         int64      `gorm:"primaryKey;column:id"`
	AccountID  int64      `gorm:"column:account_id;index"`
	PostID     *int64     `gorm:"column:post_id;index"`
	MessageID  *int64     `gorm:"column:message_id;index"`
	Kind       string     `gorm:"column:kind;type:varchar(16)"`
	Mimetype   string     `gorm:"column:mimetype;type:varchar(64)"`
	LocalPath  string     `gorm:"column:local_path;type:varchar(1024)"`
	Hash       string     `gorm:"column:hash;type:varchar(64)"`
	Size       int64      `gorm:"column:size"`
	Width      int        `gorm:"column:width"`
	Height     int        `gorm:"column:height"`
	Duration   float64    `gorm:"column:duration"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	Downloaded *time.Time `gorm:"column:downloaded_at"`
}

func (Media) TableName() string {
	return "media"
}

// Hashtag is a tag attached to posts.
type Hashtag struct {
	ID    int64  `gorm:"primaryKey;column:id"`
	Value string `gorm:"column:value;type:varchar(255)"`
}

func (Hashtag) TableName() string {
	return "hashtags"
}

// IsDownloaded reports whether the media item has a local file.
func (m *Media) IsDownloaded() bool {
	return m.Downloaded != nil && m.LocalPath != ""
}
