package models

import (
	"time"
)

// TeamMember is an agent bio shown on the team page, sorted by Order.
type TeamMember struct {
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Title     string    `gorm:"size:255;not null;column:title" json:"title"`
	Bio       *string   `gorm:"type:text;column:bio" json:"bio,omitempty"`
	Headshot  *string   `gorm:"size:500;column:headshot" json:"headshot,omitempty"`
	Order     int       `gorm:"not null;default:0;column:display_order" json:"order"`
	Socials   Socials   `gorm:"type:text;column:socials" json:"socials"`
	ID        uint      `gorm:"primaryKey" json:"id"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// BlogPost is a long-form article. Only published posts appear on the blog
// index, in the sitemap, or resolve by slug.
type BlogPost struct {
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	Slug        string     `gorm:"size:255;uniqueIndex;not null;column:slug" json:"slug"`
	Title       string     `gorm:"size:500;not null;column:title" json:"title"`
	Content     string     `gorm:"type:text;not null;column:content" json:"content"`
	Excerpt     *string    `gorm:"type:text;column:excerpt" json:"excerpt,omitempty"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"publishedAt,omitempty"`
	Tags        StringList `gorm:"type:text;column:tags" json:"tags"`
	OGImageURL  *string    `gorm:"size:500;column:og_image_url" json:"ogImageUrl,omitempty"`
	Published   bool       `gorm:"not null;default:false;index;column:published" json:"published"`
	ID          uint       `gorm:"primaryKey" json:"id"`
}

// TableName specifies the table name for GORM.
func (BlogPost) TableName() string {
	return "blog_posts"
}

// Testimonial is a client quote. Featured testimonials surface on the home
// page; Order breaks ties within each group.
type Testimonial struct {
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Title     string    `gorm:"size:255;not null;column:title" json:"title"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	Rating    int       `gorm:"not null;column:rating" json:"rating"`
	Location  *string   `gorm:"size:255;column:location" json:"location,omitempty"`
	Featured  bool      `gorm:"not null;default:false;index;column:featured" json:"featured"`
	Order     int       `gorm:"not null;default:0;column:display_order" json:"order"`
	ID        uint      `gorm:"primaryKey" json:"id"`
}

// TableName specifies the table name for GORM.
func (Testimonial) TableName() string {
	return "testimonials"
}
