package models

import (
	"encoding/json"
	"time"
)

// Kind identifies one of the four generated content collections.
type Kind string

const (
	KindDeals    Kind = "deals"
	KindArticles Kind = "articles"
	KindNews     Kind = "news"
	KindVideos   Kind = "videos"
)

// Kinds lists all content kinds in the order the pipeline regenerates them.
var Kinds = []Kind{KindDeals, KindArticles, KindNews, KindVideos}

// Deal is one product offer in the current deals snapshot.
// IDs are unique within a single batch only.
type Deal struct {
	ID            int       `json:"id" validate:"gt=0"`
	Title         string    `json:"title" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	OriginalPrice float64   `json:"originalPrice" validate:"gt=0"`
	DiscountPrice float64   `json:"discountPrice" validate:"gt=0,ltefield=OriginalPrice"`
	Discount      int       `json:"discount" validate:"gte=10,lte=50"`
	Rating        float64   `json:"rating" validate:"gte=3.5,lte=4.9"`
	Reviews       int       `json:"reviews" validate:"gte=0"`
	Description   string    `json:"description" validate:"required"`
	Image         string    `json:"image" validate:"required,url"`
	AddedAt       time.Time `json:"addedAt"`
}

// Article is a long-form content piece.
type Article struct {
	ID         int    `json:"id" validate:"gt=0"`
	Title      string `json:"title" validate:"required"`
	Excerpt    string `json:"excerpt" validate:"required"`
	Content    string `json:"content"`
	Conclusion string `json:"conclusion"`
	Category   string `json:"category" validate:"required"`
	Date       string `json:"date" validate:"required"`
	ReadTime   string `json:"readTime"`
}

// NewsItem is a short newsroom entry.
type NewsItem struct {
	ID       int    `json:"id" validate:"gt=0"`
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Content  string `json:"content"`
	Icon     string `json:"icon"`
	Category string `json:"category" validate:"required"`
	Author   string `json:"author"`
	Date     string `json:"date" validate:"required"`
}

// VideoItem is a video review reference.
type VideoItem struct {
	ID          int     `json:"id" validate:"gt=0"`
	Product     string  `json:"product" validate:"required"`
	Youtuber    string  `json:"youtuber"`
	Channel     string  `json:"channel"`
	VideoID     string  `json:"videoId" validate:"required"`
	Thumbnail   string  `json:"thumbnail" validate:"required,url"`
	Views       string  `json:"views"`
	Rating      float64 `json:"rating" validate:"gte=3.5,lte=4.9"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
}

// ArchiveEntry wraps a previously current batch for historical listing.
// Payload holds the full batch as it was served; entries are never
// mutated after creation.
type ArchiveEntry struct {
	Date    time.Time       `json:"date"`
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}
