package entity

import (
	"time"
)

// Media represents a stored upload, typically a hotel image.
type Media struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	FileName         string    `bson:"file_name" json:"filename"`
	URL              string    `bson:"url" json:"url"`
	MimeType         string    `bson:"mime_type" json:"mimeType"`
	SizeBytes        int64     `bson:"size_bytes" json:"sizeBytes"`
	UploadedByUserID string    `bson:"uploaded_by_user_id" json:"uploadedBy"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}
