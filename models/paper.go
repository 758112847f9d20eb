package models

import (
	"time"

	"gorm.io/datatypes"
)

// Paper lifecycle states.
const (
	StatusGenerated = "generated"
	StatusRendered  = "rendered"
	StatusUploaded  = "uploaded"
	StatusFailed    = "failed"
)

// GeneratedPaper stores one finished paper: response metadata, the generated
// section texts, and where the rendered PDF ended up.
type GeneratedPaper struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Application key and response metadata
	UniqueID    string `json:"unique_id" gorm:"column:unique_id;uniqueIndex;not null"`
	ProductName string `json:"product_name" gorm:"not null"`
	Category    string `json:"category" gorm:"index"`
	Region      string `json:"region" gorm:"index"`

	Title       string `json:"title" gorm:"type:text"`
	Author      string `json:"author,omitempty"`
	Institution string `json:"institution,omitempty"`

	// Section texts keyed by section name, stored as jsonb
	SectionsJSON datatypes.JSON `json:"sections_json" gorm:"type:jsonb"`
	// Comma-separated section names that fell back to placeholder text
	FallbackSections string `json:"fallback_sections,omitempty" gorm:"type:text"`

	Status      string     `json:"status" gorm:"index;default:'generated'"`
	S3Link      string     `json:"s3_link,omitempty" gorm:"type:text"`
	CloudStored bool       `json:"cloud_stored"`
	RenderedAt  *time.Time `json:"rendered_at,omitempty"`
	UploadedAt  *time.Time `json:"uploaded_at,omitempty"`
}

// TableName names the table explicitly.
func (GeneratedPaper) TableName() string {
	return "generated_papers"
}
