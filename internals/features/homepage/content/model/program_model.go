package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProgramModel struct {
	ProgramID          uuid.UUID      `gorm:"column:program_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"program_id"`
	ProgramName        string         `gorm:"column:program_name;type:varchar(255);not null" json:"program_name"`
	ProgramDescription string         `gorm:"column:program_description;type:text" json:"program_description"`
	ProgramImageURL    string         `gorm:"column:program_image_url;type:text" json:"program_image_url"`
	ProgramLevel       string         `gorm:"column:program_level;type:varchar(50)" json:"program_level"` // pemula|menengah|lanjutan
	ProgramSchedule    string         `gorm:"column:program_schedule;type:varchar(255)" json:"program_schedule"`
	ProgramHighlights  pq.StringArray `gorm:"column:program_highlights;type:text[]" json:"program_highlights"`
	ProgramIsFeatured  bool           `gorm:"column:program_is_featured;default:false" json:"program_is_featured"`
	ProgramOrder       int            `gorm:"column:program_order" json:"program_order"`
	ProgramIsActive    bool           `gorm:"column:program_is_active;default:true" json:"program_is_active"`
	ProgramCreatedAt   time.Time      `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
	ProgramUpdatedAt   time.Time      `gorm:"column:program_updated_at;autoUpdateTime" json:"program_updated_at"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
