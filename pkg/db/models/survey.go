package models

import (
	"time"

	"gorm.io/datatypes"
)

// Survey holds a user's preference answers as an opaque JSON document. The
// owning user reference is one-to-one and immutable after creation.
type Survey struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint           `gorm:"column:user_id;not null;uniqueIndex:surveys_user_id_key"`
	Answers   datatypes.JSON `gorm:"column:answers;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
