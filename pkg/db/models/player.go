package models

import (
	"time"

	"github.com/minsukang/idlequest-backend/pkg/enums"
)

// Player is the persistent record backing one chat user. The ID is the
// opaque user key Kakao sends with every utterance.
type Player struct {
	ID               string             `gorm:"column:id;type:text;primaryKey"`
	Level            int                `gorm:"column:level;not null;default:1"`
	Gold             int                `gorm:"column:gold;not null;default:100"`
	WeaponLevel      int                `gorm:"column:weapon_level;not null;default:0"`
	Job              *enums.Job         `gorm:"column:job;type:text"`
	StatPoints       int                `gorm:"column:stat_points;not null;default:0"`
	HP               int                `gorm:"column:hp;not null;default:1"`
	ATK              int                `gorm:"column:atk;not null;default:1"`
	INT              int                `gorm:"column:int;not null;default:1"`
	SPD              int                `gorm:"column:spd;not null;default:1"`
	LUK              int                `gorm:"column:luk;not null;default:1"`
	Fatigue          int                `gorm:"column:fatigue;not null;default:0"`
	LastAttendanceOn *string            `gorm:"column:last_attendance_on;type:text"`
	Pending          enums.PendingState `gorm:"column:pending;type:text;not null;default:'none'"`
	CreatedAt        time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
