package storage

import "time"

// PlanModel is the GORM model for plans table
type PlanModel struct {
	Comment       string `gorm:"not null;default:''"`
	Content       string `gorm:"not null"`
	CreatedAt     time.Time
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	LastCwd       string `gorm:"not null;default:''"`
	LastSessionID string `gorm:"not null;default:''"`
	Status        string `gorm:"not null;default:'todo'"`
	Title         string `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string { return "plans" }

// StepModel is the GORM model for steps table
type StepModel struct {
	Comment    string `gorm:"not null;default:''"`
	Content    string `gorm:"not null"`
	CreatedAt  time.Time
	Executor   string `gorm:"not null;default:'ai'"`
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	PlanID     int64  `gorm:"not null;index:idx_steps_plan_sort,priority:1"`
	SortOrder  int    `gorm:"not null;index:idx_steps_plan_sort,priority:2"`
	Status     string `gorm:"not null;default:'todo'"`
	UpdatedAt  time.Time
	WaitReason string     `gorm:"not null;default:''"`
	WaitUntil  *time.Time `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (StepModel) TableName() string { return "steps" }

// GoalModel is the GORM model for goals table
type GoalModel struct {
	Comment   string `gorm:"not null;default:''"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Status    string `gorm:"not null;default:'todo'"`
	StepID    int64  `gorm:"not null;index:idx_goals_step"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (GoalModel) TableName() string { return "goals" }

// ActivePlanModel is the GORM model for the per-session active plan pointer
type ActivePlanModel struct {
	CreatedAt time.Time
	PlanID    int64  `gorm:"not null;uniqueIndex:idx_active_plans_plan"`
	SessionID string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ActivePlanModel) TableName() string { return "active_plans" }

// StatusChangeModel is the GORM model for the status change audit log
type StatusChangeModel struct {
	CreatedAt  time.Time
	EntityID   int64  `gorm:"not null;index:idx_status_changes_entity,priority:2"`
	EntityType string `gorm:"not null;index:idx_status_changes_entity,priority:1"`
	FromStatus string `gorm:"not null;default:''"`
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Reason     string `gorm:"not null;default:''"`
	ToStatus   string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (StatusChangeModel) TableName() string { return "status_changes" }
