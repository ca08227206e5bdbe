package models

const (
	MinTaskPoints = 1
	MaxTaskPoints = 10
)

type Task struct {
	BaseModel

	FeatureID   uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Points      int  `gorm:"not null;default:1;check:points >= 1 AND points <= 10"`
	Completed   bool `gorm:"not null;default:false"`

	// Relationships
	Feature Feature `gorm:"foreignKey:FeatureID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notes   []Note  `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Progress for a single task is binary.
func (t Task) Progress() int {
	if t.Completed {
		return 100
	}
	return 0
}
