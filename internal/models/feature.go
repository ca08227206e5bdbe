package models

type Feature struct {
	BaseModel

	ProjectID   uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks   []Task  `gorm:"foreignKey:FeatureID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Progress reports point-weighted completion over the feature's tasks.
// Tasks must be preloaded.
func (f Feature) Progress() int {
	return Progress(f.Tasks)
}
