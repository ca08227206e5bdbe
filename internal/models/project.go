package models

type Project struct {
	BaseModel

	OwnerID     uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Features []Feature `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Progress reports point-weighted completion across every task in the
// project. Features must be preloaded with their Tasks. Tasks are flattened
// so a project with one heavy unfinished feature and many trivial finished
// ones is not reported as nearly done.
func (p Project) Progress() int {
	var tasks []Task
	for _, f := range p.Features {
		tasks = append(tasks, f.Tasks...)
	}
	return Progress(tasks)
}
