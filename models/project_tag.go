package models

// ProjectTag links a project to a tag by the tag's name, not its id.
type ProjectTag struct {
	ID        uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID uint   `json:"project_id" gorm:"column:project_id;not null;index:idx_project_tags_project_id"`
	Tag       string `json:"tag" gorm:"column:tag;type:text;not null;index:idx_project_tags_tag"`
}
