package models

// Project represents one portfolio item
type Project struct {
	ID           int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title        string `json:"title" db:"title" gorm:"type:text;not null"`
	Category     string `json:"category" db:"category" gorm:"type:text;not null"`
	Description  string `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL     string `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	GithubURL    string `json:"github_url" db:"github_url" gorm:"type:text;not null"`
	LiveURL      string `json:"live_url" db:"live_url" gorm:"type:text;not null"`
	Technologies string `json:"technologies" db:"technologies" gorm:"type:text;not null"`
}

// MissingField returns the name of the first required field that is empty,
// or "" when the record is complete. Every field except the id is required;
// the store never holds a partially-filled record.
func (p Project) MissingField() string {
	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"category", p.Category},
		{"description", p.Description},
		{"image_url", p.ImageURL},
		{"github_url", p.GithubURL},
		{"live_url", p.LiveURL},
		{"technologies", p.Technologies},
	}

	for _, field := range required {
		if field.value == "" {
			return field.name
		}
	}
	return ""
}
