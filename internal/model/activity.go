package model

// Activity is a catalog entry for a known extracurricular activity — table activities.
// Read-only reference data, seeded by migration.
type Activity struct {
	ActivityID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	Name        string `gorm:"type:varchar(200);not null"                     json:"name"`
	Type        string `gorm:"type:varchar(50);not null"                      json:"type"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	Approved    bool   `gorm:"not null;default:true"                          json:"approved"`
}

// TableName sets the table name.
func (Activity) TableName() string { return "activities" }
