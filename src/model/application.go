package model

import "time"

// UnknownApplicationType is reported when an application's type id has no description.
const UnknownApplicationType = "Unknown"

// ApplicationMaster is the registry row of a known application.
type ApplicationMaster struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	AppName     string     `gorm:"column:app_name;size:255;not null;uniqueIndex"`
	AppTypeID   int64      `gorm:"column:app_type_id;not null"`
	CreatedDate *time.Time `gorm:"column:created_date"`
	UpdatedDate *time.Time `gorm:"column:updated_date"`
	UserID      *int64     `gorm:"column:user_id"`
}

func (ApplicationMaster) TableName() string { return "ApplicationMaster" }

// ApplicationTypeMaster maps a type id to its human-readable description.
type ApplicationTypeMaster struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	AppType string `gorm:"column:app_type;size:255;not null;uniqueIndex"`
}

func (ApplicationTypeMaster) TableName() string { return "ApplicationTypeMaster" }

// ApplicationDetails is the response shape of an application lookup.
// ApplicationType always holds a description, never the raw type id.
type ApplicationDetails struct {
	ApplicationName string     `json:"application_name"`
	ApplicationType string     `json:"application_type"`
	CreatedDate     *time.Time `json:"created_date"`
	UpdatedDate     *time.Time `json:"updated_date"`
	UserID          *int64     `json:"user_id"`
}

// ToDetails builds the response shape using an already resolved type description.
func (a ApplicationMaster) ToDetails(typeDescription string) ApplicationDetails {
	return ApplicationDetails{
		ApplicationName: a.AppName,
		ApplicationType: typeDescription,
		CreatedDate:     a.CreatedDate,
		UpdatedDate:     a.UpdatedDate,
		UserID:          a.UserID,
	}
}
