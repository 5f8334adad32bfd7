package model

import "time"

// ExceptionRecord is one persisted application exception.
// Columns are selected and mapped by name, never by position.
type ExceptionRecord struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ExceptionDetails *string   `gorm:"column:exception_details;type:text" json:"exception_details"`
	Message          string    `gorm:"column:message;type:text;not null" json:"message"`
	ExpObject        *string   `gorm:"column:exp_object;type:text" json:"exp_object"`
	ExpProcess       *string   `gorm:"column:exp_process;type:text" json:"exp_process"`
	ApplicationID    int64     `gorm:"column:application_id;not null;index" json:"application_id"`
	CategoryID       int64     `gorm:"column:category_id;not null;index" json:"category_id"`
	CreatedDatetime  time.Time `gorm:"column:created_datetime;not null" json:"created_datetime"`
	InnerException   *string   `gorm:"column:inner_exception;type:text" json:"inner_exception"`
	StackTrace       string    `gorm:"column:stack_trace;type:text;not null" json:"stack_trace"`
}

func (ExceptionRecord) TableName() string { return "ApplicationException" }

// ExceptionRecordColumns lists the selected columns in response field order.
var ExceptionRecordColumns = []string{
	"id",
	"exception_details",
	"message",
	"exp_object",
	"exp_process",
	"application_id",
	"category_id",
	"created_datetime",
	"inner_exception",
	"stack_trace",
}

// ExceptionCategory resolves a category name to its id.
type ExceptionCategory struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Category string `gorm:"column:category;size:255;not null;uniqueIndex" json:"category"`
}

func (ExceptionCategory) TableName() string { return "ExceptionCategory" }
