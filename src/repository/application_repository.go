package repository

import (
	"context"
	"fmt"
	"time"

	"exceptionlogger/src/apperror"
	"exceptionlogger/src/model"

	"gorm.io/gorm"
)

var applicationColumns = []string{"id", "app_name", "app_type_id", "created_date", "updated_date", "user_id"}

// ErrApplicationNotFound is returned when no ApplicationMaster row has the requested id.
var ErrApplicationNotFound = apperror.New(apperror.CodeNotFound, "Application not found")

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// FindByID loads one application or returns ErrApplicationNotFound.
func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*model.ApplicationMaster, error) {
	var app model.ApplicationMaster
	result := r.db.WithContext(ctx).
		Model(&model.ApplicationMaster{}).
		Select(applicationColumns).
		Where("id = ?", id).
		Scan(&app)
	if result.Error != nil {
		return nil, apperror.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return &app, nil
}

// FindTypeDescription looks up the description of an application type id.
// found is false when the id has no row.
func (r *ApplicationRepository) FindTypeDescription(ctx context.Context, typeID int64) (description string, found bool, err error) {
	var appType model.ApplicationTypeMaster
	result := r.db.WithContext(ctx).
		Model(&model.ApplicationTypeMaster{}).
		Select("id", "app_type").
		Where("id = ?", typeID).
		Scan(&appType)
	if result.Error != nil {
		return "", false, apperror.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return appType.AppType, true, nil
}

// FirstOrCreateType returns the id of the type described by appType, registering it when new.
func (r *ApplicationRepository) FirstOrCreateType(ctx context.Context, appType string) (int64, error) {
	row := model.ApplicationTypeMaster{}
	if err := r.db.WithContext(ctx).
		Where(&model.ApplicationTypeMaster{AppType: appType}).
		FirstOrCreate(&row).Error; err != nil {
		return 0, fmt.Errorf("resolve application type %q: %w", appType, err)
	}
	return row.ID, nil
}

// FirstOrCreate returns the application registered under name, registering it when new.
func (r *ApplicationRepository) FirstOrCreate(ctx context.Context, name string, typeID int64, now time.Time) (*model.ApplicationMaster, error) {
	app := model.ApplicationMaster{}
	if err := r.db.WithContext(ctx).
		Where(&model.ApplicationMaster{AppName: name}).
		Attrs(model.ApplicationMaster{AppTypeID: typeID, CreatedDate: &now, UpdatedDate: &now}).
		FirstOrCreate(&app).Error; err != nil {
		return nil, fmt.Errorf("resolve application %q: %w", name, err)
	}
	return &app, nil
}
