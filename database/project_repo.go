package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/portfolio-site/backend/errs"
	"github.com/portfolio-site/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered newest first
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("id DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID. A missing row surfaces as
// errs.ErrNotFound so callers can tell it apart from a store failure.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database. The store assigns the id.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update overwrites all fields of an existing project
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id. Deleting an id that does
// not exist is not an error.
func (r *ProjectRepo) Delete(id int) error {
	return r.db.Delete(&models.Project{}, id).Error
}
