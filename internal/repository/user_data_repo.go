package repository

import (
	"errors"

	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/internal/storage"
)

// userDataKey is the single fixed key for the device's profile.
const userDataKey = "USER_DATA"

type UserDataRepository interface {
	Get() (*models.UserData, error)
	Save(data *models.UserData) error
	Remove() error
}

type userDataRepo struct {
	store storage.Store
}

func NewUserDataRepo(store storage.Store) UserDataRepository {
	return &userDataRepo{store: store}
}

// Get returns the stored profile, or nil when none has been saved yet.
func (r *userDataRepo) Get() (*models.UserData, error) {
	var data models.UserData
	err := r.store.Get(userDataKey, &data)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *userDataRepo) Save(data *models.UserData) error {
	return r.store.Set(userDataKey, data)
}

func (r *userDataRepo) Remove() error {
	return r.store.Remove(userDataKey)
}
