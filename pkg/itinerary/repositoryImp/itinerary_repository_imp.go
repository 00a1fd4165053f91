package repositoryImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"travelplanner/entities"
	"travelplanner/pkg/itinerary/repository"
)

type itineraryRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) repository.ItineraryRepository {
	return &itineraryRepo{db: db, now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }}
}

func (r *itineraryRepo) Create(ctx context.Context, it *entities.Itinerary) error {
	if it.Interests == nil {
		it.Interests = []string{}
	}
	now := r.now()
	it.CreatedAt, it.UpdatedAt = now, now
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itineraryRepo) List(ctx context.Context) ([]entities.Itinerary, error) {
	out := []entities.Itinerary{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itineraryRepo) FindByID(ctx context.Context, id uint) (*entities.Itinerary, error) {
	return findByID(r.db.WithContext(ctx), id)
}

func (r *itineraryRepo) Update(ctx context.Context, id uint, apply func(*entities.Itinerary) error) (*entities.Itinerary, error) {
	var out *entities.Itinerary
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		it, err := findByID(tx, id)
		if err != nil {
			return err
		}
		if err := apply(it); err != nil {
			return err
		}
		it.ID = id
		if it.Interests == nil {
			it.Interests = []string{}
		}
		now := r.now()
		if !now.After(it.UpdatedAt) {
			now = it.UpdatedAt.Add(time.Microsecond)
		}
		it.UpdatedAt = now
		if err := tx.Save(it).Error; err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itineraryRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Itinerary{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func findByID(db *gorm.DB, id uint) (*entities.Itinerary, error) {
	var it entities.Itinerary
	if err := db.First(&it, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}
