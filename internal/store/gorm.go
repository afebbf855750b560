package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placebook/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// New wraps db. The same value works for PostgreSQL and SQLite.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Places() PlaceStore           { return &placeStore{db: s.db} }
func (s *GormStore) Users() UserStore             { return &userStore{db: s.db} }
func (s *GormStore) Categories() CategoryStore    { return &categoryStore{db: s.db} }
func (s *GormStore) Friendships() FriendshipStore { return &friendshipStore{db: s.db} }

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// translate maps driver and gorm errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicate(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// region --- Places ---

type placeStore struct {
	db *gorm.DB
}

func (s *placeStore) withPreloads(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Category").Preload("User").Preload("SharedWith")
}

func (s *placeStore) Create(ctx context.Context, place *models.Place) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(place).Error)
}

func (s *placeStore) Save(ctx context.Context, place *models.Place) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(place).Error)
}

func (s *placeStore) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)
	if err := db.Where("place_id = ?", id).Delete(&models.PlaceShare{}).Error; err != nil {
		return translate(err)
	}
	result := db.Delete(&models.Place{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *placeStore) DeleteByOwner(ctx context.Context, ownerID uint) error {
	db := s.db.WithContext(ctx)
	owned := db.Model(&models.Place{}).Select("id").Where("user_id = ?", ownerID)
	if err := db.Where("place_id IN (?)", owned).Delete(&models.PlaceShare{}).Error; err != nil {
		return translate(err)
	}
	return translate(db.Where("user_id = ?", ownerID).Delete(&models.Place{}).Error)
}

func (s *placeStore) FindByID(ctx context.Context, id uint) (*models.Place, error) {
	var place models.Place
	if err := s.withPreloads(ctx).First(&place, id).Error; err != nil {
		return nil, translate(err)
	}
	return &place, nil
}

func (s *placeStore) FindOwned(ctx context.Context, ownerID, id uint) (*models.Place, error) {
	var place models.Place
	err := s.withPreloads(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&place).Error
	if err != nil {
		return nil, translate(err)
	}
	return &place, nil
}

func (s *placeStore) FindByOwnerAndName(ctx context.Context, ownerID uint, name string) (*models.Place, error) {
	var place models.Place
	err := s.db.WithContext(ctx).Where("user_id = ? AND name = ?", ownerID, name).First(&place).Error
	if err != nil {
		return nil, translate(err)
	}
	return &place, nil
}

func (s *placeStore) ListByOwner(ctx context.Context, ownerID uint, filter PlaceFilter) ([]models.Place, error) {
	query := s.withPreloads(ctx).Where("places.user_id = ?", ownerID)

	switch filter.Visibility {
	case VisibilityPublic:
		query = query.Where("places.is_public = ?", true)
	case VisibilityPrivate:
		query = query.Where("places.is_public = ?", false)
	}

	if filter.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = places.category_id").
			Where("categories.name = ?", filter.Category)
	}

	var places []models.Place
	if err := query.Order("places.id").Find(&places).Error; err != nil {
		return nil, translate(err)
	}
	return places, nil
}

func (s *placeStore) ListSharedWith(ctx context.Context, userID uint) ([]models.Place, error) {
	var places []models.Place
	err := s.withPreloads(ctx).
		Joins("JOIN place_shares ON place_shares.place_id = places.id").
		Where("place_shares.user_id = ?", userID).
		Order("places.id").
		Find(&places).Error
	if err != nil {
		return nil, translate(err)
	}
	return places, nil
}

func (s *placeStore) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Place{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, translate(err)
}

func (s *placeStore) AddShare(ctx context.Context, placeID, userID uint) error {
	share := models.PlaceShare{PlaceID: placeID, UserID: userID}
	return translate(s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&share).Error)
}

func (s *placeStore) DeleteSharesForUser(ctx context.Context, userID uint) error {
	return translate(s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.PlaceShare{}).Error)
}

// endregion

// region --- Users ---

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

// Save writes the profile columns. The place counter is only moved by
// ReservePlaceSlot and ReleasePlaceSlot.
func (s *userStore) Save(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Omit("PlaceCount").Save(user).Error)
}

func (s *userStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *userStore) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *userStore) List(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	db := s.db.WithContext(ctx)

	var totalItems int64
	if err := db.Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, 0, translate(err)
	}

	var users []models.User
	if err := db.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, translate(err)
	}
	return users, totalItems, nil
}

func (s *userStore) ReservePlaceSlot(ctx context.Context, userID uint, limit int) (bool, error) {
	query := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID)
	if limit >= 0 {
		query = query.Where("place_count < ?", limit)
	}
	result := query.UpdateColumn("place_count", gorm.Expr("place_count + ?", 1))
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (s *userStore) ReleasePlaceSlot(ctx context.Context, userID uint) error {
	return translate(s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND place_count > 0", userID).
		UpdateColumn("place_count", gorm.Expr("place_count - ?", 1)).Error)
}

// endregion

// region --- Categories ---

type categoryStore struct {
	db *gorm.DB
}

func (s *categoryStore) Create(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s *categoryStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(&models.Category{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *categoryStore) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *categoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

// endregion

// region --- Friendships ---

type friendshipStore struct {
	db *gorm.DB
}

func (s *friendshipStore) withUsers(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Requester").Preload("Receiver")
}

func (s *friendshipStore) Create(ctx context.Context, friendship *models.Friendship) error {
	friendship.PairKey = models.PairKey(friendship.RequesterID, friendship.ReceiverID)
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(friendship).Error)
}

func (s *friendshipStore) Save(ctx context.Context, friendship *models.Friendship) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(friendship).Error)
}

func (s *friendshipStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Friendship{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *friendshipStore) DeleteForUser(ctx context.Context, userID uint) error {
	return translate(s.db.WithContext(ctx).
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Delete(&models.Friendship{}).Error)
}

func (s *friendshipStore) Find(ctx context.Context, requesterID, receiverID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := s.withUsers(ctx).
		Where("requester_id = ? AND receiver_id = ?", requesterID, receiverID).
		First(&friendship).Error
	if err != nil {
		return nil, translate(err)
	}
	return &friendship, nil
}

func (s *friendshipStore) FindPair(ctx context.Context, a, b uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := s.withUsers(ctx).Where("pair_key = ?", models.PairKey(a, b)).First(&friendship).Error
	if err != nil {
		return nil, translate(err)
	}
	return &friendship, nil
}

func (s *friendshipStore) ListForUser(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := s.withUsers(ctx).
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?", userID, userID, status).
		Order("id").
		Find(&friendships).Error
	if err != nil {
		return nil, translate(err)
	}
	return friendships, nil
}

func (s *friendshipStore) ListIncoming(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := s.withUsers(ctx).
		Where("receiver_id = ? AND status = ?", userID, status).
		Order("id").
		Find(&friendships).Error
	if err != nil {
		return nil, translate(err)
	}
	return friendships, nil
}

// endregion
