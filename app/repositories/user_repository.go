package repositories

import (
	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/pkg/orm"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername looks up a user by username.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := orm.New(r.db).Model(&models.User{}).Where("username = ?", username).First(&user)
	return user, err
}

// FindByEmail looks up a user by email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.New(r.db).Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// Create persists a new user record. The unique indexes on username and
// email make concurrent duplicate signups fail here rather than both
// passing the existence checks.
func (r *UserRepository) Create(user *models.User) error {
	return orm.New(r.db).Create(user)
}
