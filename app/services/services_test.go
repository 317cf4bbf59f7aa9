package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zephyrlabs/zephyr/app/models"
	"github.com/zephyrlabs/zephyr/app/repositories"
	"github.com/zephyrlabs/zephyr/pkg/identity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "zephyr_test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Item{}, &models.User{}, &models.PurchaseHistory{}))
	return db
}

func newCatalog(t *testing.T, items ...models.Item) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	if len(items) > 0 {
		require.NoError(t, db.Create(&items).Error)
	}
	return NewCatalogService(repositories.NewItemRepository(db)), db
}

func TestCatalogServiceGet(t *testing.T) {
	svc, _ := newCatalog(t, models.Item{Name: "Beanie", Price: 12.99, Category: "accessories", Capacity: 35})

	t.Run("found", func(t *testing.T) {
		item, err := svc.Get("1")
		require.NoError(t, err)
		assert.Equal(t, "Beanie", item.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get("42")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	// Malformed ids are a not-found, never an internal error.
	t.Run("malformed id", func(t *testing.T) {
		for _, raw := range []string{"abc", "1.5", "-1", ""} {
			_, err := svc.Get(raw)
			assert.ErrorIs(t, err, ErrItemNotFound, "id %q", raw)
		}
	})
}

func TestCatalogServiceSearch(t *testing.T) {
	svc, _ := newCatalog(t,
		models.Item{Name: "Oxford Shirt", Description: "Cotton", Category: "shirts", Capacity: 5},
		models.Item{Name: "Windbreaker", Description: "Shell", Category: "outerwear", Capacity: 2},
	)

	items, err := svc.Search("oxford", "shirts")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Oxford Shirt", items[0].Name)

	items, err = svc.Search("oxford", "outerwear")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAuthServiceSignup(t *testing.T) {
	db := testDB(t)
	users := repositories.NewUserRepository(db)
	svc := NewAuthService(users)

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := svc.Signup("ada", "ada@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "s3cret", user.Password)
		assert.True(t, identity.CheckPassword(user.Password, "s3cret"))
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, in := range [][3]string{
			{"", "a@b.c", "pw"},
			{"bob", "", "pw"},
			{"bob", "a@b.c", ""},
		} {
			_, err := svc.Signup(in[0], in[1], in[2])
			assert.ErrorIs(t, err, ErrMissingCredentials)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Signup("ada", "new@example.com", "pw")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Signup("grace", "ada@example.com", "pw")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("duplicates never insert", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	_, err := svc.Signup("ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login("ada", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "ada", user.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login("nobody", "s3cret")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("ada", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func newCart(t *testing.T, items ...models.Item) (*CartService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	if len(items) > 0 {
		require.NoError(t, db.Create(&items).Error)
	}
	return NewCartService(
		repositories.NewItemRepository(db),
		repositories.NewPurchaseRepository(db),
	), db
}

func TestCartServiceAddToCart(t *testing.T) {
	t.Run("returns pre-decrement snapshot and takes one unit", func(t *testing.T) {
		svc, db := newCart(t, models.Item{Name: "Windbreaker", Price: 74.99, Capacity: 3})

		snapshot, err := svc.AddToCart("ada", "1")
		require.NoError(t, err)
		// The cart page stores the state the shopper saw, before the take.
		assert.Equal(t, 3, snapshot.Capacity)

		var item models.Item
		require.NoError(t, db.First(&item, 1).Error)
		assert.Equal(t, 2, item.Capacity)
	})

	t.Run("anonymous shopper", func(t *testing.T) {
		svc, _ := newCart(t, models.Item{Name: "Windbreaker", Capacity: 3})
		_, err := svc.AddToCart("", "1")
		assert.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("out of stock leaves capacity at zero", func(t *testing.T) {
		svc, db := newCart(t, models.Item{Name: "Peacoat", Price: 149.99, Capacity: 0})

		_, err := svc.AddToCart("ada", "1")
		assert.ErrorIs(t, err, ErrOutOfStock)

		var item models.Item
		require.NoError(t, db.First(&item, 1).Error)
		assert.Equal(t, 0, item.Capacity)
	})

	t.Run("unknown or malformed item id", func(t *testing.T) {
		svc, _ := newCart(t, models.Item{Name: "Windbreaker", Capacity: 3})

		_, err := svc.AddToCart("ada", "99")
		assert.ErrorIs(t, err, ErrItemNotFound)

		_, err = svc.AddToCart("ada", "not-a-number")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestCartServiceCheckout(t *testing.T) {
	t.Run("records the purchase", func(t *testing.T) {
		svc, _ := newCart(t)

		purchase, err := svc.Checkout("ada", "1\n2\n2", 99.97)
		require.NoError(t, err)
		assert.NotZero(t, purchase.ID)

		history, err := svc.Transactions("ada")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "1\n2\n2", history[0].Items)
		assert.Equal(t, 99.97, history[0].TotalPrice)
	})

	t.Run("anonymous shopper", func(t *testing.T) {
		svc, _ := newCart(t)
		_, err := svc.Checkout("", "1", 9.99)
		assert.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, _ := newCart(t)
		for _, items := range []string{"", "   ", "\n"} {
			_, err := svc.Checkout("ada", items, 0)
			assert.ErrorIs(t, err, ErrEmptyCart, "items %q", items)
		}
	})
}

func TestCartServiceTransactions(t *testing.T) {
	svc, _ := newCart(t)

	// A user with no purchases gets an empty list, not an error.
	history, err := svc.Transactions("nobody")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	_, err = svc.Checkout("ada", "1", 39.99)
	require.NoError(t, err)
	_, err = svc.Checkout("ada", "2", 49.99)
	require.NoError(t, err)

	history, err = svc.Transactions("ada")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "1", history[0].Items)
	assert.Equal(t, "2", history[1].Items)
}
