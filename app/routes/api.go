package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/zephyrlabs/zephyr/app/controllers"
	"github.com/zephyrlabs/zephyr/app/repositories"
	"github.com/zephyrlabs/zephyr/app/services"
	"github.com/zephyrlabs/zephyr/config"
	"github.com/zephyrlabs/zephyr/pkg/metrics"
	"github.com/zephyrlabs/zephyr/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI wires every storefront endpoint onto r. The paths are the
// contract with the browser client and must not change.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	itemRepo := repositories.NewItemRepository(db)
	userRepo := repositories.NewUserRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)

	itemController := controllers.NewItemController(services.NewCatalogService(itemRepo))
	authController := controllers.NewAuthController(services.NewAuthService(userRepo))
	cartController := controllers.NewCartController(services.NewCartService(itemRepo, purchaseRepo))

	// Catalog. The search route must be registered alongside {id}; chi
	// routes the static segment first.
	r.Get("/items", "items.list", itemController.List)
	r.Get("/items/search", "items.search", itemController.Search)
	r.Get("/items/{id}", "items.get", itemController.Get)

	// Identity.
	r.Post("/login", "auth.login", authController.Login)
	r.Post("/signup", "auth.signup", authController.Signup)
	r.Post("/logout", "auth.logout", authController.Logout)

	// Cart.
	cart := r.Group("/cart")
	cart.Post("/add", "cart.add", cartController.Add)
	cart.Post("/checkout", "cart.checkout", cartController.Checkout)

	r.Get("/users/{username}/transactions", "users.transactions", cartController.Transactions)

	// Operational endpoints.
	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok")) //nolint:errcheck
	})

	registerStatic(r)
}

// registerStatic serves the frontend assets for unmatched paths, the way
// the legacy server served its public/ directory.
func registerStatic(r *router.Router) {
	dir := config.PublicDir()
	if dir == "" {
		return
	}

	fs := http.FileServer(http.Dir(dir))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.NotFound(w, req)
			return
		}

		// Only delegate paths that exist under the public dir; everything
		// else stays a plain 404.
		path := filepath.Join(dir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err != nil || info.IsDir() && req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}

		fs.ServeHTTP(w, req)
	})
}
