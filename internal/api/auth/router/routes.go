// Package router mendaftarkan route domain auth: login, profil, admin user.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/handler"
	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/middleware"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan seluruh route auth (system, auth, pengelolaan user) ke v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerUserAdminRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	router.Post("/auth/login", userHandler.HandleLogin)
	router.Post("/auth/login/firebase", userHandler.HandleLoginWithFirebase)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)
	return nil
}

func registerUserAdminRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Data pengguna tidak boleh terbaca publik: seluruh operasi
	// (termasuk baca) didaftarkan manual di belakang middleware admin.
	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "POST", "/insert-one", []fiber.Handler{adminMiddleware}, userHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find", []fiber.Handler{adminMiddleware}, userHandler.Find)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find-by-id/:id", []fiber.Handler{adminMiddleware}, userHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find-with-pagination", []fiber.Handler{adminMiddleware}, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "DELETE", "/delete-by-id/:id", []fiber.Handler{adminMiddleware}, userHandler.DeleteById)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "POST", "/block", []fiber.Handler{adminMiddleware}, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "POST", "/unblock", []fiber.Handler{adminMiddleware}, userHandler.HandleUnBlockUser)
	return nil
}
