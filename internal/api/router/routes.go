package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/middleware"
)

// ============================================================================
// PENTING: BUG FIBER V3 - CARA MENDAFTARKAN MIDDLEWARE
// ============================================================================
//
// Fiber v3 punya bug serius pada pendaftaran middleware langsung di route.
// Middleware TIDAK akan dipanggil bila didaftarkan cara langsung!
//
// SALAH (TIDAK BEKERJA):
//    router.Get("/path", middleware.AuthMiddleware(""), handler)
//    → middleware dilewati, request lolos tanpa autentikasi!
//
// BENAR (WAJIB DIPAKAI):
//    authMiddleware := middleware.AuthMiddleware("")
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{authMiddleware}, handler)
//    → middleware dipanggil lewat .Use() pada group
//
// Bila menemukan route yang memakai cara langsung, segera perbaiki
// menjadi RegisterRouteWithMiddleware.
// ============================================================================

// CRUDHandler mendefinisikan interface untuk handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	FindOneAndUpdate(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	FindOneAndDelete(c fiber.Ctx) error

	// Lainnya
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	UpsertMany(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router mengelola pendaftaran route API
type Router struct {
	app *fiber.App
}

// CRUDConfig mengatur operasi yang diizinkan per collection
type CRUDConfig struct {
	// Create
	InsOne  bool // Insert One
	InsMany bool // Insert Many

	// Read
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination

	// Update
	UpdOne  bool // Update One
	UpdMany bool // Update Many
	UpdById bool // Update By Id
	FindUpd bool // Find One And Update

	// Delete
	DelOne  bool // Delete One
	DelMany bool // Delete Many
	DelById bool // Delete By Id
	FindDel bool // Find One And Delete

	// Lainnya
	Count    bool // Count Documents
	Distinct bool // Distinct
	Upsert   bool // Upsert One
	UpsMany  bool // Upsert Many
	Exists   bool // Document Exists
}

// Preset config per collection. Konten publik desa memakai ReadWriteConfig:
// operasi baca terbuka untuk pengunjung, operasi tulis hanya untuk admin.
var (
	// ReadOnlyConfig hanya mengizinkan pembacaan (find, find-one, count, distinct, exists).
	ReadOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: false, UpdMany: false, UpdById: false,
		FindUpd: false,
		DelOne:  false, DelMany: false, DelById: false,
		FindDel: false,
		Count:   true, Distinct: true,
		Upsert: false, UpsMany: false, Exists: true,
	}

	// ReadWriteConfig mengizinkan CRUD penuh.
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true,
		FindUpd: true,
		DelOne:  true, DelMany: true, DelById: true,
		FindDel: true,
		Count:   true, Distinct: true,
		Upsert: true, UpsMany: true, Exists: true,
	}

	// SingletonConfig untuk collection satu-dokumen (mis. statistik penduduk):
	// find-one, find, upsert-one, update-by-id, tanpa insert/delete massal.
	SingletonConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: false, Paginate: false,
		UpdOne: false, UpdMany: false, UpdById: true,
		FindUpd: false,
		DelOne:  false, DelMany: false, DelById: false,
		FindDel: false,
		Count:   false, Distinct: false,
		Upsert: true, UpsMany: false, Exists: true,
	}
)

// RoutePrefix memuat prefix dasar API
type RoutePrefix struct {
	Base string // Prefix dasar (/api)
	V1   string // Prefix API versi 1 (/api/v1)
}

// NewRoutePrefix membuat RoutePrefix dengan nilai default
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter membuat instance Router baru
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware mendaftarkan route dengan middleware lewat .Use()
// (satu-satunya cara yang bekerja benar di Fiber v3, lihat catatan di atas).
//
// Contoh pemakaian:
//
//	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
//	RegisterRouteWithMiddleware(router, "/berita", "POST", "/insert-one", []fiber.Handler{adminMiddleware}, handler)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Middleware hanya berlaku untuk route dalam group ini
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Path relatif karena prefix sudah ada di group
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes mendaftarkan route CRUD sebuah collection.
// Operasi baca dibuka untuk publik (website desa dibaca tanpa login),
// operasi tulis dilindungi middleware admin.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)

	// Operasi create
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{adminMiddleware}, h.InsertOne)
	}
	if config.InsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-many", []fiber.Handler{adminMiddleware}, h.InsertMany)
	}

	// Operasi read (publik)
	if config.Find {
		router.Get(prefix+"/find", h.Find)
	}
	if config.FindOne {
		router.Get(prefix+"/find-one", h.FindOne)
	}
	if config.FindById {
		router.Get(prefix+"/find-by-id/:id", h.FindOneById)
	}
	if config.FindIds {
		router.Post(prefix+"/find-by-ids", h.FindManyByIds)
	}
	if config.Paginate {
		router.Get(prefix+"/find-with-pagination", h.FindWithPagination)
	}

	// Operasi update
	if config.UpdOne {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-one", []fiber.Handler{adminMiddleware}, h.UpdateOne)
	}
	if config.UpdMany {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-many", []fiber.Handler{adminMiddleware}, h.UpdateMany)
	}
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{adminMiddleware}, h.UpdateById)
	}
	if config.FindUpd {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/find-one-and-update", []fiber.Handler{adminMiddleware}, h.FindOneAndUpdate)
	}

	// Operasi delete
	if config.DelOne {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-one", []fiber.Handler{adminMiddleware}, h.DeleteOne)
	}
	if config.DelMany {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-many", []fiber.Handler{adminMiddleware}, h.DeleteMany)
	}
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{adminMiddleware}, h.DeleteById)
	}
	if config.FindDel {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/find-one-and-delete", []fiber.Handler{adminMiddleware}, h.FindOneAndDelete)
	}

	// Operasi lain
	if config.Count {
		router.Get(prefix+"/count", h.CountDocuments)
	}
	if config.Distinct {
		router.Get(prefix+"/distinct/:field", h.Distinct)
	}
	if config.Upsert {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-one", []fiber.Handler{adminMiddleware}, h.Upsert)
	}
	if config.UpsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/upsert-many", []fiber.Handler{adminMiddleware}, h.UpsertMany)
	}
	if config.Exists {
		router.Get(prefix+"/exists", h.DocumentExists)
	}
}

// RegisterFunc adalah fungsi pendaftar route sebuah domain (di-export oleh domain/router)
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mendaftarkan seluruh route aplikasi. Caller meneruskan Register
// tiap domain satu per satu untuk menghindari import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
