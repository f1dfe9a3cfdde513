package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// RouterDeps dependencias para registrar las rutas de la API.
type RouterDeps struct {
	JWTSecret          string
	AuthHandler        *AuthHandler
	ProductHandler     *ProductHandler
	SupplierHandler    *SupplierHandler
	OrderHandler       *OrderHandler
	RequisitionHandler *RequisitionHandler
}

// Router registra las rutas de la API sobre la app Fiber.
//
//	/api/auth/*                 público
//	/api/products, /suppliers   sesión; escritura solo admin
//	/api/orders, /requisitions  sesión (empleado o admin)
//	/api/admin/*                solo admin
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.AuthHandler.Register)
	authGroup.Post("/login", deps.AuthHandler.Login)

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	products := api.Group("/products", authRequired)
	products.Get("/", deps.ProductHandler.List)
	products.Get("/:id", deps.ProductHandler.GetByID)
	products.Post("/", adminOnly, deps.ProductHandler.Create)
	products.Put("/:id", adminOnly, deps.ProductHandler.Update)
	products.Delete("/:id", adminOnly, deps.ProductHandler.Delete)
	products.Post("/:id/supplier", adminOnly, deps.ProductHandler.AttachSupplier)

	suppliers := api.Group("/suppliers", authRequired)
	suppliers.Get("/", deps.SupplierHandler.List)
	suppliers.Get("/:id", deps.SupplierHandler.GetByID)
	suppliers.Post("/", adminOnly, deps.SupplierHandler.Create)

	orders := api.Group("/orders", authRequired)
	orders.Post("/", deps.OrderHandler.Submit)
	orders.Get("/mine", deps.OrderHandler.Mine)
	orders.Delete("/:id", deps.OrderHandler.Remove)

	requisitions := api.Group("/requisitions", authRequired)
	requisitions.Post("/", deps.RequisitionHandler.Submit)
	requisitions.Get("/", deps.RequisitionHandler.List)

	admin := api.Group("/admin", authRequired, adminOnly)
	admin.Get("/orders/pending", deps.OrderHandler.Pending)
	admin.Post("/orders/:id/approve", deps.OrderHandler.Approve)
	admin.Post("/orders/:id/reject", deps.OrderHandler.Reject)
	admin.Get("/requisitions/pending", deps.RequisitionHandler.Pending)
	admin.Post("/requisitions/:id/approve", deps.RequisitionHandler.Approve)
	admin.Post("/requisitions/:id/reject", deps.RequisitionHandler.Reject)
}
