package server

import (
	"context"
	"errors"
	"time"

	"speedxpress/internal/apperr"
	"speedxpress/internal/handlers"
	"speedxpress/internal/middleware"
	"speedxpress/internal/notify"
	"speedxpress/internal/payments"
	"speedxpress/internal/repositories"
	"speedxpress/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Dependencies are the process-wide collaborators the server is built from.
// They are constructed once at start-up and shared by every request.
type Dependencies struct {
	Store     *repositories.Store
	Notifier  notify.Notifier
	Processor payments.Processor
	// Cache is optional.
	Cache services.AccountTypeCache

	JWTSecret string
	Currency  string
	Logger    *zap.Logger
	// AccessLog enables the Fiber request logger.
	AccessLog bool
}

// New wires services and handlers and returns the Fiber app.
func New(deps Dependencies) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	authService := services.NewAuthService(deps.JWTSecret, log)
	userService := services.NewUserService(deps.Store.Users, deps.Cache, log)
	customerService := services.NewCustomerService(deps.Store.Customers)
	shopService := services.NewShopService(deps.Store.Shops, deps.Notifier, log)
	parcelService := services.NewParcelService(deps.Store.Parcels, deps.Notifier, log)
	paymentService := services.NewPaymentService(deps.Store.Parcels, deps.Processor, deps.Notifier, deps.Currency, log)
	deletionService := services.NewDeletionService(deps.Store, deps.Cache, log)

	app := fiber.New(fiber.Config{
		AppName:      "speedxpress",
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "SpeedXpress server is running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		status, code := "healthy", fiber.StatusOK
		if err := deps.Store.Ping(ctx); err != nil {
			log.Warn("health check failed", zap.Error(err))
			status, code = "unhealthy", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	authRequired := middleware.AuthRequired(authService, log)

	handlers.NewUserHandler(userService, authService, log).RegisterRoutes(app, authRequired)
	handlers.NewCustomerHandler(customerService, log).RegisterRoutes(app, authRequired)
	handlers.NewParcelHandler(parcelService, log).RegisterRoutes(app, authRequired)
	handlers.NewShopHandler(shopService, log).RegisterRoutes(app, authRequired)
	handlers.NewPaymentHandler(paymentService, log).RegisterRoutes(app, authRequired)
	handlers.NewDeleteHandler(deletionService, log).RegisterRoutes(app, authRequired)

	return app
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics, in the same envelope.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Operation failed"
		kind := apperr.KindInternal

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
			switch code {
			case fiber.StatusNotFound:
				kind = apperr.KindNotFound
			case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest:
				kind = apperr.KindInvalidArgument
			}
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   kind,
			"message": message,
			"data":    nil,
		})
	}
}
