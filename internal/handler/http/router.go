package http

import (
	"log/slog"
	"os"

	"github.com/cosmedis/backoffice-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	presenceHandler PresenceHandler,
	commissionHandler CommissionHandler,
	paymentHandler PaymentHandler,
	productHandler ProductHandler,
	stockHandler StockHandler,
	deliveryHandler DeliveryHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "cosmedis-backoffice"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
				r.Post("/deactivate", employeeHandler.DeactivateEmployee)
			})
		})

		r.Route("/presence", func(r chi.Router) {
			r.Get("/", presenceHandler.ListRecords)
			r.Post("/", presenceHandler.CreateRecord)
			r.Get("/summary", presenceHandler.MonthlySummary)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", presenceHandler.GetRecord)
				r.Put("/", presenceHandler.UpdateRecord)
				r.Delete("/", presenceHandler.DeleteRecord)
			})
		})

		r.Route("/commissions", func(r chi.Router) {
			r.Put("/", commissionHandler.SetEntry)
			r.Route("/employees/{employeeId}", func(r chi.Router) {
				r.Get("/", commissionHandler.ListByEmployee)
				r.Post("/bulk-apply", commissionHandler.BulkApply)
				r.Get("/products/{productId}", commissionHandler.ResolveEntry)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", paymentHandler.ListPayments)
			r.Post("/", paymentHandler.CreatePayment)
			r.Get("/calculate", paymentHandler.Calculate)
			r.Post("/from-calculation", paymentHandler.CreateFromCalculation)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", paymentHandler.GetPayment)
				r.Put("/", paymentHandler.UpdatePayment)
				r.Delete("/", paymentHandler.DeletePayment)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", productHandler.GetProduct)
				r.Put("/", productHandler.UpdateProduct)
				r.Delete("/", productHandler.DeleteProduct)
				r.Get("/batches", productHandler.ListBatches)
				r.Post("/batches", productHandler.RecordBatch)
			})
		})

		r.Route("/stock", func(r chi.Router) {
			r.Route("/movements", func(r chi.Router) {
				r.Get("/", stockHandler.ListMovements)
				r.Post("/", stockHandler.RecordMovement)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", stockHandler.GetMovement)
					r.Delete("/", stockHandler.DeleteMovement)
				})
			})
			r.Get("/levels/{productId}", stockHandler.GetLevels)
		})

		r.Route("/deliveries", func(r chi.Router) {
			r.Get("/", deliveryHandler.ListDeliveries)
			r.Post("/", deliveryHandler.CreateDelivery)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deliveryHandler.GetDelivery)
				r.Post("/transition", deliveryHandler.Transition)
			})
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Get("/", deliveryHandler.ListSettlements)
			r.Post("/", deliveryHandler.CreateSettlement)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deliveryHandler.GetSettlement)
				r.Post("/decide", deliveryHandler.DecideSettlement)
			})
		})
	})

	return r
}
