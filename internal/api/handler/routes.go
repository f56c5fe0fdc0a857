package handler

import (
	"net/http"

	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/internal/api/handler/router"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/timesheeting"
	"github.com/vfg2006/invoice-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Customers(customerRepo repository.CustomerRepository, timesheeter timesheeting.Timesheeter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(customerRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(customerRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/customers/:id/entries",
			Method:      http.MethodGet,
			Handler:     GetCustomerEntries(timesheeter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/timesheet",
			Method:      http.MethodPut,
			Handler:     ApplyTimesheet(timesheeter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAccountant()},
		},
	}
}

func Reports(reporter reporting.Reporter, invoicer invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/time-chart",
			Method:      http.MethodGet,
			Handler:     GetTimeChart(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/roi",
			Method:      http.MethodGet,
			Handler:     GetROIRanking(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAccountant()},
		},
		{
			Path:        "/v1/reports/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueMetrics(invoicer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAccountant()},
		},
	}
}

func Invoices(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     ListInvoices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/:id/pay",
			Method:      http.MethodPost,
			Handler:     MarkInvoicePaid(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAccountant()},
		},
		{
			Path:        "/v1/invoices/:id/rectify",
			Method:      http.MethodPost,
			Handler:     RectifyInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAccountant()},
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
