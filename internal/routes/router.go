package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/havenstay/backend/internal/app"
	"github.com/havenstay/backend/internal/controllers"
	"github.com/havenstay/backend/internal/middleware"
)

// NewRouter mounts every endpoint on a fresh mux router. Login, register
// and the health probe stay public; everything else sits behind the JWT
// middleware.
func NewRouter(application *app.App) *mux.Router {
	healthCtrl := controllers.NewHealthController(application.Store)
	authCtrl := controllers.NewAuthController(application.AuthService)
	taskCtrl := controllers.NewTaskController(application.TaskRepo)
	propertyCtrl := controllers.NewPropertyController(application.PropertyRepo)
	bookingCtrl := controllers.NewBookingController(application.BookingRepo)

	router := mux.NewRouter()
	router.HandleFunc(Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(AuthLogin, authCtrl.Login).Methods(http.MethodPost)
	router.HandleFunc(AuthRegister, authCtrl.Register).Methods(http.MethodPost)

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(application.Config.JWTSecret))

	protected.HandleFunc(AuthLogout, authCtrl.Logout).Methods(http.MethodPost)

	protected.HandleFunc(Tasks, taskCtrl.List).Methods(http.MethodGet)
	protected.HandleFunc(Tasks, taskCtrl.Create).Methods(http.MethodPost)
	protected.HandleFunc(TaskByID, taskCtrl.Update).Methods(http.MethodPatch)
	protected.HandleFunc(TaskByID, taskCtrl.Delete).Methods(http.MethodDelete)
	protected.HandleFunc(TaskToggle, taskCtrl.Toggle).Methods(http.MethodPost)

	protected.HandleFunc(Properties, propertyCtrl.List).Methods(http.MethodGet)
	protected.HandleFunc(Properties, propertyCtrl.Create).Methods(http.MethodPost)
	protected.HandleFunc(PropertySearch, propertyCtrl.Search).Methods(http.MethodGet)
	protected.HandleFunc(PropertyByID, propertyCtrl.Update).Methods(http.MethodPatch)
	protected.HandleFunc(PropertyByID, propertyCtrl.Delete).Methods(http.MethodDelete)
	protected.HandleFunc(PropertyApprove, propertyCtrl.Approve).Methods(http.MethodPost)

	protected.HandleFunc(Bookings, bookingCtrl.ListForRenter).Methods(http.MethodGet)
	protected.HandleFunc(Bookings, bookingCtrl.Create).Methods(http.MethodPost)
	protected.HandleFunc(BookingsOwner, bookingCtrl.ListForOwner).Methods(http.MethodGet)
	protected.HandleFunc(BookingStatus, bookingCtrl.SetStatus).Methods(http.MethodPost)
	protected.HandleFunc(BookingCancel, bookingCtrl.Cancel).Methods(http.MethodPost)

	return router
}
