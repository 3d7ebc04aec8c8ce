package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmsight/handlers"
	"farmsight/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.Handle("/token", middleware.JWTMiddleware(
		http.HandlerFunc(handlers.GetCurrentUser))).Methods("GET")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestLogger)
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/profile/password", handlers.ChangePassword).Methods("PUT")

	// Field profiles
	registerCRUDRoutes(api, "/fields", crudHandlers{
		getAll: handlers.GetAllFields,
		create: handlers.CreateField,
		getOne: handlers.GetField,
		update: handlers.UpdateField,
		delete: handlers.DeleteField,
		batch:  handlers.BatchFields,
	})
	api.HandleFunc("/fields/{id}/insights", handlers.GetFieldInsights).Methods("GET")

	// Crop records. Fixed paths go first so /records/{id} cannot
	// swallow them.
	api.HandleFunc("/records/upload", handlers.UploadCropRecordsCSV).Methods("POST")
	api.HandleFunc("/records/export", handlers.ExportCropRecords).Methods("GET")
	api.HandleFunc("/records/statistics", handlers.GetCropStatistics).Methods("GET")
	registerCRUDRoutes(api, "/records", crudHandlers{
		getAll: handlers.GetAllCropRecords,
		create: handlers.CreateCropRecord,
		getOne: handlers.GetCropRecord,
		update: handlers.UpdateCropRecord,
		delete: handlers.DeleteCropRecord,
		batch:  handlers.BatchCropRecords,
	})

	// Advisory endpoints
	api.HandleFunc("/dashboard/estimate", handlers.GetYieldEstimate).Methods("GET")
	api.HandleFunc("/dashboard/recommendations", handlers.GetRecommendations).Methods("GET")
	api.HandleFunc("/dashboard/market/{crop}", handlers.GetMarketInsight).Methods("GET")
	api.HandleFunc("/dashboard/weather/{location}", handlers.GetWeather).Methods("GET")

	// File uploads
	api.HandleFunc("/files/upload", handlers.UploadFileHandler).Methods("POST")

	// =====================================================
	// Admin Routes (require admin role)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Handle("/users", middleware.RequireRole([]string{"admin"},
		http.HandlerFunc(handlers.GetAllUsers))).Methods("GET")
	admin.Handle("/users/{id}/active", middleware.RequireRole([]string{"admin"},
		http.HandlerFunc(handlers.SetUserActive))).Methods("PUT")

	return r
}

type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
	batch  func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")
	if h.batch != nil {
		router.HandleFunc(path+"/batch", h.batch).Methods("POST")
	}
	router.HandleFunc(path+"/{id}", h.getOne).Methods("GET")
	router.HandleFunc(path+"/{id}", h.update).Methods("PUT")
	router.HandleFunc(path+"/{id}", h.delete).Methods("DELETE")
}
