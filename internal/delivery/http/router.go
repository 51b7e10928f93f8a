package http

import (
	"net/http"

	"medicit-backend/internal/delivery/http/handler"
	"medicit-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	permissionHandler  *handler.PermissionHandler
	userHandler        *handler.UserHandler
	roleHandler        *handler.RoleHandler
	stateHandler       *handler.StateHandler
	moduleHandler      *handler.ModuleHandler
	specialtyHandler   *handler.SpecialtyHandler
	appointmentHandler *handler.AppointmentHandler
	recordHandler      *handler.MedicalRecordHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	permissionHandler *handler.PermissionHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	stateHandler *handler.StateHandler,
	moduleHandler *handler.ModuleHandler,
	specialtyHandler *handler.SpecialtyHandler,
	appointmentHandler *handler.AppointmentHandler,
	recordHandler *handler.MedicalRecordHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		permissionHandler:  permissionHandler,
		userHandler:        userHandler,
		roleHandler:        roleHandler,
		stateHandler:       stateHandler,
		moduleHandler:      moduleHandler,
		specialtyHandler:   specialtyHandler,
		appointmentHandler: appointmentHandler,
		recordHandler:      recordHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth: consolidated login and profile refresh
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/usuario/{id}", r.authHandler.Consolidate).Methods(http.MethodGet)

	// Permissions
	permissions := api.PathPrefix("/permisos").Subrouter()
	permissions.HandleFunc("/rol/{idRol}", r.permissionHandler.GetRolePermissions).Methods(http.MethodGet)
	permissions.HandleFunc("/rol/{idRol}/catalogo", r.permissionHandler.GetRoleCatalog).Methods(http.MethodGet)
	permissions.HandleFunc("/rol/{idRol}/modulo/{idModulo}", r.permissionHandler.GetRoleModulePermissions).Methods(http.MethodGet)
	permissions.HandleFunc("/rol/{idRol}/modulos-accesibles", r.permissionHandler.GetAccessibleModules).Methods(http.MethodGet)
	permissions.HandleFunc("/usuario/{idUsuario}/modulo/{idModulo}/acceso", r.permissionHandler.CheckModuleAccess).Methods(http.MethodGet)
	permissions.HandleFunc("/usuario/{idUsuario}/modulo/{idModulo}/permiso/{nombrePermiso}", r.permissionHandler.CheckCapability).Methods(http.MethodGet)
	permissions.HandleFunc("/asignar", r.permissionHandler.Assign).Methods(http.MethodPost)
	permissions.HandleFunc("/{id}", r.permissionHandler.Remove).Methods(http.MethodDelete)

	// Users
	users := api.PathPrefix("/usuarios").Subrouter()
	users.HandleFunc("", r.userHandler.Register).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.GetAll).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.Deactivate).Methods(http.MethodDelete)
	users.HandleFunc("/{id}/contrasenia", r.userHandler.ChangePassword).Methods(http.MethodPut)
	users.HandleFunc("/{id}/especialidades", r.userHandler.AssignSpecialties).Methods(http.MethodPost)
	users.HandleFunc("/{id}/especialidades/{idEspecialidad}", r.userHandler.RemoveSpecialty).Methods(http.MethodDelete)

	// Roles
	roles := api.PathPrefix("/roles").Subrouter()
	roles.HandleFunc("", r.roleHandler.Create).Methods(http.MethodPost)
	roles.HandleFunc("", r.roleHandler.GetAll).Methods(http.MethodGet)
	roles.HandleFunc("/{id}", r.roleHandler.GetByID).Methods(http.MethodGet)
	roles.HandleFunc("/{id}", r.roleHandler.Update).Methods(http.MethodPut)
	roles.HandleFunc("/{id}", r.roleHandler.Delete).Methods(http.MethodDelete)

	// States
	states := api.PathPrefix("/estados").Subrouter()
	states.HandleFunc("", r.stateHandler.Create).Methods(http.MethodPost)
	states.HandleFunc("", r.stateHandler.GetAll).Methods(http.MethodGet)
	states.HandleFunc("/{id}", r.stateHandler.GetByID).Methods(http.MethodGet)
	states.HandleFunc("/{id}", r.stateHandler.Update).Methods(http.MethodPut)
	states.HandleFunc("/{id}", r.stateHandler.Delete).Methods(http.MethodDelete)

	// Modules
	modules := api.PathPrefix("/modulos").Subrouter()
	modules.HandleFunc("", r.moduleHandler.Create).Methods(http.MethodPost)
	modules.HandleFunc("", r.moduleHandler.GetAll).Methods(http.MethodGet)
	modules.HandleFunc("/{id}", r.moduleHandler.GetByID).Methods(http.MethodGet)
	modules.HandleFunc("/{id}", r.moduleHandler.Update).Methods(http.MethodPut)
	modules.HandleFunc("/{id}", r.moduleHandler.Delete).Methods(http.MethodDelete)

	// Specialties
	specialties := api.PathPrefix("/especialidades").Subrouter()
	specialties.HandleFunc("", r.specialtyHandler.Create).Methods(http.MethodPost)
	specialties.HandleFunc("", r.specialtyHandler.GetAll).Methods(http.MethodGet)
	specialties.HandleFunc("/{id}", r.specialtyHandler.GetByID).Methods(http.MethodGet)
	specialties.HandleFunc("/{id}", r.specialtyHandler.Update).Methods(http.MethodPut)
	specialties.HandleFunc("/{id}", r.specialtyHandler.Delete).Methods(http.MethodDelete)

	// Appointments
	appointments := api.PathPrefix("/citas").Subrouter()
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Medical records
	records := api.PathPrefix("/antecedentes").Subrouter()
	records.HandleFunc("", r.recordHandler.Create).Methods(http.MethodPost)
	records.HandleFunc("", r.recordHandler.GetAll).Methods(http.MethodGet)
	records.HandleFunc("/usuario/{idUsuario}", r.recordHandler.GetByUser).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.recordHandler.GetByID).Methods(http.MethodGet)
	records.HandleFunc("/{id}", r.recordHandler.Update).Methods(http.MethodPut)
	records.HandleFunc("/{id}", r.recordHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
