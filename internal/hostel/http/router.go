package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/httpx"
	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/sharmapg/hostel/pkg/slogx"

	_ "github.com/sharmapg/hostel/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService       *service.AuthService
	BootstrapService  *service.BootstrapService
	ResidentService   *service.ResidentService
	InquiryService    *service.InquiryService
	PaymentService    *service.PaymentService
	RoomStatusService *service.RoomStatusService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInquiries()
	r.registerResidents()
	r.registerPayments()
	r.registerRoomStatus()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Hostel Admin API
//	@version		0.1.0
//	@description	Backend for a hostel/PG accommodation business: a public inquiry intake plus a
//	@description	password-protected admin API covering residents, inquiries, rent payments, and
//	@description	room occupancy.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /api/auth/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /bootstrap - strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /api/auth/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInquiries() {
	h := &InquiriesHandler{InquiryService: r.InquiryService}

	// POST /inquiries is the public contact form - lenient by IP so a shared
	// college NAT doesn't lock everyone out.
	r.Mux.Handle("POST /api/inquiries",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedHandled := httpx.Chain(http.HandlerFunc(h.HandleMarkHandled),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/inquiries", securedList)
	r.Mux.Handle("PUT /api/inquiries/{id}/handled", securedHandled)
}

func (r *Router) registerResidents() {
	h := &ResidentsHandler{
		ResidentService: r.ResidentService,
		PaymentService:  r.PaymentService,
	}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedPayments := httpx.Chain(http.HandlerFunc(h.HandleListPayments),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /api/residents", securedList)
	r.Mux.Handle("POST /api/residents", securedCreate)
	r.Mux.Handle("PUT /api/residents/{id}", securedUpdate)
	r.Mux.Handle("DELETE /api/residents/{id}", securedDelete)
	r.Mux.Handle("GET /api/residents/{id}/payments", securedPayments)
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{PaymentService: r.PaymentService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedStatus := httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/payments", securedList)
	r.Mux.Handle("POST /api/payments", securedCreate)
	r.Mux.Handle("PUT /api/payments/{id}/status", securedStatus)
}

func (r *Router) registerRoomStatus() {
	h := &RoomStatusHandler{RoomStatusService: r.RoomStatusService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedUpsert := httpx.Chain(http.HandlerFunc(h.HandleUpsert),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/room-status", securedList)
	r.Mux.Handle("PUT /api/room-status", securedUpsert)
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
