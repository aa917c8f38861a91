package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/auth"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	ClientUC         *usecase.ClientUseCase
	BotuserUC        *usecase.BotuserUseCase
	PcUC             *usecase.PcUseCase
	ComputerUC       *usecase.ComputerUseCase
	TicketUC         *usecase.TicketUseCase
	BotticketUC      *usecase.BotticketUseCase
	OpticketUC       *usecase.OpticketUseCase
	WebuserUC        *usecase.WebuserUseCase
	OperatorUC       *usecase.OperatorUseCase
	StaffUC          *usecase.StaffUseCase
	RecommendationUC *usecase.RecommendationUseCase
	TestingUC        *usecase.TestingUseCase
	Helpdesk         ports.Helpdesk
	Drive            ports.DriveStore
	ClientRepo       repository.ClientRepository
	StaticAPIKey     string
	JWTSecret        string
	MetricsHandler   fiber.Handler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (registro/login/reset públicos, el resto con token)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password/:token?", authHandler.ResetPassword)

	verify := VerifyRequest(deps.StaticAPIKey, deps.JWTSecret)
	authGroup.Get("/currentUser", verify, authHandler.CurrentUser)
	authGroup.Put("/enable/:id", verify, authHandler.Enable)

	// Rutas protegidas (token de sesión o x-api-key del bot)
	protected := app.Group("/", verify)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Post("/web", userHandler.CreateWeb)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/", clientHandler.Update)
	clients.Get("/:clientId/email", clientHandler.GetEmail)

	botusers := protected.Group("/botusers")
	botuserHandler := NewBotuserHandler(deps.BotuserUC)
	botusers.Get("/", botuserHandler.List)
	botusers.Post("/", botuserHandler.Upsert)
	botusers.Get("/:id", botuserHandler.GetByID)
	botusers.Put("/:id", botuserHandler.Update)
	botusers.Delete("/:id", botuserHandler.Delete)

	pcs := protected.Group("/pcs")
	pcHandler := NewPcHandler(deps.PcUC)
	pcs.Get("/", pcHandler.List)
	pcs.Post("/", pcHandler.Upsert)
	pcs.Put("/", pcHandler.Upsert) // alta/actualización por teamviewer_id
	pcs.Get("/:id", pcHandler.GetByID)
	pcs.Put("/:id", pcHandler.Update)

	computers := protected.Group("/computers")
	computerHandler := NewComputerHandler(deps.ComputerUC)
	computers.Get("/", computerHandler.List)
	computers.Get("/:id", computerHandler.GetByID)
	computers.Put("/:id", computerHandler.Update)

	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)

	bottickets := protected.Group("/bottickets")
	botticketHandler := NewBotticketHandler(deps.BotticketUC)
	bottickets.Get("/", botticketHandler.List)
	bottickets.Post("/", botticketHandler.Create)

	optickets := protected.Group("/optickets")
	opticketHandler := NewOpticketHandler(deps.OpticketUC)
	optickets.Get("/", opticketHandler.List)
	optickets.Post("/", opticketHandler.Create)
	optickets.Delete("/", opticketHandler.Delete)

	webusers := protected.Group("/webusers")
	webuserHandler := NewWebuserHandler(deps.WebuserUC)
	webusers.Get("/", webuserHandler.List)
	webusers.Post("/", webuserHandler.Create)
	webusers.Put("/", webuserHandler.Update)

	operators := protected.Group("/operators")
	operatorHandler := NewOperatorHandler(deps.OperatorUC)
	operators.Get("/", operatorHandler.List)
	operators.Post("/", operatorHandler.Create)
	protected.Post("/login", operatorHandler.Login)

	staffs := protected.Group("/staffs")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staffs.Get("/", staffHandler.List)

	recommendations := protected.Group("/recommendations")
	recommendationHandler := NewRecommendationHandler(deps.RecommendationUC)
	recommendations.Get("/", recommendationHandler.List)
	recommendations.Post("/", recommendationHandler.Create)
	recommendations.Put("/:id", recommendationHandler.Update)
	recommendations.Delete("/:id", recommendationHandler.Delete)

	freshdesk := protected.Group("/freshdesk")
	freshdeskHandler := NewFreshdeskHandler(deps.Helpdesk, deps.ClientRepo)
	freshdesk.Get("/tickets", freshdeskHandler.ListTickets)
	freshdesk.Post("/tickets", freshdeskHandler.CreateTicket)
	freshdesk.Get("/tickets/:id", freshdeskHandler.GetTicket)

	upload := protected.Group("/upload")
	uploadHandler := NewUploadHandler(deps.Drive)
	upload.Get("/folders", uploadHandler.ListFolders)
	upload.Post("/folders", uploadHandler.CreateFolder)
	upload.Get("/files/:folderId", uploadHandler.ListFiles)
	upload.Post("/", uploadHandler.Upload)
	upload.Get("/download/:fileId", uploadHandler.Download)
	upload.Delete("/files/:id", uploadHandler.Delete)
	upload.Delete("/folders/:id", uploadHandler.Delete)

	testing := protected.Group("/testing")
	testingHandler := NewTestingHandler(deps.TestingUC)
	testing.Get("/", testingHandler.Ping)
	testing.Get("/clients", testingHandler.Clients)
	testing.Get("/botusers", testingHandler.Botusers)
	testing.Get("/bottickets", testingHandler.Bottickets)
	testing.Get("/pcs", testingHandler.Pcs)
	testing.Get("/client-botusers", testingHandler.ClientBotusers)

	if deps.MetricsHandler != nil {
		app.Get("/metrics", deps.MetricsHandler)
	}
}
