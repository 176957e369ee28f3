package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
)

const (
	HealthRoute  = "/health"
	MetricsRoute = "/metrics"

	ProjectPathRoute     = "/projects"
	ProjectRoute         = "/:id"
	SubmitProjectRoute   = "/:id/submit"
	ReviewProjectRoute   = "/:id/review"
	ProjectFilesRoute    = "/:id/files"
	DownloadFileRoute    = "/:id/files/:fileId/download"
	RequestCollabRoute   = "/:id/collaborate/request"
	CollabRequestsRoute  = "/:id/collaborate/requests"
	CollaboratorsRoute   = "/:id/collaborators"
	InviteRoute          = "/:id/collaborators/invite"
	CollaboratorRoute    = "/:id/collaborators/:userId"
	RepositoryRoute      = "/:id/repository"
	RepositoryItemsRoute = "/:id/repository/items"
	RepositoryItemRoute  = "/:id/repository/items/:itemId"
	ChangeRequestsRoute  = "/:id/change-requests"
	PullRequestsRoute    = "/:id/pull-requests"
	PullRequestRoute     = "/:id/pull-requests/:prId"

	RespondCollabRoute       = "/collaborate/requests/:requestId/respond"
	ReviewChangeRequestRoute = "/change-requests/:id/review"
)

type Handler struct {
	service        domain.SharingService
	tokens         middleware.TokenParser
	corsOrigins    []string
	maxUploadBytes int64
}

// Options - параметры HTTP слоя, не относящиеся к бизнес-логике
type Options struct {
	CORSOrigins []string
	MaxUploadMB int64
}

func NewHandler(service domain.SharingService, tokens middleware.TokenParser, opts Options) *Handler {
	registerJSONTagNames()

	maxUpload := opts.MaxUploadMB
	if maxUpload <= 0 {
		maxUpload = 25
	}
	return &Handler{
		service:        service,
		tokens:         tokens,
		corsOrigins:    opts.CORSOrigins,
		maxUploadBytes: maxUpload << 20,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(h.corsOrigins),
	)

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	authorized := r.Group("", middleware.AuthMiddleware(h.tokens))
	write := middleware.RequireMember()

	projectGroup := authorized.Group(ProjectPathRoute)
	{
		projectGroup.POST("", write, h.CreateProject)
		projectGroup.GET(ProjectRoute, h.GetProject)
		projectGroup.DELETE(ProjectRoute, write, h.DeleteProject)
		projectGroup.POST(SubmitProjectRoute, write, h.SubmitProject)
		projectGroup.POST(ReviewProjectRoute, write, h.ReviewProject)

		projectGroup.GET(ProjectFilesRoute, h.GetProjectFiles)
		projectGroup.POST(ProjectFilesRoute, write, h.UploadProjectFile)
		projectGroup.GET(DownloadFileRoute, h.DownloadProjectFile)

		projectGroup.POST(RequestCollabRoute, write, h.RequestCollaboration)
		projectGroup.GET(CollabRequestsRoute, h.GetCollaborationRequests)
		projectGroup.GET(CollaboratorsRoute, h.GetProjectCollaborators)
		projectGroup.POST(CollaboratorsRoute, write, h.AddCollaborator)
		projectGroup.POST(InviteRoute, write, h.InviteCollaborator)
		projectGroup.DELETE(CollaboratorRoute, write, h.RemoveCollaborator)

		projectGroup.GET(RepositoryRoute, h.ListRepositoryItems)
		projectGroup.POST(RepositoryItemsRoute, write, h.CreateRepositoryItem)
		projectGroup.GET(RepositoryItemRoute, h.GetRepositoryItem)
		projectGroup.PUT(RepositoryItemRoute, write, h.UpdateRepositoryItem)
		projectGroup.DELETE(RepositoryItemRoute, write, h.DeleteRepositoryItem)

		projectGroup.GET(ChangeRequestsRoute, h.ListChangeRequests)
		projectGroup.POST(ChangeRequestsRoute, write, h.CreateChangeRequest)

		projectGroup.GET(PullRequestsRoute, h.GetProjectPullRequests)
		projectGroup.POST(PullRequestsRoute, write, h.CreatePullRequest)
		projectGroup.GET(PullRequestRoute, h.GetPullRequest)
		projectGroup.PATCH(PullRequestRoute, write, h.UpdatePullRequestStatus)
	}

	authorized.POST(RespondCollabRoute, write, h.RespondToCollaborationRequest)
	authorized.POST(ReviewChangeRequestRoute, write, h.ReviewChangeRequest)

	return r
}
