package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Users       *handlers.UserHandler
	Projects    *handlers.ProjectHandler
	Memberships *handlers.MembershipHandler
	Tasks       *handlers.TaskHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/users/signup", h.Users.SignUp)
		api.POST("/users/login", h.Users.Login)
	}

	secured := api.Group("", auth)
	{
		secured.GET("/users/me", h.Users.Me)

		secured.POST("/projects", h.Projects.CreateProject)
		secured.GET("/projects", h.Projects.ListProjects)
		secured.PATCH("/projects", h.Projects.UpdateProjects)
		secured.GET("/projects/count", h.Projects.CountProjects)
		secured.GET("/projects/:id", h.Projects.GetProject)
		secured.PATCH("/projects/:id", h.Projects.UpdateProject)
		secured.PUT("/projects/:id", h.Projects.ReplaceProject)
		secured.DELETE("/projects/:id", h.Projects.DeleteProject)

		secured.POST("/projects/:id/project-users", h.Memberships.AssignUser)
		secured.GET("/projects/:id/project-users", h.Memberships.ListMemberships)
		secured.PATCH("/projects/:id/project-users", h.Memberships.UpdateMembershipsRole)
		secured.DELETE("/projects/:id/project-users", h.Memberships.DeleteMemberships)
		secured.GET("/project-users/:id/user", h.Memberships.GetMembershipUser)

		secured.GET("/projects/:id/tasks", h.Tasks.ListProjectTasks)
		secured.POST("/projects/:id/tasks", h.Tasks.CreateTask)
		secured.PATCH("/projects/:id/tasks/:taskId", h.Tasks.UpdateTask)
		secured.DELETE("/projects/:id/tasks/:taskId", h.Tasks.DeleteTask)
		secured.GET("/tasks/:id/assignee", h.Tasks.GetTaskAssignee)
		secured.GET("/tasks/:id/creator", h.Tasks.GetTaskCreator)
		secured.GET("/tasks/:id/updater", h.Tasks.GetTaskUpdater)
	}
}
