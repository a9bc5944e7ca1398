package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/stroika/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/permissions/me", h.PermissionsMe)
			r.Get("/roles", h.Roles)
			r.Get("/roles/{id}/permissions", h.RolePermissions)
			r.Post("/roles/{id}/permissions/{permissionId}", h.GrantPermission)
			r.Delete("/roles/{id}/permissions/{permissionId}", h.RevokePermission)

			r.Post("/users", h.ProvisionUser)
			r.Get("/users", h.Users)
			r.Put("/users/me/presence", h.SetPresence)
			r.Get("/users/{id}", h.UserByID)
			r.Delete("/users/{id}", h.DeleteUser)
			r.Put("/users/{id}/deactivate", h.DeactivateUser)
			r.Get("/users/{id}/hierarchy", h.UserHierarchy)

			r.Post("/departments", h.CreateDepartment)
			r.Get("/departments/tree", h.DepartmentTree)
			r.Post("/departments/assignments", h.AssignUserToDepartment)

			r.Post("/projects", h.CreateProject)
			r.Get("/projects", h.Projects)
			r.Get("/projects/{id}", h.ProjectByID)
			r.Put("/projects/{id}", h.UpdateProject)
			r.Put("/projects/{id}/archive", h.ArchiveProject)
			r.Get("/projects/{id}/access", h.ProjectAccess)

			r.Post("/tasks", h.CreateTask)
			r.Get("/tasks", h.Tasks)
			r.Get("/tasks/board", h.TasksBoard)
			r.Get("/tasks/{id}", h.TaskByID)
			r.Put("/tasks/{id}", h.UpdateTask)
			r.Delete("/tasks/{id}", h.DeleteTask)
			r.Put("/tasks/{id}/move", h.MoveTask)
			r.Put("/tasks/{id}/assignee", h.AssignTask)
			r.Post("/tasks/{id}/attachments", h.RecordAttachment)

			r.Get("/lookups", h.Lookups)
			r.Get("/search", h.GlobalSearch)

			r.Get("/attachments", h.Attachments)
			r.Get("/attachments/stats", h.AttachmentStats)
			r.Post("/attachments/upload-url", h.IssueUploadURL)
			r.Delete("/attachments/{id}", h.DeleteAttachment)

			r.Post("/documents", h.CreateDocument)
			r.Get("/documents/{id}", h.DocumentByID)
			r.Post("/documents/{id}/comments", h.AddComment)
			r.Get("/documents/{id}/comments", h.CommentTree)
			r.Post("/documents/{id}/tasks", h.LinkTaskToDocument)
			r.Get("/documents/{id}/tasks", h.DocumentTasks)
			r.Delete("/comments/{commentId}", h.DeleteComment)
			r.Get("/mentions/unread", h.UnreadMentions)
			r.Put("/mentions/{id}/read", h.MarkMentionRead)
		})
	})

	return router
}
