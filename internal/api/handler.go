package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/httpclients/storage"
	"github.com/samandr77/stroika/internal/service"
)

type Service interface {
	CurrentPermissions(ctx context.Context) (access.Snapshot, error)
	ProjectAccess(ctx context.Context, projectID uuid.UUID) (access.ProjectAccess, error)
	RolePermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error)
	GrantPermission(ctx context.Context, roleID, permissionID uuid.UUID) error
	RevokePermission(ctx context.Context, roleID, permissionID uuid.UUID) error

	DepartmentTree(ctx context.Context) ([]*entity.DepartmentNode, error)
	UserHierarchy(ctx context.Context, userID uuid.UUID) ([][]entity.Department, error)
	CreateDepartment(ctx context.Context, name, displayName string, parentID *uuid.UUID) (entity.Department, error)
	AssignUserToDepartment(ctx context.Context, userID, departmentID uuid.UUID, positionID *uuid.UUID, isPrimary bool) (entity.UserDepartment, error)

	CreateTask(ctx context.Context, params service.CreateTaskParams) (entity.Task, error)
	Tasks(ctx context.Context, isConstruction bool, projectID *uuid.UUID, filter entity.TaskFilter) ([]entity.Task, error)
	TasksBoard(ctx context.Context, isConstruction bool, projectID *uuid.UUID) (map[uuid.UUID][]entity.Task, error)
	TaskByID(ctx context.Context, id uuid.UUID) (entity.Task, error)
	MoveTask(ctx context.Context, id, statusID uuid.UUID) error
	AssignTask(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error
	UpdateTask(ctx context.Context, task entity.Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error

	CreateProject(ctx context.Context, params service.CreateProjectParams) (entity.ConstructionProject, error)
	ProjectByID(ctx context.Context, id uuid.UUID) (entity.ConstructionProject, error)
	Projects(ctx context.Context, includeArchived bool) ([]entity.ConstructionProject, error)
	UpdateProject(ctx context.Context, p entity.ConstructionProject) error
	ArchiveProject(ctx context.Context, id uuid.UUID) error

	Statuses(ctx context.Context) ([]entity.Status, error)
	Priorities(ctx context.Context) ([]entity.Priority, error)
	Labels(ctx context.Context) ([]entity.Label, error)

	GlobalSearch(ctx context.Context, category entity.SearchCategory, query string) (entity.SearchResults, error)

	AttachmentsPage(ctx context.Context, filter entity.AttachmentFilter) (entity.AttachmentPage, error)
	AttachmentStats(ctx context.Context) (entity.AttachmentStats, error)
	IssueUploadURL(ctx context.Context, fileName, mimeType string) (storage.UploadTarget, error)
	RecordAttachment(ctx context.Context, issueID uuid.UUID, meta service.AttachmentMeta) (entity.Attachment, error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error

	CreateDocument(ctx context.Context, title, content string, projectID *uuid.UUID) (entity.Document, error)
	DocumentByID(ctx context.Context, id uuid.UUID) (entity.Document, error)
	AddComment(ctx context.Context, documentID uuid.UUID, parentCommentID *uuid.UUID, body string, mentionedUserIDs []uuid.UUID) (entity.DocumentComment, error)
	CommentTree(ctx context.Context, documentID uuid.UUID) ([]*entity.CommentNode, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	UnreadMentions(ctx context.Context) ([]entity.DocumentMention, error)
	MarkMentionRead(ctx context.Context, mentionID uuid.UUID) error
	LinkTaskToDocument(ctx context.Context, documentID, taskID uuid.UUID, relation entity.DocumentTaskRelation) error
	DocumentTasks(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentTask, error)

	ProvisionUser(ctx context.Context, params service.ProvisionUserParams) (entity.User, error)
	Users(ctx context.Context) ([]entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	Roles(ctx context.Context) ([]entity.Role, error)
	SetPresence(ctx context.Context, presence entity.UserPresence) error
	DeactivateUser(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// @title Stroika API
// @version 1.0
// @description This is an API for construction project management.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Проверка состояния сервиса
// @Description  Возвращает статус работы сервиса
// @Tags         health
// @Success      200 {string} string "Сервис работает!"
// @Failure      500 {object} ResponseError "Сервис не работает"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
	}
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	return uuid.FromString(chi.URLParam(r, param))
}

func queryUUIDPtr(values map[string][]string, key string) (*uuid.UUID, error) {
	vals, ok := values[key]
	if !ok || len(vals) == 0 || vals[0] == "" {
		return nil, nil
	}

	id, err := uuid.FromString(vals[0])
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func queryTimePtr(values map[string][]string, key string) (*time.Time, error) {
	vals, ok := values[key]
	if !ok || len(vals) == 0 || vals[0] == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, vals[0])
	if err != nil {
		return nil, err
	}

	return &t, nil
}
