package service

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/httpclients/storage"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	CreateUser(ctx context.Context, u entity.User) error
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	Users(ctx context.Context) ([]entity.User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, isActive bool) error
	SetUserPresence(ctx context.Context, id uuid.UUID, presence entity.UserPresence) error
	UserDependencyCount(ctx context.Context, id uuid.UUID) (int, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	Roles(ctx context.Context) ([]entity.Role, error)
	RoleByID(ctx context.Context, id uuid.UUID) (entity.Role, error)
	PermissionsByRole(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error)
	GrantPermission(ctx context.Context, roleID, permissionID uuid.UUID) error
	RevokePermission(ctx context.Context, roleID, permissionID uuid.UUID) error

	Departments(ctx context.Context) ([]entity.Department, error)
	CreateDepartment(ctx context.Context, d entity.Department) error
	UserDepartments(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]entity.UserDepartment, error)
	HasActivePrimaryAssignment(ctx context.Context, userID uuid.UUID) (bool, error)
	CreateUserDepartment(ctx context.Context, a entity.UserDepartment) error
	EndUserDepartments(ctx context.Context, userID uuid.UUID) error
	ClearEndedPrimaryFlags(ctx context.Context) (int64, error)

	Statuses(ctx context.Context) ([]entity.Status, error)
	Priorities(ctx context.Context) ([]entity.Priority, error)
	Labels(ctx context.Context) ([]entity.Label, error)

	CreateProject(ctx context.Context, p entity.ConstructionProject) error
	ProjectByID(ctx context.Context, id uuid.UUID) (entity.ConstructionProject, error)
	Projects(ctx context.Context, includeArchived bool) ([]entity.ConstructionProject, error)
	UpdateProject(ctx context.Context, p entity.ConstructionProject) error
	ArchiveProject(ctx context.Context, id uuid.UUID) error

	CreateTask(ctx context.Context, t entity.Task) error
	TaskByID(ctx context.Context, id uuid.UUID) (entity.Task, error)
	Tasks(ctx context.Context, isConstruction bool, projectID *uuid.UUID) ([]entity.Task, error)
	Identifiers(ctx context.Context, isConstruction bool) ([]string, error)
	UpdateTask(ctx context.Context, t entity.Task) error
	SetTaskStatus(ctx context.Context, id, statusID uuid.UUID) error
	SetTaskAssignee(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error
	ReleaseAssignee(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	CreateAttachment(ctx context.Context, a entity.Attachment) error
	AttachmentByID(ctx context.Context, id uuid.UUID) (entity.Attachment, error)
	Attachments(ctx context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error)
	MimeCounts(ctx context.Context) (map[string]int, error)
	AttachmentTotals(ctx context.Context, since time.Time) (total int, totalSize int64, recent int, err error)
	DeleteAttachment(ctx context.Context, id uuid.UUID) error

	CreateDocument(ctx context.Context, d entity.Document) error
	DocumentByID(ctx context.Context, id uuid.UUID) (entity.Document, error)
	CreateComment(ctx context.Context, c entity.DocumentComment) error
	CommentsByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentComment, error)
	DeleteCommentCascade(ctx context.Context, commentID uuid.UUID) error
	CreateMention(ctx context.Context, mention entity.DocumentMention) error
	UnreadMentions(ctx context.Context, userID uuid.UUID) ([]entity.DocumentMention, error)
	MarkMentionRead(ctx context.Context, mentionID uuid.UUID) error
	LinkTask(ctx context.Context, link entity.DocumentTask) error
	DocumentTasks(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentTask, error)
}

type Storage interface {
	IssueUploadURL(ctx context.Context, fileName, mimeType string) (storage.UploadTarget, error)
	DeleteObject(ctx context.Context, storageRef string) error
}

type Events interface {
	TaskAssigned(ctx context.Context, task entity.Task, assigneeID uuid.UUID)
	MentionCreated(ctx context.Context, mention entity.DocumentMention)
}

type Service struct {
	repo       Repository
	storage    Storage
	events     Events
	jwtPubKey  *rsa.PublicKey
	taskPrefix string
}

func New(
	repo Repository,
	storage Storage,
	events Events,
	jwtPubKey *rsa.PublicKey,
	taskPrefix string,
) *Service {
	return &Service{
		repo:       repo,
		storage:    storage,
		events:     events,
		jwtPubKey:  jwtPubKey,
		taskPrefix: taskPrefix,
	}
}
