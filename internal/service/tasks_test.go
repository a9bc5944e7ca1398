package service_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/mocks"
	"github.com/samandr77/stroika/internal/service"
	"go.uber.org/mock/gomock"
)

const testIdentifierPrefix = "СТРФ"

type TestService struct {
	repo    *mocks.MockRepository
	storage *mocks.MockStorage
	events  *mocks.MockEvents
	s       *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRepository(ctrl)
	mockStorage := mocks.NewMockStorage(ctrl)
	mockEvents := mocks.NewMockEvents(ctrl)

	s := service.New(mockRepo, mockStorage, mockEvents, nil, testIdentifierPrefix)

	return &TestService{
		repo:    mockRepo,
		storage: mockStorage,
		events:  mockEvents,
		s:       s,
	}
}

func ctxWithUser(user entity.User) context.Context {
	return entity.SetUserToContext(context.Background(), user)
}

func testOwner() entity.User {
	return entity.User{
		ID:      uuid.Must(uuid.NewV4()),
		Name:    "Владелец",
		RoleID:  uuid.Must(uuid.NewV4()),
		IsOwner: true,
	}
}

func TestGenerateIdentifier(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	got, err := service.GenerateIdentifier(testIdentifierPrefix, nil)
	r.NoError(err)
	r.Regexp(regexp.MustCompile(`^СТРФ-\d{3}$`), got)
}

func TestGenerateIdentifier_AvoidsCollisions(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// Every suffix but 042 is taken.
	existing := make(map[string]struct{}, 999)

	for i := 0; i < 1000; i++ {
		if i == 42 {
			continue
		}

		existing[fmt.Sprintf("СТРФ-%03d", i)] = struct{}{}
	}

	got, err := service.GenerateIdentifier(testIdentifierPrefix, existing)
	r.NoError(err)
	r.Equal("СТРФ-042", got)
}

func TestGenerateIdentifier_Exhausted(t *testing.T) {
	t.Parallel()

	existing := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		existing[fmt.Sprintf("СТРФ-%03d", i)] = struct{}{}
	}

	_, err := service.GenerateIdentifier(testIdentifierPrefix, existing)
	require.ErrorIs(t, err, entity.ErrIdentifierExhausted)
}

func TestGenerateIdentifier_OtherPrefixDoesNotCount(t *testing.T) {
	t.Parallel()

	existing := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		existing[fmt.Sprintf("ОБЪ-%03d", i)] = struct{}{}
	}

	got, err := service.GenerateIdentifier(testIdentifierPrefix, existing)
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestService_CreateTask(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	assigneeID := uuid.Must(uuid.NewV4())

	params := service.CreateTaskParams{
		Title:      "Залить фундамент",
		StatusID:   uuid.Must(uuid.NewV4()),
		PriorityID: uuid.Must(uuid.NewV4()),
		AssigneeID: &assigneeID,
	}

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().Identifiers(gomock.Any(), false).Return([]string{"СТРФ-001"}, nil)

	var created entity.Task

	ts.repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task entity.Task) error {
			created = task
			return nil
		})
	ts.events.EXPECT().TaskAssigned(gomock.Any(), gomock.Any(), assigneeID)

	task, err := ts.s.CreateTask(ctx, params)
	r.NoError(err)

	r.Equal(created.ID, task.ID)
	r.Equal(params.Title, task.Title)
	r.Equal(user.ID, task.CreatedBy)
	r.Regexp(regexp.MustCompile(`^СТРФ-\d{3}$`), task.Identifier)
	r.NotEqual("СТРФ-001", task.Identifier)
}

func TestService_CreateTask_Unauthorized(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	_, err := ts.s.CreateTask(context.Background(), service.CreateTaskParams{
		Title:      "Задача",
		StatusID:   uuid.Must(uuid.NewV4()),
		PriorityID: uuid.Must(uuid.NewV4()),
	})
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_CreateTask_Forbidden(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	// A role without tasks:create cannot create even with a valid body.
	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "tasks", Action: "view"}}, nil)

	_, err := ts.s.CreateTask(ctx, service.CreateTaskParams{
		Title:      "Задача",
		StatusID:   uuid.Must(uuid.NewV4()),
		PriorityID: uuid.Must(uuid.NewV4()),
	})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CreateTask_Validation(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	ctx := ctxWithUser(testOwner())

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	_, err := ts.s.CreateTask(ctx, service.CreateTaskParams{
		Title:      "   ",
		StatusID:   uuid.Must(uuid.NewV4()),
		PriorityID: uuid.Must(uuid.NewV4()),
	})
	require.ErrorIs(t, err, entity.ErrValidationFailed)

	_, err = ts.s.CreateTask(ctx, service.CreateTaskParams{Title: "Задача"})
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_CreateTask_PartialOnAttachmentFailure(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(testOwner())

	params := service.CreateTaskParams{
		Title:      "Задача с вложением",
		StatusID:   uuid.Must(uuid.NewV4()),
		PriorityID: uuid.Must(uuid.NewV4()),
		Attachments: []service.AttachmentMeta{
			{FileName: "смета.pdf", FileSize: 1024, MimeType: "application/pdf", StorageRef: "ref-1"},
		},
	}

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), gomock.Any()).Return(nil, nil)
	ts.repo.EXPECT().Identifiers(gomock.Any(), false).Return(nil, nil)
	ts.repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).
		Return(errors.New("attachments table unavailable"))

	// The task row exists even though the follow-up step failed, so the
	// created task comes back alongside the error.
	task, err := ts.s.CreateTask(ctx, params)
	r.Error(err)
	r.False(task.ID.IsNil())
}

func TestService_CreateTask_Subtasks(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := ctxWithUser(testOwner())

	params := service.CreateTaskParams{
		Title:      "Монтаж каркаса",
		StatusID:   uuid.Must(uuid.NewV4()),
		PriorityID: uuid.Must(uuid.NewV4()),
		Subtasks: []service.SubtaskParams{
			{Title: "Армирование", StatusID: uuid.Must(uuid.NewV4()), PriorityID: uuid.Must(uuid.NewV4())},
			{Title: "Опалубка", StatusID: uuid.Must(uuid.NewV4()), PriorityID: uuid.Must(uuid.NewV4())},
		},
	}

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), gomock.Any()).Return(nil, nil)
	ts.repo.EXPECT().Identifiers(gomock.Any(), false).Return(nil, nil)

	var createdTasks []entity.Task

	ts.repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task entity.Task) error {
			createdTasks = append(createdTasks, task)
			return nil
		}).
		Times(3)

	task, err := ts.s.CreateTask(ctx, params)
	r.NoError(err)
	r.Len(createdTasks, 3)

	identifiers := map[string]struct{}{}

	for _, created := range createdTasks {
		identifiers[created.Identifier] = struct{}{}
	}

	// Parent and both subtasks got distinct identifiers.
	r.Len(identifiers, 3)

	r.Equal(&task.ID, createdTasks[1].ParentID)
	r.Equal(&task.ID, createdTasks[2].ParentID)
}

func TestService_AssignTask(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	taskID := uuid.Must(uuid.NewV4())
	assigneeID := uuid.Must(uuid.NewV4())
	task := entity.Task{ID: taskID, Identifier: "СТРФ-007", Title: "Задача"}

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().SetTaskAssignee(gomock.Any(), taskID, &assigneeID).Return(nil)
	ts.repo.EXPECT().TaskByID(gomock.Any(), taskID).Return(task, nil)
	ts.events.EXPECT().TaskAssigned(gomock.Any(), task, assigneeID)

	err := ts.s.AssignTask(ctx, taskID, &assigneeID)
	r.NoError(err)
}

func TestService_AssignTask_Forbidden(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "tasks", Action: "view"}}, nil)

	err := ts.s.AssignTask(ctx, uuid.Must(uuid.NewV4()), nil)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_MoveTask_ManageImpliesEdit(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	taskID := uuid.Must(uuid.NewV4())
	statusID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "tasks", Action: "manage"}}, nil)
	ts.repo.EXPECT().SetTaskStatus(gomock.Any(), taskID, statusID).Return(nil)

	require.NoError(t, ts.s.MoveTask(ctx, taskID, statusID))
}

func TestService_ReleaseUserAssignments(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	userID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().ReleaseAssignee(gomock.Any(), userID).Return(3, nil)
	ts.repo.EXPECT().EndUserDepartments(gomock.Any(), userID).Return(nil)

	require.NoError(t, ts.s.ReleaseUserAssignments(context.Background(), userID))
}
