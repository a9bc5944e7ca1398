package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/service"
)

type CreateTaskRequest struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	StatusID       uuid.UUID           `json:"statusId"`
	PriorityID     uuid.UUID           `json:"priorityId"`
	AssigneeID     *uuid.UUID          `json:"assigneeId"`
	LabelIDs       []uuid.UUID         `json:"labelIds"`
	ProjectID      *uuid.UUID          `json:"projectId"`
	DueDate        *time.Time          `json:"dueDate"`
	IsConstruction bool                `json:"isConstruction"`
	Attachments    []AttachmentRequest `json:"attachments"`
	Subtasks       []SubtaskRequest    `json:"subtasks"`
}

type AttachmentRequest struct {
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	MimeType   string `json:"mimeType"`
	StorageRef string `json:"storageRef"`
}

type SubtaskRequest struct {
	Title      string    `json:"title"`
	StatusID   uuid.UUID `json:"statusId"`
	PriorityID uuid.UUID `json:"priorityId"`
}

// CreateTask godoc
// @Summary      Создание задачи
// @Description  Создает задачу вместе с вложениями и подзадачами
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CreateTaskRequest true "Параметры задачи"
// @Success      201 {object} entity.Task
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaskRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	params := service.CreateTaskParams{
		Title:          req.Title,
		Description:    req.Description,
		StatusID:       req.StatusID,
		PriorityID:     req.PriorityID,
		AssigneeID:     req.AssigneeID,
		LabelIDs:       req.LabelIDs,
		ProjectID:      req.ProjectID,
		DueDate:        req.DueDate,
		IsConstruction: req.IsConstruction,
	}

	for _, a := range req.Attachments {
		params.Attachments = append(params.Attachments, service.AttachmentMeta{
			FileName:   a.FileName,
			FileSize:   a.FileSize,
			MimeType:   a.MimeType,
			StorageRef: a.StorageRef,
		})
	}

	for _, sub := range req.Subtasks {
		params.Subtasks = append(params.Subtasks, service.SubtaskParams{
			Title:      sub.Title,
			StatusID:   sub.StatusID,
			PriorityID: sub.PriorityID,
		})
	}

	task, err := h.s.CreateTask(ctx, params)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		// A created ID means the first insert succeeded and only a
		// follow-up step failed; the client gets the task anyway.
		if !task.ID.IsNil() {
			SendJSON(ctx, w, http.StatusCreated, task)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании задачи")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, task)
}

// Tasks godoc
// @Summary      Список задач
// @Description  Возвращает задачи одной вселенной с фасетными фильтрами
// @Tags         tasks
// @Produce      json
// @Param        isConstruction query bool false "Строительные задачи"
// @Param        projectId query string false "ID объекта"
// @Param        statuses query string false "ID статусов через запятую"
// @Param        assignees query string false "ID исполнителей через запятую, unassigned для задач без исполнителя"
// @Param        priorities query string false "ID приоритетов через запятую"
// @Param        labels query string false "ID меток через запятую"
// @Param        projects query string false "ID объектов через запятую"
// @Success      200 {array} entity.Task
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks [get]
func (h *Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	isConstruction := r.URL.Query().Get("isConstruction") == "true"

	projectID, err := queryUUIDPtr(r.URL.Query(), "projectId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный projectId")
		return
	}

	filter, err := parseTaskFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры фильтра: "+err.Error())
		return
	}

	tasks, err := h.s.Tasks(ctx, isConstruction, projectID, filter)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении списка задач")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tasks)
}

func parseTaskFilter(values url.Values) (entity.TaskFilter, error) {
	statuses, err := splitUUIDs(values.Get("statuses"))
	if err != nil {
		return entity.TaskFilter{}, fmt.Errorf("невалидный параметр statuses: %w", err)
	}

	priorities, err := splitUUIDs(values.Get("priorities"))
	if err != nil {
		return entity.TaskFilter{}, fmt.Errorf("невалидный параметр priorities: %w", err)
	}

	labels, err := splitUUIDs(values.Get("labels"))
	if err != nil {
		return entity.TaskFilter{}, fmt.Errorf("невалидный параметр labels: %w", err)
	}

	projects, err := splitUUIDs(values.Get("projects"))
	if err != nil {
		return entity.TaskFilter{}, fmt.Errorf("невалидный параметр projects: %w", err)
	}

	var assignees []string

	if raw := values.Get("assignees"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}

			if a != entity.AssigneeUnassigned {
				_, err = uuid.FromString(a)
				if err != nil {
					return entity.TaskFilter{}, fmt.Errorf("невалидный параметр assignees: %w", err)
				}
			}

			assignees = append(assignees, a)
		}
	}

	return entity.TaskFilter{
		Statuses:   statuses,
		Assignees:  assignees,
		Priorities: priorities,
		Labels:     labels,
		Projects:   projects,
	}, nil
}

func splitUUIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []uuid.UUID

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := uuid.FromString(part)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// TasksBoard godoc
// @Summary      Доска задач
// @Description  Возвращает задачи, сгруппированные по статусам
// @Tags         tasks
// @Produce      json
// @Param        isConstruction query bool false "Строительные задачи"
// @Param        projectId query string false "ID объекта"
// @Success      200 {object} map[string][]entity.Task
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/board [get]
func (h *Handler) TasksBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	isConstruction := r.URL.Query().Get("isConstruction") == "true"

	projectID, err := queryUUIDPtr(r.URL.Query(), "projectId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный projectId")
		return
	}

	board, err := h.s.TasksBoard(ctx, isConstruction, projectID)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении доски задач")
		return
	}

	SendJSON(ctx, w, http.StatusOK, board)
}

// TaskByID godoc
// @Summary      Задача
// @Description  Возвращает задачу по ID
// @Tags         tasks
// @Produce      json
// @Param        id path string true "ID задачи"
// @Success      200 {object} entity.Task
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/{id} [get]
func (h *Handler) TaskByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id задачи")
		return
	}

	task, err := h.s.TaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Задачи с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении задачи")

		return
	}

	SendJSON(ctx, w, http.StatusOK, task)
}

type MoveTaskRequest struct {
	StatusID uuid.UUID `json:"statusId"`
}

// MoveTask godoc
// @Summary      Перемещение задачи
// @Description  Переводит задачу в другой статус
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "ID задачи"
// @Param        request body MoveTaskRequest true "Новый статус"
// @Success      200 {string} string "Задача перемещена"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/{id}/move [put]
func (h *Handler) MoveTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id задачи")
		return
	}

	var req MoveTaskRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	if req.StatusID.IsNil() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Некорректное тело запроса")
		return
	}

	err = h.s.MoveTask(ctx, id, req.StatusID)
	if err != nil {
		sendTaskErr(ctx, w, err, "Ошибка при перемещении задачи")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "задача перемещена"})
}

type AssignTaskRequest struct {
	AssigneeID *uuid.UUID `json:"assigneeId"`
}

// AssignTask godoc
// @Summary      Назначение исполнителя
// @Description  Назначает или снимает исполнителя задачи
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "ID задачи"
// @Param        request body AssignTaskRequest true "Исполнитель, null для снятия"
// @Success      200 {string} string "Исполнитель назначен"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/{id}/assignee [put]
func (h *Handler) AssignTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id задачи")
		return
	}

	var req AssignTaskRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	err = h.s.AssignTask(ctx, id, req.AssigneeID)
	if err != nil {
		sendTaskErr(ctx, w, err, "Ошибка при назначении исполнителя")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "исполнитель назначен"})
}

// UpdateTask godoc
// @Summary      Обновление задачи
// @Description  Полностью обновляет задачу
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "ID задачи"
// @Param        request body entity.Task true "Задача"
// @Success      200 {string} string "Задача обновлена"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/{id} [put]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id задачи")
		return
	}

	var task entity.Task

	err = json.NewDecoder(r.Body).Decode(&task)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	task.ID = id

	err = h.s.UpdateTask(ctx, task)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		sendTaskErr(ctx, w, err, "Ошибка при обновлении задачи")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "задача обновлена"})
}

// DeleteTask godoc
// @Summary      Удаление задачи
// @Description  Удаляет задачу по ID
// @Tags         tasks
// @Produce      json
// @Param        id path string true "ID задачи"
// @Success      200 {string} string "Задача удалена"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/{id} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id задачи")
		return
	}

	err = h.s.DeleteTask(ctx, id)
	if err != nil {
		sendTaskErr(ctx, w, err, "Ошибка при удалении задачи")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "задача удалена"})
}

func sendTaskErr(ctx context.Context, w http.ResponseWriter, err error, internalMsg string) {
	if errors.Is(err, entity.ErrForbidden) {
		SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав")
		return
	}

	if errors.Is(err, entity.ErrNotFound) {
		SendErr(ctx, w, http.StatusNotFound, err, "Задачи с таким ID не существует")
		return
	}

	SendErr(ctx, w, http.StatusInternalServerError, err, internalMsg)
}
