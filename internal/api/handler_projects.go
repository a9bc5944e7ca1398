package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/service"
)

type CreateProjectRequest struct {
	Name          string               `json:"name"`
	Client        string               `json:"client"`
	StatusID      uuid.UUID            `json:"statusId"`
	PriorityID    uuid.UUID            `json:"priorityId"`
	LeadID        uuid.UUID            `json:"leadId"`
	ContractValue string               `json:"contractValue"`
	StartDate     *time.Time           `json:"startDate"`
	EndDate       *time.Time           `json:"endDate"`
	Health        entity.ProjectHealth `json:"health"`
	TeamMemberIDs []uuid.UUID          `json:"teamMemberIds"`
}

// CreateProject godoc
// @Summary      Создание объекта строительства
// @Description  Создает новый объект строительства
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Параметры объекта"
// @Success      201 {object} entity.ConstructionProject
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /projects [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateProjectRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	project, err := h.s.CreateProject(ctx, service.CreateProjectParams{
		Name:          req.Name,
		Client:        req.Client,
		StatusID:      req.StatusID,
		PriorityID:    req.PriorityID,
		LeadID:        req.LeadID,
		ContractValue: req.ContractValue,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Health:        req.Health,
		TeamMemberIDs: req.TeamMemberIDs,
	})
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для создания объекта")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании объекта")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, project)
}

// Projects godoc
// @Summary      Список объектов строительства
// @Description  Возвращает объекты строительства, по умолчанию без архивных
// @Tags         projects
// @Produce      json
// @Param        includeArchived query bool false "Включать архивные"
// @Success      200 {array} entity.ConstructionProject
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /projects [get]
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	projects, err := h.s.Projects(ctx, includeArchived)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении списка объектов")
		return
	}

	SendJSON(ctx, w, http.StatusOK, projects)
}

// ProjectByID godoc
// @Summary      Объект строительства
// @Description  Возвращает объект строительства по ID
// @Tags         projects
// @Produce      json
// @Param        id path string true "ID объекта"
// @Success      200 {object} entity.ConstructionProject
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      404 {object} ResponseError "Объект не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *Handler) ProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id объекта")
		return
	}

	project, err := h.s.ProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Объекта с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении объекта")

		return
	}

	SendJSON(ctx, w, http.StatusOK, project)
}

// UpdateProject godoc
// @Summary      Обновление объекта строительства
// @Description  Обновляет объект строительства, архивные объекты неизменяемы
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "ID объекта"
// @Param        request body entity.ConstructionProject true "Объект"
// @Success      200 {string} string "Объект обновлен"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Объект не найден"
// @Failure      409 {object} ResponseError "Объект в архиве"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id объекта")
		return
	}

	var project entity.ConstructionProject

	err = json.NewDecoder(r.Body).Decode(&project)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	project.ID = id

	err = h.s.UpdateProject(ctx, project)
	if err != nil {
		if errors.Is(err, entity.ErrProjectArchived) {
			SendErr(ctx, w, http.StatusConflict, err, "Объект находится в архиве")
			return
		}

		if errors.Is(err, entity.ErrValidationFailed) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для изменения объекта")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Объекта с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при обновлении объекта")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "объект обновлен"})
}

// ArchiveProject godoc
// @Summary      Архивация объекта строительства
// @Description  Переносит объект строительства в архив
// @Tags         projects
// @Produce      json
// @Param        id path string true "ID объекта"
// @Success      200 {string} string "Объект архивирован"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Объект не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /projects/{id}/archive [put]
func (h *Handler) ArchiveProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id объекта")
		return
	}

	err = h.s.ArchiveProject(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для архивации объекта")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Объекта с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при архивации объекта")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "объект архивирован"})
}

// Lookups godoc
// @Summary      Справочники
// @Description  Возвращает статусы, приоритеты и метки
// @Tags         lookups
// @Produce      json
// @Success      200 {object} LookupsResponse
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /lookups [get]
func (h *Handler) Lookups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := h.s.Statuses(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении справочников")
		return
	}

	priorities, err := h.s.Priorities(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении справочников")
		return
	}

	labels, err := h.s.Labels(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении справочников")
		return
	}

	SendJSON(ctx, w, http.StatusOK, LookupsResponse{
		Statuses:   statuses,
		Priorities: priorities,
		Labels:     labels,
	})
}

type LookupsResponse struct {
	Statuses   []entity.Status   `json:"statuses"`
	Priorities []entity.Priority `json:"priorities"`
	Labels     []entity.Label    `json:"labels"`
}
