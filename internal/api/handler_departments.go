package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
)

// DepartmentTree godoc
// @Summary      Дерево подразделений
// @Description  Возвращает лес подразделений, восстановленный из родительских ссылок
// @Tags         departments
// @Produce      json
// @Success      200 {array} entity.DepartmentNode
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /departments/tree [get]
func (h *Handler) DepartmentTree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tree, err := h.s.DepartmentTree(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrDepartmentCycle) {
			SendErr(ctx, w, http.StatusInternalServerError, err, "Структура подразделений повреждена")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при построении дерева подразделений")

		return
	}

	SendJSON(ctx, w, http.StatusOK, tree)
}

// UserHierarchy godoc
// @Summary      Иерархия пользователя
// @Description  Возвращает цепочки подразделений от корня для каждого активного назначения
// @Tags         departments
// @Produce      json
// @Param        id path string true "ID пользователя"
// @Success      200 {array} []entity.Department
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users/{id}/hierarchy [get]
func (h *Handler) UserHierarchy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id пользователя")
		return
	}

	chains, err := h.s.UserHierarchy(ctx, userID)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении иерархии")
		return
	}

	SendJSON(ctx, w, http.StatusOK, chains)
}

type CreateDepartmentRequest struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	ParentID    *uuid.UUID `json:"parentId"`
}

// CreateDepartment godoc
// @Summary      Создание подразделения
// @Description  Создает подразделение, уровень вычисляется от родителя
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        request body CreateDepartmentRequest true "Параметры подразделения"
// @Success      201 {object} entity.Department
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /departments [post]
func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDepartmentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	department, err := h.s.CreateDepartment(ctx, req.Name, req.DisplayName, req.ParentID)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании подразделения")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, department)
}

type AssignUserRequest struct {
	UserID       uuid.UUID  `json:"userId"`
	DepartmentID uuid.UUID  `json:"departmentId"`
	PositionID   *uuid.UUID `json:"positionId"`
	IsPrimary    bool       `json:"isPrimary"`
}

// AssignUserToDepartment godoc
// @Summary      Назначение в подразделение
// @Description  Создает назначение пользователя в подразделение, одно активное основное на пользователя
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        request body AssignUserRequest true "Параметры назначения"
// @Success      201 {object} entity.UserDepartment
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      409 {object} ResponseError "У пользователя уже есть основное назначение"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /departments/assignments [post]
func (h *Handler) AssignUserToDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssignUserRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	if req.UserID.IsNil() || req.DepartmentID.IsNil() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Некорректное тело запроса")
		return
	}

	assignment, err := h.s.AssignUserToDepartment(ctx, req.UserID, req.DepartmentID, req.PositionID, req.IsPrimary)
	if err != nil {
		if errors.Is(err, entity.ErrPrimaryAssignment) {
			SendErr(ctx, w, http.StatusConflict, err, "У пользователя уже есть активное основное назначение")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании назначения")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, assignment)
}
