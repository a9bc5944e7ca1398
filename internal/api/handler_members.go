package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/service"
)

type ProvisionUserRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	RoleID   uuid.UUID `json:"roleId"`
	Position *string   `json:"position"`
}

// ProvisionUser godoc
// @Summary      Создание сотрудника
// @Description  Создает учетную запись сотрудника с начальным паролем
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body ProvisionUserRequest true "Параметры сотрудника"
// @Success      201 {object} entity.User
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      409 {object} ResponseError "Email уже занят"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users [post]
func (h *Handler) ProvisionUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProvisionUserRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	user, err := h.s.ProvisionUser(ctx, service.ProvisionUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
		Position: req.Position,
	})
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			SendErr(ctx, w, http.StatusConflict, err, "Пользователь с таким email уже существует")
			return
		}

		if errors.Is(err, entity.ErrValidationFailed) ||
			errors.Is(err, entity.ErrInvalidEmail) ||
			errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для создания сотрудников")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании сотрудника")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, user)
}

// Users godoc
// @Summary      Список сотрудников
// @Description  Возвращает всех сотрудников организации
// @Tags         members
// @Produce      json
// @Success      200 {array} entity.User
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении списка сотрудников")
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// UserByID godoc
// @Summary      Сотрудник
// @Description  Возвращает сотрудника по ID
// @Tags         members
// @Produce      json
// @Param        id path string true "ID сотрудника"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      404 {object} ResponseError "Сотрудник не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *Handler) UserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id сотрудника")
		return
	}

	user, err := h.s.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Сотрудника с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении сотрудника")

		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// Roles godoc
// @Summary      Список ролей
// @Description  Возвращает роли с количеством участников
// @Tags         members
// @Produce      json
// @Success      200 {array} entity.Role
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /roles [get]
func (h *Handler) Roles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles, err := h.s.Roles(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении списка ролей")
		return
	}

	SendJSON(ctx, w, http.StatusOK, roles)
}

type SetPresenceRequest struct {
	Presence entity.UserPresence `json:"presence"`
}

// SetPresence godoc
// @Summary      Статус присутствия
// @Description  Меняет статус присутствия текущего пользователя
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body SetPresenceRequest true "Новый статус" Enums(online, away, offline)
// @Success      200 {string} string "Статус обновлен"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      401 {object} ResponseError "Пользователь не авторизован"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users/me/presence [put]
func (h *Handler) SetPresence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetPresenceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	err = h.s.SetPresence(ctx, req.Presence)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Невалидный статус присутствия")
			return
		}

		if errors.Is(err, entity.ErrUnauthorized) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Пользователь не авторизован")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при обновлении статуса")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "статус обновлен"})
}

// DeactivateUser godoc
// @Summary      Деактивация сотрудника
// @Description  Деактивирует учетную запись и освобождает назначения сотрудника
// @Tags         members
// @Produce      json
// @Param        id path string true "ID сотрудника"
// @Success      200 {string} string "Сотрудник деактивирован"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users/{id}/deactivate [put]
func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id сотрудника")
		return
	}

	err = h.s.DeactivateUser(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для деактивации сотрудников")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при деактивации сотрудника")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "сотрудник деактивирован"})
}

// DeleteUser godoc
// @Summary      Удаление сотрудника
// @Description  Удаляет учетную запись без зависимых записей
// @Tags         members
// @Produce      json
// @Param        id path string true "ID сотрудника"
// @Success      200 {string} string "Сотрудник удален"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      409 {object} ResponseError "У сотрудника есть зависимые записи"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id сотрудника")
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserHasDependencies) {
			SendErr(ctx, w, http.StatusConflict, err, "У сотрудника есть зависимые записи, используйте деактивацию")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для удаления сотрудников")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при удалении сотрудника")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "сотрудник удален"})
}
