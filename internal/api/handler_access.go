package api

import (
	"errors"
	"net/http"

	"github.com/samandr77/stroika/internal/entity"
)

type PermissionsMeResponse struct {
	Permissions  []entity.Permission `json:"permissions"`
	Capabilities Capabilities        `json:"capabilities"`
}

type Capabilities struct {
	CanManageMembers   bool `json:"canManageMembers"`
	CanCreateProjects  bool `json:"canCreateProjects"`
	CanUploadDocuments bool `json:"canUploadDocuments"`
	CanAssignTasks     bool `json:"canAssignTasks"`
}

// PermissionsMe godoc
// @Summary      Права текущего пользователя
// @Description  Возвращает список прав и вычисленные возможности текущего пользователя
// @Tags         access
// @Produce      json
// @Success      200 {object} PermissionsMeResponse
// @Failure      401 {object} ResponseError "Пользователь не авторизован"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /permissions/me [get]
func (h *Handler) PermissionsMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, err, "Пользователь не авторизован")
		return
	}

	snapshot, err := h.s.CurrentPermissions(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении прав")
		return
	}

	permissions, err := h.s.RolePermissions(ctx, user.RoleID)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении прав")
		return
	}

	SendJSON(ctx, w, http.StatusOK, PermissionsMeResponse{
		Permissions: permissions,
		Capabilities: Capabilities{
			CanManageMembers:   snapshot.CanManageMembers(),
			CanCreateProjects:  snapshot.CanCreateProjects(),
			CanUploadDocuments: snapshot.CanUploadDocuments(),
			CanAssignTasks:     snapshot.CanAssignTasks(),
		},
	})
}

type ProjectAccessResponse struct {
	View  *bool `json:"view"`
	Edit  *bool `json:"edit"`
	Admin *bool `json:"admin"`
}

// ProjectAccess godoc
// @Summary      Доступ к объекту строительства
// @Description  Возвращает вычисленные права view/edit/admin текущего пользователя на объект
// @Tags         access
// @Produce      json
// @Param        id path string true "ID объекта"
// @Success      200 {object} ProjectAccessResponse
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      404 {object} ResponseError "Объект не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /projects/{id}/access [get]
func (h *Handler) ProjectAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id объекта")
		return
	}

	projectAccess, err := h.s.ProjectAccess(ctx, projectID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Объекта с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при вычислении доступа")

		return
	}

	SendJSON(ctx, w, http.StatusOK, ProjectAccessResponse{
		View:  projectAccess.View,
		Edit:  projectAccess.Edit,
		Admin: projectAccess.Admin,
	})
}

// RolePermissions godoc
// @Summary      Права роли
// @Description  Возвращает список прав указанной роли
// @Tags         access
// @Produce      json
// @Param        id path string true "ID роли"
// @Success      200 {array} entity.Permission
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /roles/{id}/permissions [get]
func (h *Handler) RolePermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roleID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id роли")
		return
	}

	permissions, err := h.s.RolePermissions(ctx, roleID)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении прав роли")
		return
	}

	SendJSON(ctx, w, http.StatusOK, permissions)
}

// GrantPermission godoc
// @Summary      Выдача права роли
// @Description  Добавляет право к роли
// @Tags         access
// @Produce      json
// @Param        id path string true "ID роли"
// @Param        permissionId path string true "ID права"
// @Success      200 {string} string "Право выдано"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /roles/{id}/permissions/{permissionId} [post]
func (h *Handler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roleID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id роли")
		return
	}

	permissionID, err := pathUUID(r, "permissionId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id права")
		return
	}

	err = h.s.GrantPermission(ctx, roleID, permissionID)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для управления ролями")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при выдаче права")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "право выдано"})
}

// RevokePermission godoc
// @Summary      Отзыв права роли
// @Description  Убирает право у роли
// @Tags         access
// @Produce      json
// @Param        id path string true "ID роли"
// @Param        permissionId path string true "ID права"
// @Success      200 {string} string "Право отозвано"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /roles/{id}/permissions/{permissionId} [delete]
func (h *Handler) RevokePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roleID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id роли")
		return
	}

	permissionID, err := pathUUID(r, "permissionId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id права")
		return
	}

	err = h.s.RevokePermission(ctx, roleID, permissionID)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для управления ролями")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при отзыве права")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "право отозвано"})
}
