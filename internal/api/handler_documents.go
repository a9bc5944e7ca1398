package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
)

type CreateDocumentRequest struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ProjectID *uuid.UUID `json:"projectId"`
}

// CreateDocument godoc
// @Summary      Создание документа
// @Description  Создает документ, опционально привязанный к объекту строительства
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body CreateDocumentRequest true "Параметры документа"
// @Success      201 {object} entity.Document
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /documents [post]
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDocumentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	document, err := h.s.CreateDocument(ctx, req.Title, req.Content, req.ProjectID)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для создания документов")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании документа")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, document)
}

// DocumentByID godoc
// @Summary      Документ
// @Description  Возвращает документ по ID
// @Tags         documents
// @Produce      json
// @Param        id path string true "ID документа"
// @Success      200 {object} entity.Document
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      404 {object} ResponseError "Документ не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *Handler) DocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id документа")
		return
	}

	document, err := h.s.DocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Документа с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении документа")

		return
	}

	SendJSON(ctx, w, http.StatusOK, document)
}

type AddCommentRequest struct {
	ParentCommentID  *uuid.UUID  `json:"parentCommentId"`
	Body             string      `json:"body"`
	MentionedUserIDs []uuid.UUID `json:"mentionedUserIds"`
}

// AddComment godoc
// @Summary      Добавление комментария
// @Description  Создает комментарий к документу, опционально как ответ и с упоминаниями
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "ID документа"
// @Param        request body AddCommentRequest true "Параметры комментария"
// @Success      201 {object} entity.DocumentComment
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      404 {object} ResponseError "Документ не найден"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /documents/{id}/comments [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id документа")
		return
	}

	var req AddCommentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	comment, err := h.s.AddComment(ctx, documentID, req.ParentCommentID, req.Body, req.MentionedUserIDs)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Документа с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании комментария")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, comment)
}

// CommentTree godoc
// @Summary      Дерево комментариев
// @Description  Возвращает комментарии документа в виде дерева ответов
// @Tags         documents
// @Produce      json
// @Param        id path string true "ID документа"
// @Success      200 {array} entity.CommentNode
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /documents/{id}/comments [get]
func (h *Handler) CommentTree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id документа")
		return
	}

	tree, err := h.s.CommentTree(ctx, documentID)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении комментариев")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tree)
}

// DeleteComment godoc
// @Summary      Удаление комментария
// @Description  Удаляет комментарий вместе со всеми ответами и их упоминаниями
// @Tags         documents
// @Produce      json
// @Param        commentId path string true "ID комментария"
// @Success      200 {string} string "Комментарий удален"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /comments/{commentId} [delete]
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	commentID, err := pathUUID(r, "commentId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id комментария")
		return
	}

	err = h.s.DeleteComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для удаления комментариев")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при удалении комментария")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "комментарий удален"})
}

// UnreadMentions godoc
// @Summary      Непрочитанные упоминания
// @Description  Возвращает непрочитанные упоминания текущего пользователя
// @Tags         documents
// @Produce      json
// @Success      200 {array} entity.DocumentMention
// @Failure      401 {object} ResponseError "Пользователь не авторизован"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /mentions/unread [get]
func (h *Handler) UnreadMentions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mentions, err := h.s.UnreadMentions(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthorized) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Пользователь не авторизован")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении упоминаний")

		return
	}

	SendJSON(ctx, w, http.StatusOK, mentions)
}

// MarkMentionRead godoc
// @Summary      Прочтение упоминания
// @Description  Помечает упоминание прочитанным
// @Tags         documents
// @Produce      json
// @Param        id path string true "ID упоминания"
// @Success      200 {string} string "Упоминание прочитано"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /mentions/{id}/read [put]
func (h *Handler) MarkMentionRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id упоминания")
		return
	}

	err = h.s.MarkMentionRead(ctx, id)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при обновлении упоминания")
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "упоминание прочитано"})
}

type LinkTaskRequest struct {
	TaskID   uuid.UUID                   `json:"taskId"`
	Relation entity.DocumentTaskRelation `json:"relation"`
}

// LinkTaskToDocument godoc
// @Summary      Связь документа с задачей
// @Description  Привязывает задачу к документу с типом связи
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "ID документа"
// @Param        request body LinkTaskRequest true "Параметры связи"
// @Success      200 {string} string "Связь создана"
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /documents/{id}/tasks [post]
func (h *Handler) LinkTaskToDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id документа")
		return
	}

	var req LinkTaskRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	if req.TaskID.IsNil() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Некорректное тело запроса")
		return
	}

	err = h.s.LinkTaskToDocument(ctx, documentID, req.TaskID, req.Relation)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Невалидный тип связи")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Задачи с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при создании связи")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "связь создана"})
}

// DocumentTasks godoc
// @Summary      Задачи документа
// @Description  Возвращает связи документа с задачами
// @Tags         documents
// @Produce      json
// @Param        id path string true "ID документа"
// @Success      200 {array} entity.DocumentTask
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /documents/{id}/tasks [get]
func (h *Handler) DocumentTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documentID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id документа")
		return
	}

	links, err := h.s.DocumentTasks(ctx, documentID)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении связей документа")
		return
	}

	SendJSON(ctx, w, http.StatusOK, links)
}
