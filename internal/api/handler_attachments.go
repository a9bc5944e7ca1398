package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/service"
)

// Attachments godoc
// @Summary      Каталог вложений
// @Description  Возвращает страницу вложений, курсор по времени загрузки
// @Tags         attachments
// @Produce      json
// @Param        limit query int false "Размер страницы, по умолчанию 20, максимум 100"
// @Param        cursor query string false "Курсор: uploaded_at последней записи, RFC3339"
// @Param        search query string false "Подстрока имени файла"
// @Param        fileType query string false "Тип файла" Enums(image, pdf, document, spreadsheet, video, other)
// @Param        uploaderId query string false "ID загрузившего"
// @Param        issueId query string false "ID задачи"
// @Param        projectId query string false "ID объекта"
// @Param        startDate query string false "Начало периода, RFC3339"
// @Param        endDate query string false "Конец периода, RFC3339"
// @Success      200 {object} entity.AttachmentPage
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /attachments [get]
func (h *Handler) Attachments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseAttachmentFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные параметры запроса: "+err.Error())
		return
	}

	page, err := h.s.AttachmentsPage(ctx, filter)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении вложений")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

func parseAttachmentFilter(values url.Values) (entity.AttachmentFilter, error) {
	var filter entity.AttachmentFilter

	if qLimit := values.Get("limit"); qLimit != "" {
		limit, err := strconv.Atoi(qLimit)
		if err != nil || limit <= 0 {
			return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр limit: %s", qLimit)
		}

		filter.Limit = uint64(limit)
	}

	cursor, err := queryTimePtr(values, "cursor")
	if err != nil {
		return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр cursor: %w", err)
	}

	filter.Cursor = cursor
	filter.Search = values.Get("search")

	if ft := values.Get("fileType"); ft != "" {
		filter.FileType = entity.FileTypeBucket(ft)
	}

	filter.UploaderID, err = queryUUIDPtr(values, "uploaderId")
	if err != nil {
		return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр uploaderId: %w", err)
	}

	filter.IssueID, err = queryUUIDPtr(values, "issueId")
	if err != nil {
		return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр issueId: %w", err)
	}

	filter.ProjectID, err = queryUUIDPtr(values, "projectId")
	if err != nil {
		return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр projectId: %w", err)
	}

	filter.StartDate, err = queryTimePtr(values, "startDate")
	if err != nil {
		return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр startDate: %w", err)
	}

	filter.EndDate, err = queryTimePtr(values, "endDate")
	if err != nil {
		return entity.AttachmentFilter{}, fmt.Errorf("невалидный параметр endDate: %w", err)
	}

	return filter, nil
}

// AttachmentStats godoc
// @Summary      Статистика вложений
// @Description  Возвращает агрегаты каталога вложений
// @Tags         attachments
// @Produce      json
// @Success      200 {object} entity.AttachmentStats
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /attachments/stats [get]
func (h *Handler) AttachmentStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.AttachmentStats(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при получении статистики вложений")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}

type IssueUploadURLRequest struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
}

// IssueUploadURL godoc
// @Summary      URL для загрузки файла
// @Description  Первая фаза загрузки: выдает подписанный URL для отправки байтов в хранилище
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Param        request body IssueUploadURLRequest true "Имя и тип файла"
// @Success      200 {object} storage.UploadTarget
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /attachments/upload-url [post]
func (h *Handler) IssueUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req IssueUploadURLRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	target, err := h.s.IssueUploadURL(ctx, req.FileName, req.MimeType)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное имя файла")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для загрузки файлов")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при выдаче URL загрузки")

		return
	}

	SendJSON(ctx, w, http.StatusOK, target)
}

type RecordAttachmentRequest struct {
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	MimeType   string `json:"mimeType"`
	StorageRef string `json:"storageRef"`
}

// RecordAttachment godoc
// @Summary      Регистрация вложения
// @Description  Вторая фаза загрузки: сохраняет метаданные после записи байтов в хранилище
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Param        id path string true "ID задачи"
// @Param        request body RecordAttachmentRequest true "Метаданные файла"
// @Success      201 {object} entity.Attachment
// @Failure      400 {object} ResponseError "Некорректный запрос"
// @Failure      404 {object} ResponseError "Задача не найдена"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /tasks/{id}/attachments [post]
func (h *Handler) RecordAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	issueID, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id задачи")
		return
	}

	var req RecordAttachmentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректное тело запроса")
		return
	}

	attachment, err := h.s.RecordAttachment(ctx, issueID, service.AttachmentMeta{
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		StorageRef: req.StorageRef,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Задачи с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при сохранении вложения")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, attachment)
}

// DeleteAttachment godoc
// @Summary      Удаление вложения
// @Description  Удаляет метаданные вложения и затем объект в хранилище
// @Tags         attachments
// @Produce      json
// @Param        id path string true "ID вложения"
// @Success      200 {string} string "Вложение удалено"
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      403 {object} ResponseError "Недостаточно прав"
// @Failure      404 {object} ResponseError "Вложение не найдено"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /attachments/{id} [delete]
func (h *Handler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректный id вложения")
		return
	}

	err = h.s.DeleteAttachment(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав для удаления вложений")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Вложения с таким ID не существует")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при удалении вложения")

		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "вложение удалено"})
}
