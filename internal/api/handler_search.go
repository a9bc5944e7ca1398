package api

import (
	"errors"
	"net/http"

	"github.com/samandr77/stroika/internal/entity"
)

// GlobalSearch godoc
// @Summary      Глобальный поиск
// @Description  Ищет по задачам, объектам, сотрудникам и подразделениям, до 10 результатов на категорию
// @Tags         search
// @Produce      json
// @Param        q query string true "Поисковый запрос"
// @Param        category query string false "Категория поиска" Enums(all, tasks, projects, members, teams)
// @Success      200 {object} entity.SearchResults
// @Failure      400 {object} ResponseError "Некорректные параметры запроса"
// @Failure      500 {object} ResponseError "Ошибка сервера"
// @Security     BearerAuth
// @Router       /search [get]
func (h *Handler) GlobalSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := entity.SearchCategory(r.URL.Query().Get("category"))
	if category == "" {
		category = entity.SearchCategoryAll
	}

	results, err := h.s.GlobalSearch(ctx, category, r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Невалидная категория поиска")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка при поиске")

		return
	}

	SendJSON(ctx, w, http.StatusOK, results)
}
