package handlers

import (
	"errors"
	"net/http"

	"dailydigest/internal/services"
	helpers "dailydigest/internal/utils/helpers"
)

// respondError отображает класс ошибки сервиса в HTTP-статус.
// Неклассифицированные ошибки наружу не детализируются.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	default:
		helpers.Error(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}
