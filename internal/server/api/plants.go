package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Aditya-Angaj/plantcare/internal/server/middleware"
	serr "github.com/Aditya-Angaj/plantcare/internal/shared/errors"
	"github.com/Aditya-Angaj/plantcare/internal/shared/models"
)

// ownerFromContext достаёт userID из контекста (положен auth middleware)
// и парсит его в uuid. Владелец всегда берётся из токена, а не из запроса.
func ownerFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ListPlants возвращает все растения текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware).
// Ответ — плоский JSON-массив, как его ждёт веб-клиент.
//
// ListPlants godoc
// @Summary      List plants
// @Description  Returns all plants belonging to the authenticated user, in insertion order.
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Plant
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /plants [get]
func (h *Handler) ListPlants(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	plants, err := h.Svc.Plants.List(r.Context(), ownerID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list plants failed", "error", err, "owner_id", ownerID.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, plants)
}

// CreatePlant создаёт новое растение для аутентифицированного пользователя.
//
// Сервер:
//   - валидирует обязательные поля и статус health;
//   - проверяет ограничение на размер image;
//   - присваивает id и таймстемпы.
//
// Требует JWT-аутентификацию.
//
// CreatePlant godoc
// @Summary      Create plant
// @Description  Creates a new plant for the authenticated user.
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreatePlantRequest true "Create plant request"
// @Success      200 {object} models.Plant
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /plants [post]
func (h *Handler) CreatePlant(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	ownerID, ok := ownerFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	plant, err := h.Svc.Plants.Create(r.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrBadHealth),
			errors.Is(err, serr.ErrImageTooLarge):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"create plant failed",
				"error", err,
				"owner_id", ownerID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, plant)
}

// UpdatePlant обновляет существующее растение пользователя.
//
// Идентификатор передаётся в URL-параметре `{id}`, поля — частично в теле.
// Непереданные поля не трогаются; в ответе всегда свежая запись целиком.
//
// Чужое или несуществующее растение в обоих случаях даёт 404 —
// факт существования чужой записи не раскрывается.
//
// UpdatePlant godoc
// @Summary      Update plant
// @Description  Partially updates a plant belonging to the authenticated user
// @Description  and returns the refreshed record.
// @Tags         plants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Plant ID (UUID)"
// @Param        body    body      models.UpdatePlantRequest  true  "Fields to update"
// @Success      200 {object} models.Plant
// @Failure      400 {object} api.ErrorResponse "Bad request"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /plants/{id} [put]
func (h *Handler) UpdatePlant(w http.ResponseWriter, r *http.Request) {
	plantIDStr := chi.URLParam(r, "id")
	plantID, err := uuid.Parse(plantIDStr)
	if err != nil {
		// некорректный uuid ничем не отличается от несуществующего растения
		WriteError(w, http.StatusNotFound, serr.ErrPlantNotFound)
		return
	}

	var req models.UpdatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	ownerID, ok := ownerFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	plant, err := h.Svc.Plants.Update(r.Context(), ownerID, plantID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrPlantNotFound):
			WriteError(w, http.StatusNotFound, err)
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrBadHealth),
			errors.Is(err, serr.ErrImageTooLarge):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update plant failed",
				"error", err,
				"owner_id", ownerID.String(),
				"plant_id", plantID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, plant)
}

// DeletePlant удаляет растение пользователя.
//
// DeletePlant godoc
// @Summary      Delete plant
// @Description  Deletes a plant belonging to the authenticated user.
// @Tags         plants
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plant ID (UUID)"
// @Success      200 {object} models.DeletePlantResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /plants/{id} [delete]
func (h *Handler) DeletePlant(w http.ResponseWriter, r *http.Request) {
	plantIDStr := chi.URLParam(r, "id")
	plantID, err := uuid.Parse(plantIDStr)
	if err != nil {
		WriteError(w, http.StatusNotFound, serr.ErrPlantNotFound)
		return
	}

	ownerID, ok := ownerFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	if err := h.Svc.Plants.Delete(r.Context(), ownerID, plantID); err != nil {
		switch {
		case errors.Is(err, serr.ErrPlantNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete plant failed",
				"error", err,
				"owner_id", ownerID.String(),
				"plant_id", plantID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.DeletePlantResponse{
		Message: "Plant deleted successfully",
	})
}
