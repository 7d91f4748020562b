package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/api"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Handler — HTTP-обработчики шлюза поверх сервисов данных.
// Списки отдаются из локального кэша; мутации проксируются в удалённый API
// через сервисы и применяются к кэшу только после подтверждения.
type Handler struct {
	menu     ports.MenuService
	orders   ports.OrderService
	settings ports.SettingsStore
	log      ports.Logger
}

// NewHandler — DI-конструктор.
func NewHandler(menu ports.MenuService, orders ports.OrderService, settings ports.SettingsStore, log ports.Logger) *Handler {
	return &Handler{menu: menu, orders: orders, settings: settings, log: log}
}

// respond — конверт ответа шлюза, симметричный конверту удалённого API.
func respond(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// failureStatus — код ответа для ошибки мутации: статус удалённого API,
// если он известен, иначе 502 (шлюз не получил ответа от сервера).
func failureStatus(err error) int {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusBadRequest {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// payloadFromRequest — перенос тела запроса в payload без интерпретации:
// multipart разбирается в поля и файл, всё остальное уходит как сырой JSON.
func payloadFromRequest(c *gin.Context) (ports.Payload, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}

		fields := make(map[string]string, len(form.Value))
		for key, values := range form.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}

		payload := api.MultipartPayload{Fields: fields}
		for field, files := range form.File {
			if len(files) == 0 {
				continue
			}
			fh := files[0]
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			content, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return nil, err
			}
			payload.File = &api.FileAttachment{Field: field, Name: fh.Filename, Content: content}
			break
		}
		return payload, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("empty request body")
	}
	if !json.Valid(raw) {
		return nil, errors.New("body is not valid json")
	}
	return api.JSONPayload{Value: json.RawMessage(raw)}, nil
}

// ------ меню ------

func (h *Handler) listMenu(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.menu.EnsureLoaded(ctx); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}

	var items []domain.MenuItem
	if q := c.Query("q"); q != "" {
		items = h.menu.Search(q)
		if category := c.Query("category"); category != "" && category != "all" {
			filtered := items[:0:0]
			for _, it := range items {
				if it.Category == category {
					filtered = append(filtered, it)
				}
			}
			items = filtered
		}
	} else {
		items = h.menu.FilterByCategory(c.Query("category"))
	}

	if httpx.ParseBool(c, "available") {
		filtered := items[:0:0]
		for _, it := range items {
			if it.Available {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	respond(c, http.StatusOK, items)
}

func (h *Handler) menuCategories(c *gin.Context) {
	if err := h.menu.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, h.menu.Categories())
}

func (h *Handler) createMenuItem(c *gin.Context) {
	p, err := payloadFromRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.menu.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusCreated, created)
}

func (h *Handler) updateMenuItem(c *gin.Context) {
	p, err := payloadFromRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.menu.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, updated)
}

func (h *Handler) deleteMenuItem(c *gin.Context) {
	if err := h.menu.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// ------ заказы ------

func (h *Handler) listOrders(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.orders.EnsureLoaded(ctx); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}

	var orders []domain.Order
	if httpx.ParseBool(c, "today") {
		orders = h.orders.Today()
		if status := c.Query("status"); status != "" && status != "all" {
			filtered := orders[:0:0]
			for _, ord := range orders {
				if ord.Status == status {
					filtered = append(filtered, ord)
				}
			}
			orders = filtered
		}
	} else {
		orders = h.orders.ByStatus(c.Query("status"))
	}

	limit, offset := httpx.ParseLimitOffset(c, 50, 200)
	if offset > len(orders) {
		offset = len(orders)
	}
	end := offset + limit
	if end > len(orders) {
		end = len(orders)
	}

	respond(c, http.StatusOK, gin.H{
		"orders": orders[offset:end],
		"total":  len(orders),
	})
}

func (h *Handler) getOrder(c *gin.Context) {
	if err := h.orders.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	order, ok := h.orders.GetByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "order not found")
		return
	}
	respond(c, http.StatusOK, order)
}

func (h *Handler) orderStatuses(c *gin.Context) {
	if err := h.orders.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, h.orders.Statuses())
}

func (h *Handler) createOrder(c *gin.Context) {
	p, err := payloadFromRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.orders.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusCreated, created)
}

// statusChangeRequest — тело PATCH /api/orders/:id/status.
type statusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

// changeOrderStatus — проверка графа переходов выполняется здесь,
// на границе интерфейса; кэш и сервер принимают любое значение,
// которое принял бы сервер.
func (h *Handler) changeOrderStatus(c *gin.Context) {
	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}
	if !domain.KnownStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "unknown status: "+req.Status)
		return
	}

	if current, ok := h.orders.GetByID(c.Param("id")); ok {
		if !domain.CanTransition(current.Status, req.Status) {
			respondError(c, http.StatusUnprocessableEntity,
				"illegal status transition: "+current.Status+" -> "+req.Status)
			return
		}
	}
	// Неизвестный локально id — не ошибка кэша: удалённый вызов выполняется,
	// его результат определяет исход.

	updated, err := h.orders.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, updated)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// ------ настройки ------

func (h *Handler) getSettings(c *gin.Context) {
	if err := h.settings.EnsureLoaded(c.Request.Context()); err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, h.settings.Current())
}

func (h *Handler) putSettings(c *gin.Context) {
	var cfg domain.Settings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.settings.Save(c.Request.Context(), cfg)
	if err != nil {
		respondError(c, failureStatus(err), err.Error())
		return
	}
	respond(c, http.StatusOK, saved)
}
