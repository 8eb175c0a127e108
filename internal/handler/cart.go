package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// GetCart возвращает корзину текущей сессии.
// @Summary      Корзина
// @Tags         cart
// @Param        X-Session-ID  header  string  false  "Идентификатор сессии"
// @Success      200  {object}  Cart
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.cart.ListItems(r.Context(), sessionID(r))
	if err != nil {
		h.writeServiceError(w, r, "list cart items", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(items), http.StatusOK)
}

// AddCartItem добавляет товар в корзину, фиксируя текущую цену.
// @Summary      Добавить товар в корзину
// @Tags         cart
// @Accept       json
// @Param        X-Session-ID  header  string              false  "Идентификатор сессии"
// @Param        request       body    AddCartItemRequest  true   "Товар"
// @Success      201  {object}  CartItem
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	item, err := h.cart.AddItem(r.Context(), sessionID(r), req.ProductID, req.VariationID, req.Quantity)
	if err != nil {
		h.writeServiceError(w, r, "add cart item", err)
		return
	}
	utils.WriteJSON(w, CartItemEntityToJSON(item), http.StatusCreated)
}

// UpdateCartItem меняет количество позиции.
// @Summary      Изменить количество
// @Tags         cart
// @Accept       json
// @Param        item_id  path  int                    true  "ID позиции"
// @Param        request  body  UpdateCartItemRequest  true  "Количество"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Router       /cart/items/{item_id} [patch]
func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), sessionID(r), itemID, req.Quantity); err != nil {
		h.writeServiceError(w, r, "update cart item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveCartItem удаляет позицию из корзины.
// @Summary      Удалить позицию
// @Tags         cart
// @Param        item_id  path  int  true  "ID позиции"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Router       /cart/items/{item_id} [delete]
func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.cart.RemoveItem(r.Context(), sessionID(r), itemID); err != nil {
		h.writeServiceError(w, r, "remove cart item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid item id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
