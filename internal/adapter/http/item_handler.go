package http

import (
	"net/http"

	ucItem "lostfound/internal/usecase/item"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct{ uc *ucItem.Usecase }

func NewItemHandler(uc *ucItem.Usecase) *ItemHandler { return &ItemHandler{uc: uc} }

type createItemReq struct {
	Name        string `json:"item_name"   validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category"    validate:"max=50"`
	Status      string `json:"status"      validate:"required,item_status"`
	ReportedBy  uint64 `json:"reported_by" validate:"required"`
	LocationID  uint64 `json:"location_id" validate:"required"`
}

// description carries the free text only; report and claim notes are kept.
type updateItemReq struct {
	Name        string `json:"item_name"   validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category"    validate:"max=50"`
	LocationID  uint64 `json:"location_id" validate:"required"`
}

type setItemStatusReq struct {
	Status string `json:"status" validate:"required,item_status"`
}

type listItemsReq struct {
	Status string `query:"status" validate:"item_status_filter"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.CreateItem(c.Request().Context(), ucItem.CreateItemInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id, ok := pathID(c, "item_id")
	if !ok {
		return badParam(c, "item_id")
	}
	dto, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	var req listItemsReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.ListItems(c.Request().Context(), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) SetItemStatus(c echo.Context) error {
	id, ok := pathID(c, "item_id")
	if !ok {
		return badParam(c, "item_id")
	}
	var req setItemStatusReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.SetItemStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, ok := pathID(c, "item_id")
	if !ok {
		return badParam(c, "item_id")
	}
	var req updateItemReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateItemDetails(c.Request().Context(), id, ucItem.UpdateItemInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
