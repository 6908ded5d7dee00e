package http

import (
	"net/http"

	ucReport "lostfound/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *ucReport.Usecase }

func NewReportHandler(uc *ucReport.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) CategoryCounts(c echo.Context) error {
	out, err := h.uc.CategoryCounts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) ClaimOverview(c echo.Context) error {
	out, err := h.uc.ClaimOverview(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) AboveAverageReporters(c echo.Context) error {
	out, err := h.uc.AboveAverageReporters(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) CountItemsByUser(c echo.Context) error {
	id, ok := pathID(c, "user_id")
	if !ok {
		return badParam(c, "user_id")
	}
	n, err := h.uc.CountItemsByUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user_id": id, "item_count": n})
}
