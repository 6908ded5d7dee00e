package http

import (
	"net/http"

	ucClaim "lostfound/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct{ uc *ucClaim.Usecase }

func NewClaimHandler(uc *ucClaim.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type fileClaimReq struct {
	ItemID    uint64 `json:"item_id"    validate:"required"`
	ClaimerID uint64 `json:"claimer_id" validate:"required"`
	Remarks   string `json:"remarks"    validate:"max=2000"`
}

type resolveClaimReq struct {
	Decision string `json:"decision" validate:"required,decision"`
	Remark   string `json:"remark"   validate:"max=2000"`
}

type listClaimsReq struct {
	ItemID uint64 `query:"item_id"`
}

func (h *ClaimHandler) FileClaim(c echo.Context) error {
	var req fileClaimReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.FileClaim(c.Request().Context(), ucClaim.FileClaimInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClaimHandler) ResolveClaim(c echo.Context) error {
	id, ok := pathID(c, "claim_id")
	if !ok {
		return badParam(c, "claim_id")
	}
	var req resolveClaimReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.ResolveClaim(c.Request().Context(), ucClaim.ResolveClaimInput{
		ClaimID:  id,
		Decision: req.Decision,
		Remark:   req.Remark,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClaimHandler) GetClaim(c echo.Context) error {
	id, ok := pathID(c, "claim_id")
	if !ok {
		return badParam(c, "claim_id")
	}
	dto, err := h.uc.GetClaim(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClaimHandler) ListClaims(c echo.Context) error {
	var req listClaimsReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	out, err := h.uc.ListClaims(c.Request().Context(), req.ItemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
