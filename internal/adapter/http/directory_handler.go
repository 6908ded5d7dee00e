package http

import (
	"net/http"

	ucDirectory "lostfound/internal/usecase/directory"

	"github.com/labstack/echo/v4"
)

type DirectoryHandler struct{ uc *ucDirectory.Usecase }

func NewDirectoryHandler(uc *ucDirectory.Usecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

type createUserReq struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=150"`
	Phone string `json:"phone" validate:"max=20"`
	Role  string `json:"role"  validate:"omitempty,role"`
}

type createLocationReq struct {
	Name     string `json:"location_name" validate:"required,max=100"`
	Building string `json:"building"      validate:"max=100"`
	FloorNo  *int   `json:"floor_no"      validate:"omitempty,gte=-10,lte=200"`
}

func (h *DirectoryHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	u, err := h.uc.CreateUser(c.Request().Context(), ucDirectory.CreateUserInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *DirectoryHandler) GetUser(c echo.Context) error {
	id, ok := pathID(c, "user_id")
	if !ok {
		return badParam(c, "user_id")
	}
	u, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *DirectoryHandler) ListUsers(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c, "user_id")
	if !ok {
		return badParam(c, "user_id")
	}
	var req createUserReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	u, err := h.uc.UpdateUser(c.Request().Context(), id, ucDirectory.UpdateUserInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *DirectoryHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c, "user_id")
	if !ok {
		return badParam(c, "user_id")
	}
	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DirectoryHandler) CreateLocation(c echo.Context) error {
	var req createLocationReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	l, err := h.uc.CreateLocation(c.Request().Context(), ucDirectory.CreateLocationInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *DirectoryHandler) GetLocation(c echo.Context) error {
	id, ok := pathID(c, "location_id")
	if !ok {
		return badParam(c, "location_id")
	}
	l, err := h.uc.GetLocation(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *DirectoryHandler) ListLocations(c echo.Context) error {
	out, err := h.uc.ListLocations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) UpdateLocation(c echo.Context) error {
	id, ok := pathID(c, "location_id")
	if !ok {
		return badParam(c, "location_id")
	}
	var req createLocationReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	l, err := h.uc.UpdateLocation(c.Request().Context(), id, ucDirectory.UpdateLocationInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *DirectoryHandler) DeleteLocation(c echo.Context) error {
	id, ok := pathID(c, "location_id")
	if !ok {
		return badParam(c, "location_id")
	}
	if err := h.uc.DeleteLocation(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
