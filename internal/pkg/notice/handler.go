package notice

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/utils"
)

// RegisterRoutes exposes the board: GET /notices lists, ?drain=true also
// empties it, DELETE /notices/:id dismisses one notice
func RegisterRoutes(e *echo.Echo, board *Board) {
	e.GET("/notices", func(c echo.Context) error {
		if c.QueryParam("drain") == "true" {
			return utils.SuccessResponse(c, http.StatusOK, "Notices", board.Drain())
		}
		return utils.SuccessResponse(c, http.StatusOK, "Notices", board.List())
	})

	e.DELETE("/notices/:id", func(c echo.Context) error {
		if !board.Dismiss(c.Param("id")) {
			return utils.NotFoundResponse(c, "Notice not found")
		}
		return c.NoContent(http.StatusNoContent)
	})
}
