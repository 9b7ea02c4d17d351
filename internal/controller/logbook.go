package controller

import (
	"net/http"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type logbookRoutesHandler struct {
	logbookService service.Logbook
	validate       *validator.Validate
}

func newLogbookRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *logbookRoutesHandler {
	h := &logbookRoutesHandler{logbookService: services.Logbook, validate: v}

	outer.GET("/logbook", h.GetLogEntries)
	outer.POST("/logbook", h.PostLogEntry)
	outer.GET("/logbook/:entryId", h.GetLogEntry)
	outer.PATCH("/logbook/:entryId", h.PatchLogEntry)
	outer.DELETE("/logbook/:entryId", h.DeleteLogEntry)
	outer.POST("/logbook/:entryId/comments", h.PostComment)
	outer.DELETE("/logbook/:entryId/comments/:commentId", h.DeleteComment)

	return h
}

type authorInput struct {
	Id        string `json:"id" validate:"required,max=100"`
	Name      string `json:"name" validate:"required,max=200"`
	AvatarUrl string `json:"avatarUrl" validate:"omitempty,url"`
}

func (a authorInput) toEntity() entity.Author {
	return entity.Author{Id: a.Id, Name: a.Name, AvatarUrl: a.AvatarUrl}
}

// GET /logbook
func (h *logbookRoutesHandler) GetLogEntries(c echo.Context) error {
	var input = newListInput()
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	pg := entity.NewPaginationInput(input.Limit, input.Offset)
	entries, err := h.logbookService.GetLogEntries(c.Request().Context(), pg)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, entries); e != nil {
		return e
	}

	return nil
}

type postTextInput struct {
	Author authorInput `json:"author"`
	Text   string      `json:"text" validate:"required,max=5000"`
}

// POST /logbook
func (h *logbookRoutesHandler) PostLogEntry(c echo.Context) error {
	var input postTextInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateLogEntryInput{Author: input.Author.toEntity(), Text: input.Text}
	entry, err := h.logbookService.CreateLogEntry(c.Request().Context(), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, entry); e != nil {
		return e
	}

	return nil
}

// GET /logbook/:entryId
func (h *logbookRoutesHandler) GetLogEntry(c echo.Context) error {
	entry, err := h.logbookService.GetLogEntryById(c.Request().Context(), c.Param("entryId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, entry); e != nil {
		return e
	}

	return nil
}

type patchLogEntryInput struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// PATCH /logbook/:entryId
func (h *logbookRoutesHandler) PatchLogEntry(c echo.Context) error {
	var input patchLogEntryInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.UpdateLogEntryInput{Text: &input.Text}
	entry, err := h.logbookService.UpdateLogEntryById(c.Request().Context(), c.Param("entryId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, entry); e != nil {
		return e
	}

	return nil
}

// DELETE /logbook/:entryId
func (h *logbookRoutesHandler) DeleteLogEntry(c echo.Context) error {
	if err := h.logbookService.DeleteLogEntryById(c.Request().Context(), c.Param("entryId")); err != nil {
		return writeServiceError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}

// POST /logbook/:entryId/comments
func (h *logbookRoutesHandler) PostComment(c echo.Context) error {
	var input postTextInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateLogCommentInput{Author: input.Author.toEntity(), Text: input.Text}
	entry, err := h.logbookService.AddComment(c.Request().Context(), c.Param("entryId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, entry); e != nil {
		return e
	}

	return nil
}

// DELETE /logbook/:entryId/comments/:commentId
func (h *logbookRoutesHandler) DeleteComment(c echo.Context) error {
	entry, err := h.logbookService.DeleteComment(c.Request().Context(), c.Param("entryId"), c.Param("commentId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, entry); e != nil {
		return e
	}

	return nil
}
