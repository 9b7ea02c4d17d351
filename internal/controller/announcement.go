package controller

import (
	"net/http"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type announcementRoutesHandler struct {
	announcementService service.Announcement
	validate            *validator.Validate
}

func newAnnouncementRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *announcementRoutesHandler {
	h := &announcementRoutesHandler{announcementService: services.Announcement, validate: v}

	outer.GET("/announcements", h.GetAnnouncements)
	outer.POST("/announcements", h.PostAnnouncement)
	outer.GET("/announcements/:announcementId", h.GetAnnouncement)
	outer.PATCH("/announcements/:announcementId", h.PatchAnnouncement)
	outer.DELETE("/announcements/:announcementId", h.DeleteAnnouncement)

	return h
}

// GET /announcements
func (h *announcementRoutesHandler) GetAnnouncements(c echo.Context) error {
	var input = newListInput()
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	pg := entity.NewPaginationInput(input.Limit, input.Offset)
	announcements, err := h.announcementService.GetAnnouncements(c.Request().Context(), pg)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, announcements); e != nil {
		return e
	}

	return nil
}

type postAnnouncementInput struct {
	Title  string      `json:"title" validate:"required,max=200"`
	Text   string      `json:"text" validate:"required,max=5000"`
	Author authorInput `json:"author"`
}

// POST /announcements
func (h *announcementRoutesHandler) PostAnnouncement(c echo.Context) error {
	var input postAnnouncementInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateAnnouncementInput{Title: input.Title, Text: input.Text, Author: input.Author.toEntity()}
	announcement, err := h.announcementService.CreateAnnouncement(c.Request().Context(), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, announcement); e != nil {
		return e
	}

	return nil
}

// GET /announcements/:announcementId
func (h *announcementRoutesHandler) GetAnnouncement(c echo.Context) error {
	announcement, err := h.announcementService.GetAnnouncementById(c.Request().Context(), c.Param("announcementId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, announcement); e != nil {
		return e
	}

	return nil
}

type patchAnnouncementInput struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=200"`
	Text  *string `json:"text" validate:"omitempty,min=1,max=5000"`
}

// PATCH /announcements/:announcementId
func (h *announcementRoutesHandler) PatchAnnouncement(c echo.Context) error {
	var input patchAnnouncementInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.UpdateAnnouncementInput{Title: input.Title, Text: input.Text}
	announcement, err := h.announcementService.UpdateAnnouncementById(c.Request().Context(), c.Param("announcementId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, announcement); e != nil {
		return e
	}

	return nil
}

// DELETE /announcements/:announcementId
func (h *announcementRoutesHandler) DeleteAnnouncement(c echo.Context) error {
	if err := h.announcementService.DeleteAnnouncementById(c.Request().Context(), c.Param("announcementId")); err != nil {
		return writeServiceError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}
