package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles HTTP requests related to contacts.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerContactRoutes registers routes related to contacts.
func registerContactRoutes(rg *gin.RouterGroup, cs portssvc.ContactSvcFacade) {
	h := newContactHandler(cs)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactID", h.getContact)
	}
}

// createContact godoc
// @Summary Create a contact
// @Description Creates a contact that obligations can reference
// @Tags contacts
// @Accept  json
// @Produce  json
// @Param   contact body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create contact"
// @Router /contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create contact")
		return
	}

	logger.Info("Contact created successfully", slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

// listContacts godoc
// @Summary List contacts
// @Tags contacts
// @Produce  json
// @Success 200 {array} dto.ContactResponse
// @Failure 500 {object} map[string]string "Failed to list contacts"
// @Router /contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	contacts, err := h.contactService.ListContacts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list contacts")
		return
	}

	responses := make([]dto.ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = dto.ToContactResponse(&contacts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getContact godoc
// @Summary Get a contact
// @Tags contacts
// @Produce  json
// @Param   contactID path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 500 {object} map[string]string "Failed to retrieve contact"
// @Router /contacts/{contactID} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("contactID")

	contact, err := h.contactService.GetContactByID(c.Request.Context(), contactID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve contact")
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}
