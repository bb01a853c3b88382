package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/attachment"
	apierrors "github.com/horeca-prospection/backend/pkg/api/errors"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/storage"
)

// AttachmentHandler hands out pre-signed S3 URLs and tracks uploads
type AttachmentHandler struct {
	db        *ent.Client
	storage   *storage.Service
	validator *validator.Validate
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(db *ent.Client, storageService *storage.Service) *AttachmentHandler {
	return &AttachmentHandler{
		db:        db,
		storage:   storageService,
		validator: validator.New(),
	}
}

// Presign returns a pre-signed upload URL and records the attachment
func (h *AttachmentHandler) Presign(c echo.Context) error {
	if h.storage == nil {
		return apierrors.BadRequestError(c, "File uploads are not configured")
	}

	var req models.PresignRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid owner id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	uploadURL, key, err := h.storage.PresignUpload(ctx, req.OwnerType, ownerID, req.FileName, req.ContentType)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	_, err = h.db.Attachment.Create().
		SetS3Key(key).
		SetFileName(req.FileName).
		SetContentType(req.ContentType).
		SetOwnerType(attachment.OwnerType(req.OwnerType)).
		SetOwnerID(ownerID).
		SetUploaderID(currentUserID(c)).
		Save(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(models.PresignResponse{
		UploadURL: uploadURL,
		Key:       key,
		ExpiresIn: h.storage.ExpirySeconds(),
	}))
}

// Download returns a pre-signed GET URL for an attachment
func (h *AttachmentHandler) Download(c echo.Context) error {
	if h.storage == nil {
		return apierrors.BadRequestError(c, "File uploads are not configured")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid attachment id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	att, err := h.db.Attachment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "Attachment")
		}
		return apierrors.DatabaseError(c, err)
	}

	url, err := h.storage.PresignDownload(ctx, att.S3Key)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(map[string]interface{}{
		"downloadUrl": url,
		"fileName":    att.FileName,
		"expiresIn":   h.storage.ExpirySeconds(),
	}))
}

// ListByOwner returns the attachments of a prospect or visit
func (h *AttachmentHandler) ListByOwner(c echo.Context) error {
	ownerType := c.QueryParam("ownerType")
	if ownerType != "prospect" && ownerType != "visit" {
		return apierrors.BadRequestError(c, "ownerType must be prospect or visit")
	}

	ownerID, err := uuid.Parse(c.QueryParam("ownerId"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid owner id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.db.Attachment.Query().
		Where(
			attachment.OwnerTypeEQ(attachment.OwnerType(ownerType)),
			attachment.OwnerIDEQ(ownerID),
		).
		Order(ent.Desc(attachment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	out := make([]map[string]interface{}, len(rows))
	for i, a := range rows {
		out[i] = map[string]interface{}{
			"id":          a.ID,
			"fileName":    a.FileName,
			"contentType": a.ContentType,
			"sizeBytes":   a.SizeBytes,
			"createdAt":   a.CreatedAt.Format(time.RFC3339),
		}
	}

	return c.JSON(http.StatusOK, models.Success(out))
}
