package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

type errorMapping struct {
	err    error
	status int
	msgKey string
}

var domainErrors = []errorMapping{
	{domain.ErrProjectNotFound, http.StatusNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrUserNotInProject, http.StatusNotFound, apierrors.MsgUserNotInProject},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrLinkedTaskNotFound, http.StatusNotFound, apierrors.MsgLinkedTaskNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrMembershipNotFound, http.StatusNotFound, apierrors.MsgMembershipNotFound},
	{domain.ErrNotAssignee, http.StatusUnauthorized, apierrors.MsgNotAssignee},
	{domain.ErrAdminRequired, http.StatusUnauthorized, apierrors.MsgAdminRequired},
	{domain.ErrCrossProjectLink, http.StatusUnauthorized, apierrors.MsgCrossProjectLink},
	{domain.ErrSelfLink, http.StatusUnauthorized, apierrors.MsgSelfLink},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, apierrors.MsgInvalidCredentials},
	{domain.ErrTaskConflict, http.StatusConflict, apierrors.MsgTaskConflict},
	{domain.ErrMembershipExists, http.StatusConflict, apierrors.MsgMembershipExists},
	{domain.ErrEmailTaken, http.StatusConflict, apierrors.MsgEmailTaken},
	{validation.ErrMalformedPayload, http.StatusBadRequest, apierrors.MsgInvalidPayload},
	{validation.ErrInvalidQuery, http.StatusBadRequest, apierrors.MsgInvalidQuery},
}

// respondError writes the translated error matching err. Unknown errors are
// logged and answered with failKey as a 500.
func respondError(c *gin.Context, err error, failKey string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	var payloadErr *validation.PayloadError
	if errors.As(err, &payloadErr) {
		fieldErrs := make([]apierrors.FieldError, 0, len(payloadErr.Violations))
		for _, v := range payloadErr.Violations {
			fieldErrs = append(fieldErrs, apierrors.FieldError{Field: v.Field, Message: v.Message})
		}
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldsError(http.StatusUnprocessableEntity, apierrors.MsgPayloadValidation, lang, fieldErrs),
		)
		return
	}

	for _, mapping := range domainErrors {
		if errors.Is(err, mapping.err) {
			c.JSON(mapping.status, apierrors.CreateError(mapping.status, mapping.msgKey, lang))
			return
		}
	}

	fields = append(fields,
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	zap.L().Error(failKey, fields...)
	_ = c.Error(err)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
	)
}

// pathID parses a positive numeric path parameter, answering 400 otherwise.
func pathID(c *gin.Context, param, msgKey string) (uint64, bool) {
	id, err := validation.ParseID(c.Param(param))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
		)
		return 0, false
	}
	return id, true
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, middleware.GetLang(c)),
		)
		return nil, false
	}
	return body, true
}
