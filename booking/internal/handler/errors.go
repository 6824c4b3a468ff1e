package handler

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/validate"
)

const msgInternal = "internal server error"

func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code, resp := errorResponse(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, resp)
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func errorResponse(err error) (int, model.Response) {
	var (
		fieldErrs  validator.ValidationErrors
		validation *errs.ValidationError
		notFound   *errs.NotFoundError
		conflict   *errs.ConflictError
		business   *errs.BusinessError
		authErr    *errs.AuthError
		httpErr    *echo.HTTPError
	)
	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, model.Fail("validation failed", validate.Messages(fieldErrs)...)
	case errors.As(err, &validation):
		return http.StatusBadRequest, model.Fail(validation.Message, validation.Fields...)
	case errors.As(err, &notFound):
		return http.StatusNotFound, model.Fail(notFound.Error())
	case errors.As(err, &conflict):
		return http.StatusConflict, model.Fail(conflict.Message)
	case errors.As(err, &business):
		if business.Forbidden {
			return http.StatusForbidden, model.Fail(business.Message)
		}
		return http.StatusBadRequest, model.Fail(business.Message)
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, model.Fail(authErr.Message)
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, model.Fail(msgInternal)
		}
		return httpErr.Code, model.Fail(fmt.Sprint(httpErr.Message))
	}
	return http.StatusInternalServerError, model.Fail(msgInternal)
}
