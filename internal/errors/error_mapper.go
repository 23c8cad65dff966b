package errors

import (
	stderrors "errors"
	"net/http"

	"restaurant-app-api/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case stderrors.Is(err, database.ErrUnavailable):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgStoreUnavailable,
			Code:             ErrCodeStoreUnavailable,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	case stderrors.Is(err, mongo.ErrNoDocuments):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgUserNotFound,
			Code:             ErrCodeUserNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
