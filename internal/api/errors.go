package api

import (
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/store"
)

// HandleStoreError maps errors from the store onto the HTTP contract:
// validation failures become a 400 with the full message list, missing
// entities a 404, and anything else a generic 500 with the detail kept
// out of the response body.
func HandleStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	var validationErr *store.ValidationError
	switch {
	case errors.As(err, &validationErr):
		shared.RespondWithValidationErrors(w, r, validationErr.Messages)
	case errors.Is(err, store.ErrUserNotFound), errors.Is(err, store.ErrTaskNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, notFoundMessage)
	default:
		shared.RespondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
