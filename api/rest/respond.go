package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// statusOf maps an error taxonomy kind to an HTTP status.
func statusOf(err error) int {
	kind, ok := errs.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindState:
		return http.StatusConflict
	case errs.KindResource:
		return http.StatusBadRequest
	case errs.KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// fail writes a JSON error with its taxonomy kind.
func fail(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if kind, ok := errs.KindOf(err); ok {
		body["kind"] = kind.String()
	}
	c.JSON(statusOf(err), body)
}
