package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// parseID reads an integer path parameter and answers 400 when it is not one.
func parseID(c *gin.Context, log *logrus.Logger, name, entity string) (int, bool) {
	idStr := c.Param(name)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Warnf("Invalid %s ID parameter: %s", entity, idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+entity+" ID format")
		return 0, false
	}
	return id, true
}

// pageRequest reads page and size from the query. Unparsable values fall
// back to the defaults and out-of-range ones are clamped.
func pageRequest(c *gin.Context, log *logrus.Logger) domain.PageRequest {
	pageStr := c.DefaultQuery("page", strconv.Itoa(domain.DefaultPage))
	sizeStr := c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Warnf("Invalid page parameter '%s', using default %d", pageStr, domain.DefaultPage)
		page = domain.DefaultPage
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Warnf("Invalid size parameter '%s', using default %d", sizeStr, domain.DefaultPageSize)
		size = domain.DefaultPageSize
	}
	return domain.NewPageRequest(page, size)
}
