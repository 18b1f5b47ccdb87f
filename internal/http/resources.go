package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mrlokans/bookery/internal/entities"
	"github.com/mrlokans/bookery/internal/services"
)

// ResourceController serves the six endpoints every library resource has.
type ResourceController[E any, P any, U any] struct {
	service EntityService[E, P, U]
}

func NewResourceController[E any, P any, U any](service EntityService[E, P, U]) *ResourceController[E, P, U] {
	return &ResourceController[E, P, U]{service: service}
}

// RegisterRoutes mounts the resource under group.
func (rc *ResourceController[E, P, U]) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/create", rc.Create)
	group.GET("/get/:id", rc.Get)
	group.GET("/search", rc.Search)
	group.POST("/update", rc.Update)
	group.POST("/delete", rc.Delete)
	group.GET("/count", rc.Count)
}

// Create handles POST /{resource}/create.
// Responds 201 with the new id, 422 when the payload is rejected.
func (rc *ResourceController[E, P, U]) Create(c *gin.Context) {
	var payload P
	ok, verr := bindJSON(c, &payload)
	if verr != nil {
		respondValidationError(c, verr)
		return
	}
	if !ok {
		return
	}

	id, err := rc.service.Create(c.Request.Context(), payload)
	if err != nil {
		if errors.As(err, &verr) {
			respondValidationError(c, verr)
			return
		}
		respondInternalError(c, err, rc.op("create"))
		return
	}
	respondCreated(c, id)
}

// Get handles GET /{resource}/get/:id.
func (rc *ResourceController[E, P, U]) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	entity, found, err := rc.service.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, rc.op("get"))
		return
	}
	if !found {
		respondNotFound(c, rc.service.Name())
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Search handles GET /{resource}/search?term=. The term is required but may
// be empty, which lists every row.
func (rc *ResourceController[E, P, U]) Search(c *gin.Context) {
	term, ok := requireQuery(c, "term")
	if !ok {
		return
	}

	results, err := rc.service.Search(c.Request.Context(), term)
	if err != nil {
		respondInternalError(c, err, rc.op("search"))
		return
	}
	c.JSON(http.StatusOK, results)
}

// Update handles POST /{resource}/update.
// Unlike create, a rejected payload is answered with 500. An unknown id is
// 404 even when the payload is also invalid.
func (rc *ResourceController[E, P, U]) Update(c *gin.Context) {
	var payload U
	ok, verr := bindJSON(c, &payload)
	if verr != nil {
		rc.rejectUpdate(c, verr)
		return
	}
	if !ok {
		return
	}

	id, err := rc.service.Update(c.Request.Context(), payload)
	if errors.Is(err, services.ErrNotFound) {
		respondNotFound(c, rc.service.Name())
		return
	}
	if err != nil {
		respondInternalError(c, err, rc.op("update"))
		return
	}
	respondAccepted(c, id)
}

// Delete handles POST /{resource}/delete with body {"id": ...}.
func (rc *ResourceController[E, P, U]) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := rc.service.Delete(c.Request.Context(), req.ID)
	if errors.Is(err, services.ErrNotFound) {
		respondNotFound(c, rc.service.Name())
		return
	}
	if err != nil {
		respondInternalError(c, err, rc.op("delete"))
		return
	}
	c.String(http.StatusNoContent, fmt.Sprintf("%s %s deleted", rc.service.Name(), id))
}

// Count handles GET /{resource}/count.
func (rc *ResourceController[E, P, U]) Count(c *gin.Context) {
	n, err := rc.service.Count(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, rc.op("count"))
		return
	}
	c.JSON(http.StatusOK, n)
}

// rejectUpdate answers an update whose body failed to decode. The id is
// checked first so a missing row is reported as 404 like in Service.Update.
func (rc *ResourceController[E, P, U]) rejectUpdate(c *gin.Context, verr *entities.ValidationError) {
	var req idRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err == nil {
		found, err := rc.service.Exists(c.Request.Context(), req.ID)
		if err != nil {
			respondInternalError(c, err, rc.op("update"))
			return
		}
		if !found {
			respondNotFound(c, rc.service.Name())
			return
		}
	}
	respondInternalError(c, verr, rc.op("update"))
}

func (rc *ResourceController[E, P, U]) op(verb string) string {
	return rc.service.Name() + "." + verb
}

// RentalsController serves rentals. get and search answer with the joined
// RentalView; the stored rows are available under /raw.
type RentalsController struct {
	*ResourceController[entities.Rental, entities.RentalPayload, entities.RentalUpdatePayload]
	views RentalViewer
}

func NewRentalsController(service RentalService) *RentalsController {
	return &RentalsController{
		ResourceController: NewResourceController[entities.Rental, entities.RentalPayload, entities.RentalUpdatePayload](service),
		views:              service,
	}
}

func (rc *RentalsController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/create", rc.Create)
	group.GET("/get/:id", rc.GetView)
	group.GET("/search", rc.SearchViews)
	group.POST("/update", rc.Update)
	group.POST("/delete", rc.Delete)
	group.GET("/count", rc.Count)

	group.GET("/raw/get/:id", rc.Get)
	group.GET("/raw/search", rc.Search)
}

// GetView handles GET /rent/get/:id. A rental whose costumer or book has been
// deleted is reported as not found here, though /rent/raw/get still has it.
func (rc *RentalsController) GetView(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, found, err := rc.views.GetView(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Rental.get_view")
		return
	}
	if !found {
		respondNotFound(c, "Rental")
		return
	}
	c.JSON(http.StatusOK, view)
}

// SearchViews handles GET /rent/search?term=, matching costumer or book name.
func (rc *RentalsController) SearchViews(c *gin.Context) {
	term, ok := requireQuery(c, "term")
	if !ok {
		return
	}

	views, err := rc.views.SearchViews(c.Request.Context(), term)
	if err != nil {
		respondInternalError(c, err, "Rental.search_views")
		return
	}
	c.JSON(http.StatusOK, views)
}
