package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"teesheet/infras/otel"
	"teesheet/internal/domains/course/service"
	"teesheet/shared/constant"
	"teesheet/transport/http/response"
)

type Handler struct {
	service service.Course
	otel    otel.Otel
}

func New(service service.Course, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/courses", handler.GetCourses)
}

// GetCourses lists the course catalog.
// @Summary List courses
// @Description List every configured course with its operating window and slot interval.
// @Tags Course
// @Accept json
// @Produce json
// @Success 200 {array} dto.CourseResponse "Course catalog"
// @Failure 500 {object} response.Error
// @Router /courses [get]
func (handler *Handler) GetCourses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourses")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
