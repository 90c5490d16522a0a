package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"teesheet/infras/otel"
	"teesheet/internal/domains/course/model/dto"
	"teesheet/internal/domains/course/repository"
	"teesheet/shared/constant"
	"teesheet/shared/failure"
)

type Course interface {
	GetAll(ctx context.Context) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id string) (dto.CourseResponse, error)
}

type serviceImpl struct {
	repo repository.Course
	otel otel.Otel
}

func New(repo repository.Course, otel otel.Otel) Course {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CourseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get courses")

		return res, err
	}

	res = make([]dto.CourseResponse, len(courses))
	for i, course := range courses {
		res[i].FromModel(course)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CourseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	course, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get course")

		return res, err
	}

	if course.ID == "" {
		return res, failure.NotFound("Unknown course_id") // nolint:wrapcheck
	}

	res.FromModel(course)

	return res, nil
}
