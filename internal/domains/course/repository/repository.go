package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"teesheet/infras/otel"
	"teesheet/internal/domains/course/model"
	"teesheet/shared/constant"
)

type Course interface {
	GetAll(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, id string) (model.Course, error)
}

type repositoryImpl struct {
	catalog map[string]model.Course
	order   []string
	otel    otel.Otel
}

// New builds the static course catalog. There is no dynamic reconfiguration;
// the table is fixed for the life of the process.
func New(otel otel.Otel) Course {
	courses := []model.Course{
		{
			ID:              "sterling_hills",
			Name:            "Sterling Hills Golf Club",
			FirstTime:       "07:00",
			LastTime:        "17:00",
			IntervalMinutes: 8,
		},
	}

	catalog := make(map[string]model.Course, len(courses))
	order := make([]string, 0, len(courses))

	for _, course := range courses {
		catalog[course.ID] = course
		order = append(order, course.ID)
	}

	return &repositoryImpl{
		catalog: catalog,
		order:   order,
		otel:    otel,
	}
}

// GetAll implements Course.
func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Course, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	courses := make([]model.Course, 0, len(repo.order))
	for _, id := range repo.order {
		courses = append(courses, repo.catalog[id])
	}

	return courses, nil
}

// Get implements Course. An unknown id returns the zero value; callers decide
// whether that is a failure.
func (repo *repositoryImpl) Get(ctx context.Context, id string) (model.Course, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	scope.SetAttribute("course.id", id)

	return repo.catalog[id], nil
}
