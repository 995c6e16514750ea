package backend

import (
	"context"
	"net/http"
	"strconv"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/infra/backend/model"
)

type packageRepository struct {
	client *Client
}

// NewPackageRepository creates a backend-backed package repository
func NewPackageRepository(client *Client) repository.PackageRepository {
	return &packageRepository{client: client}
}

func (r *packageRepository) List(ctx context.Context, window audience.Window) ([]*entity.Package, error) {
	var rows []model.PackageModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/subscriptions/",
		path:   "/subscriptions/",
		query:  windowParams(window),
	}, &rows)
	if err != nil {
		return nil, err
	}

	packages := make([]*entity.Package, 0, len(rows))
	for i := range rows {
		packages = append(packages, rows[i].ToEntity())
	}

	return packages, nil
}

func (r *packageRepository) FindByID(ctx context.Context, id int64) (*entity.Package, error) {
	var row model.PackageModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/subscriptions/{id}",
		path:   "/subscriptions/" + strconv.FormatInt(id, 10),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *packageRepository) Create(ctx context.Context, input entity.PackageInput) (*entity.Package, error) {
	var row model.PackageModel
	err := r.client.do(ctx, call{
		method: http.MethodPost,
		route:  "/subscriptions/",
		path:   "/subscriptions/",
		body:   model.NewPackageWriteModel(input),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *packageRepository) Assign(ctx context.Context, assignment entity.Assignment) (*entity.SubscriptionGrant, error) {
	var row model.GrantModel
	err := r.client.do(ctx, call{
		method: http.MethodPost,
		route:  "/quizzes/subscribe",
		path:   "/quizzes/subscribe",
		body: model.AssignmentModel{
			Username:         assignment.Username,
			SubscriptionName: assignment.PackageName,
		},
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *packageRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.UserSubscription, error) {
	var rows []model.UserSubscriptionModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/quizzes/user/{id}/subscriptions",
		path:   "/quizzes/user/" + strconv.FormatInt(userID, 10) + "/subscriptions",
	}, &rows)
	if err != nil {
		return nil, err
	}

	subscriptions := make([]*entity.UserSubscription, 0, len(rows))
	for i := range rows {
		subscriptions = append(subscriptions, rows[i].ToEntity())
	}

	return subscriptions, nil
}

func windowParams(w audience.Window) audience.Params {
	return audience.Params{
		{Key: "skip", Value: strconv.Itoa(w.Skip)},
		{Key: "limit", Value: strconv.Itoa(w.Limit)},
	}
}
