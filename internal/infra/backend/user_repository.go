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

type userRepository struct {
	client *Client
}

// NewUserRepository creates a backend-backed user repository
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context, params audience.Params) ([]*entity.User, error) {
	var rows []model.UserModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/users/",
		path:   "/users/",
		query:  params,
	}, &rows)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].ToEntity())
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var row model.UserModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/users/{id}",
		path:   "/users/" + strconv.FormatInt(id, 10),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *userRepository) Create(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	var row model.UserModel
	err := r.client.do(ctx, call{
		method: http.MethodPost,
		route:  "/users/",
		path:   "/users/",
		body:   model.NewUserWriteModel(input),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *userRepository) Update(ctx context.Context, id int64, input entity.UserInput) (*entity.User, error) {
	var row model.UserModel
	err := r.client.do(ctx, call{
		method: http.MethodPut,
		route:  "/users/{id}",
		path:   "/users/" + strconv.FormatInt(id, 10),
		body:   model.NewUserWriteModel(input),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}
