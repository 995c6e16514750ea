package backend

import (
	"context"
	"net/http"
	"strconv"

	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/domain/repository"
	"notifyconsole/internal/infra/backend/model"
)

type channelProfileRepository struct {
	client *Client
}

// NewChannelProfileRepository creates a backend-backed profile repository
func NewChannelProfileRepository(client *Client) repository.ChannelProfileRepository {
	return &channelProfileRepository{client: client}
}

func (r *channelProfileRepository) FindByID(ctx context.Context, id int64) (*entity.ChannelProfile, error) {
	var row model.ProfileModel
	err := r.client.do(ctx, call{
		method: http.MethodGet,
		route:  "/messengers/{id}",
		path:   "/messengers/" + strconv.FormatInt(id, 10),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *channelProfileRepository) Create(ctx context.Context, profile entity.ChannelProfile) (*entity.ChannelProfile, error) {
	var row model.ProfileModel
	err := r.client.do(ctx, call{
		method: http.MethodPost,
		route:  "/messengers/",
		path:   "/messengers/",
		body:   model.NewProfileWriteModel(profile),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}

func (r *channelProfileRepository) Update(ctx context.Context, id int64, profile entity.ChannelProfile) (*entity.ChannelProfile, error) {
	var row model.ProfileModel
	err := r.client.do(ctx, call{
		method: http.MethodPut,
		route:  "/messengers/{id}",
		path:   "/messengers/" + strconv.FormatInt(id, 10),
		body:   model.NewProfileWriteModel(profile),
	}, &row)
	if err != nil {
		return nil, err
	}

	return row.ToEntity(), nil
}
