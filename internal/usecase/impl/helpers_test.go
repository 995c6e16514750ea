package impl

import (
	"io"
	"log/slog"

	"notifyconsole/config"
	"notifyconsole/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Dispatch:  config.DispatchConfig{ChannelDefaults: []string{"telegram"}},
		Directory: config.DirectoryConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func linkedUser(id, profileID int64) *entity.User {
	return &entity.User{ID: id, Username: "ann", Email: "ann@example.com", MessengerID: int64Ptr(profileID)}
}

func unlinkedUser(id int64) *entity.User {
	return &entity.User{ID: id, Username: "ann", Email: "ann@example.com", FullName: "Ann Lee"}
}
