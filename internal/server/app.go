// Package server wires the relay together: primary store, cipher,
// replication link to the secondary store, domain services and the gRPC
// façade, with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mlajnef/rpc-messenger/internal/cryptox"
	"github.com/mlajnef/rpc-messenger/internal/logging"
	pb "github.com/mlajnef/rpc-messenger/internal/proto"
	"github.com/mlajnef/rpc-messenger/internal/server/config"
	"github.com/mlajnef/rpc-messenger/internal/server/groups"
	"github.com/mlajnef/rpc-messenger/internal/server/messages"
	"github.com/mlajnef/rpc-messenger/internal/server/replication"
	"github.com/mlajnef/rpc-messenger/internal/server/shared/db"
	"github.com/mlajnef/rpc-messenger/internal/server/users"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gs "github.com/mlajnef/rpc-messenger/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	groupService   *groups.Service
	messageService *messages.Service
	manager        db.RepositoryManager
	secondaryConn  *grpc.ClientConn
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	cipher, err := cryptox.NewFromBase64(c.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	manager, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	// The secondary link is lazy: the dial never blocks and a dead
	// replica only surfaces as logged forward failures.
	conn, err := grpc.NewClient(c.SecondaryAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("secondary dial error: %w", err)
	}

	sink := replication.NewForwarder(pb.NewSecondaryStoreClient(conn), c.ReplicationTimeout, logger)

	us := users.NewService(manager.Users(), sink)
	gr := groups.NewService(manager.Groups(), sink)
	ms := messages.NewService(manager.Messages(), cipher, us, sink, logger)

	return &App{
		config:         c,
		logger:         logger,
		userService:    us,
		groupService:   gr,
		messageService: ms,
		manager:        manager,
		secondaryConn:  conn,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.groupService, app.messageService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting relay...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.secondaryConn.Close(); err != nil {
		app.logger.Warn(ctx, "error closing secondary connection", "error", err)
	}
	if err := app.manager.Close(); err != nil {
		app.logger.Warn(ctx, "error closing database", "error", err)
	}
}
