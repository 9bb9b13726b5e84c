package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/zestagio/pallet-town/internal/server"
	serverstatic "github.com/zestagio/pallet-town/internal/server-static"
)

const (
	nameServerStatic = "server-static"
	serviceName      = "Pallet Town"
)

func initServerStatic(
	addr string,
	root string,
	maxConns int,
	shutdownTimeout time.Duration,
	registerer prometheus.Registerer,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerStatic)

	handlers, err := serverstatic.New(serverstatic.NewOptions(root, serverstatic.WithRegisterer(registerer)))
	if err != nil {
		return nil, fmt.Errorf("create static handlers: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		serviceName,
		addr,
		maxConns,
		handlers.Register,
		os.Stdout,
		server.WithShutdownTimeout(shutdownTimeout),
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
