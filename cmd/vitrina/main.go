package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/storefrontlabs/vitrina/internal/config"
	"github.com/storefrontlabs/vitrina/internal/migration"
	"github.com/storefrontlabs/vitrina/internal/observability"
	"github.com/storefrontlabs/vitrina/internal/server"
	"github.com/storefrontlabs/vitrina/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
