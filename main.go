package main

import (
	"fmt"

	"github.com/ratel-online/core/util/async"
	"github.com/sirupsen/logrus"

	"github.com/taki-online/server/config"
	"github.com/taki-online/server/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	async.Async(func() {
		logrus.Error(network.NewTcpServer(cfg.TCPAddr).Serve())
	})
	logrus.Error(network.NewWebsocketServer(cfg.WSAddr).Serve())
}
