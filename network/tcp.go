package network

import (
	"net"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/sirupsen/logrus"
)

type Tcp struct {
	addr string
}

func NewTcpServer(addr string) Tcp {
	return Tcp{addr: addr}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		logrus.Error(err)
		return err
	}
	logrus.Infof("Tcp server listening on %s", t.addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			logrus.Infof("listener.Accept err %v", err)
			continue
		}
		async.Async(func() {
			err := handle(protocol.NewTcpReadWriteCloser(conn))
			if err != nil {
				logrus.Error(err)
			}
		})
	}
}
