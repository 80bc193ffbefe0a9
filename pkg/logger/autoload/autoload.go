// Package autoload initializes the global logger from the environment on
// blank import.
package autoload

import (
	configx "github.com/tanpawarit/Chative-Sales-Catalog/pkg/config"
	logx "github.com/tanpawarit/Chative-Sales-Catalog/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
