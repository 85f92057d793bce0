package engine

import (
	"github.com/spaghettifunk/vecmath/engine/config"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnConfigReload  OnConfigReload
	FnShutdown        Shutdown
}

type Initialize func(cfg *config.Config) error
type Update func(deltaTime float64) error
type OnConfigReload func(cfg *config.Config) error
type Shutdown func() error
