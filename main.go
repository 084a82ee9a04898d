package main

import (
	"context"
	"log"
	"time"

	"github.com/Reactman/wakanda/auditing"
	"github.com/Reactman/wakanda/config"
	"github.com/Reactman/wakanda/global"
	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/repositories"
	"github.com/Reactman/wakanda/routes"
	"github.com/Reactman/wakanda/services"
	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	// 1) Load config from file and/or env
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort)

	// 2) Resolve the auditor; a name that does not resolve stops the boot.
	auditor, err := auditing.Resolve(cfg.AuditorAware)
	if err != nil {
		log.Fatalf("[boot] %v (registered: %v)", err, auditing.Names())
	}

	// 3) Infrastructure
	db := config.InitDB(cfg, auditor)
	rdb := config.InitRedis(cfg)
	rlog := redislog.New(rdb, cfg.LogKey, 1000, 7*24*time.Hour)
	rlog.Info(context.Background(), "app boot", map[string]string{
		"env":             cfg.Env,
		"port":            cfg.HTTPPort,
		"naming_strategy": cfg.NamingStrategy,
		"auditor_aware":   cfg.AuditorAware,
	})

	// 4) Repositories and services
	userSvc := services.NewUserService(repositories.NewUserRepository(db), rdb, rlog)
	orderSvc := services.NewBaseService[models.CustomerOrder, *models.CustomerOrder, uuid.UUID](
		repositories.NewOrderRepository(db), rdb, rlog, "order")

	// 5) HTTP
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, userSvc, orderSvc, rlog, cfg.JWTSecret, config.JWTExpiryDuration)

	rlog.Info(context.Background(), "http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error(context.Background(), "http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
