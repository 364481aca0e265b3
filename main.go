package main

import (
	"os"
	"os/signal"
	"syscall"

	"mkbarber.pl/configs"
	"mkbarber.pl/configs/configsdatabase"
	"mkbarber.pl/configs/configslog"
	"mkbarber.pl/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName: "mkbarber.pl",
		Views:   engine,
	})

	app.Static("/static", "./static")
	routes.SetupRoutes(app)

	addr := ":" + configs.GetAppPort()
	go func() {
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("Serwer HTTP zakończył pracę z błędem", zap.Error(err))
		}
	}()
	configslog.SLog.Infof("Serwer nasłuchuje na %s.", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Zamykanie serwera...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Błąd przy zamykaniu serwera", zap.Error(err))
	}
}
