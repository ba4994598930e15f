package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-quest/api"
	gameapi "github.com/beka-birhanu/maze-quest/api/game"
	api_i "github.com/beka-birhanu/maze-quest/api/i"
	"github.com/beka-birhanu/maze-quest/config"
	"github.com/beka-birhanu/maze-quest/service"
	"github.com/beka-birhanu/maze-quest/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	playManager    i.PlayManager
	playController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func initPlayManager() {
	sessionLogger := log.New(os.Stdout, config.ColorCyan+"[PLAY-MANAGER] "+config.LogColorReset, log.LstdFlags)

	var err error
	playManager, err = service.NewPlayManager(&service.Config{
		DefaultWidth:     config.Envs.MazeWidth,
		DefaultHeight:    config.Envs.MazeHeight,
		PlaybackInterval: time.Duration(config.Envs.PlaybackIntervalMS) * time.Millisecond,
		Logger:           sessionLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating play manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s play manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initPlayController() {
	controllerLogger := log.New(os.Stdout, config.ColorMagenta+"[PLAY-API] "+config.LogColorReset, log.LstdFlags)

	var err error
	playController, err = gameapi.NewPlayController(playManager, controllerLogger)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating play controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s play controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{playController},
	})
	appLogger.Printf("%s[INFO]%s router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	appLogger = log.New(os.Stdout, config.ColorBlue+"[APP] "+config.LogColorReset, log.LstdFlags)
	gin.SetMode(config.Envs.GinMode)

	initPlayManager()
	initPlayController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s running server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
