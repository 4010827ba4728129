package main

import (
	"errors"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hallboard/actions"
	c "hallboard/calendar"
	h "hallboard/handlers"
	"hallboard/pkg/config"
	"hallboard/tasks"
	"hallboard/timesync"
	"hallboard/types"
	"hallboard/weather"
)

var cfg *config.Config

var serverCmd = &cobra.Command{
	Use:   "hallboard-srv",
	Short: "Run the dashboard aggregation server",
	Run: func(cmd *cobra.Command, args []string) {
		logger, _ := zap.NewProduction()
		if appConfig.Debug {
			logger, _ = zap.NewDevelopment()
		}

		app := fiber.New()
		fiberLogger := fiberzap.New(fiberzap.Config{
			Logger: logger,
		})
		fiberLimiter := limiter.New(limiter.Config{
			Next: func(c *fiber.Ctx) bool {
				return c.IP() == "127.0.0.1"
			},
			Max:        60,
			Expiration: 30 * time.Second,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.Get("x-forwarded-for")
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{
					"error": "Too many requests",
				})
			},
		})

		app.Use(recover.New())
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept",
		}))
		app.Use(fiberLimiter)
		app.Use(fiberLogger)

		store := actions.NewStore()
		cal := c.New(logger)
		wx := weather.New(logger, weather.Config{
			APIKey: appConfig.Weather.APIKey,
			Lat:    appConfig.Weather.Lat,
			Lon:    appConfig.Weather.Lon,
			Units:  appConfig.Weather.Units,
		})
		ts := timesync.New(logger, appConfig.Time.Endpoints)
		td := tasks.New(logger, appConfig.Todoist.Token)

		h := h.Handlers{
			Logger:   logger,
			Calendar: cal,
			Store:    store,
			Weather:  wx,
			Time:     ts,
			Tasks:    td,
			Sources: []types.Source{
				{Name: "Todoist", URL: appConfig.Calendar.TodoistURL},
				{Name: "Apple Calendar", URL: appConfig.Calendar.PersonalURL},
				{Name: "UK Holidays", URL: appConfig.Calendar.HolidaysURL},
			},
		}

		app.Get("/health", h.HealthHandler)
		app.Get("/api/calendar", h.CalendarHandler)
		app.Post("/api/events/action", h.EventActionHandler)
		app.Get("/api/weather", h.WeatherHandler)
		app.Get("/api/weather/forecast", h.ForecastHandler)
		app.Get("/api/time", h.TimeHandler)
		app.Get("/api/tasks", h.TasksHandler)
		app.Post("/api/tasks/complete", h.TaskCompleteHandler)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Static("/", appConfig.StaticDir)

		defer func() {
			err := logger.Sync()
			if err != nil && !errors.Is(err, syscall.ENOTTY) {
				logger.Fatal(err.Error())
			}
		}()

		log.Fatal(app.Listen(":" + appConfig.Port))
	},
}

func init() {
	cfg = config.New(&config.Settings{ENVPrefix: "HALLBOARD"})

	serverCmd.Flags().StringVarP(&appConfig.Port, "port", "p", appConfig.Port, "app server port")
	serverCmd.Flags().BoolVarP(&appConfig.Debug, "debug", "d", appConfig.Debug, "Debug Mode")
}

func main() {
	_ = godotenv.Load()

	if err := cfg.Load(&appConfig, "config.yml"); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(-1)
	}

	if err := serverCmd.Execute(); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Exit(-1)
	}
}
