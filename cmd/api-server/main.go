package main

import (
	"Foodgram/config"
	"Foodgram/models"
	"Foodgram/pkg/log"
	"Foodgram/pkg/server"
	"Foodgram/service"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Tools 命令行维护任务依赖
type Tools struct {
	DB                *gorm.DB
	IngredientService service.IIngredientService
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "Foodgram backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					tools := InitTools(cfg)
					if err := tools.DB.WithContext(ctx.Context).AutoMigrate(models.All()...); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "load-ingredients",
				Usage: "import ingredients from a csv file (name,unit)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "csv file path",
						Required: true,
					},
				},
				Action: func(ctx *cli.Context) error {
					f, err := os.Open(ctx.String("file"))
					if err != nil {
						return err
					}
					defer f.Close()

					tools := InitTools(cfg)
					result, err := tools.IngredientService.Load(ctx.Context, f)
					if err != nil {
						return err
					}
					log.L.Info("ingredients loaded",
						zap.String("file", ctx.String("file")),
						zap.Int("total", result.Total),
						zap.Int("created", result.Created),
					)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
