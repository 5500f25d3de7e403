package meta

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/cachectrl"
	"courtside.dev/backend/internal/service"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

type Index struct {
	fx.In

	SeasonService *service.Season
}

type indexPage struct {
	Seasons []int
	Metrics []string
	Charts  []string
}

func RegisterIndex(app *fiber.App, c Index) {
	app.Get("/", c.Index)

	app.Get("/api", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Welcome to the Courtside API v1",
		})
	})
}

func (c *Index) Index(ctx *fiber.Ctx) error {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexPage{
		Seasons: c.SeasonService.List(),
		Metrics: constant.Metrics,
		Charts:  constant.Charts,
	})
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, c.SeasonService.LastModified())
	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}
