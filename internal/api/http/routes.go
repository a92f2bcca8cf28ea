package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-tickler/internal/dashboard"
	"github.com/i474232898/weather-tickler/internal/scene"
	"github.com/i474232898/weather-tickler/internal/store"
	"github.com/i474232898/weather-tickler/internal/weather"
	"github.com/i474232898/weather-tickler/internal/weather/providers"
)

var validate = validator.New()

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, controller *dashboard.Controller, hooks *dashboard.HookRecorder, defaultUnit weather.TempUnit) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		req, err := parseSearchQuery(c, defaultUnit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := controller.Search(c.UserContext(), req.Q)
		if err != nil {
			return lookupError(err)
		}

		return c.JSON(fiber.Map{
			"requestId": res.RequestID,
			"seq":       res.Seq,
			"applied":   res.Applied,
			"view":      renderView(res.View, req.unit),
		})
	})

	v1.Get("/dashboard/current", func(c *fiber.Ctx) error {
		unit, err := parseUnit(c, defaultUnit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap := controller.State().Snapshot()
		if snap.View == nil {
			if snap.Error != "" {
				return fiber.NewError(fiber.StatusNotFound, snap.Error)
			}
			return fiber.NewError(fiber.StatusNotFound, store.ErrNotFound.Error())
		}

		return c.JSON(fiber.Map{
			"seq":       snap.Seq,
			"query":     snap.Query,
			"loading":   snap.Loading,
			"updatedAt": snap.UpdatedAt,
			"view":      renderView(*snap.View, unit),
		})
	})

	v1.Get("/dashboard/forecast", func(c *fiber.Ctx) error {
		unit, err := parseUnit(c, defaultUnit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		vm, err := currentView(controller)
		if err != nil {
			return err
		}

		view := renderView(vm, unit)
		return c.JSON(fiber.Map{
			"location": view.Location,
			"unit":     view.Unit,
			"days":     view.Forecast,
		})
	})

	v1.Get("/dashboard/wind", func(c *fiber.Ctx) error {
		vm, err := currentView(controller)
		if err != nil {
			return err
		}
		return c.JSON(windTab{
			Location: vm.Location,
			Summary:  weather.SummarizeWind(vm.Wind),
			Entries:  vm.Wind,
		})
	})

	v1.Get("/dashboard/precipitation", func(c *fiber.Ctx) error {
		vm, err := currentView(controller)
		if err != nil {
			return err
		}
		return c.JSON(precipitationTab{
			Location: vm.Location,
			Summary:  weather.SummarizePrecipitation(vm.Precipitation),
			Entries:  vm.Precipitation,
		})
	})

	v1.Get("/dashboard/radar", func(c *fiber.Ctx) error {
		vm, err := currentView(controller)
		if err != nil {
			return err
		}
		return c.JSON(radarTab{
			Location: vm.Location,
			Entries:  vm.Radar,
		})
	})

	v1.Get("/scene", func(c *fiber.Ctx) error {
		req, err := parseSceneQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		s := scene.ClassifyHour(req.Condition, req.Hour)
		return c.JSON(fiber.Map{
			"scene": s,
			"hook":  scene.NewHook(req.Condition, s),
		})
	})

	v1.Get("/scene/current", func(c *fiber.Ctx) error {
		hook, ok := hooks.Last()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no scene applied yet")
		}
		return c.JSON(hook)
	})
}

// searchQuery holds query parameters for the search endpoint. A blank Q
// searches the default location.
type searchQuery struct {
	Q    string `validate:"max=120"`
	Unit string `validate:"omitempty,oneof=C c F f"`

	unit weather.TempUnit
}

func parseSearchQuery(c *fiber.Ctx, def weather.TempUnit) (searchQuery, error) {
	q := searchQuery{
		Q:    c.Query("q"),
		Unit: c.Query("unit"),
	}
	if err := validate.Struct(q); err != nil {
		return q, err
	}

	unit, err := parseUnit(c, def)
	if err != nil {
		return q, err
	}
	q.unit = unit
	return q, nil
}

func parseUnit(c *fiber.Ctx, def weather.TempUnit) (weather.TempUnit, error) {
	raw := c.Query("unit")
	if raw == "" {
		return def, nil
	}
	return weather.ParseTempUnit(raw)
}

// sceneQuery holds query parameters for the classifier endpoint.
type sceneQuery struct {
	Condition string `validate:"max=64"`
	Hour      int
}

// parseSceneQuery reads condition and hour. A missing hour means the
// current UTC hour; any integer is accepted and wrapped onto the clock.
func parseSceneQuery(c *fiber.Ctx) (sceneQuery, error) {
	q := sceneQuery{
		Condition: c.Query("condition"),
		Hour:      time.Now().UTC().Hour(),
	}
	if raw := c.Query("hour"); raw != "" {
		h, err := strconv.Atoi(raw)
		if err != nil {
			return q, errors.New("invalid hour; use an integer")
		}
		q.Hour = h
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func currentView(controller *dashboard.Controller) (weather.ViewModel, error) {
	vm, err := controller.State().Current()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return vm, fiber.NewError(fiber.StatusNotFound, "no weather view available")
		}
		return vm, fiber.NewError(fiber.StatusInternalServerError, "failed to read weather view")
	}
	return vm, nil
}

// lookupError maps a failed search onto an HTTP status.
func lookupError(err error) error {
	var se *providers.StatusError
	switch {
	case errors.Is(err, weather.ErrEmptyQuery):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrMalformedResponse):
		return fiber.NewError(fiber.StatusBadGateway, weather.ErrMalformedResponse.Error())
	case errors.As(err, &se):
		if se.Code == fiber.StatusNotFound {
			return fiber.NewError(fiber.StatusNotFound, se.Error())
		}
		return fiber.NewError(fiber.StatusBadGateway, se.Error())
	case errors.Is(err, weather.ErrUpstream):
		return fiber.NewError(fiber.StatusBadGateway, weather.ErrUpstream.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}
