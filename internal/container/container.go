package container

import (
	"errors"
	"io"

	"cover-meter/config"
	"cover-meter/internal/api"
	app "cover-meter/internal/application"
	"cover-meter/internal/domain/port"
	"cover-meter/internal/infrastructure/storage"
	"cover-meter/internal/infrastructure/vision"
)

type Container struct {
	CoverageService *app.CoverageService
	BatchService    *app.BatchService
	Notifiers       []port.SummaryNotifier
}

func New(opener port.RasterOpener, masker port.ChannelMasker, reports port.ReportOpener, notifiers ...port.SummaryNotifier) *Container {
	coverageService := app.NewCoverageService(opener, masker)
	batchService := app.NewBatchService(coverageService, reports)

	return &Container{
		CoverageService: coverageService,
		BatchService:    batchService,
		Notifiers:       notifiers,
	}
}

// Build собирает контейнер по конфигурации: бэкенд изображений, CSV-отчёт, уведомления.
func Build(cfg *config.Config, out io.Writer) (*Container, error) {
	opener, masker, err := visionBackend(cfg.VisionBackend)
	if err != nil {
		return nil, err
	}

	notifiers := []port.SummaryNotifier{api.NewConsole(out)}
	if cfg.TelegramEnabled() {
		bot, err := api.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, bot)
	}

	return New(opener, masker, storage.NewCSVReportOpener(), notifiers...), nil
}

func visionBackend(name string) (port.RasterOpener, port.ChannelMasker, error) {
	switch name {
	case config.BackendGoCV:
		if !vision.GoCVEnabled {
			return nil, nil, errors.New("VISION_BACKEND=gocv requires a build with -tags gocv")
		}
		return vision.NewGoCVOpener(), vision.NewGoCVMasker(), nil
	default:
		return vision.NewNativeOpener(), vision.NewNativeMasker(), nil
	}
}
