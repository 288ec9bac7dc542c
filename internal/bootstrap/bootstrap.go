package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	archiveinadapter "mindspace/internal/modules/archive/adapter/in"
	archiveoutadapter "mindspace/internal/modules/archive/adapter/out"
	archiveout "mindspace/internal/modules/archive/port/out"
	archiveservice "mindspace/internal/modules/archive/service"
	archiveusecase "mindspace/internal/modules/archive/usecase"
	checklistinadapter "mindspace/internal/modules/checklist/adapter/in"
	checklistusecase "mindspace/internal/modules/checklist/usecase"
	focusinadapter "mindspace/internal/modules/focus/adapter/in"
	focusoutadapter "mindspace/internal/modules/focus/adapter/out"
	focususecase "mindspace/internal/modules/focus/usecase"
	timerinadapter "mindspace/internal/modules/timer/adapter/in"
	timeroutadapter "mindspace/internal/modules/timer/adapter/out"
	timerdto "mindspace/internal/modules/timer/dto"
	timerservice "mindspace/internal/modules/timer/service"
	timerusecase "mindspace/internal/modules/timer/usecase"
	"mindspace/internal/platform/clock"
	"mindspace/internal/platform/config"
	"mindspace/internal/platform/id"
	"mindspace/internal/platform/logging"
	uiapp "mindspace/internal/ui/app"
	archiveview "mindspace/internal/ui/views/archive"
	spaceview "mindspace/internal/ui/views/space"
)

const watchDebounce = 150 * time.Millisecond

type App struct {
	TimerCLI     timerinadapter.CLIHandler
	TimerTUI     timerinadapter.TUIHandler
	ArchiveCLI   archiveinadapter.CLIHandler
	ArchiveTUI   archiveinadapter.TUIHandler
	ChecklistTUI checklistinadapter.TUIHandler
	FocusTUI     focusinadapter.TUIHandler
	Logger       *log.Logger

	closers []func() error
}

func New(cfg config.Config) (*App, error) {
	logger, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open logger: %w", err)
	}
	app := &App{Logger: logger}
	app.closers = append(app.closers, logFile.Close)

	store, watcher, err := newArchiveStore(cfg, logger)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	if c, ok := store.(io.Closer); ok {
		app.closers = append(app.closers, c.Close)
	}
	archiveUC := archiveusecase.NewInteractor(
		archiveservice.NewArchiveService(clock.SystemClock{}, id.UUID{}, store, logger.WithPrefix("archive")),
		watcher,
	)

	scheduler, err := timeroutadapter.NewGocronScheduler()
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new scheduler: %w", err)
	}
	app.closers = append(app.closers, scheduler.Shutdown)
	timerUC := timerusecase.NewInteractor(
		timerservice.NewController(scheduler, cfg.TickInterval, logger.WithPrefix("timer")),
		cfg.Presets,
	)
	// The timer releases its tick before the scheduler shuts down.
	app.closers = append(app.closers, timerUC.Close)

	focusUC := focususecase.NewInteractor(focusoutadapter.NewMemoryModeHolder())

	app.TimerCLI = timerinadapter.NewCLIHandler(timerUC)
	app.TimerTUI = timerinadapter.NewTUIHandler(timerUC)
	app.ArchiveCLI = archiveinadapter.NewCLIHandler(archiveUC)
	app.ArchiveTUI = archiveinadapter.NewTUIHandler(archiveUC)
	app.ChecklistTUI = checklistinadapter.NewTUIHandler(checklistusecase.NewInteractor())
	app.FocusTUI = focusinadapter.NewTUIHandler(focusUC)
	logger.Debug("app ready", "storage", cfg.Storage, "data", cfg.DataDir)
	return app, nil
}

// Close tears resources down in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newArchiveStore(cfg config.Config, logger *log.Logger) (archiveout.KVStore, archiveout.ChangeWatcher, error) {
	switch cfg.Storage {
	case config.StorageFile:
		store := archiveoutadapter.NewFileKVStore(cfg.ArchiveDir)
		return store, archiveoutadapter.NewFSWatcher(cfg.ArchiveDir, []string{"*.json"}, watchDebounce, logger), nil
	case config.StorageMemory:
		return archiveoutadapter.NewMemoryKVStore(), nil, nil
	default:
		store, err := archiveoutadapter.NewSQLiteKVStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("new kv store: %w", err)
		}
		base := filepath.Base(cfg.DBPath)
		pattern := strings.TrimSuffix(base, filepath.Ext(base)) + ".db*"
		return store, archiveoutadapter.NewFSWatcher(filepath.Dir(cfg.DBPath), []string{pattern}, watchDebounce, logger), nil
	}
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TimerTUI, app.ArchiveTUI, app.ChecklistTUI, app.FocusTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())

	stopTimer := app.TimerTUI.Watch(func(state timerdto.StateOutput) {
		program.Send(spaceview.TimerMsg{State: state})
	})
	defer stopTimer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		err := app.ArchiveTUI.Watch(ctx, func() { program.Send(archiveview.ChangedMsg{}) })
		if err != nil {
			app.Logger.Warn("archive watch stopped", "err", err)
		}
	}()

	_, err := program.Run()
	return err
}
