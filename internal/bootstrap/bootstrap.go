package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "aperture/internal/modules/auth/adapter/in"
	authoutadapter "aperture/internal/modules/auth/adapter/out"
	authservice "aperture/internal/modules/auth/service"
	authusecase "aperture/internal/modules/auth/usecase"
	examinadapter "aperture/internal/modules/exam/adapter/in"
	examoutadapter "aperture/internal/modules/exam/adapter/out"
	examservice "aperture/internal/modules/exam/service"
	examusecase "aperture/internal/modules/exam/usecase"
	learninadapter "aperture/internal/modules/learn/adapter/in"
	learnoutadapter "aperture/internal/modules/learn/adapter/out"
	learnservice "aperture/internal/modules/learn/service"
	learnusecase "aperture/internal/modules/learn/usecase"
	newsinadapter "aperture/internal/modules/news/adapter/in"
	newsoutadapter "aperture/internal/modules/news/adapter/out"
	newsusecase "aperture/internal/modules/news/usecase"
	notesinadapter "aperture/internal/modules/notes/adapter/in"
	notesoutadapter "aperture/internal/modules/notes/adapter/out"
	notesservice "aperture/internal/modules/notes/service"
	notesusecase "aperture/internal/modules/notes/usecase"
	storesinadapter "aperture/internal/modules/stores/adapter/in"
	storesoutadapter "aperture/internal/modules/stores/adapter/out"
	storesusecase "aperture/internal/modules/stores/usecase"
	"aperture/internal/platform/clock"
	"aperture/internal/platform/config"
	"aperture/internal/platform/id"
	"aperture/internal/platform/logging"
	uiapp "aperture/internal/ui/app"
)

type App struct {
	Config    config.Config
	Log       *zap.Logger
	AuthCLI   authinadapter.CLIHandler
	ExamCLI   examinadapter.CLIHandler
	NotesCLI  notesinadapter.CLIHandler
	LearnCLI  learninadapter.CLIHandler
	NewsCLI   newsinadapter.CLIHandler
	StoresCLI storesinadapter.CLIHandler

	closeLog func() error
}

func New(cfg config.Config) (*App, error) {
	logger, closeLog, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	attemptProjector, err := examoutadapter.NewSQLiteAttemptProjector(cfg.DBPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("new attempt projector: %w", err)
	}
	examUC := examusecase.NewInteractor(
		examservice.NewExamService(clk, ids,
			examoutadapter.NewYAMLBankStore(cfg.VaultPath),
			examoutadapter.NewVaultAttemptStore(cfg.VaultPath),
			attemptProjector,
		),
		examoutadapter.NewFileActiveExamStore(cfg.VaultPath),
		logger.Named("exam"),
	)

	noteProjector, err := notesoutadapter.NewSQLiteNoteProjector(cfg.DBPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("new note projector: %w", err)
	}
	notesUC := notesusecase.NewInteractor(
		notesservice.NewNoteService(clk, ids,
			notesoutadapter.NewVaultNoteStore(cfg.VaultPath),
			noteProjector,
			notesoutadapter.NewPDFTextExtractor(),
			cfg.SummarySentences,
		),
		logger.Named("notes"),
	)

	learnUC := learnusecase.NewInteractor(
		learnservice.NewLearnService(learnoutadapter.NewEmbeddedCatalog(), learnoutadapter.NewHTMLPageWriter()),
		logger.Named("learn"),
	)
	newsUC := newsusecase.NewInteractor(newsoutadapter.NewEmbeddedFeed(), newsoutadapter.NewOSExternalLauncher(), logger.Named("news"))
	storesUC := storesusecase.NewInteractor(storesoutadapter.NewEmbeddedDirectory())

	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(clk, ids,
			authoutadapter.NewFileAccountStore(cfg.VaultPath),
			authoutadapter.NewBcryptHasher(0),
		),
		authusecase.DemoCredentials{Email: cfg.DemoEmail, Password: cfg.DemoPassword},
		logger.Named("auth"),
	)

	logger.Debug("application wired", zap.String("vault", cfg.VaultPath), zap.String("db", cfg.DBPath))
	return &App{
		Config:    cfg,
		Log:       logger,
		AuthCLI:   authinadapter.NewCLIHandler(authUC),
		ExamCLI:   examinadapter.NewCLIHandler(examUC),
		NotesCLI:  notesinadapter.NewCLIHandler(notesUC),
		LearnCLI:  learninadapter.NewCLIHandler(learnUC),
		NewsCLI:   newsinadapter.NewCLIHandler(newsUC),
		StoresCLI: storesinadapter.NewCLIHandler(storesUC),
		closeLog:  closeLog,
	}, nil
}

// Close flushes and closes the log file.
func (a *App) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(uiapp.Ports{
		Auth:   app.AuthCLI,
		Exam:   app.ExamCLI,
		Notes:  app.NotesCLI,
		Learn:  app.LearnCLI,
		News:   app.NewsCLI,
		Stores: app.StoresCLI,
	}, uiapp.Timings{
		Splash:       app.Config.SplashDelay,
		Welcome:      app.Config.WelcomeDelay,
		SignupNotice: app.Config.SignupDelay,
		NewsInterval: app.Config.NewsInterval,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
