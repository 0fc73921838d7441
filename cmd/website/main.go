package main

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/springagram/cmd/website/internal/archive"
	"github.com/adampresley/springagram/cmd/website/internal/archivesync"
	"github.com/adampresley/springagram/cmd/website/internal/configuration"
	"github.com/adampresley/springagram/cmd/website/internal/events"
	"github.com/adampresley/springagram/cmd/website/internal/history"
	"github.com/adampresley/springagram/cmd/website/internal/home"
	"github.com/adampresley/springagram/cmd/website/internal/photos"
	"github.com/adampresley/springagram/pkg/database"
	"github.com/adampresley/springagram/pkg/services"
	"github.com/rfberaldo/sqlz"
)

var (
	Version string = "development"
	appName string = "springagram"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	archiveService     services.ArchiveServicer
	archiveSyncService archivesync.ArchiveSyncer
	db                 *sqlz.DB
	eventHub           *services.EventHub
	historyService     services.HistoryServicer
	photoListService   services.PhotoListServicer
	renderer           rendering.TemplateRenderer
	springagramService services.SpringagramServicer
	taskService        services.TaskServicer

	/* Controllers */
	archiveController archive.ArchiveHandlers
	eventsController  events.EventsHandlers
	historyController history.HistoryHandlers
	homeController    home.HomeHandlers
	photoController   photos.PhotoHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("apiUrl", config.ApiURL),
		slog.Bool("archiveEnabled", config.ArchiveEnabled),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	if db, err = database.Connect(config.DSN); err != nil {
		panic(err)
	}

	if err = database.Migrate(db); err != nil {
		panic(err)
	}

	if renderer, err = newRenderer(); err != nil {
		panic(err)
	}

	springagramService = services.NewSpringagramService(services.SpringagramServiceConfig{
		HttpClient:     &http.Client{},
		RequestTimeout: config.RequestTimeout(),
		UserAgent:      config.UserAgent + "/" + Version,
	})

	historyService = services.NewHistoryService(services.HistoryServiceConfig{
		DB: db,
	})

	taskService = services.NewTaskService(services.TaskServiceConfig{
		HistoryService:     historyService,
		MaxWorkers:         config.MaxTaskWorkers,
		ShutdownCtx:        shutdownCtx,
		SpringagramService: springagramService,
	})

	photoListService = services.NewPhotoListService()

	eventHub = services.NewEventHub(services.EventHubConfig{})
	go eventHub.Run(shutdownCtx)

	if config.ArchiveEnabled {
		setupArchive(shutdownCtx)
	}

	waitForApi()

	/*
	 * Setup controllers
	 */
	archiveController = archive.NewArchiveController(archive.ArchiveControllerConfig{
		ArchiveService: archiveService,
		Renderer:       renderer,
	})

	eventsController = events.NewEventsController(events.EventsControllerConfig{
		EventHub: eventHub,
	})

	historyController = history.NewHistoryController(history.HistoryControllerConfig{
		HistoryService: historyService,
		Renderer:       renderer,
	})

	homeController = home.NewHomeController(home.HomeControllerConfig{
		ApiURL:      config.ApiURL,
		Renderer:    renderer,
		TaskService: taskService,
		WaitTimeout: config.RequestTimeout() * 2,
	})

	photoController = photos.NewPhotoController(photos.PhotoControllerConfig{
		ApiURL:         config.ApiURL,
		ArchiveService: archiveService,
		EventPublisher: eventHub,
		PhotoList:      photoListService,
		Renderer:       renderer,
		TaskService:    taskService,
		WaitTimeout:    config.RequestTimeout() * 2,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLogger := newRequestLoggerMiddleware([]string{
		"/static",
		"/heartbeat",
		"/ws",
	})

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /ws", HandlerFunc: eventsController.EventStream},
		{Path: "GET /", HandlerFunc: homeController.HomePage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /photos", HandlerFunc: photoController.PhotoListPage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /photos/{position}", HandlerFunc: photoController.PhotoPage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST /photos/{position}/delete", HandlerFunc: photoController.DeletePhotoAction, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /photos/{position}/gallery", HandlerFunc: photoController.GallerySelectPage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST /photos/{position}/gallery", HandlerFunc: photoController.AddToGalleryAction, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /history", HandlerFunc: historyController.HistoryPage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "GET /archive", HandlerFunc: archiveController.ArchivePage, Middlewares: []mux.MiddlewareFunc{requestLogger}},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Start the archive jobs
	 */
	if archiveService != nil {
		archiveService.StartCleanupRoutine(24 * time.Hour)
		defer archiveService.StopCleanupRoutine()

		setupArchiveSync(shutdownCtx)
	}

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	taskService.Stop()
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func setupArchive(shutdownCtx context.Context) {
	var (
		err      error
		s3Client s3.S3Client
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	if s3Client, err = s3.NewClient(awsConfig); err != nil {
		panic(err)
	}

	store := services.NewS3ObjectStore(services.S3ObjectStoreConfig{
		Bucket:   config.AwsBucket,
		Region:   config.AwsRegion,
		S3Client: s3Client,
	})

	if err = store.EnsureBucket(); err != nil {
		slog.Error("error ensuring bucket exists. aborting", "bucket", config.AwsBucket, "error", err)
		os.Exit(1)
	}

	archiveService = services.NewArchiveService(services.ArchiveServiceConfig{
		Folder:        config.ArchiveFolder,
		RetentionDays: config.ArchiveRetentionDays,
		Store:         store,
	})

	archiveSyncService = archivesync.NewArchiveSyncService(archivesync.ArchiveSyncConfig{
		ApiURL:             config.ApiURL,
		ArchiveService:     archiveService,
		MaxWorkers:         config.MaxTaskWorkers,
		ShutdownCtx:        shutdownCtx,
		SpringagramService: springagramService,
	})
}

/*
waitForApi probes the API root before serving. The site still starts when
the API stays unreachable; pages report the network error instead.
*/
func waitForApi() {
	var (
		err error
	)

	retrier.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout())
		defer cancel()

		if _, err = springagramService.GetRoot(ctx, config.ApiURL); err != nil {
			slog.Warn("API root not reachable yet. trying again", "url", config.ApiURL, "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		slog.Error("API root is unavailable", "url", config.ApiURL, "networkError", services.IsNetworkError(err), "error", err)
		return
	}

	slog.Info("API root discovered", "url", config.ApiURL)
}

func setupArchiveSync(shutdownCtx context.Context) {
	go func() {
		ticker := time.NewTicker(config.ArchiveSyncInterval())
		defer ticker.Stop()

		running := atomic.Bool{}

		runner := func() {
			if !running.CompareAndSwap(false, true) {
				slog.Info("archive sync already running. skipping...")
				return
			}

			defer running.Store(false)

			if _, err := archiveSyncService.Sync(); err != nil {
				slog.Error("archive sync failed", "error", err)
			}
		}

		go runner()

		for {
			select {
			case <-shutdownCtx.Done():
				return

			case <-ticker.C:
				go runner()
			}
		}
	}()
}

func newRenderer() (rendering.TemplateRenderer, error) {
	result, err := rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
