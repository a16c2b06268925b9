package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/backend"
	"github.com/RoyceAzure/lab/storefront/internal/infra/credential"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	Cf              *config.Config
	Logger          *zerolog.Logger
	BackendClient   *backend.Client
	CredentialStore credential.IStore
	CatalogAPI      backend.ICatalogAPI
	AuthAPI         backend.IAuthAPI
	EnquiryAPI      backend.IEnquiryAPI
	ReviewAPI       backend.IReviewAPI
	CartService     service.ICartService
	AuthService     service.IAuthService
	CatalogService  service.ICatalogService
	EnquiryService  service.IEnquiryService
	ReviewService   service.IReviewService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpLogger()
	if err != nil {
		return err
	}

	err = app.setUpCredentialStore()
	if err != nil {
		return err
	}

	err = app.setUpBackendClient()
	if err != nil {
		return err
	}

	err = app.setUpServices()
	if err != nil {
		return err
	}

	//監聽憑證檔, 其他process登入/登出時同步session
	log.Printf("start watching credential store...")
	if err := app.AuthService.WatchStore(); err != nil {
		log.Printf("credential store watch unavailable: %v", err)
	}

	return nil
}

func (app *ApplicationContext) setUpLogger() error {
	log.Printf("Start setup logger")

	level, err := zerolog.ParseLevel(app.Cf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("module", "storefront").Logger()
	app.Logger = &logger

	log.Printf("Finish setup logger")
	return nil
}

func (app *ApplicationContext) setUpCredentialStore() error {
	log.Printf("Start setup credential store")
	app.CredentialStore = credential.NewFileStore(app.Cf.CredentialFile, app.Logger)
	log.Printf("Finish setup credential store")
	return nil
}

func (app *ApplicationContext) setUpBackendClient() error {
	log.Printf("Start setup backend client")

	app.BackendClient = backend.NewClient(app.Cf.ApiBaseUrl,
		backend.WithTimeout(app.Cf.HttpTimeout()),
		backend.WithTokenProvider(app.CredentialStore),
		backend.WithLogger(app.Logger),
	)
	app.CatalogAPI = backend.NewCatalogAPI(app.BackendClient)
	app.AuthAPI = backend.NewAuthAPI(app.BackendClient)
	app.EnquiryAPI = backend.NewEnquiryAPI(app.BackendClient)
	app.ReviewAPI = backend.NewReviewAPI(app.BackendClient)

	log.Printf("Finish setup backend client")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	app.CartService = service.NewCartService()
	app.AuthService = service.NewAuthService(app.AuthAPI, app.CredentialStore, app.Logger)
	app.CatalogService = service.NewCatalogService(app.CatalogAPI, app.Logger)
	app.EnquiryService = service.NewEnquiryService(app.EnquiryAPI, app.CartService, app.AuthService, app.Logger)
	app.ReviewService = service.NewReviewService(app.ReviewAPI, app.AuthService, app.Cf.ReviewPageSize, app.Logger)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.CredentialStore != nil {
			log.Printf("Closing credential store watcher...")
			if err := app.CredentialStore.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("credential store close error: %v", err)
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}

// Bootstrap 啟動流程: 驗證持久化憑證 + 並行載入目錄
func (app *ApplicationContext) Bootstrap(ctx context.Context) error {
	log.Printf("validating stored session...")
	if err := app.AuthService.Init(ctx); err != nil {
		return err
	}

	log.Printf("loading catalog...")
	bootCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return app.CatalogService.Bootstrap(bootCtx)
}
