package wire

import (
	"Conexus/internal/api"
	"Conexus/internal/api/config"
	"Conexus/internal/api/handler"
	"Conexus/internal/job"
	"Conexus/internal/pkg/cache"
	croninit "Conexus/internal/pkg/cron"
	"Conexus/internal/pkg/kafka"
	mongodb "Conexus/internal/pkg/mongo"
	"Conexus/internal/pkg/security"
	"Conexus/internal/pkg/util"
	"Conexus/internal/repository"
	"Conexus/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the process runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronManager  *croninit.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, c cache.Cache, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	connectionRepo := repository.NewConnectionRepo(db)
	inviteRepo := repository.NewInviteRepo(db)
	networkMetricRepo := repository.NewNetworkMetricRepo(db)
	inviteMetricRepo := repository.NewInviteMetricRepo(db)
	userActivityRepo := repository.NewUserActivityRepo(db)
	clickEventRepo := mongodb.NewClickEventRepo(mongoDB)

	tokenManager := security.NewTokenManager(cfg.JWT)
	smsSender := util.NewSmsSender(cfg.SMS)

	priorSizeEstimator := service.NewSnapshotPriorSizeEstimator(networkMetricRepo)
	industryClassifier := service.NewEqualWeightClassifier(connectionRepo)
	conversionEstimator := service.NewAssumedRateConversionEstimator()

	smsService := service.NewSmsService(smsSender, c)
	userService := service.NewUserService(userRepo, userActivityRepo, smsService, tokenManager, c)
	networkService := service.NewNetworkService(connectionRepo, userRepo, userActivityRepo, c, priorSizeEstimator, industryClassifier)
	inviteService := service.NewInviteService(inviteRepo, inviteMetricRepo, userRepo, userActivityRepo, clickEventRepo, conversionEstimator)
	analyticsService := service.NewAnalyticsService(networkService, networkMetricRepo, userActivityRepo, inviteRepo, conversionEstimator)
	networkMetricService := service.NewNetworkMetricService(networkMetricRepo, connectionRepo, c)

	handlers := &api.HandlersGroup{
		UserHandler:          handler.NewUserHandler(userService, smsService),
		NetworkHandler:       handler.NewNetworkHandler(networkService),
		InviteHandler:        handler.NewInviteHandler(inviteService),
		AnalyticsHandler:     handler.NewAnalyticsHandler(analyticsService),
		NetworkMetricHandler: handler.NewNetworkMetricHandler(networkMetricService),
	}

	router := api.SetupRouter(handlers, tokenManager, c, cfg)

	networkMetricJob := job.NewNetworkMetricJob(networkMetricService, c)
	inviteMetricJob := job.NewInviteMetricJob(clickEventRepo, inviteMetricRepo)
	cronMgr := croninit.NewCronManager(networkMetricJob, inviteMetricJob)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, networkMetricService)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronManager:  cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
