//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"geraetewart-server/internal/infra/async"
	inventoryHTTPAPI "geraetewart-server/internal/inventory/httpapi"
	inventoryPersistence "geraetewart-server/internal/inventory/persistence"
	inventoryUsecases "geraetewart-server/internal/inventory/usecases"
	maintenanceHTTPAPI "geraetewart-server/internal/maintenance/httpapi"
	maintenancePersistence "geraetewart-server/internal/maintenance/persistence"
	maintenanceUsecases "geraetewart-server/internal/maintenance/usecases"
	missionsHTTPAPI "geraetewart-server/internal/missions/httpapi"
	missionsPersistence "geraetewart-server/internal/missions/persistence"
	missionsUsecases "geraetewart-server/internal/missions/usecases"
	notificationUsecases "geraetewart-server/internal/notification/usecases"
	reportingHTTPAPI "geraetewart-server/internal/reporting/httpapi"
	reportingPersistence "geraetewart-server/internal/reporting/persistence"
	reportingUsecases "geraetewart-server/internal/reporting/usecases"
	settingsHTTPAPI "geraetewart-server/internal/settings/httpapi"
	settingsPersistence "geraetewart-server/internal/settings/persistence"
	settingsUsecases "geraetewart-server/internal/settings/usecases"

	"github.com/google/wire"
)

var settingsSet = wire.NewSet(
	provideAppConfig,
	provideORM,
	provideCache,
	settingsPersistence.NewSettingRepository,
	wire.Bind(new(settingsUsecases.SettingRepository), new(*settingsPersistence.SimpleSettingRepository)),
	settingsUsecases.NewSettingsService,
)

var generationSet = wire.NewSet(
	provideAppConfig,
	provideORM,
	inventoryPersistence.NewEquipmentRepository,
	wire.Bind(new(inventoryUsecases.EquipmentRepository), new(*inventoryPersistence.SimpleEquipmentRepository)),
	maintenancePersistence.NewTemplateRepository,
	wire.Bind(new(maintenanceUsecases.TemplateRepository), new(*maintenancePersistence.SimpleTemplateRepository)),
	maintenancePersistence.NewRecordRepository,
	wire.Bind(new(maintenanceUsecases.RecordRepository), new(*maintenancePersistence.SimpleRecordRepository)),
	maintenancePersistence.NewRunLogRepository,
	wire.Bind(new(maintenanceUsecases.RunLogRepository), new(*maintenancePersistence.SimpleRunLogRepository)),
	maintenanceUsecases.NewGenerationService,
	wire.Bind(new(maintenanceUsecases.GenerationService), new(*maintenanceUsecases.SimpleGenerationService)),
)

func InitializeEquipmentController() (*inventoryHTTPAPI.EquipmentController, error) {
	wire.Build(
		provideAppConfig,
		provideORM,
		inventoryPersistence.NewEquipmentRepository,
		wire.Bind(new(inventoryUsecases.EquipmentRepository), new(*inventoryPersistence.SimpleEquipmentRepository)),
		inventoryUsecases.NewEquipmentService,
		wire.Bind(new(inventoryUsecases.EquipmentService), new(*inventoryUsecases.SimpleEquipmentService)),
		inventoryHTTPAPI.NewEquipmentController,
	)
	return nil, nil
}

func InitializeMasterDataController() (*inventoryHTTPAPI.MasterDataController, error) {
	wire.Build(
		provideAppConfig,
		provideORM,
		inventoryPersistence.NewCategoryRepository,
		wire.Bind(new(inventoryUsecases.CategoryRepository), new(*inventoryPersistence.SimpleCategoryRepository)),
		inventoryPersistence.NewLocationRepository,
		wire.Bind(new(inventoryUsecases.LocationRepository), new(*inventoryPersistence.SimpleLocationRepository)),
		inventoryPersistence.NewPersonRepository,
		wire.Bind(new(inventoryUsecases.PersonRepository), new(*inventoryPersistence.SimplePersonRepository)),
		inventoryUsecases.NewMasterDataService,
		wire.Bind(new(inventoryUsecases.MasterDataService), new(*inventoryUsecases.SimpleMasterDataService)),
		inventoryHTTPAPI.NewMasterDataController,
	)
	return nil, nil
}

func InitializeTemplateController() (*maintenanceHTTPAPI.TemplateController, error) {
	wire.Build(
		provideAppConfig,
		provideORM,
		maintenancePersistence.NewTemplateRepository,
		wire.Bind(new(maintenanceUsecases.TemplateRepository), new(*maintenancePersistence.SimpleTemplateRepository)),
		maintenanceUsecases.NewTemplateService,
		wire.Bind(new(maintenanceUsecases.TemplateService), new(*maintenanceUsecases.SimpleTemplateService)),
		maintenanceHTTPAPI.NewTemplateController,
	)
	return nil, nil
}

func InitializeRecordController() (*maintenanceHTTPAPI.RecordController, error) {
	wire.Build(
		provideAppConfig,
		provideORM,
		maintenancePersistence.NewRecordRepository,
		wire.Bind(new(maintenanceUsecases.RecordRepository), new(*maintenancePersistence.SimpleRecordRepository)),
		maintenanceUsecases.NewRecordService,
		wire.Bind(new(maintenanceUsecases.RecordService), new(*maintenanceUsecases.SimpleRecordService)),
		maintenanceHTTPAPI.NewRecordController,
	)
	return nil, nil
}

func InitializeGenerationController(broker async.InternalBroker) (*maintenanceHTTPAPI.GenerationController, error) {
	wire.Build(
		generationSet,
		maintenanceHTTPAPI.NewGenerationController,
	)
	return nil, nil
}

func InitializeRunStreamController(broker async.InternalBroker) (*maintenanceHTTPAPI.RunStreamController, error) {
	wire.Build(
		maintenanceHTTPAPI.NewRunStreamController,
	)
	return nil, nil
}

func InitializeGenerationWorker(ticker *time.Ticker, schedule string, broker async.InternalBroker) (*maintenanceUsecases.GenerationWorker, error) {
	wire.Build(
		generationSet,
		maintenanceUsecases.NewGenerationWorker,
	)
	return nil, nil
}

func InitializeMissionController() (*missionsHTTPAPI.MissionController, error) {
	wire.Build(
		provideAppConfig,
		provideORM,
		missionsPersistence.NewMissionRepository,
		wire.Bind(new(missionsUsecases.MissionRepository), new(*missionsPersistence.SimpleMissionRepository)),
		missionsUsecases.NewMissionService,
		wire.Bind(new(missionsUsecases.MissionService), new(*missionsUsecases.SimpleMissionService)),
		missionsHTTPAPI.NewMissionController,
	)
	return nil, nil
}

func InitializeSettingsController() (*settingsHTTPAPI.SettingsController, error) {
	wire.Build(
		settingsSet,
		wire.Bind(new(settingsUsecases.SettingsService), new(*settingsUsecases.SimpleSettingsService)),
		settingsHTTPAPI.NewSettingsController,
	)
	return nil, nil
}

func InitializeReportController() (*reportingHTTPAPI.ReportController, error) {
	wire.Build(
		settingsSet,
		wire.Bind(new(settingsUsecases.SettingsProvider), new(*settingsUsecases.SimpleSettingsService)),
		provideDatabase,
		provideNotificationClient,
		reportingPersistence.NewReportRepository,
		wire.Bind(new(reportingUsecases.ReportRepository), new(*reportingPersistence.SimpleReportRepository)),
		wire.Struct(new(reportingUsecases.TextExporter), "*"),
		wire.Bind(new(reportingUsecases.ReportExporter), new(*reportingUsecases.TextExporter)),
		reportingUsecases.NewReportService,
		wire.Bind(new(reportingUsecases.ReportService), new(*reportingUsecases.SimpleReportService)),
		reportingHTTPAPI.NewReportController,
	)
	return nil, nil
}

func InitializeEmailWorker(broker async.InternalBroker) (*notificationUsecases.EmailWorker, error) {
	wire.Build(
		settingsSet,
		wire.Bind(new(settingsUsecases.SettingsProvider), new(*settingsUsecases.SimpleSettingsService)),
		provideNotificationClient,
		notificationUsecases.NewEmailWorker,
	)
	return nil, nil
}
