package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Employee EmployeeSvcFacade
	Shop     ShopSvc
	// Upload is nil when object storage is not configured.
	Upload UploadSvc
}
