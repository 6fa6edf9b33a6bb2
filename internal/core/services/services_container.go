package services

import (
	portsrepo "github.com/SscSPs/sky_take_out/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_take_out/internal/core/ports/services"
	"github.com/SscSPs/sky_take_out/internal/platform/redis"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// store may be nil, in which case uploads are unavailable.
func NewServiceContainer(repos portsrepo.RepositoryProvider, tpl *redis.Template, store ObjectStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{
		Employee: NewEmployeeService(repos.EmployeeRepo),
		Shop:     NewShopService(tpl),
	}
	if store != nil {
		container.Upload = NewUploadService(store)
	}
	return container
}
