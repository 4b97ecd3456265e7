package handler

import (
	"net/http"

	"github.com/vfg2006/ads-pull-api/internal/api/handler/router"
	"github.com/vfg2006/ads-pull-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/:entity/start",
			Method:  http.MethodPost,
			Handler: StartReport(service),
		},
		{
			Path:    "/v1/reports/:entity/run",
			Method:  http.MethodPost,
			Handler: RunReport(service),
		},
		{
			Path:    "/v1/reports/:entity/fetch/:id",
			Method:  http.MethodPost,
			Handler: FetchReport(service),
		},
	}
}

func Facts(service ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/facts/keywords",
			Method:  http.MethodGet,
			Handler: GetKeywordFacts(service),
		},
		{
			Path:    "/v1/facts/search-terms",
			Method:  http.MethodGet,
			Handler: GetSearchTermFacts(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
