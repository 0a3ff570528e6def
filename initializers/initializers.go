package initializers

import (
	"context"

	"job-board-backend/config"
	"job-board-backend/fiberlog"
	"job-board-backend/lib/access"
	applicanthandler "job-board-backend/lib/applicant"
	authhandler "job-board-backend/lib/auth"
	xlsexport "job-board-backend/lib/export/xls"
	gpthandler "job-board-backend/lib/gpt"
	yagptclient "job-board-backend/lib/gpt/yagpt-client"
	jobhandler "job-board-backend/lib/job"
	savedjobshandler "job-board-backend/lib/saved-jobs"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	access.NewHandler()
	authhandler.NewHandler()
	jobhandler.NewHandler()
	xlsexport.NewHandler()
	applicanthandler.NewHandler()
	savedjobshandler.NewHandler()
	gpthandler.NewHandler(yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID))
}
