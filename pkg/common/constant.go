package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType string = "MEDIMIND_DB_TYPE"
	EnvKeyDBPath string = "MEDIMIND_DB_PATH"
	EnvKeyDBDsn  string = "MEDIMIND_DB_DSN"

	EnvKeyHttpHostPort string = "MEDIMIND_HTTP_HOST_PORT"

	EnvKeyDefaultRate  string = "MEDIMIND_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "MEDIMIND_DEFAULT_BURST"

	LoggerNameCore          string = "medimind_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"

	LoggerCategoryAccount    string = "account"
	LoggerCategoryConnection string = "connection"
	LoggerCategoryMedication string = "medication"
	LoggerCategoryHealth     string = "health"
	LoggerCategoryMood       string = "mood"
	LoggerCategoryAlert      string = "alert"
	LoggerCategoryReport     string = "report"
)
