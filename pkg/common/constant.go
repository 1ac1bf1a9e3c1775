package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyKVBackend      string = "CC_KV_BACKEND"
	EnvKeyDbPath         string = "CC_DB_PATH"
	EnvKeyPostgresDSN    string = "CC_POSTGRES_DSN"
	EnvKeyRedisAddr      string = "CC_REDIS_ADDR"
	EnvKeyRedisPassword  string = "CC_REDIS_PASSWORD"
	EnvKeyRedisDB        string = "CC_REDIS_DB"
	EnvKeyMongoURI       string = "CC_MONGO_URI"
	EnvKeyMongoDatabase  string = "CC_MONGO_DATABASE"
	EnvKeyHttpHostPort   string = "CC_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort   string = "CC_GRPC_HOST_PORT"
	EnvKeyDefaultRate    string = "CC_DEFAULT_RATE"
	EnvKeyDefaultBurst   string = "CC_DEFAULT_BURST"
	EnvKeyJWTSecret      string = "CC_JWT_SECRET"
	EnvKeyTokenTTL       string = "CC_TOKEN_TTL"
	EnvKeyNotifyPlatform string = "CC_NOTIFY_PLATFORM"
	EnvKeyDeliverers     string = "CC_NOTIFY_DELIVERERS"
	EnvKeyFirebaseCreds  string = "CC_FIREBASE_CREDENTIALS"
	EnvKeyFCMTopicPrefix string = "CC_FCM_TOPIC_PREFIX"
	EnvKeySMTPHost       string = "CC_SMTP_HOST"
	EnvKeySMTPPort       string = "CC_SMTP_PORT"
	EnvKeySMTPUser       string = "CC_SMTP_USER"
	EnvKeySMTPPass       string = "CC_SMTP_PASS"
	EnvKeySMTPFrom       string = "CC_SMTP_FROM"
	EnvKeyTimezone       string = "CC_TIMEZONE"
	EnvKeySeedDemo       string = "CC_SEED_DEMO"
	EnvKeySeedPassword   string = "CC_SEED_PASSWORD"
	EnvKeyCorsOrigins    string = "CC_CORS_ORIGINS"

	LoggerNameCompanionCore string = "companion_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameNotify        string = "notify"
	LoggerNameStorage       string = "storage"
	LoggerNameSeed          string = "seed"

	LoggerFieldCategory        string = "category"
	LoggerCategoryIdentity     string = "identity"
	LoggerCategoryReminder     string = "reminder"
	LoggerCategoryMedication   string = "medication"
	LoggerCategoryAppointment  string = "appointment"
	LoggerCategoryAlert        string = "alert"
	LoggerCategoryConnection   string = "connection"
	LoggerCategoryPreference   string = "preference"
	LoggerCategoryScheduler    string = "scheduler"
	LoggerCategoryPlatform     string = "local_platform"
	LoggerCategoryDelivery     string = "delivery"
)
