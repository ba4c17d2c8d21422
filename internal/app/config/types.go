package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                     string
		Port                    string
		Version                 string
		EndpointPrefix          string
		MaxRequests             int
		ShutdownTimeout         int
		SeedTestAccounts        bool
		PatientAlertQueue       string
		PatientPhotoMaxSizeInMB int
	}

	JWT struct {
		Secret                string
		StepUpExpTimeInMinute int
		SessionExpTimeInHour  int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
