package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Amazon     Amazon     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Amazon agrupa as credenciais e os limites do pipeline da Amazon Ads API
type Amazon struct {
	ClientID     string `mapstructure:"amazon_client_id"`
	ClientSecret string `mapstructure:"amazon_client_secret"`
	RefreshToken string `mapstructure:"amazon_refresh_token"`
	ProfileID    string `mapstructure:"amazon_profile_id"`
	Region       string `mapstructure:"amazon_region"`
	Marketplace  string `mapstructure:"amazon_marketplace"`

	ReportWaitSeconds     int `mapstructure:"report_wait_seconds"`
	ReportPollSeconds     int `mapstructure:"report_poll_seconds"`
	BackgroundWaitSeconds int `mapstructure:"background_wait_seconds"`
	BackgroundPollSeconds int `mapstructure:"background_poll_seconds"`
	LookbackDays          int `mapstructure:"lookback_days"`
	BufferDays            int `mapstructure:"buffer_days"`
	RowCap                int `mapstructure:"row_cap"`

	// Derivados da região, nunca lidos do ambiente
	Endpoint string `mapstructure:"-"`
	TokenURL string `mapstructure:"-"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

type Auth struct {
	Secret               string `mapstructure:"auth_secret"`
	OperatorEmail        string `mapstructure:"operator_email"`
	OperatorPasswordHash string `mapstructure:"operator_password_hash"`
}

// Hosts da Ads API por região. A região seleciona o host base; o endpoint
// de troca de token é global.
var regionEndpoints = map[string]string{
	"NA": "https://advertising-api.amazon.com",
	"EU": "https://advertising-api-eu.amazon.com",
	"FE": "https://advertising-api-fe.amazon.com",
}

const tokenURL = "https://api.amazon.com/auth/o2/token"

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adspull")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AMAZON_REGION", "NA")
	viper.SetDefault("AMAZON_MARKETPLACE", "")

	viper.SetDefault("REPORT_WAIT_SECONDS", 300)     // Espera máxima em chamadas interativas
	viper.SetDefault("REPORT_POLL_SECONDS", 3)       // Intervalo de polling interativo
	viper.SetDefault("BACKGROUND_WAIT_SECONDS", 900) // Espera máxima em background
	viper.SetDefault("BACKGROUND_POLL_SECONDS", 20)  // Intervalo de polling em background
	viper.SetDefault("LOOKBACK_DAYS", 14)            // Janela de atribuição de vendas
	viper.SetDefault("BUFFER_DAYS", 1)               // Dias de espera para atribuição assentar
	viper.SetDefault("ROW_CAP", 5000)                // Limite de linhas por ingestão

	viper.SetDefault("REPORT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("OPERATOR_EMAIL", "")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Amazon.Validate(); err != nil {
		return nil, err
	}

	endpoint, ok := regionEndpoints[config.Amazon.Region]
	if !ok {
		return nil, fmt.Errorf("região inválida: %q (valores aceitos: NA, EU, FE)", config.Amazon.Region)
	}
	config.Amazon.Endpoint = endpoint
	config.Amazon.TokenURL = tokenURL

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante que as credenciais obrigatórias estão presentes.
// A ausência é um erro fatal de configuração, reportado antes de
// qualquer chamada de rede.
func (a Amazon) Validate() error {
	missing := make([]string, 0, 4)

	if a.ClientID == "" {
		missing = append(missing, "AMAZON_CLIENT_ID")
	}
	if a.ClientSecret == "" {
		missing = append(missing, "AMAZON_CLIENT_SECRET")
	}
	if a.RefreshToken == "" {
		missing = append(missing, "AMAZON_REFRESH_TOKEN")
	}
	if a.ProfileID == "" {
		missing = append(missing, "AMAZON_PROFILE_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf("configuração obrigatória ausente: %v", missing)
	}

	return nil
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
