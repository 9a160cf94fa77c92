package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverFile = "file"
	StoreDriverBolt = "bolt"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Dev bool `envconfig:"DEV" default:"false"`

	ScanInterval      int    `envconfig:"SCAN_INTERVAL" default:"60"`
	SubscriptionsFile string `envconfig:"SUBSCRIPTIONS_FILE" default:"data/subscriptions.json"`
	StoreDriver       string `envconfig:"STORE_DRIVER" default:"file"`

	PollTimeout         time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	WatchedCommand      string        `envconfig:"WATCHED_COMMAND" default:"!plan"`
	TitleThumbnailURL   string        `envconfig:"TITLE_THUMBNAIL_URL" default:"https://pbs.twimg.com/profile_images/1450901581876973568/0bHBmqXe_400x400.png"`
	CommandThumbnailURL string        `envconfig:"COMMAND_THUMBNAIL_URL" default:"https://pbs.twimg.com/profile_images/788218320398917633/ssK-yqxf_400x400.jpg"`
	DeliveryRate        int           `envconfig:"DELIVERY_RATE" default:"25"`
	TwitchRate          int           `envconfig:"TWITCH_RATE" default:"10"`

	TwitchAPIURL   string `envconfig:"TWITCH_API_URL" default:"https://api.twitch.tv/helix"`
	TwitchTokenURL string `envconfig:"TWITCH_TOKEN_URL" default:"https://id.twitch.tv/oauth2/token"`
	NightbotAPIURL string `envconfig:"NIGHTBOT_API_URL" default:"https://api.nightbot.tv/1"`

	TwitchClientID     string `envconfig:"TWITCH_CLIENT_ID" required:"true"`
	TwitchClientSecret string `envconfig:"TWITCH_CLIENT_SECRET"`
	TelegramToken      string `envconfig:"TELEGRAM_TOKEN"`
	SSMPrefix          string `envconfig:"SSM_PREFIX" default:"/twitch-notifier/prod"`
}

// ParameterStore is the subset of the SSM client used to resolve secrets.
type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// New reads the configuration from the environment. Outside dev mode missing
// secrets are fetched from SSM.
func New(ctx context.Context) (*Config, error) {
	res, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if !res.Dev && (res.TelegramToken == "" || res.TwitchClientSecret == "") {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		if err := res.LoadSecrets(ctx, ssm.NewFromConfig(cfg)); err != nil {
			return nil, err
		}
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	return res, nil
}

func FromEnv() (*Config, error) {
	res := &Config{}

	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	return res, nil
}

// LoadSecrets fills in secrets that were not provided through the environment.
func (c *Config) LoadSecrets(ctx context.Context, store ParameterStore) error {
	var err error

	if c.TelegramToken == "" {
		c.TelegramToken, err = getParameter(ctx, store, c.SSMPrefix+"/telegram-token")
		if err != nil {
			return err
		}
	}

	if c.TwitchClientSecret == "" {
		c.TwitchClientSecret, err = getParameter(ctx, store, c.SSMPrefix+"/twitch-client-secret")
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) Validate() error {
	if c.ScanInterval <= 0 {
		return fmt.Errorf("%w: scan interval must be a positive integer, got %d", ErrInvalid, c.ScanInterval)
	}
	if strings.TrimSpace(c.SubscriptionsFile) == "" {
		return fmt.Errorf("%w: subscriptions file path cannot be empty", ErrInvalid)
	}
	if c.StoreDriver != StoreDriverFile && c.StoreDriver != StoreDriverBolt {
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalid, c.StoreDriver)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("%w: poll timeout must be positive", ErrInvalid)
	}
	if c.WatchedCommand == "" {
		return fmt.Errorf("%w: watched command cannot be empty", ErrInvalid)
	}
	if c.DeliveryRate <= 0 || c.TwitchRate <= 0 {
		return fmt.Errorf("%w: rates must be positive", ErrInvalid)
	}
	if c.TelegramToken == "" {
		return fmt.Errorf("%w: telegram token is required", ErrInvalid)
	}
	if c.TwitchClientSecret == "" {
		return fmt.Errorf("%w: twitch client secret is required", ErrInvalid)
	}

	return nil
}

func (c *Config) ScanIntervalDuration() time.Duration {
	return time.Duration(c.ScanInterval) * time.Second
}

func getParameter(ctx context.Context, store ParameterStore, name string) (string, error) {
	param, err := store.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM parameter %s: %w", name, err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", fmt.Errorf("SSM parameter %s not found", name)
	}

	return *param.Parameter.Value, nil
}
