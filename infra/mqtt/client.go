// Package mqtt subscribes to schedule feed topics over MQTT and feeds
// received payloads into the ingest pipeline. It is built on the
// Eclipse Paho client.
package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/gridwatch/loadshed/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Enabled               bool   `json:"enabled"`
	Broker                string `json:"broker"`
	ClientID              string `json:"client_id"`
	Username              string `json:"username"`
	Password              string `json:"password"`
	ScheduleTopic         string `json:"schedule_topic"`
	QoS                   byte   `json:"qos"`
	ConnectTimeoutSeconds int    `json:"connect_timeout_seconds"`
}

// SetDefaults applies sane defaults. Client IDs get a random suffix so
// multiple instances can share a broker.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "loadshed-" + uuid.NewString()[:8]
	}
	if c.ScheduleTopic == "" {
		c.ScheduleTopic = "loadshed/schedule/+"
	}
	if c.ConnectTimeoutSeconds <= 0 {
		c.ConnectTimeoutSeconds = 5
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	return nil
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

// PahoClient wraps the Eclipse Paho client for schedule subscriptions.
type PahoClient struct {
	cli pahoClient
	cfg Config
	log logger.Logger
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// NewPahoClient connects to the MQTT broker.
func NewPahoClient(cfg Config) (*PahoClient, error) {
	log := logger.New("mqtt-client")
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(time.Duration(cfg.ConnectTimeoutSeconds) * time.Second).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoClient{cli: c, cfg: cfg, log: log}, nil
}

// SubscribeSchedules registers cb for the configured schedule topic.
func (mc *PahoClient) SubscribeSchedules(cb paho.MessageHandler) error {
	token := mc.cli.Subscribe(mc.cfg.ScheduleTopic, mc.cfg.QoS, cb)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (mc *PahoClient) Close() {
	if mc.cli.IsConnected() {
		mc.cli.Disconnect(250)
	}
}
