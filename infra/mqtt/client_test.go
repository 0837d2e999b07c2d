package mqtt

import (
	"strings"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct{ err error }

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t fakeToken) Error() error { return t.err }

type fakeClient struct {
	connected    bool
	subscribed   string
	qos          byte
	disconnected bool
}

func (c *fakeClient) IsConnected() bool { return c.connected }
func (c *fakeClient) Connect() paho.Token {
	c.connected = true
	return fakeToken{}
}
func (c *fakeClient) Disconnect(uint) {
	c.disconnected = true
	c.connected = false
}
func (c *fakeClient) Subscribe(topic string, qos byte, _ paho.MessageHandler) paho.Token {
	c.subscribed = topic
	c.qos = qos
	return fakeToken{}
}

func TestConfigSetDefaults(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	if !strings.HasPrefix(cfg.ClientID, "loadshed-") {
		t.Errorf("client id not defaulted: %q", cfg.ClientID)
	}
	if cfg.ScheduleTopic != "loadshed/schedule/+" {
		t.Errorf("topic not defaulted: %q", cfg.ScheduleTopic)
	}
	if cfg.ConnectTimeoutSeconds != 5 {
		t.Errorf("timeout not defaulted: %d", cfg.ConnectTimeoutSeconds)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Enabled: true}).Validate(); err == nil {
		t.Errorf("enabled config without broker should fail")
	}
	if err := (Config{}).Validate(); err != nil {
		t.Errorf("disabled config should pass: %v", err)
	}
}

func TestPahoClientSubscribeAndClose(t *testing.T) {
	fc := &fakeClient{}
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return fc }
	defer func() { newMQTTClient = orig }()

	cfg := Config{Enabled: true, Broker: "tcp://localhost:1883", ScheduleTopic: "loadshed/schedule/+", QoS: 1}
	client, err := NewPahoClient(cfg)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	if !fc.connected {
		t.Fatalf("connect not called")
	}
	if err := client.SubscribeSchedules(func(paho.Client, paho.Message) {}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if fc.subscribed != "loadshed/schedule/+" || fc.qos != 1 {
		t.Fatalf("bad subscription %q qos=%d", fc.subscribed, fc.qos)
	}
	client.Close()
	if !fc.disconnected {
		t.Fatalf("disconnect not called")
	}
}
