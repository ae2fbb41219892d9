package communication

// ExchangeDeclarationConfig contains the parameters to declare a RabbitMQ exchange
type ExchangeDeclarationConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Durable     bool   `yaml:"durable"`
	AutoDeleted bool   `yaml:"auto_deleted"`
	Internal    bool   `yaml:"internal"`
	NoWait      bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ exchange
type PublishingConfig struct {
	Exchange    string `yaml:"exchange"`
	RoutingKey  string `yaml:"routing_key"`
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	ContentType string `yaml:"content_type"`
}

// ReportPublisherConfig settings of the session report publisher
// + Enabled: if false, reports are not published
// + URL: RabbitMQ URL. The RABBIT_URL env var takes precedence
// + ExchangeConfig: exchange in which reports are published. It is declared on startup
// + PublishingConfig: RoutingKey is used as the prefix of the routing key, the city is appended
type ReportPublisherConfig struct {
	Enabled          bool                      `yaml:"enabled"`
	URL              string                    `yaml:"url"`
	ExchangeConfig   ExchangeDeclarationConfig `yaml:"exchange"`
	PublishingConfig PublishingConfig          `yaml:"publishing"`
}
