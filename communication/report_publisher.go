package communication

import (
	"bikeshare/domain/business/report"
	"context"
	"encoding/json"
	"fmt"
	log "github.com/sirupsen/logrus"
	"time"
)

const (
	publisherType  = "report-publisher"
	publishTimeout = 5 * time.Second
)

type messagePublisher interface {
	PublishMessageInExchange(ctx context.Context, publishingConfig PublishingConfig, routingKey string, message []byte) error
}

// ReportPublisher sends the session reports to a RabbitMQ exchange
type ReportPublisher struct {
	publisher messagePublisher
	config    ReportPublisherConfig
}

func NewReportPublisher(rabbitMQ *RabbitMQ, publisherConfig ReportPublisherConfig) *ReportPublisher {
	return &ReportPublisher{
		publisher: rabbitMQ,
		config:    publisherConfig,
	}
}

func (rp *ReportPublisher) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[publisher: %s][exchange: %s][method: %s][status: ERROR] %s: %s", publisherType, rp.config.PublishingConfig.Exchange, method, message, err.Error())
	}
	return fmt.Sprintf("[publisher: %s][exchange: %s][method: %s][status: OK] %s", publisherType, rp.config.PublishingConfig.Exchange, method, message)
}

// PublishReport publishes the report as JSON in the configured exchange
func (rp *ReportPublisher) PublishReport(ctx context.Context, sessionReport *report.SessionReport) error {
	reportBytes, err := json.Marshal(sessionReport)
	if err != nil {
		log.Error(rp.getLogMessage("PublishReport", "error marshalling report", err))
		return fmt.Errorf("%w: %s", ErrMarshallingReport, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := sessionReport.GetRoutingKey(rp.config.PublishingConfig.RoutingKey)
	err = rp.publisher.PublishMessageInExchange(ctx, rp.config.PublishingConfig, routingKey, reportBytes)
	if err != nil {
		log.Error(rp.getLogMessage("PublishReport", fmt.Sprintf("error publishing report with routing key %s", routingKey), err))
		return fmt.Errorf("%w: %w", ErrPublishingReport, err)
	}

	log.Debug(rp.getLogMessage("PublishReport", fmt.Sprintf("report published with routing key %s", routingKey), nil))
	return nil
}
